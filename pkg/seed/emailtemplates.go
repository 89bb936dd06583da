package seed

import (
	"context"
	"fmt"

	"github.com/Haris-56/coupon/pkg/models"
	"github.com/Haris-56/coupon/pkg/repository"
)

var emailTemplateSeeds = []models.EmailTemplate{
	{
		Title:   "New User Registered (Welcome Email)",
		Slug:    "welcome-email",
		Subject: "Welcome to CouponPro!",
		Content: "<p>Hi {{name}},</p><p>Welcome to CouponPro. Start saving with thousands of verified coupons and deals.</p>",
	},
	{
		Title:   "Forgot Password - Reset Link",
		Slug:    "reset-password",
		Subject: "Reset Your Password",
		Content: "<p>Hi {{name}},</p><p>Click <a href=\"{{resetLink}}\">here</a> to reset your password. The link expires in one hour.</p>",
	},
	{
		Title:   "Password Reset - Confirmation",
		Slug:    "reset-confirmation",
		Subject: "Password Changed Successfully",
		Content: "<p>Hi {{name}},</p><p>Your password was changed. If this wasn't you, contact support immediately.</p>",
	},
}

// EnsureEmailTemplates inserts the fixed template set if the collection is
// empty. Called lazily from the admin template listing.
func EnsureEmailTemplates(ctx context.Context, templates repository.EmailTemplateRepo) error {
	count, err := templates.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count email templates: %w", err)
	}
	if count > 0 {
		return nil
	}
	return templates.CreateMany(ctx, emailTemplateSeeds)
}
