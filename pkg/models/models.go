package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role controls what a session is allowed to do. Create/update operations
// accept ADMIN and EDITOR, delete operations accept ADMIN only.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleEditor Role = "EDITOR"
	RoleUser   Role = "USER"
)

// CouponType distinguishes offers with a redeemable code from plain deals.
type CouponType string

const (
	CouponTypeCode CouponType = "Code"
	CouponTypeDeal CouponType = "Deal"
)

type Store struct {
	ID             primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name"`
	Slug           string             `json:"slug" bson:"slug"`
	Description    string             `json:"description,omitempty" bson:"description,omitempty"`
	AffiliateLink  string             `json:"affiliateLink,omitempty" bson:"affiliateLink,omitempty"`
	URL            string             `json:"url,omitempty" bson:"url,omitempty"`
	Country        string             `json:"country,omitempty" bson:"country,omitempty"`
	Network        string             `json:"network,omitempty" bson:"network,omitempty"`
	IsFeatured     bool               `json:"isFeatured" bson:"isFeatured"`
	IsActive       bool               `json:"isActive" bson:"isActive"`
	LogoURL        string             `json:"logoUrl,omitempty" bson:"logoUrl,omitempty"`
	SEOTitle       string             `json:"seoTitle,omitempty" bson:"seoTitle,omitempty"`
	SEODescription string             `json:"seoDescription,omitempty" bson:"seoDescription,omitempty"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type Category struct {
	ID             primitive.ObjectID  `json:"_id,omitempty" bson:"_id,omitempty"`
	Name           string              `json:"name" bson:"name"`
	Slug           string              `json:"slug" bson:"slug"`
	Description    string              `json:"description,omitempty" bson:"description,omitempty"`
	Icon           string              `json:"icon,omitempty" bson:"icon,omitempty"`
	IsShowInMenu   bool                `json:"isShowInMenu" bson:"isShowInMenu"`
	IsFeatured     bool                `json:"isFeatured" bson:"isFeatured"`
	IsActive       bool                `json:"isActive" bson:"isActive"`
	ImageURL       string              `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	SEOTitle       string              `json:"seoTitle,omitempty" bson:"seoTitle,omitempty"`
	SEODescription string              `json:"seoDescription,omitempty" bson:"seoDescription,omitempty"`
	ParentCategory *primitive.ObjectID `json:"parentCategory,omitempty" bson:"parentCategory,omitempty"`
	CreatedAt      time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt" bson:"updatedAt"`
}

type Coupon struct {
	ID             primitive.ObjectID  `json:"_id,omitempty" bson:"_id,omitempty"`
	Title          string              `json:"title" bson:"title"`
	Code           string              `json:"code,omitempty" bson:"code"`
	TagLine        string              `json:"tagLine,omitempty" bson:"tagLine,omitempty"`
	Description    string              `json:"description,omitempty" bson:"description,omitempty"`
	Store          primitive.ObjectID  `json:"store" bson:"store"`
	Category       primitive.ObjectID  `json:"category" bson:"category"`
	SubCategory    *primitive.ObjectID `json:"subCategory,omitempty" bson:"subCategory,omitempty"`
	StartDate      *time.Time          `json:"startDate,omitempty" bson:"startDate,omitempty"`
	ExpiryDate     *time.Time          `json:"expiryDate,omitempty" bson:"expiryDate,omitempty"`
	TrackingLink   string              `json:"trackingLink" bson:"trackingLink"`
	CouponType     CouponType          `json:"couponType" bson:"couponType"`
	IsExclusive    bool                `json:"isExclusive" bson:"isExclusive"`
	IsFeatured     bool                `json:"isFeatured" bson:"isFeatured"`
	IsVerified     bool                `json:"isVerified" bson:"isVerified"`
	IsActive       bool                `json:"isActive" bson:"isActive"`
	DiscountValue  string              `json:"discountValue,omitempty" bson:"discountValue,omitempty"`
	VotesUp        int                 `json:"votesUp" bson:"votesUp"`
	VotesDown      int                 `json:"votesDown" bson:"votesDown"`
	SEOTitle       string              `json:"seoTitle,omitempty" bson:"seoTitle,omitempty"`
	SEODescription string              `json:"seoDescription,omitempty" bson:"seoDescription,omitempty"`
	ImageURL       string              `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	CreatedAt      time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt" bson:"updatedAt"`
}

type User struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Email        string             `json:"email" bson:"email"`
	PasswordHash string             `json:"-" bson:"passwordHash"`
	Role         Role               `json:"role" bson:"role"`
	Verified     bool               `json:"verified" bson:"verified"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type EmailTemplate struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title     string             `json:"title" bson:"title"`
	Slug      string             `json:"slug" bson:"slug"`
	Subject   string             `json:"subject" bson:"subject"`
	Content   string             `json:"content" bson:"content"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// VoteDirection selects which of the two monotone vote counters to bump.
type VoteDirection string

const (
	VoteUp   VoteDirection = "up"
	VoteDown VoteDirection = "down"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type VoteRequest struct {
	Direction string `json:"direction" binding:"required,oneof=up down"`
}
