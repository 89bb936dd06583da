package upload

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryUploader delegates image storage to the remote image host. The
// contract matches LocalUploader; failure modes additionally include network
// and service errors.
type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryUploader(cloudinaryURL string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to configure cloudinary: %w", err)
	}
	return &CloudinaryUploader{cld: cld}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, file File, folder string) (string, error) {
	if file.Size == 0 {
		return "", nil
	}
	if file.Size > MaxFileSize {
		return "", ErrFileTooLarge
	}

	resp, err := u.cld.Upload.Upload(ctx, file.Reader, uploader.UploadParams{
		Folder: "coupon_website/" + folder,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image to cloudinary: %w", err)
	}
	return resp.SecureURL, nil
}
