package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/Haris-56/coupon/pkg/upload"
	"github.com/gin-gonic/gin"
)

// maxFormMemory leaves headroom over the upload limit so oversized files are
// rejected by the uploader with a proper message instead of a parse error.
const maxFormMemory = upload.MaxFileSize + 1<<20

// formValues flattens a multipart or urlencoded admin form into url.Values.
func formValues(c *gin.Context) url.Values {
	if err := c.Request.ParseMultipartForm(maxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return c.Request.PostForm
	}
	values := url.Values{}
	for key, vals := range c.Request.PostForm {
		values[key] = vals
	}
	if c.Request.MultipartForm != nil {
		for key, vals := range c.Request.MultipartForm.Value {
			values[key] = vals
		}
	}
	return values
}

// formFile returns the uploaded file for the given field, or nil when the
// field was left empty.
func formFile(c *gin.Context, field string) (*upload.File, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	return &upload.File{Name: header.Filename, Size: header.Size, Reader: file}, nil
}
