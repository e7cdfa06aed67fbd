package utils

import (
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
)

// vendorImageTransformation crops vendor photos to the card size used by the listing pages.
const vendorImageTransformation = "c_fill,g_auto,w_800,h_600/f_auto/q_auto"

// ImageResolver turns stored Cloudinary public IDs into delivery URLs.
type ImageResolver struct {
	cld *cloudinary.Cloudinary
}

// NewImageResolver builds a resolver from a cloudinary:// URL. An empty URL
// yields a resolver that returns no URLs.
func NewImageResolver(cloudinaryURL string) (*ImageResolver, error) {
	if cloudinaryURL == "" {
		return &ImageResolver{}, nil
	}
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	cld.Config.URL.Secure = true
	return &ImageResolver{cld: cld}, nil
}

// URL returns the delivery URL for publicID, or "" when unavailable.
func (r *ImageResolver) URL(publicID string) string {
	if r == nil || r.cld == nil || publicID == "" {
		return ""
	}
	img, err := r.cld.Image(publicID)
	if err != nil {
		return ""
	}
	img.Transformation = vendorImageTransformation
	url, err := img.String()
	if err != nil {
		return ""
	}
	return url
}
