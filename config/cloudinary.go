package config

import (
	"log"

	"github.com/cloudinary/cloudinary-go/v2"
)

var Cloudinary *cloudinary.Cloudinary

// ConnectCloudinary is a no-op when CLOUDINARY_URL is empty; avatar uploads
// are then answered with 503.
func ConnectCloudinary(cfg *Config) (*cloudinary.Cloudinary, error) {
	if cfg.CloudinaryURL == "" {
		log.Println("CLOUDINARY_URL not set, avatar uploads disabled")
		return nil, nil
	}

	cld, err := cloudinary.NewFromURL(cfg.CloudinaryURL)
	if err != nil {
		return nil, err
	}

	Cloudinary = cld
	return cld, nil
}
