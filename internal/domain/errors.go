package domain

import "errors"

var (
	ErrNotFound = errors.New("not found")

	// Rejections of product image uploads, see imaging.Normalizer.
	ErrMinResolution = errors.New("image resolution is below the minimum")
	ErrMaxResolution = errors.New("image resolution is above the maximum")
	ErrImageTooLarge = errors.New("image file is too large")
)
