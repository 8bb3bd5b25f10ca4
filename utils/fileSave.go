package utils

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// --- Image Validation ---

var SupportedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
	"image/bmp":  true,
	"image/tiff": true,
}

func ValidateImageFileType(w http.ResponseWriter, header *multipart.FileHeader) bool {
	mimeType := header.Header.Get("Content-Type")
	if !SupportedImageTypes[mimeType] {
		http.Error(w, "Invalid file type. Supported formats: JPEG, PNG, WebP, GIF, BMP, TIFF.", http.StatusBadRequest)
		return false
	}
	return true
}

func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}

// SaveImageWithThumbnail decodes the uploaded image, writes the original and
// a 300px-wide thumbnail under static/<folder>, and returns the public URL of
// the original.
func SaveImageWithThumbnail(file multipart.File, folder, baseName string) (string, error) {
	img, err := imaging.Decode(file)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	dir := filepath.Join("static", folder)
	if err := EnsureDir(filepath.Join(dir, "thumb")); err != nil {
		return "", err
	}

	filename := baseName + ".jpg"
	originalPath := filepath.Join(dir, filename)
	thumbnailPath := filepath.Join(dir, "thumb", filename)

	if err := imaging.Save(img, originalPath); err != nil {
		return "", err
	}
	thumbImg := imaging.Resize(img, 300, 0, imaging.Lanczos)
	if err := imaging.Save(thumbImg, thumbnailPath); err != nil {
		return "", err
	}

	return "/static/" + folder + "/" + filename, nil
}
