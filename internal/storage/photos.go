package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	MaxFileSize   = 5 * 1024 * 1024
	MaxFilesCount = 10

	// Upload directories, one per entity type.
	PhotoDir            = "static/photos"
	CityLogoDir         = "static/city_logo"
	MunicipalityLogoDir = "static/municipality_logo"
	UserLogoDir         = "static/user_logo"
)

var (
	ErrTooManyFiles = fmt.Errorf("at most %d photos are allowed", MaxFilesCount)
	ErrFileTooLarge = errors.New("each photo must be at most 5 MB")
	ErrNotAnImage   = errors.New("only image files can be uploaded")
)

// ValidateImages checks count, size and declared content type of every file.
// One bad file fails the whole batch.
func ValidateImages(files []*multipart.FileHeader) error {
	if len(files) > MaxFilesCount {
		return ErrTooManyFiles
	}
	for _, fh := range files {
		if fh.Size > MaxFileSize {
			return ErrFileTooLarge
		}
		if !strings.HasPrefix(fh.Header.Get("Content-Type"), "image") {
			return ErrNotAnImage
		}
	}
	return nil
}

// SavePhotos writes uploaded images under root/static/photos with UUID
// filenames and returns the stored paths relative to root. Callers must
// have validated the batch first.
func SavePhotos(root string, files []*multipart.FileHeader) ([]string, error) {
	dir := filepath.Join(root, PhotoDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	var saved []string
	for _, fh := range files {
		ext := strings.ToLower(filepath.Ext(fh.Filename))
		name := uuid.New().String() + ext
		if err := copyFile(fh, filepath.Join(dir, name)); err != nil {
			return nil, err
		}
		saved = append(saved, filepath.ToSlash(filepath.Join(PhotoDir, name)))
	}
	return saved, nil
}

func copyFile(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, src)
	return err
}
