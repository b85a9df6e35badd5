package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// CloudinaryStore uploads material files to Cloudinary and hands back the
// secure delivery URL as the content reference.
type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryStore(url string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &CloudinaryStore{cld: cld}, nil
}

func (s *CloudinaryStore) Save(ctx context.Context, file *multipart.FileHeader) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	prefix := strings.ReplaceAll(uuid.New().String(), "-", "")
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   "kelasku_materials",
		PublicID: fmt.Sprintf("material_%s_%s", prefix, file.Filename),
	})
	if err != nil {
		return "", err
	}
	return result.SecureURL, nil
}
