package storage

import (
	"context"
	"log"
	"mime/multipart"

	config "github.com/wsulistia/kelasku/configs"
)

// Store saves uploaded material files and returns a stable content
// reference that the material registry persists verbatim. The server never
// interprets the bytes behind a reference; rendering is the frontend's job.
type Store interface {
	Save(ctx context.Context, file *multipart.FileHeader) (string, error)
}

// Files is the active upload backend, chosen once at startup.
var Files Store

// Init picks the backend: Cloudinary when CLOUDINARY_URL is configured,
// otherwise a local uploads directory served back over /uploads.
func Init() error {
	if url := config.Config("CLOUDINARY_URL"); url != "" {
		store, err := NewCloudinaryStore(url)
		if err != nil {
			return err
		}
		Files = store
		log.Println("✅ File storage ready (cloudinary)")
		return nil
	}

	dir := config.ConfigDefault("UPLOAD_DIR", "uploads")
	store, err := NewLocalStore(dir)
	if err != nil {
		return err
	}
	Files = store
	log.Printf("✅ File storage ready (local: %s)", dir)
	return nil
}
