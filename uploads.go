package main

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

func ensureUploadDir() error {
	return os.MkdirAll(cfg.UploadDir, 0o755)
}

// storeUpload writes one multipart file part to the upload dir under a
// timestamp+uuid prefixed name and returns the public retrieval path.
// Any byte stream is accepted as-is.
func storeUpload(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), uuid.NewString()[:8], filepath.Base(fh.Filename))

	dst, err := os.Create(filepath.Join(cfg.UploadDir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return "/uploads/" + name, nil
}
