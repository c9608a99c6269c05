package services

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Dias221467/Birthday_Wall/internal/models"
	"github.com/Dias221467/Birthday_Wall/pkg/apperrors"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// sniffLen is how much of a file is read to detect its type.
const sniffLen = 3072

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// UploadService stores carousel images on local disk and hands back their public URL.
type UploadService struct {
	dir       string
	urlPrefix string
}

func NewUploadService(dir, urlPrefix string) *UploadService {
	return &UploadService{dir: dir, urlPrefix: urlPrefix}
}

// Dir is the directory uploads are written to.
func (s *UploadService) Dir() string {
	return s.dir
}

// SaveImage sniffs the content, rejects anything that is not an image and writes it under
// a random name.
func (s *UploadService) SaveImage(file io.Reader, originalName string) (*models.Upload, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, apperrors.Store("failed to read upload", err)
	}
	head = head[:n]
	if n == 0 {
		return nil, apperrors.Validation("Uploaded file is empty")
	}

	mtype := mimetype.Detect(head)
	if !allowedImageTypes[mtype.String()] {
		logrus.WithField("mime", mtype.String()).Warn("Rejected non-image upload")
		return nil, apperrors.Validation("Only JPEG, PNG, GIF and WebP images are allowed")
	}

	if err := os.MkdirAll(s.dir, os.ModePerm); err != nil {
		return nil, apperrors.Store("failed to create upload folder", err)
	}

	fileName := uuid.NewString() + mtype.Extension()
	out, err := os.Create(filepath.Join(s.dir, fileName))
	if err != nil {
		return nil, apperrors.Store("failed to save file", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, io.MultiReader(bytes.NewReader(head), file)); err != nil {
		_ = os.Remove(out.Name())
		return nil, apperrors.Store("failed to write file", err)
	}

	upload := &models.Upload{
		URL:  fmt.Sprintf("%s/%s", s.urlPrefix, fileName),
		Name: originalName,
	}
	logrus.WithFields(logrus.Fields{
		"file": fileName,
		"mime": mtype.String(),
	}).Info("Image uploaded")
	return upload, nil
}
