package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/infrastructure/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrFileTooLarge        = errors.New("file exceeds the maximum upload size")
	ErrUnsupportedFileType = errors.New("unsupported file type")
)

// Admin uploads carry site imagery only.
var allowedUploadTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

type UploadUsecase interface {
	UploadImage(ctx context.Context, fileName string, size int64, reader io.Reader) (*dto.UploadResponse, error)
}

type uploadUsecase struct {
	log     *logrus.Logger
	store   storage.ObjectStorage
	maxSize int64
}

func NewUploadUsecase(log *logrus.Logger, store storage.ObjectStorage, maxSize int64) UploadUsecase {
	return &uploadUsecase{
		log:     log,
		store:   store,
		maxSize: maxSize,
	}
}

func (u *uploadUsecase) UploadImage(ctx context.Context, fileName string, size int64, reader io.Reader) (*dto.UploadResponse, error) {
	if size > u.maxSize {
		return nil, ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	contentType, ok := allowedUploadTypes[ext]
	if !ok {
		return nil, ErrUnsupportedFileType
	}

	objectName := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	url, err := u.store.Put(ctx, objectName, reader, size, contentType)
	if err != nil {
		u.log.Warnf("Failed to store upload: %+v", err)
		return nil, err
	}

	return &dto.UploadResponse{
		FileName: objectName,
		URL:      url,
		Size:     size,
	}, nil
}
