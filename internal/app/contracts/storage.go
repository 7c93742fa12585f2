package contracts

import (
	"context"
	"io"
)

type Storage interface {
	UploadFile(ctx context.Context, bucketName, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	ListObjects(ctx context.Context, bucketName string) ([]string, error)
}
