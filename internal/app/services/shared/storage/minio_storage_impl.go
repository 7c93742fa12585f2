package storage

import (
	"context"
	"io"

	"carebridge-service/internal/app/contracts"
	"carebridge-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
}

func NewMinioStorage(minioClient *minio.Client) contracts.Storage {
	return &minioStorage{
		MinioClient: minioClient,
	}
}

// UploadFile overwrites any existing object with the same name, matching the
// upload-by-name semantics of the mobile app.
func (m *minioStorage) UploadFile(ctx context.Context, bucketName, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := m.MinioClient.PutObject(ctx, bucketName, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, bucketName)
	}

	return objectName, nil
}

func (m *minioStorage) ListObjects(ctx context.Context, bucketName string) ([]string, error) {
	names := make([]string, 0)
	for object := range m.MinioClient.ListObjects(ctx, bucketName, minio.ListObjectsOptions{Recursive: true}) {
		if object.Err != nil {
			return nil, exceptions.ErrMinioListObjects(object.Err, bucketName)
		}
		names = append(names, object.Key)
	}
	return names, nil
}
