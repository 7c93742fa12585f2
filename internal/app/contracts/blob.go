package contracts

import (
	"context"
	"mime/multipart"

	"carebridge-service/internal/pkg/dto/responses"
)

type BlobUsecase interface {
	UploadImage(ctx context.Context, file multipart.File, fileHeader *multipart.FileHeader) (*responses.UploadBlobResponse, error)
	ListBlobs(ctx context.Context) ([]responses.BlobInfo, error)
}
