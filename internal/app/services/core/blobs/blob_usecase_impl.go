package blobs

import (
	"context"
	"mime/multipart"
	"strings"
	"sync"

	"carebridge-service/internal/app/config"
	"carebridge-service/internal/app/contracts"
	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/dto/responses"
	"carebridge-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

var (
	blobUsecaseInstance contracts.BlobUsecase
	onceBlobUsecase     sync.Once
)

type blobUsecase struct {
	Storage contracts.Storage
	Config  *config.InternalConfig
	Log     *zap.Logger
}

func NewBlobUsecase(storage contracts.Storage, internalConfig *config.InternalConfig, logger *zap.Logger) contracts.BlobUsecase {
	onceBlobUsecase.Do(func() {
		blobUsecaseInstance = &blobUsecase{
			Storage: storage,
			Config:  internalConfig,
			Log:     logger,
		}
	})
	return blobUsecaseInstance
}

func (uc *blobUsecase) UploadImage(ctx context.Context, file multipart.File, fileHeader *multipart.FileHeader) (*responses.UploadBlobResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("blobUsecase.UploadImage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("file_name", fileHeader.Filename),
		zap.Int64("size", fileHeader.Size),
	)

	contentType := fileHeader.Header.Get(constvars.HeaderContentType)
	if !strings.HasPrefix(contentType, "image/") {
		return nil, exceptions.ErrImageValidation(nil)
	}

	objectName, err := uc.Storage.UploadFile(ctx, uc.Config.Blob.BucketName, fileHeader.Filename, file, fileHeader.Size, contentType)
	if err != nil {
		return nil, err
	}

	return &responses.UploadBlobResponse{
		Success:  true,
		BlobURL:  uc.blobURL(objectName),
		FileName: objectName,
	}, nil
}

func (uc *blobUsecase) ListBlobs(ctx context.Context) ([]responses.BlobInfo, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("blobUsecase.ListBlobs called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	names, err := uc.Storage.ListObjects(ctx, uc.Config.Blob.BucketName)
	if err != nil {
		return nil, err
	}

	blobs := make([]responses.BlobInfo, 0, len(names))
	for _, name := range names {
		blobs = append(blobs, responses.BlobInfo{Name: name, URL: uc.blobURL(name)})
	}
	return blobs, nil
}

func (uc *blobUsecase) blobURL(objectName string) string {
	base := strings.TrimSuffix(uc.Config.Blob.PublicBaseUrl, "/")
	return base + "/" + uc.Config.Blob.BucketName + "/" + objectName
}
