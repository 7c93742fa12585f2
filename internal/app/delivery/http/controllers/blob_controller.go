package controllers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"carebridge-service/internal/app/contracts"
	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/dto/responses"
	"carebridge-service/internal/pkg/exceptions"
	"carebridge-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const maxUploadSizeInMegabyte = 32

type BlobController struct {
	Log         *zap.Logger
	BlobUsecase contracts.BlobUsecase
}

var (
	blobControllerInstance *BlobController
	onceBlobController     sync.Once
)

func NewBlobController(logger *zap.Logger, blobUsecase contracts.BlobUsecase) *BlobController {
	onceBlobController.Do(func() {
		blobControllerInstance = &BlobController{
			Log:         logger,
			BlobUsecase: blobUsecase,
		}
	})
	return blobControllerInstance
}

func (ctrl *BlobController) UploadImage(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromContext(ctrl.Log, w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadSizeInMegabyte << 20); err != nil {
		ctrl.Log.Error("Failed to parse multipart form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result, err := ctrl.BlobUsecase.UploadImage(ctx, file, fileHeader)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildRawResponse(w, constvars.StatusOK, result)
}

func (ctrl *BlobController) ListBlobs(w http.ResponseWriter, r *http.Request) {
	if _, ok := requestIDFromContext(ctrl.Log, w, r); !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	blobs, err := ctrl.BlobUsecase.ListBlobs(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildRawResponse(w, constvars.StatusOK, struct {
		Success bool                 `json:"success"`
		Blobs   []responses.BlobInfo `json:"blobs"`
	}{Success: true, Blobs: blobs})
}
