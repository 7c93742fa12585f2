package contracts

import (
	"context"

	"carebridge-service/internal/pkg/dto/requests"
	"carebridge-service/internal/pkg/dto/responses"
)

type ChecklistUsecase interface {
	CreateChecklist(ctx context.Context, uhid string, request *requests.PreOpChecklist) (int, error)
	FindChecklistByUHID(ctx context.Context, uhid string) ([]responses.ChecklistDocument, error)
	UpdateSingleDocument(ctx context.Context, uhid string, request *requests.DocumentEntry) error
	DeleteDocuments(ctx context.Context, uhid, documentName string) ([]responses.DeletedDocument, error)
}
