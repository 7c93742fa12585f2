package checklists

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"carebridge-service/internal/app/contracts"
	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/dto/requests"
	"carebridge-service/internal/pkg/dto/responses"
	"carebridge-service/internal/pkg/exceptions"
	"carebridge-service/internal/pkg/fhir_dto"
	"carebridge-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	checklistUsecaseInstance contracts.ChecklistUsecase
	onceChecklistUsecase     sync.Once
)

type checklistUsecase struct {
	FhirGateway contracts.FhirGateway
	Log         *zap.Logger
}

func NewChecklistUsecase(fhirGateway contracts.FhirGateway, logger *zap.Logger) contracts.ChecklistUsecase {
	onceChecklistUsecase.Do(func() {
		checklistUsecaseInstance = &checklistUsecase{
			FhirGateway: fhirGateway,
			Log:         logger,
		}
	})
	return checklistUsecaseInstance
}

func (uc *checklistUsecase) CreateChecklist(ctx context.Context, uhid string, request *requests.PreOpChecklist) (int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("checklistUsecase.CreateChecklist called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUHIDKey, uhid),
		zap.Int("documents", len(request.Documents)),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return 0, exceptions.ErrInputValidation(err)
	}

	bundle := ChecklistTransactionBundle(uhid, request)
	if _, err := uc.FhirGateway.PostTransaction(ctx, bundle); err != nil {
		return 0, err
	}
	return len(request.Documents), nil
}

func (uc *checklistUsecase) FindChecklistByUHID(ctx context.Context, uhid string) ([]responses.ChecklistDocument, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("checklistUsecase.FindChecklistByUHID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUHIDKey, uhid),
	)

	query := url.Values{}
	query.Set("subject", constvars.ResourcePatient+"/"+uhid)

	resources, err := uc.FhirGateway.SearchResources(ctx, constvars.ResourceDocumentReference, query)
	if err != nil {
		return nil, err
	}

	documents := make([]responses.ChecklistDocument, 0, len(resources))
	for _, raw := range resources {
		var doc fhir_dto.DocumentReference
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceDocumentReference)
		}
		documents = append(documents, SimplifyDocument(&doc))
	}
	return documents, nil
}

func (uc *checklistUsecase) UpdateSingleDocument(ctx context.Context, uhid string, request *requests.DocumentEntry) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("checklistUsecase.UpdateSingleDocument called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUHIDKey, uhid),
		zap.String("document_name", request.DocumentName),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}

	matches, err := uc.searchByName(ctx, uhid, request.DocumentName)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		return exceptions.ErrFHIRResourceNotFound(constvars.ResourceDocumentReference,
			fmt.Sprintf("No document found for '%s' and UHID '%s'.", request.DocumentName, uhid))
	}

	// First match wins; the checklist treats document names as unique.
	existing := matches[0]
	updated := DocumentReferenceResource(uhid, existing.ID, request)
	return uc.FhirGateway.UpdateResource(ctx, constvars.ResourceDocumentReference, existing.ID, updated, nil)
}

func (uc *checklistUsecase) DeleteDocuments(ctx context.Context, uhid, documentName string) ([]responses.DeletedDocument, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("checklistUsecase.DeleteDocuments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUHIDKey, uhid),
		zap.String("document_name", documentName),
	)

	matches, err := uc.searchByName(ctx, uhid, documentName)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, exceptions.ErrFHIRResourceNotFound(constvars.ResourceDocumentReference,
			fmt.Sprintf("No document found for '%s' and UHID '%s'.", documentName, uhid))
	}

	deleted := make([]responses.DeletedDocument, 0, len(matches))
	for _, doc := range matches {
		if doc.ID == "" {
			continue
		}
		if err := uc.FhirGateway.DeleteResource(ctx, constvars.ResourceDocumentReference, doc.ID); err != nil {
			return nil, err
		}
		name := ""
		if doc.Type != nil {
			name = doc.Type.Text
		}
		deleted = append(deleted, responses.DeletedDocument{DocumentName: name, DocumentID: doc.ID})
	}
	return deleted, nil
}

func (uc *checklistUsecase) searchByName(ctx context.Context, uhid, documentName string) ([]fhir_dto.DocumentReference, error) {
	query := url.Values{}
	query.Set("subject", constvars.ResourcePatient+"/"+uhid)
	query.Set("type:text", documentName)

	resources, err := uc.FhirGateway.SearchResources(ctx, constvars.ResourceDocumentReference, query)
	if err != nil {
		return nil, err
	}

	documents := make([]fhir_dto.DocumentReference, 0, len(resources))
	for _, raw := range resources {
		var doc fhir_dto.DocumentReference
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceDocumentReference)
		}
		documents = append(documents, doc)
	}
	return documents, nil
}
