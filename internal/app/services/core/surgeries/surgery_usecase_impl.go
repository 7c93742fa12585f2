package surgeries

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"carebridge-service/internal/app/contracts"
	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/dto/requests"
	"carebridge-service/internal/pkg/exceptions"
	"carebridge-service/internal/pkg/fhir_dto"
	"carebridge-service/internal/pkg/utils"

	"go.uber.org/zap"
)

var (
	surgeryUsecaseInstance contracts.SurgeryUsecase
	onceSurgeryUsecase     sync.Once
)

type surgeryUsecase struct {
	FhirGateway contracts.FhirGateway
	Log         *zap.Logger
}

func NewSurgeryUsecase(fhirGateway contracts.FhirGateway, logger *zap.Logger) contracts.SurgeryUsecase {
	onceSurgeryUsecase.Do(func() {
		surgeryUsecaseInstance = &surgeryUsecase{
			FhirGateway: fhirGateway,
			Log:         logger,
		}
	})
	return surgeryUsecaseInstance
}

func (uc *surgeryUsecase) CreateSurgeries(ctx context.Context, uhid string, surgeries []requests.SurgeryDetails) (int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("surgeryUsecase.CreateSurgeries called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUHIDKey, uhid),
		zap.Int("surgeries", len(surgeries)),
	)

	for _, surgery := range surgeries {
		if err := utils.ValidateStruct(&surgery); err != nil {
			return 0, exceptions.ErrInputValidation(err)
		}
	}

	bundle := SurgeryTransactionBundle(uhid, surgeries, time.Now())
	if _, err := uc.FhirGateway.PostTransaction(ctx, bundle); err != nil {
		return 0, err
	}
	return len(surgeries), nil
}

func (uc *surgeryUsecase) FindProceduresByUHID(ctx context.Context, uhid string) (*fhir_dto.Bundle, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("surgeryUsecase.FindProceduresByUHID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUHIDKey, uhid),
	)

	query := url.Values{}
	query.Set("subject", constvars.ResourcePatient+"/"+uhid)

	bundle, err := uc.FhirGateway.SearchBundle(ctx, constvars.ResourceProcedure, query)
	if err != nil {
		return nil, err
	}
	if len(bundle.Entry) == 0 {
		return nil, exceptions.ErrFHIRResourceNotFound(constvars.ResourceProcedure, fmt.Sprintf("No Procedures found for UHID %s", uhid))
	}
	return bundle, nil
}
