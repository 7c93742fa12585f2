package consents

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

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	consentUsecaseInstance contracts.ConsentUsecase
	onceConsentUsecase     sync.Once
)

type consentUsecase struct {
	FhirGateway contracts.FhirGateway
	Log         *zap.Logger
}

func NewConsentUsecase(fhirGateway contracts.FhirGateway, logger *zap.Logger) contracts.ConsentUsecase {
	onceConsentUsecase.Do(func() {
		consentUsecaseInstance = &consentUsecase{
			FhirGateway: fhirGateway,
			Log:         logger,
		}
	})
	return consentUsecaseInstance
}

func (uc *consentUsecase) CreateConsentFormStatus(ctx context.Context, uhid string, request *requests.ConsentFormStatus) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("consentUsecase.CreateConsentFormStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUHIDKey, uhid),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}

	resource := ConsentFormStatusResource(uhid, request)
	return uc.FhirGateway.CreateResource(ctx, constvars.ResourceConsent, resource, nil)
}

func (uc *consentUsecase) CreateConsentFormData(ctx context.Context, uhid string, request *requests.ConsentFormData) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("consentUsecase.CreateConsentFormData called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUHIDKey, uhid),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}

	resource, err := ConsentFormDataResource(uhid, request, time.Now())
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	return uc.FhirGateway.CreateResource(ctx, constvars.ResourceConsent, resource, nil)
}

func (uc *consentUsecase) FindLatestConsentFormStatus(ctx context.Context, uhid string) (*fhir_dto.Consent, error) {
	return uc.findLatestByTag(ctx, uhid, constvars.ConsentTagFormStatus)
}

func (uc *consentUsecase) FindLatestConsentFormData(ctx context.Context, uhid string) (*fhir_dto.Consent, error) {
	return uc.findLatestByTag(ctx, uhid, constvars.ConsentTagFormData)
}

// findLatestByTag searches every Consent carrying the UHID identifier, keeps
// the ones with the wanted internal tag, and returns the newest by dateTime.
func (uc *consentUsecase) findLatestByTag(ctx context.Context, uhid, tagCode string) (*fhir_dto.Consent, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("consentUsecase.findLatestByTag called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUHIDKey, uhid),
		zap.String("tag_code", tagCode),
	)

	query := url.Values{}
	query.Set("identifier", constvars.IdentifierSystemUHID+"|"+uhid)

	resources, err := uc.FhirGateway.SearchResources(ctx, constvars.ResourceConsent, query)
	if err != nil {
		return nil, err
	}
	if len(resources) == 0 {
		return nil, exceptions.ErrFHIRResourceNotFound(constvars.ResourceConsent, fmt.Sprintf("No Consent found for UHID %s", uhid))
	}

	var latest *fhir_dto.Consent
	for _, raw := range resources {
		var consent fhir_dto.Consent
		if err := json.Unmarshal(raw, &consent); err != nil {
			return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceConsent)
		}
		if !HasTag(&consent, tagCode) {
			continue
		}
		if latest == nil || utils.LaterFHIRTime(consent.DateTime, latest.DateTime) {
			copied := consent
			latest = &copied
		}
	}

	if latest == nil {
		return nil, exceptions.ErrFHIRResourceNotFound(constvars.ResourceConsent, fmt.Sprintf("No %s found for UHID %s", tagCode, uhid))
	}
	return latest, nil
}
