package billing

import (
	"context"
	"net/url"
	"sync"

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
	billingUsecaseInstance contracts.BillingUsecase
	onceBillingUsecase     sync.Once
)

type billingUsecase struct {
	FhirGateway contracts.FhirGateway
	Log         *zap.Logger
}

func NewBillingUsecase(fhirGateway contracts.FhirGateway, logger *zap.Logger) contracts.BillingUsecase {
	onceBillingUsecase.Do(func() {
		billingUsecaseInstance = &billingUsecase{
			FhirGateway: fhirGateway,
			Log:         logger,
		}
	})
	return billingUsecaseInstance
}

func (uc *billingUsecase) CreateBillingAccount(ctx context.Context, uhid string, request *requests.BillingInfo) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("billingUsecase.CreateBillingAccount called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUHIDKey, uhid),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}

	resource := AccountResource(uhid, request)
	return uc.FhirGateway.CreateResource(ctx, constvars.ResourceAccount, resource, nil)
}

func (uc *billingUsecase) FindInvoicesByUHID(ctx context.Context, uhid string) ([]string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("billingUsecase.FindInvoicesByUHID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUHIDKey, uhid),
	)

	query := url.Values{}
	query.Set("patient", constvars.ResourcePatient+"/"+uhid)

	resources, err := uc.FhirGateway.SearchResources(ctx, constvars.ResourceAccount, query)
	if err != nil {
		return nil, err
	}

	invoices := make([]string, 0, len(resources))
	for _, raw := range resources {
		var account fhir_dto.Account
		if err := json.Unmarshal(raw, &account); err != nil {
			return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceAccount)
		}
		invoices = append(invoices, InvoiceNumbers(&account)...)
	}
	return invoices, nil
}
