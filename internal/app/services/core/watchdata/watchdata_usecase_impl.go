package watchdata

import (
	"context"
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
	watchDataUsecaseInstance contracts.WatchDataUsecase
	onceWatchDataUsecase     sync.Once
)

type watchDataUsecase struct {
	FhirGateway contracts.FhirGateway
	Log         *zap.Logger
}

func NewWatchDataUsecase(fhirGateway contracts.FhirGateway, logger *zap.Logger) contracts.WatchDataUsecase {
	onceWatchDataUsecase.Do(func() {
		watchDataUsecaseInstance = &watchDataUsecase{
			FhirGateway: fhirGateway,
			Log:         logger,
		}
	})
	return watchDataUsecaseInstance
}

func (uc *watchDataUsecase) CreateObservations(ctx context.Context, uhid string, request *requests.WatchData) (int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("watchDataUsecase.CreateObservations called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUHIDKey, uhid),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return 0, exceptions.ErrInputValidation(err)
	}

	bundle := ObservationTransactionBundle(uhid, request)
	if len(bundle.Entry) == 0 {
		return 0, nil
	}
	if _, err := uc.FhirGateway.PostTransaction(ctx, bundle); err != nil {
		return 0, err
	}
	return len(bundle.Entry), nil
}

func (uc *watchDataUsecase) FindObservationsByUHID(ctx context.Context, uhid string) ([]responses.ObservationSummary, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("watchDataUsecase.FindObservationsByUHID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUHIDKey, uhid),
	)

	query := url.Values{}
	query.Set("subject", constvars.ResourcePatient+"/"+uhid)

	resources, err := uc.FhirGateway.SearchResources(ctx, constvars.ResourceObservation, query)
	if err != nil {
		return nil, err
	}

	observations := make([]responses.ObservationSummary, 0, len(resources))
	for _, raw := range resources {
		var observation fhir_dto.Observation
		if err := json.Unmarshal(raw, &observation); err != nil {
			return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceObservation)
		}
		observations = append(observations, SimplifyObservation(&observation))
	}
	return observations, nil
}
