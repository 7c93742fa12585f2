package patients

import (
	"context"
	"sync"

	"carebridge-service/internal/app/contracts"
	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/dto/requests"
	"carebridge-service/internal/pkg/exceptions"
	"carebridge-service/internal/pkg/fhir_dto"
	"carebridge-service/internal/pkg/utils"

	"go.uber.org/zap"
)

var (
	patientUsecaseInstance contracts.PatientUsecase
	oncePatientUsecase     sync.Once
)

type patientUsecase struct {
	Log *zap.Logger
}

func NewPatientUsecase(logger *zap.Logger) contracts.PatientUsecase {
	oncePatientUsecase.Do(func() {
		patientUsecaseInstance = &patientUsecase{Log: logger}
	})
	return patientUsecaseInstance
}

// RegisterPatient maps the login payload into a transaction Bundle and echoes
// it back; the mobile app decides when to submit it.
func (uc *patientUsecase) RegisterPatient(ctx context.Context, request *requests.PatientLogin) (*fhir_dto.TransactionBundle, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.RegisterPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUHIDKey, request.UHID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	return PatientTransactionBundle(request.UHID), nil
}
