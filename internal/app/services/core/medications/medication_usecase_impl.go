package medications

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

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
	medicationUsecaseInstance contracts.MedicationUsecase
	onceMedicationUsecase     sync.Once
)

type medicationUsecase struct {
	FhirGateway contracts.FhirGateway
	Log         *zap.Logger
}

func NewMedicationUsecase(fhirGateway contracts.FhirGateway, logger *zap.Logger) contracts.MedicationUsecase {
	onceMedicationUsecase.Do(func() {
		medicationUsecaseInstance = &medicationUsecase{
			FhirGateway: fhirGateway,
			Log:         logger,
		}
	})
	return medicationUsecaseInstance
}

func (uc *medicationUsecase) ConvertMedications(ctx context.Context, uhid string, request *requests.TabletPrescribed) (*fhir_dto.TransactionBundle, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicationUsecase.ConvertMedications called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUHIDKey, uhid),
		zap.Int("tablets", len(request.Tablets)),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	bundle, err := MedicationTransactionBundle(uhid, request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}
	return bundle, nil
}

func (uc *medicationUsecase) CreateMedications(ctx context.Context, uhid string, request *requests.TabletPrescribed) (int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicationUsecase.CreateMedications called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUHIDKey, uhid),
		zap.Int("tablets", len(request.Tablets)),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return 0, exceptions.ErrInputValidation(err)
	}

	// Only active prescriptions are posted.
	entries := make([]fhir_dto.TransactionEntry, 0, len(request.Tablets))
	for i := range request.Tablets {
		resource, err := MedicationRequestResource(uhid, &request.Tablets[i])
		if err != nil {
			return 0, exceptions.ErrCannotMarshalJSON(err)
		}
		if resource.Status != constvars.MedicationStatusActive {
			continue
		}
		entries = append(entries, fhir_dto.TransactionEntry{
			Resource: resource,
			Request:  fhir_dto.TransactionRequest{Method: constvars.MethodPost, URL: constvars.ResourceMedicationRequest},
		})
	}
	if len(entries) == 0 {
		return 0, nil
	}

	bundle := &fhir_dto.TransactionBundle{
		ResourceType: constvars.ResourceBundle,
		Type:         constvars.BundleTypeTransaction,
		Entry:        entries,
	}
	if _, err := uc.FhirGateway.PostTransaction(ctx, bundle); err != nil {
		return 0, err
	}
	return len(entries), nil
}

func (uc *medicationUsecase) FindMedicationsByUHID(ctx context.Context, uhid string) ([]fhir_dto.MedicationRequest, error) {
	query := url.Values{}
	query.Set("subject", constvars.ResourcePatient+"/"+uhid)
	return uc.searchMedications(ctx, query)
}

func (uc *medicationUsecase) FindActiveMedicationsByUHID(ctx context.Context, uhid string) ([]responses.ActiveMedication, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicationUsecase.FindActiveMedicationsByUHID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUHIDKey, uhid),
	)

	query := url.Values{}
	query.Set("subject", constvars.ResourcePatient+"/"+uhid)
	query.Set("status", constvars.MedicationStatusActive)

	medications, err := uc.searchMedications(ctx, query)
	if err != nil {
		return nil, err
	}

	active := make([]responses.ActiveMedication, 0, len(medications))
	for i := range medications {
		active = append(active, SimplifyActiveMedication(&medications[i]))
	}
	return active, nil
}

// UpdateDose reads every MedicationRequest for the tablet, patches the doses
// list in memory and PUTs the resource back with the new doses note appended.
// Not transactional; concurrent updates are last write wins.
func (uc *medicationUsecase) UpdateDose(ctx context.Context, uhid string, request *requests.UpdateDoseRequest) (int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicationUsecase.UpdateDose called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUHIDKey, uhid),
		zap.String("tablet_name", request.TabletName),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return 0, exceptions.ErrInputValidation(err)
	}

	medications, err := uc.FindMedicationsByUHID(ctx, uhid)
	if err != nil {
		return 0, err
	}

	updated := 0
	for i := range medications {
		medication := &medications[i]
		if medication.MedicationCodeableConcept == nil || medication.MedicationCodeableConcept.Text != request.TabletName {
			continue
		}

		doses, _ := dosesFromNotes(medication.Note)
		doses = UpsertDose(doses, request, time.Now())

		encoded, err := EncodeDosesTaken(doses)
		if err != nil {
			return updated, exceptions.ErrCannotMarshalJSON(err)
		}
		medication.Note = append(medication.Note, fhir_dto.Annotation{Text: encoded})

		if err := uc.FhirGateway.UpdateResource(ctx, constvars.ResourceMedicationRequest, medication.ID, medication, nil); err != nil {
			return updated, err
		}
		updated++
	}

	if updated == 0 {
		return 0, exceptions.ErrFHIRResourceNotFound(constvars.ResourceMedicationRequest,
			fmt.Sprintf("No medication named '%s' found for UHID %s.", request.TabletName, uhid))
	}
	return updated, nil
}

func (uc *medicationUsecase) DeleteActiveMedication(ctx context.Context, uhid, tabletName string) (int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicationUsecase.DeleteActiveMedication called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUHIDKey, uhid),
		zap.String("tablet_name", tabletName),
	)

	query := url.Values{}
	query.Set("identifier", constvars.IdentifierSystemUHID+"|"+uhid)
	query.Set("status", constvars.MedicationStatusActive)

	medications, err := uc.searchMedications(ctx, query)
	if err != nil {
		return 0, err
	}
	if len(medications) == 0 {
		return 0, exceptions.ErrFHIRResourceNotFound(constvars.ResourceMedicationRequest,
			"No active medicines found for this UHID.")
	}

	deleted := 0
	for i := range medications {
		medication := &medications[i]
		if medication.MedicationCodeableConcept == nil {
			continue
		}
		if !strings.EqualFold(medication.MedicationCodeableConcept.Text, tabletName) {
			continue
		}
		if medication.Status != constvars.MedicationStatusActive {
			continue
		}
		if err := uc.FhirGateway.DeleteResource(ctx, constvars.ResourceMedicationRequest, medication.ID); err != nil {
			return deleted, err
		}
		deleted++
	}

	if deleted == 0 {
		return 0, exceptions.ErrFHIRResourceNotFound(constvars.ResourceMedicationRequest,
			fmt.Sprintf("No active medicine named '%s' found for UHID %s.", tabletName, uhid))
	}
	return deleted, nil
}

// AutoCompleteOverdue scans every MedicationRequest on the server and flips
// the ones past their dosing window to completed. The last active day is the
// authoredOn date plus duration minus one; a missing bound counts as one day.
// Days are local calendar dates, since the sweep runs just after local
// midnight.
func (uc *medicationUsecase) AutoCompleteOverdue(ctx context.Context) (int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicationUsecase.AutoCompleteOverdue called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	medications, err := uc.searchMedications(ctx, url.Values{})
	if err != nil {
		return 0, err
	}

	year, month, day := time.Now().Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	completed := 0

	for i := range medications {
		medication := &medications[i]
		if medication.Status == constvars.MedicationStatusCompleted {
			continue
		}

		authoredOn, ok := utils.ParseFHIRTime(medication.AuthoredOn)
		if !ok {
			uc.Log.Warn("medicationUsecase.AutoCompleteOverdue skipping unparseable authoredOn",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingResourceIDKey, medication.ID),
				zap.String("authored_on", medication.AuthoredOn),
			)
			continue
		}

		durationDays, ok := DurationDays(medication)
		if !ok {
			durationDays = 1
		}

		authoredYear, authoredMonth, authoredDay := authoredOn.Date()
		lastDay := time.Date(authoredYear, authoredMonth, authoredDay, 0, 0, 0, 0, time.UTC).AddDate(0, 0, int(durationDays)-1)
		if !today.After(lastDay) {
			continue
		}

		medication.Status = constvars.MedicationStatusCompleted
		if err := uc.FhirGateway.UpdateResource(ctx, constvars.ResourceMedicationRequest, medication.ID, medication, nil); err != nil {
			// Failures are retried implicitly at the next run.
			uc.Log.Error("medicationUsecase.AutoCompleteOverdue update failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingResourceIDKey, medication.ID),
				zap.Error(err),
			)
			continue
		}
		completed++
	}
	return completed, nil
}

func (uc *medicationUsecase) searchMedications(ctx context.Context, query url.Values) ([]fhir_dto.MedicationRequest, error) {
	resources, err := uc.FhirGateway.SearchResources(ctx, constvars.ResourceMedicationRequest, query)
	if err != nil {
		return nil, err
	}

	medications := make([]fhir_dto.MedicationRequest, 0, len(resources))
	for _, raw := range resources {
		var medication fhir_dto.MedicationRequest
		if err := json.Unmarshal(raw, &medication); err != nil {
			return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceMedicationRequest)
		}
		medications = append(medications, medication)
	}
	return medications, nil
}
