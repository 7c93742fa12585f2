package medications

import (
	"context"
	"net/url"
	"testing"
	"time"

	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/dto/requests"
	"carebridge-service/internal/pkg/exceptions"
	"carebridge-service/internal/pkg/fhir_dto"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeFhirGateway struct {
	searchResults []json.RawMessage
	searchErr     error
	lastQuery     url.Values

	updatedIDs []string
	updateErr  error
	deletedIDs []string

	postedBundle *fhir_dto.TransactionBundle
}

func (f *fakeFhirGateway) CreateResource(ctx context.Context, resourceType string, resource, out interface{}) error {
	return nil
}

func (f *fakeFhirGateway) UpdateResource(ctx context.Context, resourceType, resourceID string, resource, out interface{}) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedIDs = append(f.updatedIDs, resourceID)
	return nil
}

func (f *fakeFhirGateway) DeleteResource(ctx context.Context, resourceType, resourceID string) error {
	f.deletedIDs = append(f.deletedIDs, resourceID)
	return nil
}

func (f *fakeFhirGateway) SearchResources(ctx context.Context, resourceType string, query url.Values) ([]json.RawMessage, error) {
	f.lastQuery = query
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.searchResults, nil
}

func (f *fakeFhirGateway) SearchBundle(ctx context.Context, resourceType string, query url.Values) (*fhir_dto.Bundle, error) {
	return &fhir_dto.Bundle{}, nil
}

func (f *fakeFhirGateway) PostTransaction(ctx context.Context, bundle *fhir_dto.TransactionBundle) (*fhir_dto.Bundle, error) {
	f.postedBundle = bundle
	return &fhir_dto.Bundle{Type: "transaction-response"}, nil
}

func rawMedication(t *testing.T, medication fhir_dto.MedicationRequest) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(medication)
	require.NoError(t, err)
	return raw
}

func medicationWithWindow(id, name, status, authoredOn string, durationDays float64) fhir_dto.MedicationRequest {
	return fhir_dto.MedicationRequest{
		ResourceType:              constvars.ResourceMedicationRequest,
		ID:                        id,
		Status:                    status,
		AuthoredOn:                authoredOn,
		MedicationCodeableConcept: &fhir_dto.CodeableConcept{Text: name},
		DosageInstruction: []fhir_dto.DosageInstruction{
			{
				Timing: &fhir_dto.Timing{
					Repeat: &fhir_dto.TimingRepeat{
						BoundsDuration: &fhir_dto.Quantity{Value: durationDays, Unit: ucumDayUnit, System: ucumSystem, Code: ucumDayCode},
					},
				},
			},
		},
	}
}

func TestCreateMedications_SkipsCompletedEntries(t *testing.T) {
	gateway := &fakeFhirGateway{}
	uc := &medicationUsecase{FhirGateway: gateway, Log: zap.NewNop()}

	request := &requests.TabletPrescribed{
		Tablets: []requests.TabletPrescriptionEntry{
			{TabletName: "Paracetamol", Dosage: "500mg", PrescribedDate: "2025-06-01", DurationDays: 5, SchedulePattern: "1-0-1"},
			{TabletName: "Amoxicillin", Dosage: "250mg", PrescribedDate: "2025-06-01", DurationDays: 7, SchedulePattern: "1-1-1", Completed: 1},
		},
	}

	created, err := uc.CreateMedications(context.Background(), "UHID001", request)

	require.NoError(t, err)
	assert.Equal(t, 1, created)
	require.NotNil(t, gateway.postedBundle)
	require.Len(t, gateway.postedBundle.Entry, 1)
}

func TestCreateMedications_AllCompletedPostsNothing(t *testing.T) {
	gateway := &fakeFhirGateway{}
	uc := &medicationUsecase{FhirGateway: gateway, Log: zap.NewNop()}

	request := &requests.TabletPrescribed{
		Tablets: []requests.TabletPrescriptionEntry{
			{TabletName: "Amoxicillin", Dosage: "250mg", PrescribedDate: "2025-06-01", DurationDays: 7, SchedulePattern: "1-1-1", Completed: 1},
		},
	}

	created, err := uc.CreateMedications(context.Background(), "UHID001", request)

	require.NoError(t, err)
	assert.Equal(t, 0, created)
	assert.Nil(t, gateway.postedBundle)
}

func TestUpdateDose_NoMatchingTablet(t *testing.T) {
	gateway := &fakeFhirGateway{
		searchResults: []json.RawMessage{
			rawMedication(t, medicationWithWindow("med-1", "Paracetamol", constvars.MedicationStatusActive, "2025-06-01T00:00:00", 5)),
		},
	}
	uc := &medicationUsecase{FhirGateway: gateway, Log: zap.NewNop()}

	request := &requests.UpdateDoseRequest{TabletName: "Ibuprofen", DoseDay: "1", DosePeriod: "morning"}
	_, err := uc.UpdateDose(context.Background(), "UHID001", request)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	assert.Empty(t, gateway.updatedIDs)
}

func TestUpdateDose_AppendsDosesNote(t *testing.T) {
	gateway := &fakeFhirGateway{
		searchResults: []json.RawMessage{
			rawMedication(t, medicationWithWindow("med-1", "Paracetamol", constvars.MedicationStatusActive, "2025-06-01T00:00:00", 5)),
		},
	}
	uc := &medicationUsecase{FhirGateway: gateway, Log: zap.NewNop()}

	request := &requests.UpdateDoseRequest{TabletName: "Paracetamol", DoseDay: "1", DosePeriod: "morning", TakenTimestamp: "2025-06-01T08:00:00"}
	updated, err := uc.UpdateDose(context.Background(), "UHID001", request)

	require.NoError(t, err)
	assert.Equal(t, 1, updated)
	assert.Equal(t, []string{"med-1"}, gateway.updatedIDs)
}

func TestDeleteActiveMedication(t *testing.T) {
	t.Run("no active medicines at all", func(t *testing.T) {
		gateway := &fakeFhirGateway{}
		uc := &medicationUsecase{FhirGateway: gateway, Log: zap.NewNop()}

		_, err := uc.DeleteActiveMedication(context.Background(), "UHID001", "Paracetamol")

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		assert.Empty(t, gateway.deletedIDs)
	})

	t.Run("name match is case insensitive", func(t *testing.T) {
		gateway := &fakeFhirGateway{
			searchResults: []json.RawMessage{
				rawMedication(t, medicationWithWindow("med-1", "Paracetamol", constvars.MedicationStatusActive, "2025-06-01T00:00:00", 5)),
				rawMedication(t, medicationWithWindow("med-2", "Amoxicillin", constvars.MedicationStatusActive, "2025-06-01T00:00:00", 7)),
			},
		}
		uc := &medicationUsecase{FhirGateway: gateway, Log: zap.NewNop()}

		deleted, err := uc.DeleteActiveMedication(context.Background(), "UHID001", "paracetamol")

		require.NoError(t, err)
		assert.Equal(t, 1, deleted)
		assert.Equal(t, []string{"med-1"}, gateway.deletedIDs)
	})

	t.Run("name not among active medicines", func(t *testing.T) {
		gateway := &fakeFhirGateway{
			searchResults: []json.RawMessage{
				rawMedication(t, medicationWithWindow("med-1", "Paracetamol", constvars.MedicationStatusActive, "2025-06-01T00:00:00", 5)),
			},
		}
		uc := &medicationUsecase{FhirGateway: gateway, Log: zap.NewNop()}

		_, err := uc.DeleteActiveMedication(context.Background(), "UHID001", "Ibuprofen")

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestAutoCompleteOverdue_LocalDayBoundary(t *testing.T) {
	// Pin the local clock to a few minutes past midnight, where the local
	// calendar date is one ahead of the UTC date. The daily sweep fires at
	// this hour in timezones east of UTC.
	utcNow := time.Now().UTC()
	secondsIntoUTCDay := utcNow.Hour()*3600 + utcNow.Minute()*60 + utcNow.Second()
	restore := time.Local
	time.Local = time.FixedZone("pastmidnight", 24*3600-secondsIntoUTCDay+300)
	defer func() { time.Local = restore }()

	localDay := func(offset int) string {
		return time.Now().AddDate(0, 0, offset).Format("2006-01-02") + "T00:00:00"
	}

	gateway := &fakeFhirGateway{
		searchResults: []json.RawMessage{
			// Window closed yesterday local time; today's run must flip it.
			rawMedication(t, medicationWithWindow("med-ended", "Paracetamol", constvars.MedicationStatusActive, localDay(-5), 5)),
			// Today is the last active day; must be left untouched.
			rawMedication(t, medicationWithWindow("med-last-day", "Amoxicillin", constvars.MedicationStatusActive, localDay(-4), 5)),
		},
	}
	uc := &medicationUsecase{FhirGateway: gateway, Log: zap.NewNop()}

	completed, err := uc.AutoCompleteOverdue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, completed)
	assert.Equal(t, []string{"med-ended"}, gateway.updatedIDs)
}

func TestAutoCompleteOverdue(t *testing.T) {
	day := func(offset int) string {
		return time.Now().AddDate(0, 0, offset).Format("2006-01-02") + "T00:00:00"
	}

	gateway := &fakeFhirGateway{
		searchResults: []json.RawMessage{
			// Window ended 5 days ago.
			rawMedication(t, medicationWithWindow("med-overdue", "Paracetamol", constvars.MedicationStatusActive, day(-10), 5)),
			// Window still open.
			rawMedication(t, medicationWithWindow("med-current", "Amoxicillin", constvars.MedicationStatusActive, day(0), 5)),
			// Already completed, must be left alone.
			rawMedication(t, medicationWithWindow("med-done", "Pantoprazole", constvars.MedicationStatusCompleted, day(-30), 2)),
		},
	}
	uc := &medicationUsecase{FhirGateway: gateway, Log: zap.NewNop()}

	completed, err := uc.AutoCompleteOverdue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, completed)
	assert.Equal(t, []string{"med-overdue"}, gateway.updatedIDs)
}
