package medications

import (
	"testing"
	"time"

	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/dto/requests"
	"carebridge-service/internal/pkg/dto/responses"
	"carebridge-service/internal/pkg/fhir_dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDosesTakenRoundTrip(t *testing.T) {
	timestamp := "2025-06-01T08:30:00"
	doses := []responses.DoseTaken{
		{Day: "1", Period: "morning", TakenTimestamp: &timestamp},
		{Day: "1", Period: "night"},
	}

	encoded, err := EncodeDosesTaken(doses)
	require.NoError(t, err)

	decoded, ok := DecodeDosesTaken(encoded)
	require.True(t, ok)
	require.Len(t, decoded, 2)
	require.NotNil(t, decoded[0].TakenTimestamp)
	assert.Equal(t, timestamp, *decoded[0].TakenTimestamp)
	assert.Nil(t, decoded[1].TakenTimestamp)
}

func TestDecodeDosesTaken_FreeTextNote(t *testing.T) {
	_, ok := DecodeDosesTaken("take with plenty of water")
	assert.False(t, ok)
}

func TestMedicationRequestResource(t *testing.T) {
	tablet := &requests.TabletPrescriptionEntry{
		TabletName:      "Paracetamol",
		Dosage:          "500mg",
		BeforeFood:      false,
		PrescribedDate:  "2025-06-01",
		DurationDays:    5,
		SchedulePattern: "1-0-1",
	}

	resource, err := MedicationRequestResource("UHID001", tablet)
	require.NoError(t, err)

	assert.Equal(t, constvars.MedicationStatusActive, resource.Status)
	assert.Equal(t, "2025-06-01T00:00:00", resource.AuthoredOn)
	assert.Equal(t, "Patient/UHID001", resource.Subject.Reference)
	assert.Equal(t, "Paracetamol", resource.MedicationCodeableConcept.Text)

	require.Len(t, resource.DosageInstruction, 1)
	assert.Equal(t, "500mg, Schedule: 1-0-1, after food", resource.DosageInstruction[0].Text)

	days, ok := DurationDays(resource)
	require.True(t, ok)
	assert.Equal(t, float64(5), days)
}

func TestMedicationRequestResource_CompletedBeforeFood(t *testing.T) {
	tablet := &requests.TabletPrescriptionEntry{
		TabletName:      "Pantoprazole",
		Dosage:          "40mg",
		BeforeFood:      true,
		PrescribedDate:  "2025-06-01",
		DurationDays:    10,
		SchedulePattern: "1-0-0",
		Completed:       1,
	}

	resource, err := MedicationRequestResource("UHID001", tablet)
	require.NoError(t, err)

	assert.Equal(t, constvars.MedicationStatusCompleted, resource.Status)
	assert.Equal(t, "40mg, Schedule: 1-0-0, before food", resource.DosageInstruction[0].Text)
}

func TestDurationDays_NoBounds(t *testing.T) {
	medication := &fhir_dto.MedicationRequest{
		DosageInstruction: []fhir_dto.DosageInstruction{{Text: "as needed"}},
	}
	_, ok := DurationDays(medication)
	assert.False(t, ok)
}

func TestUpsertDose(t *testing.T) {
	now := time.Date(2025, 6, 3, 9, 15, 0, 0, time.UTC)
	old := "2025-06-01T08:00:00"

	t.Run("updates matching entry", func(t *testing.T) {
		doses := []responses.DoseTaken{{Day: "1", Period: "morning", TakenTimestamp: &old}}
		update := &requests.UpdateDoseRequest{DoseDay: "1", DosePeriod: "morning", TakenTimestamp: "2025-06-01T08:45:00"}

		result := UpsertDose(doses, update, now)

		require.Len(t, result, 1)
		assert.Equal(t, "2025-06-01T08:45:00", *result[0].TakenTimestamp)
	})

	t.Run("appends new day", func(t *testing.T) {
		doses := []responses.DoseTaken{{Day: "1", Period: "morning", TakenTimestamp: &old}}
		update := &requests.UpdateDoseRequest{DoseDay: "2", DosePeriod: "morning", TakenTimestamp: "2025-06-02T08:10:00"}

		result := UpsertDose(doses, update, now)

		require.Len(t, result, 2)
		assert.Equal(t, "2", result[1].Day)
	})

	t.Run("missing timestamp defaults to now", func(t *testing.T) {
		update := &requests.UpdateDoseRequest{DoseDay: "3", DosePeriod: "night"}

		result := UpsertDose(nil, update, now)

		require.Len(t, result, 1)
		assert.Equal(t, "2025-06-03T09:15:00", *result[0].TakenTimestamp)
	})
}

func TestSimplifyActiveMedication_RawNoteFallback(t *testing.T) {
	medication := &fhir_dto.MedicationRequest{
		ID:                        "med-1",
		Status:                    constvars.MedicationStatusActive,
		MedicationCodeableConcept: &fhir_dto.CodeableConcept{Text: "Amoxicillin"},
		Note:                      []fhir_dto.Annotation{{Text: "legacy free-text note"}},
	}

	simplified := SimplifyActiveMedication(medication)

	assert.Equal(t, "Amoxicillin", simplified.TabletName)
	assert.Equal(t, []string{"legacy free-text note"}, simplified.DosesTaken)
}
