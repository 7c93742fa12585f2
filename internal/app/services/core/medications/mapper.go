package medications

import (
	"fmt"
	"time"

	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/dto/requests"
	"carebridge-service/internal/pkg/dto/responses"
	"carebridge-service/internal/pkg/fhir_dto"

	"github.com/goccy/go-json"
)

const (
	ucumSystem   = "http://unitsofmeasure.org"
	ucumDayCode  = "d"
	ucumDayUnit  = "days"
	intentOrder  = "order"
	authoredTime = "T00:00:00"
)

// EncodeDosesTaken serializes dose entries into the note wire format: a JSON
// array of {day, period, taken_timestamp} with null for untaken doses.
func EncodeDosesTaken(doses []responses.DoseTaken) (string, error) {
	if doses == nil {
		doses = []responses.DoseTaken{}
	}
	encoded, err := json.Marshal(doses)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// DecodeDosesTaken parses a note text back into dose entries. The boolean is
// false when the note does not hold the doses JSON array.
func DecodeDosesTaken(noteText string) ([]responses.DoseTaken, bool) {
	var doses []responses.DoseTaken
	if err := json.Unmarshal([]byte(noteText), &doses); err != nil {
		return nil, false
	}
	return doses, true
}

func doseEntriesToTaken(entries []requests.DoseEntry) []responses.DoseTaken {
	doses := make([]responses.DoseTaken, 0, len(entries))
	for _, entry := range entries {
		dose := responses.DoseTaken{Day: entry.Day, Period: entry.Period}
		if entry.TakenTimestamp != "" {
			timestamp := entry.TakenTimestamp
			dose.TakenTimestamp = &timestamp
		}
		doses = append(doses, dose)
	}
	return doses
}

func MedicationRequestResource(uhid string, tablet *requests.TabletPrescriptionEntry) (*fhir_dto.MedicationRequest, error) {
	status := constvars.MedicationStatusActive
	if tablet.Completed != 0 {
		status = constvars.MedicationStatusCompleted
	}

	food := "after food"
	if tablet.BeforeFood {
		food = "before food"
	}

	dosesNote, err := EncodeDosesTaken(doseEntriesToTaken(tablet.DosesTaken))
	if err != nil {
		return nil, err
	}

	return &fhir_dto.MedicationRequest{
		ResourceType: constvars.ResourceMedicationRequest,
		Identifier: []fhir_dto.Identifier{
			{System: constvars.IdentifierSystemUHID, Value: uhid},
		},
		Status:                    status,
		Intent:                    intentOrder,
		Subject:                   &fhir_dto.Reference{Reference: constvars.ResourcePatient + "/" + uhid},
		AuthoredOn:                tablet.PrescribedDate + authoredTime,
		MedicationCodeableConcept: &fhir_dto.CodeableConcept{Text: tablet.TabletName},
		DosageInstruction: []fhir_dto.DosageInstruction{
			{
				Text: fmt.Sprintf("%s, Schedule: %s, %s", tablet.Dosage, tablet.SchedulePattern, food),
				Timing: &fhir_dto.Timing{
					Repeat: &fhir_dto.TimingRepeat{
						BoundsDuration: &fhir_dto.Quantity{
							Value:  float64(tablet.DurationDays),
							Unit:   ucumDayUnit,
							System: ucumSystem,
							Code:   ucumDayCode,
						},
					},
				},
			},
		},
		Note: []fhir_dto.Annotation{{Text: dosesNote}},
		Meta: &fhir_dto.Meta{
			Profile: []string{constvars.FhirBaseProfile + "/" + constvars.ResourceMedicationRequest},
		},
	}, nil
}

func MedicationTransactionBundle(uhid string, prescription *requests.TabletPrescribed) (*fhir_dto.TransactionBundle, error) {
	entries := make([]fhir_dto.TransactionEntry, 0, len(prescription.Tablets))
	for i := range prescription.Tablets {
		resource, err := MedicationRequestResource(uhid, &prescription.Tablets[i])
		if err != nil {
			return nil, err
		}
		entries = append(entries, fhir_dto.TransactionEntry{
			Resource: resource,
			Request:  fhir_dto.TransactionRequest{Method: constvars.MethodPost, URL: constvars.ResourceMedicationRequest},
		})
	}
	return &fhir_dto.TransactionBundle{
		ResourceType: constvars.ResourceBundle,
		Type:         constvars.BundleTypeTransaction,
		Entry:        entries,
	}, nil
}

// DurationDays reads the dosing window from the first dosage instruction's
// boundsDuration. The boolean is false when no bound is present.
func DurationDays(medication *fhir_dto.MedicationRequest) (float64, bool) {
	if len(medication.DosageInstruction) == 0 {
		return 0, false
	}
	timing := medication.DosageInstruction[0].Timing
	if timing == nil || timing.Repeat == nil || timing.Repeat.BoundsDuration == nil {
		return 0, false
	}
	return timing.Repeat.BoundsDuration.Value, true
}

// dosesFromNotes finds the first note holding the doses JSON array.
func dosesFromNotes(notes []fhir_dto.Annotation) ([]responses.DoseTaken, bool) {
	for _, note := range notes {
		if doses, ok := DecodeDosesTaken(note.Text); ok {
			return doses, true
		}
	}
	return nil, false
}

// SimplifyActiveMedication flattens a MedicationRequest for the app. A note
// that cannot be decoded degrades to a single-element list with the raw text.
func SimplifyActiveMedication(medication *fhir_dto.MedicationRequest) responses.ActiveMedication {
	name := "Unknown"
	if medication.MedicationCodeableConcept != nil && medication.MedicationCodeableConcept.Text != "" {
		name = medication.MedicationCodeableConcept.Text
	}

	dosage := ""
	if len(medication.DosageInstruction) > 0 {
		dosage = medication.DosageInstruction[0].Text
	}

	var durationDays *float64
	if value, ok := DurationDays(medication); ok {
		durationDays = &value
	}

	var dosesTaken interface{}
	if len(medication.Note) > 0 {
		if doses, ok := DecodeDosesTaken(medication.Note[0].Text); ok {
			dosesTaken = doses
		} else {
			dosesTaken = []string{medication.Note[0].Text}
		}
	} else {
		dosesTaken = []responses.DoseTaken{}
	}

	return responses.ActiveMedication{
		ID:           medication.ID,
		TabletName:   name,
		Status:       medication.Status,
		Dosage:       dosage,
		AuthoredOn:   medication.AuthoredOn,
		DurationDays: durationDays,
		DosesTaken:   dosesTaken,
	}
}

// UpsertDose updates the matching day+period entry or appends a new one.
// An absent taken timestamp records "now".
func UpsertDose(doses []responses.DoseTaken, update *requests.UpdateDoseRequest, now time.Time) []responses.DoseTaken {
	timestamp := update.TakenTimestamp
	if timestamp == "" {
		timestamp = now.Format("2006-01-02T15:04:05")
	}

	for i := range doses {
		if doses[i].Day == update.DoseDay && doses[i].Period == update.DosePeriod {
			doses[i].TakenTimestamp = &timestamp
			return doses
		}
	}
	return append(doses, responses.DoseTaken{
		Day:            update.DoseDay,
		Period:         update.DosePeriod,
		TakenTimestamp: &timestamp,
	})
}
