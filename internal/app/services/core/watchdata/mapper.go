package watchdata

import (
	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/dto/requests"
	"carebridge-service/internal/pkg/dto/responses"
	"carebridge-service/internal/pkg/fhir_dto"
)

const observationCategorySystem = "http://terminology.hl7.org/CodeSystem/observation-category"

const (
	codeHeartRate     = "Heart Rate"
	codeStepCount     = "Step Count"
	codeSleepDuration = "Sleep Duration"

	unitBeatsPerMinute = "beats/minute"
	unitSteps          = "steps"
	unitHours          = "hours"
)

func observationResource(uhid, bucket, code string, value float64, unit, timestamp string) *fhir_dto.Observation {
	return &fhir_dto.Observation{
		ResourceType: constvars.ResourceObservation,
		Identifier: []fhir_dto.Identifier{
			{System: constvars.IdentifierSystemUHID, Value: uhid},
		},
		Status: "final",
		Category: []fhir_dto.CodeableConcept{
			{
				Coding: []fhir_dto.Coding{{System: observationCategorySystem, Code: bucket}},
				Text:   bucket,
			},
		},
		Code:              &fhir_dto.CodeableConcept{Text: code},
		Subject:           &fhir_dto.Reference{Reference: constvars.ResourcePatient + "/" + uhid},
		EffectiveDateTime: timestamp,
		ValueQuantity:     &fhir_dto.Quantity{Value: value, Unit: unit},
		Meta: &fhir_dto.Meta{
			Profile: []string{constvars.FhirBaseProfile + "/" + constvars.ResourceObservation},
		},
	}
}

// ObservationResources fans one watch payload out into one Observation per
// non-nil metric per entry. Nil metrics emit nothing.
func ObservationResources(uhid string, data *requests.WatchData) []*fhir_dto.Observation {
	buckets := []struct {
		name    string
		entries []requests.WatchDataEntry
	}{
		{"yearly", data.Yearly},
		{"monthly", data.Monthly},
		{"weekly", data.Weekly},
		{"daily", data.Daily},
	}

	observations := make([]*fhir_dto.Observation, 0)
	for _, bucket := range buckets {
		for _, entry := range bucket.entries {
			if entry.HeartRate != nil {
				observations = append(observations,
					observationResource(uhid, bucket.name, codeHeartRate, float64(*entry.HeartRate), unitBeatsPerMinute, entry.Timestamp))
			}
			if entry.StepCount != nil {
				observations = append(observations,
					observationResource(uhid, bucket.name, codeStepCount, float64(*entry.StepCount), unitSteps, entry.Timestamp))
			}
			if entry.SleepTime != nil {
				observations = append(observations,
					observationResource(uhid, bucket.name, codeSleepDuration, *entry.SleepTime, unitHours, entry.Timestamp))
			}
		}
	}
	return observations
}

func ObservationTransactionBundle(uhid string, data *requests.WatchData) *fhir_dto.TransactionBundle {
	observations := ObservationResources(uhid, data)
	entries := make([]fhir_dto.TransactionEntry, 0, len(observations))
	for _, observation := range observations {
		entries = append(entries, fhir_dto.TransactionEntry{
			Resource: observation,
			Request:  fhir_dto.TransactionRequest{Method: constvars.MethodPost, URL: constvars.ResourceObservation},
		})
	}
	return &fhir_dto.TransactionBundle{
		ResourceType: constvars.ResourceBundle,
		Type:         constvars.BundleTypeTransaction,
		Entry:        entries,
	}
}

func SimplifyObservation(observation *fhir_dto.Observation) responses.ObservationSummary {
	summary := responses.ObservationSummary{
		Timestamp: observation.EffectiveDateTime,
	}
	if observation.Code != nil {
		summary.Code = observation.Code.Text
	}
	if observation.ValueQuantity != nil {
		value := observation.ValueQuantity.Value
		summary.Value = &value
		summary.Unit = observation.ValueQuantity.Unit
	}
	for _, category := range observation.Category {
		summary.Category = append(summary.Category, category.Text)
	}
	return summary
}
