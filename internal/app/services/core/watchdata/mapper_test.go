package watchdata

import (
	"testing"

	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/dto/requests"
	"carebridge-service/internal/pkg/fhir_dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObservationResources(t *testing.T) {
	heartRate := 72
	stepCount := 8500
	sleepTime := 7.5

	data := &requests.WatchData{
		Daily: []requests.WatchDataEntry{
			{Timestamp: "2025-06-01T07:00:00", HeartRate: &heartRate, StepCount: &stepCount, SleepTime: &sleepTime},
		},
		Weekly: []requests.WatchDataEntry{
			{Timestamp: "2025-06-01T00:00:00", HeartRate: &heartRate},
		},
	}

	observations := ObservationResources("UHID001", data)

	// Three metrics from the daily entry plus one from the weekly entry.
	require.Len(t, observations, 4)

	// Weekly bucket comes before daily in the fan-out order.
	assert.Equal(t, "weekly", observations[0].Category[0].Text)
	assert.Equal(t, "Heart Rate", observations[0].Code.Text)

	daily := observations[1]
	assert.Equal(t, "daily", daily.Category[0].Text)
	assert.Equal(t, float64(72), daily.ValueQuantity.Value)
	assert.Equal(t, "beats/minute", daily.ValueQuantity.Unit)
	assert.Equal(t, "Patient/UHID001", daily.Subject.Reference)

	assert.Equal(t, "Step Count", observations[2].Code.Text)
	assert.Equal(t, "Sleep Duration", observations[3].Code.Text)
	assert.Equal(t, 7.5, observations[3].ValueQuantity.Value)
}

func TestObservationResources_NilMetricsEmitNothing(t *testing.T) {
	data := &requests.WatchData{
		Daily: []requests.WatchDataEntry{
			{Timestamp: "2025-06-01T07:00:00"},
		},
	}

	observations := ObservationResources("UHID001", data)
	assert.Empty(t, observations)
}

func TestObservationTransactionBundle(t *testing.T) {
	heartRate := 80
	data := &requests.WatchData{
		Daily: []requests.WatchDataEntry{
			{Timestamp: "2025-06-01T07:00:00", HeartRate: &heartRate},
		},
	}

	bundle := ObservationTransactionBundle("UHID001", data)

	assert.Equal(t, constvars.BundleTypeTransaction, bundle.Type)
	require.Len(t, bundle.Entry, 1)
	assert.Equal(t, constvars.MethodPost, bundle.Entry[0].Request.Method)
	assert.Equal(t, constvars.ResourceObservation, bundle.Entry[0].Request.URL)
}

func TestSimplifyObservation(t *testing.T) {
	observation := &fhir_dto.Observation{
		Code:              &fhir_dto.CodeableConcept{Text: "Heart Rate"},
		EffectiveDateTime: "2025-06-01T07:00:00",
		ValueQuantity:     &fhir_dto.Quantity{Value: 72, Unit: "beats/minute"},
		Category:          []fhir_dto.CodeableConcept{{Text: "daily"}},
	}

	summary := SimplifyObservation(observation)

	assert.Equal(t, "Heart Rate", summary.Code)
	require.NotNil(t, summary.Value)
	assert.Equal(t, float64(72), *summary.Value)
	assert.Equal(t, []string{"daily"}, summary.Category)
}
