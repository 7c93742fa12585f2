package meals

import (
	"testing"

	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/dto/requests"
	"carebridge-service/internal/pkg/fhir_dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNutritionOrderResource(t *testing.T) {
	meal := &requests.MealEntry{
		MealName:     "Vegetable Khichdi",
		Description:  "Soft diet, low salt",
		Period:       "lunch",
		AssignedDate: "2025-06-01",
		AssignedTime: "12:30:00",
	}

	order := NutritionOrderResource("UHID001", meal)

	assert.Equal(t, "active", order.Status)
	assert.Equal(t, "order", order.Intent)
	assert.Equal(t, "Patient/UHID001", order.Patient.Reference)
	assert.Equal(t, "2025-06-01T12:30:00", order.DateTime)
	require.NotNil(t, order.OralDiet)
	assert.Equal(t, "lunch", order.OralDiet.Type[0].Text)
	assert.Equal(t, "Soft diet, low salt", order.OralDiet.Instruction)
}

func TestMealTransactionBundle(t *testing.T) {
	plan := &requests.TodaysMeal{
		Meals: []requests.MealEntry{
			{MealName: "Oats", Description: "With milk", Period: "breakfast", AssignedDate: "2025-06-01", AssignedTime: "08:00:00"},
			{MealName: "Khichdi", Description: "Low salt", Period: "lunch", AssignedDate: "2025-06-01", AssignedTime: "12:30:00"},
		},
	}

	bundle := MealTransactionBundle("UHID001", plan)

	assert.Equal(t, constvars.BundleTypeTransaction, bundle.Type)
	require.Len(t, bundle.Entry, 2)
	assert.Equal(t, constvars.ResourceNutritionOrder, bundle.Entry[0].Request.URL)
}

func TestSimplifyMeal(t *testing.T) {
	order := &fhir_dto.NutritionOrder{
		ID:       "order-1",
		DateTime: "2025-06-01T12:30:00",
		OralDiet: &fhir_dto.OralDiet{
			Type:        []fhir_dto.CodeableConcept{{Text: "lunch"}},
			Instruction: "Low salt",
		},
	}

	summary := SimplifyMeal(order)

	assert.Equal(t, "order-1", summary.ID)
	assert.Equal(t, "lunch", summary.Period)
	assert.Equal(t, "Low salt", summary.Description)
}

func TestBelongsToPatient(t *testing.T) {
	order := &fhir_dto.NutritionOrder{
		Identifier: []fhir_dto.Identifier{{System: constvars.IdentifierSystemUHID, Value: "UHID001"}},
	}

	assert.True(t, BelongsToPatient(order, "UHID001"))
	assert.False(t, BelongsToPatient(order, "UHID002"))
}
