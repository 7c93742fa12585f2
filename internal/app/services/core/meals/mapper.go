package meals

import (
	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/dto/requests"
	"carebridge-service/internal/pkg/dto/responses"
	"carebridge-service/internal/pkg/fhir_dto"
)

// NutritionOrderResource maps one meal assignment to a FHIR NutritionOrder.
// The meal period rides in oralDiet.type and the dish description in
// oralDiet.instruction.
func NutritionOrderResource(uhid string, meal *requests.MealEntry) *fhir_dto.NutritionOrder {
	return &fhir_dto.NutritionOrder{
		ResourceType: constvars.ResourceNutritionOrder,
		Identifier: []fhir_dto.Identifier{
			{System: constvars.IdentifierSystemUHID, Value: uhid},
		},
		Status:   "active",
		Intent:   "order",
		Patient:  &fhir_dto.Reference{Reference: constvars.ResourcePatient + "/" + uhid},
		DateTime: meal.AssignedDate + "T" + meal.AssignedTime,
		OralDiet: &fhir_dto.OralDiet{
			Type:        []fhir_dto.CodeableConcept{{Text: meal.Period}},
			Instruction: meal.Description,
		},
		Meta: &fhir_dto.Meta{
			Profile: []string{constvars.FhirBaseProfile + "/" + constvars.ResourceNutritionOrder},
		},
	}
}

func MealTransactionBundle(uhid string, plan *requests.TodaysMeal) *fhir_dto.TransactionBundle {
	entries := make([]fhir_dto.TransactionEntry, 0, len(plan.Meals))
	for i := range plan.Meals {
		entries = append(entries, fhir_dto.TransactionEntry{
			Resource: NutritionOrderResource(uhid, &plan.Meals[i]),
			Request:  fhir_dto.TransactionRequest{Method: constvars.MethodPost, URL: constvars.ResourceNutritionOrder},
		})
	}
	return &fhir_dto.TransactionBundle{
		ResourceType: constvars.ResourceBundle,
		Type:         constvars.BundleTypeTransaction,
		Entry:        entries,
	}
}

func SimplifyMeal(order *fhir_dto.NutritionOrder) responses.MealSummary {
	summary := responses.MealSummary{
		ID:       order.ID,
		DateTime: order.DateTime,
	}
	if order.OralDiet != nil {
		summary.Description = order.OralDiet.Instruction
		if len(order.OralDiet.Type) > 0 {
			summary.Period = order.OralDiet.Type[0].Text
		}
	}
	return summary
}

// BelongsToPatient reports whether the order carries the patient's UHID
// identifier.
func BelongsToPatient(order *fhir_dto.NutritionOrder, uhid string) bool {
	for _, identifier := range order.Identifier {
		if identifier.Value == uhid {
			return true
		}
	}
	return false
}
