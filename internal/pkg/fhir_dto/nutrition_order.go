package fhir_dto

type NutritionOrder struct {
	ResourceType string       `json:"resourceType"`
	ID           string       `json:"id,omitempty"`
	Meta         *Meta        `json:"meta,omitempty"`
	Identifier   []Identifier `json:"identifier,omitempty"`
	Status       string       `json:"status"`
	Intent       string       `json:"intent"`
	Patient      *Reference   `json:"patient,omitempty"`
	DateTime     string       `json:"dateTime,omitempty"`
	OralDiet     *OralDiet    `json:"oralDiet,omitempty"`
}

type OralDiet struct {
	Type        []CodeableConcept `json:"type,omitempty"`
	Instruction string            `json:"instruction,omitempty"`
}
