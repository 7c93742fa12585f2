package fhir_dto

type Account struct {
	ResourceType string       `json:"resourceType"`
	ID           string       `json:"id,omitempty"`
	Meta         *Meta        `json:"meta,omitempty"`
	Identifier   []Identifier `json:"identifier,omitempty"`
	Status       string       `json:"status"`
	Name         string       `json:"name,omitempty"`
	Subject      []Reference  `json:"subject,omitempty"`
}
