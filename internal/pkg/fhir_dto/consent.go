package fhir_dto

type Consent struct {
	ResourceType     string            `json:"resourceType"`
	ID               string            `json:"id,omitempty"`
	Meta             *Meta             `json:"meta,omitempty"`
	Identifier       []Identifier      `json:"identifier,omitempty"`
	Status           string            `json:"status"`
	Scope            *CodeableConcept  `json:"scope,omitempty"`
	Category         []CodeableConcept `json:"category,omitempty"`
	Patient          *Reference        `json:"patient,omitempty"`
	DateTime         string            `json:"dateTime,omitempty"`
	PolicyRule       *CodeableConcept  `json:"policyRule,omitempty"`
	SourceAttachment *Attachment       `json:"sourceAttachment,omitempty"`
	Provision        *ConsentProvision `json:"provision,omitempty"`
	Extension        []Extension       `json:"extension,omitempty"`
}

type ConsentProvision struct {
	Type   string  `json:"type,omitempty"`
	Period *Period `json:"period,omitempty"`
}
