package fhir_dto

type DocumentReference struct {
	ResourceType  string                     `json:"resourceType"`
	ID            string                     `json:"id,omitempty"`
	Meta          *Meta                      `json:"meta,omitempty"`
	Identifier    []Identifier               `json:"identifier,omitempty"`
	Status        string                     `json:"status"`
	Type          *CodeableConcept           `json:"type,omitempty"`
	Subject       *Reference                 `json:"subject,omitempty"`
	Author        []Reference                `json:"author,omitempty"`
	Authenticator *Reference                 `json:"authenticator,omitempty"`
	Custodian     *Reference                 `json:"custodian,omitempty"`
	Date          string                     `json:"date,omitempty"`
	Description   string                     `json:"description,omitempty"`
	Content       []DocumentReferenceContent `json:"content,omitempty"`
	Context       *DocumentReferenceContext  `json:"context,omitempty"`
	Extension     []Extension                `json:"extension,omitempty"`
}

type DocumentReferenceContent struct {
	Attachment Attachment `json:"attachment"`
}

type DocumentReferenceContext struct {
	Period *Period `json:"period,omitempty"`
}
