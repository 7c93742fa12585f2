package fhir_dto

type Appointment struct {
	ResourceType string                   `json:"resourceType"`
	ID           string                   `json:"id,omitempty"`
	Meta         *Meta                    `json:"meta,omitempty"`
	Identifier   []Identifier             `json:"identifier,omitempty"`
	Status       string                   `json:"status"`
	Description  string                   `json:"description,omitempty"`
	Start        string                   `json:"start,omitempty"`
	Created      string                   `json:"created,omitempty"`
	Participant  []AppointmentParticipant `json:"participant,omitempty"`
}

type AppointmentParticipant struct {
	Actor  *Reference `json:"actor,omitempty"`
	Status string     `json:"status"`
}
