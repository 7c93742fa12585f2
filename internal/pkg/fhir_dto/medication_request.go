package fhir_dto

type MedicationRequest struct {
	ResourceType              string              `json:"resourceType"`
	ID                        string              `json:"id,omitempty"`
	Meta                      *Meta               `json:"meta,omitempty"`
	Identifier                []Identifier        `json:"identifier,omitempty"`
	Status                    string              `json:"status"`
	Intent                    string              `json:"intent"`
	Subject                   *Reference          `json:"subject,omitempty"`
	AuthoredOn                string              `json:"authoredOn,omitempty"`
	MedicationCodeableConcept *CodeableConcept    `json:"medicationCodeableConcept,omitempty"`
	DosageInstruction         []DosageInstruction `json:"dosageInstruction,omitempty"`
	Note                      []Annotation        `json:"note,omitempty"`
}

type DosageInstruction struct {
	Text   string  `json:"text,omitempty"`
	Timing *Timing `json:"timing,omitempty"`
}

type Timing struct {
	Repeat *TimingRepeat `json:"repeat,omitempty"`
}

type TimingRepeat struct {
	BoundsDuration *Quantity `json:"boundsDuration,omitempty"`
}
