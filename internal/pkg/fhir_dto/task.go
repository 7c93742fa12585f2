package fhir_dto

type Task struct {
	ResourceType    string       `json:"resourceType"`
	ID              string       `json:"id,omitempty"`
	Meta            *Meta        `json:"meta,omitempty"`
	Identifier      []Identifier `json:"identifier,omitempty"`
	Status          string       `json:"status"`
	Intent          string       `json:"intent"`
	Description     string       `json:"description,omitempty"`
	For             *Reference   `json:"for,omitempty"`
	ExecutionPeriod *Period      `json:"executionPeriod,omitempty"`
	Note            []Annotation `json:"note,omitempty"`
	Input           []TaskInput  `json:"input,omitempty"`
}

type TaskInput struct {
	Type     CodeableConcept `json:"type"`
	ValueUrl string          `json:"valueUrl,omitempty"`
}
