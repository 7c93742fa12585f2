package requests

type DocumentEntry struct {
	DocumentName        string `json:"document_name" validate:"required"`
	DocumentLink        string `json:"document_link" validate:"required"`
	AssignedBy          string `json:"assigned_by" validate:"required"`
	AssignedTimestamp   string `json:"assigned_timestamp" validate:"required"`
	ValidatedBy         string `json:"validated_by,omitempty"`
	ValidationTimestamp string `json:"validation_timestamp,omitempty"`
	UpdatedBy           string `json:"updated_by" validate:"required"`
	UpdatedTimestamp    string `json:"updated_timestamp" validate:"required"`
}

type PreOpChecklist struct {
	Documents []DocumentEntry `json:"documents" validate:"required,min=1,dive"`
}
