package responses

type ChecklistDocument struct {
	DocumentName        string `json:"document_name"`
	DocumentLink        string `json:"document_link,omitempty"`
	AssignedBy          string `json:"assigned_by,omitempty"`
	AssignedTimestamp   string `json:"assigned_timestamp,omitempty"`
	ValidatedBy         string `json:"validated_by,omitempty"`
	ValidationTimestamp string `json:"validation_timestamp,omitempty"`
	UpdatedBy           string `json:"updated_by,omitempty"`
	UpdatedTimestamp    string `json:"updated_timestamp,omitempty"`
}

type DeletedDocument struct {
	DocumentName string `json:"document_name"`
	DocumentID   string `json:"document_id"`
}
