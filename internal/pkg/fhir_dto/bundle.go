package fhir_dto

import "github.com/goccy/go-json"

// Bundle is the shape read back from FHIR search responses. Entry resources
// stay raw so callers can decode into the concrete resource type they expect.
type Bundle struct {
	ResourceType string        `json:"resourceType"`
	ID           string        `json:"id,omitempty"`
	Type         string        `json:"type,omitempty"`
	Total        int           `json:"total,omitempty"`
	Link         []BundleLink  `json:"link,omitempty"`
	Entry        []BundleEntry `json:"entry,omitempty"`
}

type BundleLink struct {
	Relation string `json:"relation"`
	URL      string `json:"url"`
}

type BundleEntry struct {
	FullURL  string          `json:"fullUrl,omitempty"`
	Resource json.RawMessage `json:"resource,omitempty"`
}

// TransactionBundle is the shape written to the FHIR server root. Entries
// carry typed resources produced by the mappers.
type TransactionBundle struct {
	ResourceType string             `json:"resourceType"`
	Type         string             `json:"type"`
	Entry        []TransactionEntry `json:"entry"`
}

type TransactionEntry struct {
	Resource interface{}        `json:"resource"`
	Request  TransactionRequest `json:"request"`
}

type TransactionRequest struct {
	Method string `json:"method"`
	URL    string `json:"url"`
}
