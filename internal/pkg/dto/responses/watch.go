package responses

type ObservationSummary struct {
	Code      string   `json:"code"`
	Value     *float64 `json:"value,omitempty"`
	Unit      string   `json:"unit,omitempty"`
	Category  []string `json:"category,omitempty"`
	Timestamp string   `json:"timestamp,omitempty"`
}
