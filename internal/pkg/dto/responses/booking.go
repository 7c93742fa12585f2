package responses

type AppointmentSummary struct {
	Start        string   `json:"start"`
	Description  string   `json:"description"`
	Created      string   `json:"created,omitempty"`
	Participants []string `json:"participants"`
}
