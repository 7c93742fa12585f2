package responses

type DoseTaken struct {
	Day            string  `json:"day"`
	Period         string  `json:"period"`
	TakenTimestamp *string `json:"taken_timestamp"`
}

// ActiveMedication flattens a MedicationRequest for app consumption.
// DosesTaken is the decoded note JSON; when the stored note cannot be decoded
// it degrades to a single-element list holding the raw note text.
type ActiveMedication struct {
	ID           string      `json:"id"`
	TabletName   string      `json:"tablet_name"`
	Status       string      `json:"status"`
	Dosage       string      `json:"dosage"`
	AuthoredOn   string      `json:"authoredOn"`
	DurationDays *float64    `json:"duration_days"`
	DosesTaken   interface{} `json:"doses_taken"`
}
