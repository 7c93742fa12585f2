package utils

// OrNA substitutes the "N/A" display text for absent optional strings, so
// downstream FHIR consumers never see empty display fields.
func OrNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}
