package utils

import "time"

// Layouts seen in FHIR dateTime fields written by this service and its
// predecessors: RFC3339 with and without zone, and bare dates.
var fhirTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseFHIRTime parses a FHIR dateTime string. The boolean reports whether
// any known layout matched.
func ParseFHIRTime(value string) (time.Time, bool) {
	for _, layout := range fhirTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// LaterFHIRTime reports whether a sorts after b. Both are parsed as FHIR
// dateTimes; values no layout matches fall back to lexicographic comparison,
// which is correct for uniformly formatted ISO-8601 strings.
func LaterFHIRTime(a, b string) bool {
	timeA, okA := ParseFHIRTime(a)
	timeB, okB := ParseFHIRTime(b)
	if okA && okB {
		return timeA.After(timeB)
	}
	return a > b
}
