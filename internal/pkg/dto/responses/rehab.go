package responses

import "carebridge-service/internal/pkg/fhir_dto"

type ExerciseSummary struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	Status             string           `json:"status"`
	ExecutionPeriod    *fhir_dto.Period `json:"execution_period,omitempty"`
	ProgressPercentage *float64         `json:"progress_percentage"`
	ExerciseVideo      string           `json:"exercise_video,omitempty"`
	DurationDays       *int             `json:"duration_days"`
	CompletedTimestamp string           `json:"completed_timestamp,omitempty"`
	ProgressNotes      []string         `json:"progress_notes"`
}

type InstructionSummary struct {
	ID              string `json:"id"`
	InstructionText string `json:"instruction_text"`
	Timestamp       string `json:"timestamp"`
}
