package requests

type ExerciseEntry struct {
	Name               string  `json:"name" validate:"required"`
	Reps               int     `json:"reps" validate:"gt=0"`
	Sets               int     `json:"sets" validate:"gt=0"`
	Difficulty         string  `json:"difficulty" validate:"required"`
	ProgressPercentage float64 `json:"progress_percentage" validate:"min=0,max=100"`
	AssignedDate       string  `json:"assigned_date" validate:"required"`
	AssignedTime       string  `json:"assigned_time" validate:"required"`
	DurationDays       int     `json:"duration_days" validate:"gt=0"`
	Schedule           string  `json:"schedule" validate:"required"`
	Period             string  `json:"period" validate:"required,dose_period"`
	ExerciseVideo      string  `json:"exercise_video,omitempty"`
	CompletedTimestamp string  `json:"completed_timestamp,omitempty"`
}

type RehabInstructions struct {
	InstructionText string `json:"instruction_text" validate:"required"`
	Timestamp       string `json:"timestamp" validate:"required"`
}
