package rehab

import (
	"testing"

	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/dto/requests"
	"carebridge-service/internal/pkg/fhir_dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskResource(t *testing.T) {
	exercise := &requests.ExerciseEntry{
		Name:               "Knee Flexion",
		Reps:               10,
		Sets:               3,
		Difficulty:         "medium",
		ProgressPercentage: 40,
		AssignedDate:       "2025-06-01",
		AssignedTime:       "08:00:00",
		DurationDays:       14,
		ExerciseVideo:      "https://videos.hospital.com/knee-flexion.mp4",
	}

	task := TaskResource("UHID001", exercise)

	assert.Equal(t, constvars.TaskStatusInProgress, task.Status)
	assert.Equal(t, "Knee Flexion - 10 reps x 3 sets (medium)", task.Description)
	assert.Equal(t, "2025-06-01T08:00:00", task.ExecutionPeriod.Start)
	assert.Empty(t, task.ExecutionPeriod.End)

	require.Len(t, task.Note, 2)
	assert.Equal(t, "Progress: 40%", task.Note[0].Text)
	assert.Equal(t, "Duration Days: 14", task.Note[1].Text)

	require.Len(t, task.Input, 1)
	assert.Equal(t, "https://videos.hospital.com/knee-flexion.mp4", task.Input[0].ValueUrl)
	assert.Equal(t, "Exercise Video URL", task.Input[0].Type.Text)
}

func TestTaskResource_CompletedTimestampFlipsStatus(t *testing.T) {
	exercise := &requests.ExerciseEntry{
		Name:               "Ankle Pumps",
		Reps:               20,
		Sets:               2,
		Difficulty:         "easy",
		AssignedDate:       "2025-06-01",
		AssignedTime:       "08:00:00",
		CompletedTimestamp: "2025-06-05T17:00:00",
	}

	task := TaskResource("UHID001", exercise)

	assert.Equal(t, constvars.TaskStatusCompleted, task.Status)
	assert.Equal(t, "2025-06-05T17:00:00", task.ExecutionPeriod.End)
	assert.Empty(t, task.Input)
}

func TestSimplifyExercise(t *testing.T) {
	task := &fhir_dto.Task{
		ID:          "task-1",
		Status:      constvars.TaskStatusInProgress,
		Description: "Knee Flexion - 10 reps x 3 sets (medium)",
		ExecutionPeriod: &fhir_dto.Period{
			Start: "2025-06-01T08:00:00",
			End:   "2025-06-05T17:00:00",
		},
		Note: []fhir_dto.Annotation{
			{Text: "Progress: 62.5%"},
			{Text: "Duration Days: 14"},
			{Text: "patient reported mild swelling"},
			{Text: ""},
		},
		Input: []fhir_dto.TaskInput{
			{ValueUrl: "https://videos.hospital.com/knee-flexion.mp4"},
		},
	}

	summary := SimplifyExercise(task)

	require.NotNil(t, summary.ProgressPercentage)
	assert.Equal(t, 62.5, *summary.ProgressPercentage)
	require.NotNil(t, summary.DurationDays)
	assert.Equal(t, 14, *summary.DurationDays)
	assert.Equal(t, "https://videos.hospital.com/knee-flexion.mp4", summary.ExerciseVideo)
	assert.Equal(t, "2025-06-05T17:00:00", summary.CompletedTimestamp)
	// Empty notes are dropped, everything else is kept verbatim.
	assert.Equal(t, []string{"Progress: 62.5%", "Duration Days: 14", "patient reported mild swelling"}, summary.ProgressNotes)
}

func TestSimplifyExercise_MalformedNotes(t *testing.T) {
	task := &fhir_dto.Task{
		ID:     "task-2",
		Status: constvars.TaskStatusInProgress,
		Note: []fhir_dto.Annotation{
			{Text: "Progress: unknown"},
			{Text: "Duration Days: soon"},
		},
	}

	summary := SimplifyExercise(task)

	assert.Nil(t, summary.ProgressPercentage)
	assert.Nil(t, summary.DurationDays)
	assert.Len(t, summary.ProgressNotes, 2)
}

func TestIsInstruction(t *testing.T) {
	instruction := InstructionObservation("UHID001", &requests.RehabInstructions{
		InstructionText: "Ice the knee for 15 minutes after each session",
		Timestamp:       "2025-06-01T10:00:00",
	})

	assert.True(t, IsInstruction(instruction, "UHID001"))
	assert.False(t, IsInstruction(instruction, "UHID999"))

	other := &fhir_dto.Observation{
		Code:       &fhir_dto.CodeableConcept{Text: "Heart Rate"},
		Identifier: []fhir_dto.Identifier{{Value: "UHID001"}},
	}
	assert.False(t, IsInstruction(other, "UHID001"))
}
