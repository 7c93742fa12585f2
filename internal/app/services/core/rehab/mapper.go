package rehab

import (
	"fmt"
	"strconv"
	"strings"

	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/dto/requests"
	"carebridge-service/internal/pkg/dto/responses"
	"carebridge-service/internal/pkg/fhir_dto"
)

const taskInputTypeSystem = "http://terminology.hl7.org/CodeSystem/task-input-type"

// TaskResource maps one exercise assignment to a FHIR Task. A completed
// timestamp flips the task to completed and closes the execution period.
func TaskResource(uhid string, exercise *requests.ExerciseEntry) *fhir_dto.Task {
	status := constvars.TaskStatusInProgress
	if exercise.CompletedTimestamp != "" {
		status = constvars.TaskStatusCompleted
	}

	task := &fhir_dto.Task{
		ResourceType: constvars.ResourceTask,
		Identifier: []fhir_dto.Identifier{
			{System: constvars.IdentifierSystemUHID, Value: uhid},
		},
		Status:      status,
		Intent:      "order",
		Description: fmt.Sprintf("%s - %d reps x %d sets (%s)", exercise.Name, exercise.Reps, exercise.Sets, exercise.Difficulty),
		For:         &fhir_dto.Reference{Reference: constvars.ResourcePatient + "/" + uhid},
		ExecutionPeriod: &fhir_dto.Period{
			Start: exercise.AssignedDate + "T" + exercise.AssignedTime,
			End:   exercise.CompletedTimestamp,
		},
		Note: []fhir_dto.Annotation{
			{Text: fmt.Sprintf("Progress: %v%%", exercise.ProgressPercentage)},
			{Text: fmt.Sprintf("Duration Days: %d", exercise.DurationDays)},
		},
	}

	if exercise.ExerciseVideo != "" {
		task.Input = []fhir_dto.TaskInput{
			{
				Type: fhir_dto.CodeableConcept{
					Coding: []fhir_dto.Coding{
						{System: taskInputTypeSystem, Code: "attachment", Display: "Exercise Video"},
					},
					Text: "Exercise Video URL",
				},
				ValueUrl: exercise.ExerciseVideo,
			},
		}
	}
	return task
}

func ExerciseTransactionBundle(uhid string, exercises []requests.ExerciseEntry) *fhir_dto.TransactionBundle {
	entries := make([]fhir_dto.TransactionEntry, 0, len(exercises))
	for i := range exercises {
		entries = append(entries, fhir_dto.TransactionEntry{
			Resource: TaskResource(uhid, &exercises[i]),
			Request:  fhir_dto.TransactionRequest{Method: constvars.MethodPost, URL: constvars.ResourceTask},
		})
	}
	return &fhir_dto.TransactionBundle{
		ResourceType: constvars.ResourceBundle,
		Type:         constvars.BundleTypeTransaction,
		Entry:        entries,
	}
}

// InstructionObservation maps a free-text rehab instruction to an Observation
// distinguished by its code text.
func InstructionObservation(uhid string, instruction *requests.RehabInstructions) *fhir_dto.Observation {
	return &fhir_dto.Observation{
		ResourceType: constvars.ResourceObservation,
		Identifier: []fhir_dto.Identifier{
			{System: constvars.IdentifierSystemUHID, Value: uhid},
		},
		Status:            "final",
		Code:              &fhir_dto.CodeableConcept{Text: constvars.RehabInstructionCode},
		Subject:           &fhir_dto.Reference{Reference: constvars.ResourcePatient + "/" + uhid},
		ValueString:       instruction.InstructionText,
		EffectiveDateTime: instruction.Timestamp,
	}
}

// SimplifyExercise flattens a Task back into the client shape. Progress and
// duration ride in notes; the video URL rides in the input slot.
func SimplifyExercise(task *fhir_dto.Task) responses.ExerciseSummary {
	summary := responses.ExerciseSummary{
		ID:              task.ID,
		Name:            task.Description,
		Status:          task.Status,
		ExecutionPeriod: task.ExecutionPeriod,
		ProgressNotes:   make([]string, 0, len(task.Note)),
	}
	if task.ExecutionPeriod != nil {
		summary.CompletedTimestamp = task.ExecutionPeriod.End
	}

	for _, input := range task.Input {
		if input.ValueUrl != "" {
			summary.ExerciseVideo = input.ValueUrl
		}
	}

	for _, note := range task.Note {
		if note.Text == "" {
			continue
		}
		summary.ProgressNotes = append(summary.ProgressNotes, note.Text)

		if rest, ok := strings.CutPrefix(note.Text, "Progress:"); ok {
			value := strings.TrimSpace(strings.ReplaceAll(rest, "%", ""))
			if progress, err := strconv.ParseFloat(value, 64); err == nil {
				summary.ProgressPercentage = &progress
			}
		} else if rest, ok := strings.CutPrefix(note.Text, "Duration Days:"); ok {
			if days, err := strconv.Atoi(strings.TrimSpace(rest)); err == nil {
				summary.DurationDays = &days
			}
		}
	}
	return summary
}

func SimplifyInstruction(observation *fhir_dto.Observation) responses.InstructionSummary {
	return responses.InstructionSummary{
		ID:              observation.ID,
		InstructionText: observation.ValueString,
		Timestamp:       observation.EffectiveDateTime,
	}
}

// IsInstruction reports whether the observation is a rehab instruction
// belonging to the given patient.
func IsInstruction(observation *fhir_dto.Observation, uhid string) bool {
	if observation.Code == nil || observation.Code.Text != constvars.RehabInstructionCode {
		return false
	}
	for _, identifier := range observation.Identifier {
		if identifier.Value == uhid {
			return true
		}
	}
	return false
}
