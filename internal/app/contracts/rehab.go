package contracts

import (
	"context"

	"carebridge-service/internal/pkg/dto/requests"
	"carebridge-service/internal/pkg/dto/responses"
)

type RehabUsecase interface {
	CreateExercises(ctx context.Context, uhid string, exercises []requests.ExerciseEntry) (int, error)
	FindExercisesByUHID(ctx context.Context, uhid string) ([]responses.ExerciseSummary, error)
	FindInProgressExercisesByUHID(ctx context.Context, uhid string) ([]responses.ExerciseSummary, error)
	DeleteExercises(ctx context.Context, uhid, exerciseName string) (int, error)
	CreateInstruction(ctx context.Context, uhid string, request *requests.RehabInstructions) error
	FindInstructionsByUHID(ctx context.Context, uhid string) ([]responses.InstructionSummary, error)
}
