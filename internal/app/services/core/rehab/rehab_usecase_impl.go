package rehab

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"carebridge-service/internal/app/contracts"
	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/dto/requests"
	"carebridge-service/internal/pkg/dto/responses"
	"carebridge-service/internal/pkg/exceptions"
	"carebridge-service/internal/pkg/fhir_dto"
	"carebridge-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	rehabUsecaseInstance contracts.RehabUsecase
	onceRehabUsecase     sync.Once
)

type rehabUsecase struct {
	FhirGateway contracts.FhirGateway
	Log         *zap.Logger
}

func NewRehabUsecase(fhirGateway contracts.FhirGateway, logger *zap.Logger) contracts.RehabUsecase {
	onceRehabUsecase.Do(func() {
		rehabUsecaseInstance = &rehabUsecase{
			FhirGateway: fhirGateway,
			Log:         logger,
		}
	})
	return rehabUsecaseInstance
}

func (uc *rehabUsecase) CreateExercises(ctx context.Context, uhid string, exercises []requests.ExerciseEntry) (int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("rehabUsecase.CreateExercises called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUHIDKey, uhid),
		zap.Int("exercises", len(exercises)),
	)

	for i := range exercises {
		if err := utils.ValidateStruct(&exercises[i]); err != nil {
			return 0, exceptions.ErrInputValidation(err)
		}
	}
	if len(exercises) == 0 {
		return 0, nil
	}

	bundle := ExerciseTransactionBundle(uhid, exercises)
	if _, err := uc.FhirGateway.PostTransaction(ctx, bundle); err != nil {
		return 0, err
	}
	return len(bundle.Entry), nil
}

func (uc *rehabUsecase) FindExercisesByUHID(ctx context.Context, uhid string) ([]responses.ExerciseSummary, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("rehabUsecase.FindExercisesByUHID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUHIDKey, uhid),
	)

	tasks, err := uc.searchTasks(ctx, uhid)
	if err != nil {
		return nil, err
	}

	exercises := make([]responses.ExerciseSummary, 0, len(tasks))
	for i := range tasks {
		exercises = append(exercises, SimplifyExercise(&tasks[i]))
	}
	return exercises, nil
}

func (uc *rehabUsecase) FindInProgressExercisesByUHID(ctx context.Context, uhid string) ([]responses.ExerciseSummary, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("rehabUsecase.FindInProgressExercisesByUHID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUHIDKey, uhid),
	)

	tasks, err := uc.searchTasks(ctx, uhid)
	if err != nil {
		return nil, err
	}

	exercises := make([]responses.ExerciseSummary, 0, len(tasks))
	for i := range tasks {
		if tasks[i].Status != constvars.TaskStatusInProgress {
			continue
		}
		exercises = append(exercises, SimplifyExercise(&tasks[i]))
	}
	return exercises, nil
}

// DeleteExercises removes in-progress tasks whose name contains exerciseName,
// case insensitively. Completed tasks are never deleted.
func (uc *rehabUsecase) DeleteExercises(ctx context.Context, uhid, exerciseName string) (int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("rehabUsecase.DeleteExercises called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUHIDKey, uhid),
		zap.String("exercise_name", exerciseName),
	)

	tasks, err := uc.searchTasks(ctx, uhid)
	if err != nil {
		return 0, err
	}

	needle := strings.ToLower(exerciseName)
	deleted := 0
	for i := range tasks {
		task := &tasks[i]
		if task.Status != constvars.TaskStatusInProgress {
			continue
		}
		if !strings.Contains(strings.ToLower(task.Description), needle) {
			continue
		}
		if err := uc.FhirGateway.DeleteResource(ctx, constvars.ResourceTask, task.ID); err != nil {
			return deleted, err
		}
		deleted++
	}

	if deleted == 0 {
		return 0, exceptions.ErrFHIRResourceNotFound(constvars.ResourceTask,
			fmt.Sprintf("No in-progress exercise named '%s' found for UHID %s.", exerciseName, uhid))
	}
	return deleted, nil
}

func (uc *rehabUsecase) CreateInstruction(ctx context.Context, uhid string, request *requests.RehabInstructions) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("rehabUsecase.CreateInstruction called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUHIDKey, uhid),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}

	observation := InstructionObservation(uhid, request)
	return uc.FhirGateway.CreateResource(ctx, constvars.ResourceObservation, observation, nil)
}

func (uc *rehabUsecase) FindInstructionsByUHID(ctx context.Context, uhid string) ([]responses.InstructionSummary, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("rehabUsecase.FindInstructionsByUHID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUHIDKey, uhid),
	)

	query := url.Values{}
	query.Set("subject", constvars.ResourcePatient+"/"+uhid)

	resources, err := uc.FhirGateway.SearchResources(ctx, constvars.ResourceObservation, query)
	if err != nil {
		return nil, err
	}

	instructions := make([]responses.InstructionSummary, 0, len(resources))
	for _, raw := range resources {
		var observation fhir_dto.Observation
		if err := json.Unmarshal(raw, &observation); err != nil {
			return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceObservation)
		}
		if !IsInstruction(&observation, uhid) {
			continue
		}
		instructions = append(instructions, SimplifyInstruction(&observation))
	}
	return instructions, nil
}

func (uc *rehabUsecase) searchTasks(ctx context.Context, uhid string) ([]fhir_dto.Task, error) {
	query := url.Values{}
	query.Set("subject", constvars.ResourcePatient+"/"+uhid)

	resources, err := uc.FhirGateway.SearchResources(ctx, constvars.ResourceTask, query)
	if err != nil {
		return nil, err
	}

	tasks := make([]fhir_dto.Task, 0, len(resources))
	for _, raw := range resources {
		var task fhir_dto.Task
		if err := json.Unmarshal(raw, &task); err != nil {
			return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceTask)
		}
		if task.ResourceType != constvars.ResourceTask {
			continue
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}
