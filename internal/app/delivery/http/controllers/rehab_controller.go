package controllers

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"carebridge-service/internal/app/contracts"
	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/dto/requests"
	"carebridge-service/internal/pkg/dto/responses"
	"carebridge-service/internal/pkg/exceptions"
	"carebridge-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type RehabController struct {
	Log          *zap.Logger
	RehabUsecase contracts.RehabUsecase
}

var (
	rehabControllerInstance *RehabController
	onceRehabController     sync.Once
)

func NewRehabController(logger *zap.Logger, rehabUsecase contracts.RehabUsecase) *RehabController {
	onceRehabController.Do(func() {
		rehabControllerInstance = &RehabController{
			Log:          logger,
			RehabUsecase: rehabUsecase,
		}
	})
	return rehabControllerInstance
}

func (ctrl *RehabController) CreateExercises(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromContext(ctrl.Log, w, r)
	if !ok {
		return
	}
	uhid, ok := uhidFromQuery(ctrl.Log, w, r)
	if !ok {
		return
	}

	var exercises []requests.ExerciseEntry
	if err := json.NewDecoder(r.Body).Decode(&exercises); err != nil {
		ctrl.Log.Error("Failed to parse exercises request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	count, err := ctrl.RehabUsecase.CreateExercises(ctx, uhid, exercises)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK,
		fmt.Sprintf(constvars.ExercisesPostedSuccessfully, count), nil)
}

func (ctrl *RehabController) GetExercises(w http.ResponseWriter, r *http.Request) {
	if _, ok := requestIDFromContext(ctrl.Log, w, r); !ok {
		return
	}
	uhid, ok := uhidFromQuery(ctrl.Log, w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	exercises, err := ctrl.RehabUsecase.FindExercisesByUHID(ctx, uhid)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildRawResponse(w, constvars.StatusOK, struct {
		Success   bool                         `json:"success"`
		Exercises []responses.ExerciseSummary `json:"exercises"`
	}{Success: true, Exercises: exercises})
}

func (ctrl *RehabController) GetInProgressExercises(w http.ResponseWriter, r *http.Request) {
	if _, ok := requestIDFromContext(ctrl.Log, w, r); !ok {
		return
	}
	uhid, ok := uhidFromQuery(ctrl.Log, w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	exercises, err := ctrl.RehabUsecase.FindInProgressExercisesByUHID(ctx, uhid)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildRawResponse(w, constvars.StatusOK, struct {
		Success             bool                         `json:"success"`
		InProgressExercises []responses.ExerciseSummary `json:"in_progress_exercises"`
	}{Success: true, InProgressExercises: exercises})
}

func (ctrl *RehabController) DeleteExercises(w http.ResponseWriter, r *http.Request) {
	if _, ok := requestIDFromContext(ctrl.Log, w, r); !ok {
		return
	}
	uhid, ok := uhidFromQuery(ctrl.Log, w, r)
	if !ok {
		return
	}
	exerciseName := r.URL.Query().Get("exercise_name")
	if exerciseName == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingParameter("exercise_name"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	deleted, err := ctrl.RehabUsecase.DeleteExercises(ctx, uhid, exerciseName)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK,
		fmt.Sprintf(constvars.ExercisesDeletedSuccessfully, deleted, exerciseName, uhid), nil)
}

func (ctrl *RehabController) CreateInstructions(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromContext(ctrl.Log, w, r)
	if !ok {
		return
	}
	uhid, ok := uhidFromQuery(ctrl.Log, w, r)
	if !ok {
		return
	}

	var instructions []requests.RehabInstructions
	if err := json.NewDecoder(r.Body).Decode(&instructions); err != nil {
		ctrl.Log.Error("Failed to parse instructions request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	for i := range instructions {
		if err := ctrl.RehabUsecase.CreateInstruction(ctx, uhid, &instructions[i]); err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK,
		fmt.Sprintf(constvars.InstructionsPostedSuccessfully, len(instructions)), nil)
}

func (ctrl *RehabController) GetInstructions(w http.ResponseWriter, r *http.Request) {
	if _, ok := requestIDFromContext(ctrl.Log, w, r); !ok {
		return
	}
	uhid, ok := uhidFromQuery(ctrl.Log, w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	instructions, err := ctrl.RehabUsecase.FindInstructionsByUHID(ctx, uhid)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildRawResponse(w, constvars.StatusOK, struct {
		Success      bool                            `json:"success"`
		Instructions []responses.InstructionSummary `json:"instructions"`
	}{Success: true, Instructions: instructions})
}
