package controllers

import (
	"net/http"
	"sync"

	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type RootController struct {
	Log *zap.Logger
}

var (
	rootControllerInstance *RootController
	onceRootController     sync.Once
)

func NewRootController(logger *zap.Logger) *RootController {
	onceRootController.Do(func() {
		rootControllerInstance = &RootController{Log: logger}
	})
	return rootControllerInstance
}

func (ctrl *RootController) Root(w http.ResponseWriter, r *http.Request) {
	utils.BuildRawResponse(w, constvars.StatusOK, map[string]string{
		"Message": constvars.RootWelcomeMessage,
	})
}
