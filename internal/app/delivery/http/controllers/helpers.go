package controllers

import (
	"net/http"

	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/exceptions"
	"carebridge-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// requestIDFromContext fetches the request ID minted by the middleware.
// A missing ID means the middleware chain is broken, so we fail the request
// rather than continue without correlation.
func requestIDFromContext(log *zap.Logger, w http.ResponseWriter, r *http.Request) (string, bool) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		log.Error("Request ID missing from context",
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingMethodKey, r.Method),
			zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
		)
		utils.BuildErrorResponse(log, w, exceptions.ErrMissingRequestID(nil))
		return "", false
	}
	return requestID, true
}

// uhidFromQuery reads the uhid query parameter shared by most endpoints.
func uhidFromQuery(log *zap.Logger, w http.ResponseWriter, r *http.Request) (string, bool) {
	uhid := r.URL.Query().Get("uhid")
	if uhid == "" {
		utils.BuildErrorResponse(log, w, exceptions.ErrMissingParameter("uhid"))
		return "", false
	}
	return uhid, true
}

// uhidFromPath reads the {uhid} path segment for the routes that carry it
// there instead of the query string.
func uhidFromPath(log *zap.Logger, w http.ResponseWriter, r *http.Request) (string, bool) {
	uhid := chi.URLParam(r, "uhid")
	if uhid == "" {
		utils.BuildErrorResponse(log, w, exceptions.ErrMissingParameter("uhid"))
		return "", false
	}
	return uhid, true
}
