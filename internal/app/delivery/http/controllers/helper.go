package controllers

import (
	"context"
	"errors"
	"glamslot-service/internal/app/config"
	"glamslot-service/internal/pkg/constvars"
	"glamslot-service/internal/pkg/exceptions"
	"glamslot-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const defaultRequestTimeout = 10 * time.Second

// usecaseContext detaches the usecase call from the client connection but keeps
// the request id and a hard deadline.
func usecaseContext(internalConfig *config.InternalConfig, requestID string) (context.Context, context.CancelFunc) {
	timeout := defaultRequestTimeout
	if internalConfig != nil && internalConfig.App.RequestTimeoutInSecond > 0 {
		timeout = time.Duration(internalConfig.App.RequestTimeoutInSecond) * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	return utils.WithRequestID(ctx, requestID), cancel
}

func requestIDFromRequest(log *zap.Logger, w http.ResponseWriter, r *http.Request, caller string) (string, bool) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		log.Error(caller + " requestID not found in context")
		utils.BuildErrorResponse(log, w, exceptions.ErrMissingRequestID(nil))
		return "", false
	}
	return requestID, true
}

func writeUsecaseError(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
