package controllers

import (
	"context"
	"glamslot-service/internal/app/config"
	"glamslot-service/internal/app/contracts"
	"glamslot-service/internal/pkg/constvars"
	"glamslot-service/internal/pkg/dto/responses"
	"glamslot-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	healthStatusUp   = "up"
	healthStatusDown = "down"
	healthPingLimit  = 3 * time.Second
)

type HealthController struct {
	Log            *zap.Logger
	Checkers       []contracts.HealthChecker
	InternalConfig *config.InternalConfig
	StartedAt      time.Time
}

func NewHealthController(logger *zap.Logger, internalConfig *config.InternalConfig, checkers ...contracts.HealthChecker) *HealthController {
	return &HealthController{
		Log:            logger,
		Checkers:       checkers,
		InternalConfig: internalConfig,
		StartedAt:      time.Now(),
	}
}

func (ctrl *HealthController) ServiceInfo(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ServiceInfoMessage, &responses.ServiceInfo{
		Message: constvars.ServiceInfoMessage,
		Version: ctrl.InternalConfig.App.Version,
	})
}

// Health pings every dependency and answers 503 when any of them is down.
func (ctrl *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthPingLimit)
	defer cancel()

	report := &responses.Health{
		Status:   healthStatusUp,
		Uptime:   time.Since(ctrl.StartedAt).Round(time.Second).String(),
		Services: make(map[string]string, len(ctrl.Checkers)),
	}
	for _, checker := range ctrl.Checkers {
		if err := checker.Ping(ctx); err != nil {
			ctrl.Log.Warn("HealthController.Health dependency unreachable",
				zap.String("service", checker.Name()),
				zap.Error(err))
			report.Services[checker.Name()] = healthStatusDown
			report.Status = healthStatusDown
			continue
		}
		report.Services[checker.Name()] = healthStatusUp
	}

	code := constvars.StatusOK
	message := constvars.HealthyMessage
	if report.Status != healthStatusUp {
		code = constvars.StatusServiceUnavailable
		message = constvars.UnhealthyMessage
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(responses.ResponseDTO{
		Success: code == constvars.StatusOK,
		Message: message,
		Data:    report,
	})
}
