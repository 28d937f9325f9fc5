package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/socialpulse/engagement-analytics-api/internal/domain"
	"github.com/socialpulse/engagement-analytics-api/internal/scheduler"
	"github.com/socialpulse/engagement-analytics-api/pkg/apiErrors"
	"github.com/socialpulse/engagement-analytics-api/pkg/middleware"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeGenerator = "generator"
	CronJobTypeRetention = "retention"
	CronJobTypeAll       = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	EngagementGeneratorService *scheduler.EngagementGeneratorService
	RetentionSyncService       *scheduler.RetentionSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Verificar permissões - apenas administradores podem executar cron jobs
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		// Validar o tipo de cron job
		switch cronType {
		case CronJobTypeGenerator:
			// Executar um tick do gerador de engajamento
			if services.EngagementGeneratorService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Gerador de engajamento não disponível", nil)
				return
			}
			services.EngagementGeneratorService.TriggerManualSync()

		case CronJobTypeRetention:
			// Executar a retenção de eventos
			if services.RetentionSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de retenção não disponível", nil)
				return
			}
			services.RetentionSyncService.TriggerManualSync()

		case CronJobTypeAll:
			// Executar todas as rotinas agendadas
			if services.EngagementGeneratorService != nil {
				services.EngagementGeneratorService.TriggerManualSync()
			}
			if services.RetentionSyncService != nil {
				services.RetentionSyncService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: generator, retention, all", nil)
			return
		}

		// Responder com sucesso
		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		// Verificar permissões - apenas administradores podem ver status das crons
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar status de cron jobs", nil)
			return
		}

		status := map[string]any{
			"generator": services.EngagementGeneratorService.GetStatus(),
			"retention": services.RetentionSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
