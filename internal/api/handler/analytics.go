package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/socialpulse/engagement-analytics-api/internal/domain"
	"github.com/socialpulse/engagement-analytics-api/internal/usecases/analyzing"
	"github.com/socialpulse/engagement-analytics-api/pkg/apiErrors"
	"github.com/socialpulse/engagement-analytics-api/pkg/middleware"
	"github.com/socialpulse/engagement-analytics-api/pkg/utils"
)

// GetPostPerformance retorna as métricas consolidadas de desempenho de um post
func GetPostPerformance(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetPostPerformance")

		postID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if postID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do post não fornecido", nil)
			return
		}

		performance, err := service.GetPostPerformance(postID)
		if err != nil {
			handleAnalyticsError(w, err)
			return
		}

		writeJSON(w, performance)
	}
}

// GetOptimalPostingTimes retorna os melhores horários de publicação da conta
func GetOptimalPostingTimes(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetOptimalPostingTimes")

		accountID, ok := accountFromContext(w, r)
		if !ok {
			return
		}

		slots, err := service.GetOptimalPostingTimes(accountID)
		if err != nil {
			handleAnalyticsError(w, err)
			return
		}

		writeJSON(w, slots)
	}
}

// GetEngagementTrends retorna a série temporal de engajamento da conta.
// Query params: period (Nd), granularity (hourly|daily|weekly) e metric.
func GetEngagementTrends(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetEngagementTrends")

		accountID, ok := accountFromContext(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()

		series, err := service.GetEngagementTrends(
			accountID,
			query.Get("period"),
			query.Get("granularity"),
			query.Get("metric"),
		)
		if err != nil {
			handleAnalyticsError(w, err)
			return
		}

		writeJSON(w, series)
	}
}

// GetPlatformPerformance retorna os totais de engajamento por plataforma.
// O query param platform restringe o resultado a uma única plataforma.
func GetPlatformPerformance(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetPlatformPerformance")

		accountID, ok := accountFromContext(w, r)
		if !ok {
			return
		}

		performances, err := service.GetPlatformPerformance(accountID, r.URL.Query().Get("platform"))
		if err != nil {
			handleAnalyticsError(w, err)
			return
		}

		writeJSON(w, performances)
	}
}

// GetTopPosts retorna os posts de melhor desempenho da conta
func GetTopPosts(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetTopPosts")

		accountID, ok := accountFromContext(w, r)
		if !ok {
			return
		}

		limit := 0
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			parsed, err := strconv.Atoi(limitStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Limite inválido", nil)
				return
			}

			limit = parsed
		}

		topPosts, err := service.GetTopPosts(accountID, limit)
		if err != nil {
			handleAnalyticsError(w, err)
			return
		}

		writeJSON(w, topPosts)
	}
}

// GetPeriodComparison compara o período informado com o anterior.
// Query params obrigatórios: start_date e end_date no formato YYYY-MM-DD.
func GetPeriodComparison(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetPeriodComparison")

		accountID, ok := accountFromContext(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()

		startDate, err := utils.ParseDate(query.Get("start_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inicial inválida", nil)
			return
		}

		endDate, err := utils.ParseDate(query.Get("end_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data final inválida", nil)
			return
		}

		comparison, err := service.GetPeriodComparison(accountID, *startDate, *endDate)
		if err != nil {
			handleAnalyticsError(w, err)
			return
		}

		writeJSON(w, comparison)
	}
}

// GetDashboardOverview retorna o snapshot consolidado da conta.
// O query param range aceita 7d, 30d ou 90d.
func GetDashboardOverview(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetDashboardOverview")

		accountID, ok := accountFromContext(w, r)
		if !ok {
			return
		}

		overview, err := service.GetDashboardOverview(accountID, r.URL.Query().Get("range"))
		if err != nil {
			handleAnalyticsError(w, err)
			return
		}

		writeJSON(w, overview)
	}
}

// accountFromContext obtém o AccountID das claims do usuário autenticado
func accountFromContext(w http.ResponseWriter, r *http.Request) (string, bool) {
	userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return "", false
	}

	if userClaims.AccountID == "" {
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Usuário sem conta vinculada", nil)
		return "", false
	}

	return userClaims.AccountID, true
}

// handleAnalyticsError traduz erros do motor de análise para respostas HTTP
func handleAnalyticsError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, analyzing.ErrPostNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Post não encontrado", nil)

	case analyzing.IsValidationError(err):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar análise de engajamento", nil)
	}
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.Error(err)
	}
}
