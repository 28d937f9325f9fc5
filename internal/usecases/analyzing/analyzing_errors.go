package analyzing

import (
	"errors"
	"fmt"
)

// Erros de validação e de negócio do módulo de análise de engajamento
var (
	// ErrPostNotFound é retornado quando o post solicitado não existe
	ErrPostNotFound = errors.New("post não encontrado")

	// ErrMissingPostID é retornado quando o ID do post não foi informado
	ErrMissingPostID = errors.New("ID do post não fornecido")

	// ErrMissingAccountID é retornado quando o ID da conta não foi informado
	ErrMissingAccountID = errors.New("ID da conta não fornecido")

	// ErrInvalidPeriod é retornado quando o período informado não segue o formato Nd
	ErrInvalidPeriod = errors.New("período inválido")

	// ErrInvalidGranularity é retornado quando a granularidade não é hourly, daily ou weekly
	ErrInvalidGranularity = errors.New("granularidade inválida")

	// ErrInvalidMetric é retornado quando a métrica solicitada não é suportada
	ErrInvalidMetric = errors.New("métrica inválida")

	// ErrInvalidPlatform é retornado quando a plataforma informada não é suportada
	ErrInvalidPlatform = errors.New("plataforma inválida")

	// ErrInvalidDateRange é retornado quando o intervalo de datas é inválido
	ErrInvalidDateRange = errors.New("intervalo de datas inválido")

	// ErrInvalidRange é retornado quando o range do dashboard não é 7d, 30d ou 90d
	ErrInvalidRange = errors.New("range inválido")

	// ErrInvalidLimit é retornado quando o limite de posts é menor que 1
	ErrInvalidLimit = errors.New("limite inválido")
)

// AnalyticsError encapsula um erro de análise com contexto adicional
type AnalyticsError struct {
	Err       error
	AccountID string
	PostID    string
	Message   string
}

func (e *AnalyticsError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Err.Error()
}

func (e *AnalyticsError) Unwrap() error {
	return e.Err
}

// IsValidationError indica se o erro é de validação de entrada (mapeado para HTTP 400)
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrMissingPostID,
		ErrMissingAccountID,
		ErrInvalidPeriod,
		ErrInvalidGranularity,
		ErrInvalidMetric,
		ErrInvalidPlatform,
		ErrInvalidDateRange,
		ErrInvalidRange,
		ErrInvalidLimit,
	} {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}
