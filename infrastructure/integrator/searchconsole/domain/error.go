package gscdomain

import (
	"fmt"
	"net/http"
)

// ErrorResponse representa a estrutura de erro das APIs do Google
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro das APIs do Google
type ErrorDetails struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Status  string      `json:"status,omitempty"`
	Errors  []ErrorItem `json:"errors,omitempty"`
}

// ErrorItem é um item individual da lista de erros
type ErrorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// IsQuotaExceeded verifica se o erro indica cota excedida. A API do Search
// Console responde 429/RESOURCE_EXHAUSTED, mas versões antigas usavam 403
// com reason de rate limit
func (e *ErrorResponse) IsQuotaExceeded() bool {
	if e.Error.Code == http.StatusTooManyRequests {
		return true
	}
	if e.Error.Status == "RESOURCE_EXHAUSTED" {
		return true
	}
	for _, item := range e.Error.Errors {
		switch item.Reason {
		case "rateLimitExceeded", "quotaExceeded", "userRateLimitExceeded":
			return true
		}
	}
	return false
}

// IsCredentialError verifica se o erro indica token inválido ou expirado
func (e *ErrorResponse) IsCredentialError() bool {
	return e.Error.Code == http.StatusUnauthorized || e.Error.Status == "UNAUTHENTICATED"
}

// QuotaError sinaliza que a cota da API continuou excedida depois de esgotar
// as tentativas de espera. É um erro "retryable na próxima execução": o
// chamador não deve abortar as outras janelas por causa dele
type QuotaError struct {
	Retries int
}

func (e *QuotaError) Error() string {
	return fmt.Sprintf("cota da API do Search Console excedida após %d tentativas", e.Retries)
}

// CredentialError sinaliza falha na renovação das credenciais OAuth. É fatal
// para a chamada inteira: sem token válido nenhuma janela pode ser buscada
type CredentialError struct {
	Err error
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("falha ao renovar credenciais do Google: %v", e.Err)
}

func (e *CredentialError) Unwrap() error {
	return e.Err
}
