package gscclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	gscdomain "github.com/vfg2006/seo-campaign-api/infrastructure/integrator/searchconsole/domain"
	"github.com/vfg2006/seo-campaign-api/internal/domain"
	"github.com/vfg2006/seo-campaign-api/pkg/utils"
)

// Query executa uma página da consulta de Search Analytics para o site.
// Antes de cada requisição o token da conta é validado e renovado se preciso;
// falha na renovação é fatal para a chamada
func (c *GSCClient) Query(siteURL string, account *domain.GoogleAccount, req *gscdomain.QueryRequest) (*gscdomain.QueryResponse, error) {
	if err := c.EnsureValidToken(account); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf(
		"%s/sites/%s/searchAnalytics/query",
		c.Cfg.Google.SearchConsoleURL,
		url.PathEscape(siteURL),
	)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar a consulta: %w", err)
	}

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.Debugf("Consulta ao Search Console para %s: %s", siteURL, utils.PrettyJson(body))
	}

	httpReq, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	httpReq.Header.Set("Authorization", "Bearer "+account.AccessToken)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.handleErrorResponse(account, resp.StatusCode, respBody)
	}

	var response gscdomain.QueryResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return &response, nil
}

// handleErrorResponse classifica a resposta de erro da API: cota excedida
// vira *QuotaError, token rejeitado dispara uma renovação e vira
// *CredentialError quando nem a renovação resolve
func (c *GSCClient) handleErrorResponse(account *domain.GoogleAccount, statusCode int, body []byte) error {
	var errResp gscdomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		return fmt.Errorf("erro na resposta da API. Status: %d, Corpo: %s", statusCode, string(body))
	}

	if errResp.Error.Code == 0 {
		errResp.Error.Code = statusCode
	}

	if errResp.IsQuotaExceeded() {
		logrus.WithFields(logrus.Fields{
			"status":  statusCode,
			"message": errResp.Error.Message,
		}).Warn("Cota da API do Search Console excedida")
		return &gscdomain.QuotaError{}
	}

	if errResp.IsCredentialError() {
		logrus.WithField("status", statusCode).Warn("Token rejeitado pela API do Search Console. Tentando renovar")

		if refreshErr := c.RefreshToken(account); refreshErr != nil {
			return refreshErr
		}

		// Token renovado; o chamador repete a página
		return ErrTokenRefreshed
	}

	return fmt.Errorf("erro na resposta da API. Status: %d, Mensagem: %s", statusCode, errResp.Error.Message)
}
