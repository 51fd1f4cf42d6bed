package gscclient

import (
	"errors"
	"net/http"
	"time"

	gscdomain "github.com/vfg2006/seo-campaign-api/infrastructure/integrator/searchconsole/domain"
	"github.com/vfg2006/seo-campaign-api/internal/config"
	"github.com/vfg2006/seo-campaign-api/internal/domain"
)

// Constantes da API de Search Analytics. Não são configuráveis: o tamanho de
// página é o máximo aceito pela API e os demais valores acompanham o
// comportamento conhecido da cota do Search Console
const (
	// RowLimit é o tamanho fixo de página da consulta
	RowLimit = 25000
	// PageDelay é a pausa entre páginas consecutivas para não disparar o
	// rate limit de curto prazo
	PageDelay = 250 * time.Millisecond
	// QuotaCooldown é a janela de espera quando a cota diária/por minuto
	// é excedida e o chamador pediu para aguardar todos os dados
	QuotaCooldown = 15 * time.Minute
	// MaxQuotaRetries limita as esperas de cota antes de desistir
	MaxQuotaRetries = 3
)

var errNoRefreshToken = errors.New("conta sem refresh token")

// ErrTokenRefreshed sinaliza que o token foi renovado depois de uma rejeição
// da API; o chamador deve repetir a mesma página
var ErrTokenRefreshed = errors.New("token renovado, repita a requisição")

type Client interface {
	Query(siteURL string, account *domain.GoogleAccount, req *gscdomain.QueryRequest) (*gscdomain.QueryResponse, error)
	EnsureValidToken(account *domain.GoogleAccount) error
	RefreshToken(account *domain.GoogleAccount) error
}

type GSCClient struct {
	Cfg          *config.Config
	TokenManager *TokenManager
	HTTPClient   *http.Client
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	client := &GSCClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
		HTTPClient:   &http.Client{Timeout: 2 * time.Minute},
	}
	return client
}

// EnsureValidToken verifica se o token da conta é válido e renova se necessário
func (c *GSCClient) EnsureValidToken(account *domain.GoogleAccount) error {
	return c.TokenManager.EnsureValidToken(account)
}

// RefreshToken força a renovação do token da conta
func (c *GSCClient) RefreshToken(account *domain.GoogleAccount) error {
	return c.TokenManager.RefreshToken(account)
}
