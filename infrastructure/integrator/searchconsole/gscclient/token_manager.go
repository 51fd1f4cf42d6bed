package gscclient

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	gscdomain "github.com/vfg2006/seo-campaign-api/infrastructure/integrator/searchconsole/domain"
	"github.com/vfg2006/seo-campaign-api/infrastructure/repository"
	"github.com/vfg2006/seo-campaign-api/internal/config"
	"github.com/vfg2006/seo-campaign-api/internal/domain"
)

// TokenManager renova os tokens OAuth das contas Google conectadas.
// O mutex serializa renovações concorrentes da mesma instância do processo:
// duas goroutines que encontram o mesmo token expirado fazem uma única troca
type TokenManager struct {
	cfg         *config.Config
	accountRepo repository.GoogleAccountRepository
	refreshMu   sync.Mutex
	now         func() time.Time
}

// NewTokenManager cria uma nova instância do gerenciador de tokens
func NewTokenManager(cfg *config.Config, accountRepo repository.GoogleAccountRepository) *TokenManager {
	return &TokenManager{
		cfg:         cfg,
		accountRepo: accountRepo,
		now:         time.Now,
	}
}

// EnsureValidToken garante que o access token da conta está válido antes de
// qualquer requisição, renovando via refresh token quando necessário
func (tm *TokenManager) EnsureValidToken(account *domain.GoogleAccount) error {
	tm.refreshMu.Lock()
	defer tm.refreshMu.Unlock()

	// Verificar novamente sob o lock: outra goroutine pode ter renovado
	if !account.IsExpired(tm.now()) {
		return nil
	}

	return tm.refreshLocked(account)
}

// RefreshToken força a renovação do token da conta
func (tm *TokenManager) RefreshToken(account *domain.GoogleAccount) error {
	tm.refreshMu.Lock()
	defer tm.refreshMu.Unlock()

	return tm.refreshLocked(account)
}

func (tm *TokenManager) refreshLocked(account *domain.GoogleAccount) error {
	if account.RefreshToken == "" {
		return &gscdomain.CredentialError{Err: errNoRefreshToken}
	}

	logrus.WithFields(logrus.Fields{
		"google_account_id": account.ID,
		"email":             account.Email,
	}).Info("Renovando token de acesso da conta Google")

	conf := &oauth2.Config{
		ClientID:     tm.cfg.Google.ClientID,
		ClientSecret: tm.cfg.Google.ClientSecret,
		Endpoint:     google.Endpoint,
	}

	source := conf.TokenSource(context.Background(), &oauth2.Token{
		RefreshToken: account.RefreshToken,
	})

	token, err := source.Token()
	if err != nil {
		logrus.WithError(err).WithField("google_account_id", account.ID).
			Error("Erro ao trocar o refresh token por um novo access token")
		return &gscdomain.CredentialError{Err: err}
	}

	account.AccessToken = token.AccessToken
	// O Google nem sempre rotaciona o refresh token; manter o atual quando
	// a resposta não trouxer um novo
	if token.RefreshToken != "" {
		account.RefreshToken = token.RefreshToken
	}
	account.ExpiresAt = token.Expiry

	if err := tm.accountRepo.UpdateTokens(account); err != nil {
		logrus.WithError(err).WithField("google_account_id", account.ID).
			Error("Erro ao persistir os tokens renovados")
		return &gscdomain.CredentialError{Err: err}
	}

	logrus.WithFields(logrus.Fields{
		"google_account_id": account.ID,
		"expires_at":        account.ExpiresAt.Format(time.RFC3339),
	}).Info("Token da conta Google renovado com sucesso")

	return nil
}
