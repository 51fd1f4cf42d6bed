package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/seo-campaign-api/infrastructure/database/postgres"
	"github.com/vfg2006/seo-campaign-api/internal/domain"
)

const (
	googleAccountsTable = "google_accounts ga"
)

// GoogleAccountRepository persiste as credenciais OAuth das contas Google.
// O core nunca cria contas, apenas lê e atualiza os tokens após renovação
type GoogleAccountRepository interface {
	GetByID(accountID string) (*domain.GoogleAccount, error)
	UpdateTokens(account *domain.GoogleAccount) error
}

type googleAccountRepository struct {
	conn *postgres.Connection
}

func NewGoogleAccountRepository(conn *postgres.Connection) GoogleAccountRepository {
	return &googleAccountRepository{
		conn: conn,
	}
}

func (r *googleAccountRepository) GetByID(accountID string) (*domain.GoogleAccount, error) {
	query, args, err := squirrel.
		Select("ga.id, ga.email, ga.access_token, ga.refresh_token, ga.expires_at, ga.is_active, ga.created_at, ga.updated_at").
		From(googleAccountsTable).
		Where(squirrel.Eq{"ga.id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	account := &domain.GoogleAccount{}
	err = row.Scan(
		&account.ID,
		&account.Email,
		&account.AccessToken,
		&account.RefreshToken,
		&account.ExpiresAt,
		&account.IsActive,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear conta Google: %w", err)
	}

	return account, nil
}

func (r *googleAccountRepository) UpdateTokens(account *domain.GoogleAccount) error {
	query, args, err := squirrel.
		Update("google_accounts").
		Set("access_token", account.AccessToken).
		Set("refresh_token", account.RefreshToken).
		Set("expires_at", account.ExpiresAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": account.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
