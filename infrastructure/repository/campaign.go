package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/seo-campaign-api/infrastructure/database/postgres"
	"github.com/vfg2006/seo-campaign-api/internal/domain"
)

const (
	campaignsTable = "campaigns c"
)

// CampaignRepository é somente leitura para o pipeline de ingestão: campanhas
// são criadas e editadas pelo painel, aqui apenas definimos o escopo do fetch
type CampaignRepository interface {
	GetCampaignByID(campaignID string) (*domain.Campaign, error)
	ListCampaigns(availableStatus []domain.CampaignStatus) ([]*domain.Campaign, error)
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) GetCampaignByID(campaignID string) (*domain.Campaign, error) {
	query, args, err := squirrel.
		Select("c.id, c.name, c.search_console_site, c.keywords, c.google_account_id, c.starting_date, c.status, c.created_at, c.updated_at").
		From(campaignsTable).
		Where(squirrel.Eq{"c.id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	campaign := &domain.Campaign{}
	err = row.Scan(
		&campaign.ID,
		&campaign.Name,
		&campaign.SearchConsoleSite,
		&campaign.Keywords,
		&campaign.GoogleAccountID,
		&campaign.StartingDate,
		&campaign.Status,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
	}

	return campaign, nil
}

func (r *campaignRepository) ListCampaigns(availableStatus []domain.CampaignStatus) ([]*domain.Campaign, error) {
	builder := squirrel.
		Select("c.id, c.name, c.search_console_site, c.keywords, c.google_account_id, c.starting_date, c.status, c.created_at, c.updated_at").
		From(campaignsTable).
		OrderBy("c.created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(availableStatus) > 0 {
		builder = builder.Where(squirrel.Eq{"c.status": availableStatus})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign := &domain.Campaign{}
		err = rows.Scan(
			&campaign.ID,
			&campaign.Name,
			&campaign.SearchConsoleSite,
			&campaign.Keywords,
			&campaign.GoogleAccountID,
			&campaign.StartingDate,
			&campaign.Status,
			&campaign.CreatedAt,
			&campaign.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}
