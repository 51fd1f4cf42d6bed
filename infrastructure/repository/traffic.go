package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/seo-campaign-api/infrastructure/database/postgres"
	"github.com/vfg2006/seo-campaign-api/internal/domain"
	"github.com/vfg2006/seo-campaign-api/pkg/utils"
)

// TrafficRepository persiste os agregados de tráfego por site: rollups
// mensais por (raiz, mês, ano) e diários por (raiz, data), sempre via upsert
type TrafficRepository interface {
	FindOrCreateRoot(siteURL string) (*domain.TrafficRoot, error)
	SaveMonthlyTraffic(traffic *domain.MonthlyTraffic) error
	SaveDailyTraffic(traffic *domain.DailyTraffic) error
	GetSiteTraffic(siteURL string) (*domain.SiteTraffic, error)
}

type trafficRepository struct {
	conn *postgres.Connection
}

func NewTrafficRepository(conn *postgres.Connection) TrafficRepository {
	return &trafficRepository{
		conn: conn,
	}
}

// FindOrCreateRoot devolve a raiz de tráfego do site, criando-a na primeira
// escrita. Mesmo upsert atômico por site_url usado na raiz de keywords
func (r *trafficRepository) FindOrCreateRoot(siteURL string) (*domain.TrafficRoot, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar identificador da raiz: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("traffic_roots").
		Columns("id", "site_url").
		Values(id, siteURL).
		Suffix(`
			ON CONFLICT (site_url) DO UPDATE SET
				updated_at = NOW()
			RETURNING id, site_url, created_at, updated_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	root := &domain.TrafficRoot{}
	err = r.conn.QueryRow(query, args...).Scan(
		&root.ID,
		&root.SiteURL,
		&root.CreatedAt,
		&root.UpdatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao criar ou buscar raiz de tráfego: %w", err)
	}

	return root, nil
}

func (r *trafficRepository) SaveMonthlyTraffic(traffic *domain.MonthlyTraffic) error {
	query := squirrel.StatementBuilder.
		Insert("monthly_traffic").
		Columns("root_id", "month", "year", "clicks", "impressions", "ctr", "position").
		Values(
			traffic.RootID,
			traffic.Month,
			traffic.Year,
			traffic.Clicks,
			traffic.Impressions,
			traffic.CTR,
			traffic.Position,
		).
		Suffix(`
			ON CONFLICT (root_id, month, year) DO UPDATE SET
				clicks = EXCLUDED.clicks,
				impressions = EXCLUDED.impressions,
				ctr = EXCLUDED.ctr,
				position = EXCLUDED.position,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *trafficRepository) SaveDailyTraffic(traffic *domain.DailyTraffic) error {
	query := squirrel.StatementBuilder.
		Insert("daily_traffic").
		Columns("root_id", "date", "clicks", "impressions", "ctr", "position").
		Values(
			traffic.RootID,
			traffic.Date.Format("2006-01-02"),
			traffic.Clicks,
			traffic.Impressions,
			traffic.CTR,
			traffic.Position,
		).
		Suffix(`
			ON CONFLICT (root_id, date) DO UPDATE SET
				clicks = EXCLUDED.clicks,
				impressions = EXCLUDED.impressions,
				ctr = EXCLUDED.ctr,
				position = EXCLUDED.position,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// GetSiteTraffic carrega a projeção de tráfego do site: mensais ordenados por
// (ano, mês) decrescente e diários por data decrescente. Retorna nil quando o
// site ainda não tem raiz
func (r *trafficRepository) GetSiteTraffic(siteURL string) (*domain.SiteTraffic, error) {
	rootQuery, rootArgs, err := squirrel.
		Select("tr.id, tr.site_url, tr.created_at, tr.updated_at").
		From("traffic_roots tr").
		Where(squirrel.Eq{"tr.site_url": siteURL}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	root := &domain.TrafficRoot{}
	err = r.conn.QueryRow(rootQuery, rootArgs...).Scan(
		&root.ID,
		&root.SiteURL,
		&root.CreatedAt,
		&root.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear raiz de tráfego: %w", err)
	}

	traffic := &domain.SiteTraffic{
		Root:    root,
		Monthly: make([]*domain.MonthlyTraffic, 0),
		Daily:   make([]*domain.DailyTraffic, 0),
	}

	monthlyQuery, monthlyArgs, err := squirrel.
		Select("mt.id, mt.root_id, mt.month, mt.year, mt.clicks, mt.impressions, mt.ctr, mt.position").
		From("monthly_traffic mt").
		Where(squirrel.Eq{"mt.root_id": root.ID}).
		OrderBy("mt.year DESC", "mt.month DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	monthlyRows, err := r.conn.Query(monthlyQuery, monthlyArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer monthlyRows.Close()

	for monthlyRows.Next() {
		monthly := &domain.MonthlyTraffic{}
		err = monthlyRows.Scan(
			&monthly.ID,
			&monthly.RootID,
			&monthly.Month,
			&monthly.Year,
			&monthly.Clicks,
			&monthly.Impressions,
			&monthly.CTR,
			&monthly.Position,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear tráfego mensal: %w", err)
		}
		traffic.Monthly = append(traffic.Monthly, monthly)
	}

	if err = monthlyRows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	dailyQuery, dailyArgs, err := squirrel.
		Select("dt.id, dt.root_id, dt.date, dt.clicks, dt.impressions, dt.ctr, dt.position").
		From("daily_traffic dt").
		Where(squirrel.Eq{"dt.root_id": root.ID}).
		OrderBy("dt.date DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	dailyRows, err := r.conn.Query(dailyQuery, dailyArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer dailyRows.Close()

	for dailyRows.Next() {
		daily := &domain.DailyTraffic{}
		err = dailyRows.Scan(
			&daily.ID,
			&daily.RootID,
			&daily.Date,
			&daily.Clicks,
			&daily.Impressions,
			&daily.CTR,
			&daily.Position,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear tráfego diário: %w", err)
		}
		traffic.Daily = append(traffic.Daily, daily)
	}

	if err = dailyRows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return traffic, nil
}
