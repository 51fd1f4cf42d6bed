package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/seo-campaign-api/infrastructure/database/postgres"
	"github.com/vfg2006/seo-campaign-api/internal/domain"
	"github.com/vfg2006/seo-campaign-api/pkg/utils"
)

const (
	keywordRootsTable  = "keyword_analytics_roots kar"
	keywordRecordsJoin = "keyword_records kr"
)

// KeywordAnalyticsRepository persiste a árvore de analytics de keywords:
// raiz por site, keyword por (raiz, keyword), rollups mensais por
// (keyword, mês, ano) e posições diárias por (keyword, data).
// Todas as escritas são upserts por chave natural, então reexecutar a
// ingestão é seguro
type KeywordAnalyticsRepository interface {
	FindOrCreateRoot(siteURL string) (*domain.KeywordAnalyticsRoot, error)
	FindOrCreateKeyword(rootID, keyword string) (*domain.KeywordRecord, error)
	SetInitialPosition(keywordID string, position float64) error
	SaveMonthlyStat(stat *domain.MonthlyStat) error
	HasDailyStat(keywordID string, date time.Time) (bool, error)
	SaveDailyStat(stat *domain.DailyStat) error
	GetSiteAnalytics(siteURL string) (*domain.SiteAnalytics, error)
}

type keywordAnalyticsRepository struct {
	conn *postgres.Connection
}

func NewKeywordAnalyticsRepository(conn *postgres.Connection) KeywordAnalyticsRepository {
	return &keywordAnalyticsRepository{
		conn: conn,
	}
}

// FindOrCreateRoot devolve a raiz de agregação do site, criando-a na primeira
// escrita. O upsert por site_url com RETURNING é atômico: duas ingestões
// concorrentes do mesmo site recebem a mesma raiz, sem janela de corrida
// entre a leitura e a criação
func (r *keywordAnalyticsRepository) FindOrCreateRoot(siteURL string) (*domain.KeywordAnalyticsRoot, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar identificador da raiz: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("keyword_analytics_roots").
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

	root := &domain.KeywordAnalyticsRoot{}
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
		return nil, fmt.Errorf("erro ao criar ou buscar raiz de analytics: %w", err)
	}

	return root, nil
}

// FindOrCreateKeyword devolve o registro da keyword sob a raiz, criando-o se
// não existir. A posição inicial nasce nula e só é definida uma vez, por
// SetInitialPosition
func (r *keywordAnalyticsRepository) FindOrCreateKeyword(rootID, keyword string) (*domain.KeywordRecord, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar identificador da keyword: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("keyword_records").
		Columns("id", "root_id", "keyword").
		Values(id, rootID, keyword).
		Suffix(`
			ON CONFLICT (root_id, keyword) DO UPDATE SET
				updated_at = NOW()
			RETURNING id, root_id, keyword, initial_position, created_at, updated_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	record := &domain.KeywordRecord{}
	err = r.conn.QueryRow(query, args...).Scan(
		&record.ID,
		&record.RootID,
		&record.Keyword,
		&record.InitialPosition,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao criar ou buscar keyword: %w", err)
	}

	return record, nil
}

// SetInitialPosition grava a posição inicial apenas se ainda não existir.
// Uma vez definida, a posição inicial é imutável
func (r *keywordAnalyticsRepository) SetInitialPosition(keywordID string, position float64) error {
	query, args, err := squirrel.
		Update("keyword_records").
		Set("initial_position", position).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": keywordID}).
		Where("initial_position IS NULL").
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

// SaveMonthlyStat faz o upsert do rollup mensal da keyword. Reprocessar o
// mesmo mês atualiza a linha existente, nunca duplica
func (r *keywordAnalyticsRepository) SaveMonthlyStat(stat *domain.MonthlyStat) error {
	query := squirrel.StatementBuilder.
		Insert("keyword_monthly_stats").
		Columns("keyword_id", "month", "year", "average_rank", "search_volume", "top_ranking_page_url").
		Values(
			stat.KeywordID,
			stat.Month,
			stat.Year,
			stat.AverageRank,
			stat.SearchVolume,
			stat.TopRankingPageURL,
		).
		Suffix(`
			ON CONFLICT (keyword_id, month, year) DO UPDATE SET
				average_rank = EXCLUDED.average_rank,
				search_volume = EXCLUDED.search_volume,
				top_ranking_page_url = EXCLUDED.top_ranking_page_url,
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

func (r *keywordAnalyticsRepository) HasDailyStat(keywordID string, date time.Time) (bool, error) {
	query, args, err := squirrel.
		Select("1").
		From("keyword_daily_stats kds").
		Where(squirrel.Eq{"kds.keyword_id": keywordID, "kds.date": date.Format("2006-01-02")}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var one int
	err = r.conn.QueryRow(query, args...).Scan(&one)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("erro ao verificar estatística diária: %w", err)
	}

	return true, nil
}

// SaveDailyStat grava a posição diária apenas se ainda não houver linha para
// a data (ON CONFLICT DO NOTHING). A semântica é write-once: o job diário é
// idempotente por short-circuit, não por merge
func (r *keywordAnalyticsRepository) SaveDailyStat(stat *domain.DailyStat) error {
	query := squirrel.StatementBuilder.
		Insert("keyword_daily_stats").
		Columns("keyword_id", "date", "average_rank", "search_volume").
		Values(
			stat.KeywordID,
			stat.Date.Format("2006-01-02"),
			stat.AverageRank,
			stat.SearchVolume,
		).
		Suffix(`ON CONFLICT (keyword_id, date) DO NOTHING`).
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

// GetSiteAnalytics carrega a projeção tipada do site: keywords com seus
// rollups mensais ordenados por (ano, mês) decrescente. Retorna nil quando o
// site ainda não tem raiz
func (r *keywordAnalyticsRepository) GetSiteAnalytics(siteURL string) (*domain.SiteAnalytics, error) {
	rootQuery, rootArgs, err := squirrel.
		Select("kar.id, kar.site_url, kar.created_at, kar.updated_at").
		From(keywordRootsTable).
		Where(squirrel.Eq{"kar.site_url": siteURL}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	root := &domain.KeywordAnalyticsRoot{}
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
		return nil, fmt.Errorf("erro ao escanear raiz de analytics: %w", err)
	}

	query, args, err := squirrel.
		Select(
			"kr.id, kr.keyword, kr.initial_position",
			"kms.id, kms.month, kms.year, kms.average_rank, kms.search_volume, kms.top_ranking_page_url",
		).
		From(keywordRecordsJoin).
		LeftJoin("keyword_monthly_stats kms ON kms.keyword_id = kr.id").
		Where(squirrel.Eq{"kr.root_id": root.ID}).
		OrderBy("kr.keyword ASC", "kms.year DESC", "kms.month DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	analytics := &domain.SiteAnalytics{
		Root:     root,
		Keywords: make([]*domain.KeywordAnalytics, 0),
	}

	byKeywordID := make(map[string]*domain.KeywordAnalytics)

	for rows.Next() {
		var (
			keywordID       string
			keyword         string
			initialPosition sql.NullFloat64
			statID          sql.NullInt64
			month           sql.NullInt64
			year            sql.NullInt64
			averageRank     sql.NullFloat64
			searchVolume    sql.NullInt64
			topPageURL      sql.NullString
		)

		err = rows.Scan(
			&keywordID,
			&keyword,
			&initialPosition,
			&statID,
			&month,
			&year,
			&averageRank,
			&searchVolume,
			&topPageURL,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear analytics da keyword: %w", err)
		}

		entry, ok := byKeywordID[keywordID]
		if !ok {
			entry = &domain.KeywordAnalytics{
				KeywordID:    keywordID,
				Keyword:      keyword,
				MonthlyStats: make([]*domain.MonthlyStat, 0),
			}
			if initialPosition.Valid {
				position := initialPosition.Float64
				entry.InitialPosition = &position
			}
			byKeywordID[keywordID] = entry
			analytics.Keywords = append(analytics.Keywords, entry)
		}

		// LEFT JOIN: keyword sem rollup mensal vem com colunas nulas
		if statID.Valid {
			entry.MonthlyStats = append(entry.MonthlyStats, &domain.MonthlyStat{
				ID:                statID.Int64,
				KeywordID:         keywordID,
				Month:             int(month.Int64),
				Year:              int(year.Int64),
				AverageRank:       averageRank.Float64,
				SearchVolume:      int(searchVolume.Int64),
				TopRankingPageURL: topPageURL.String,
			})
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return analytics, nil
}
