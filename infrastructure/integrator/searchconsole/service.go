package searchconsole

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	gscdomain "github.com/vfg2006/seo-campaign-api/infrastructure/integrator/searchconsole/domain"
	"github.com/vfg2006/seo-campaign-api/infrastructure/integrator/searchconsole/gscclient"
	"github.com/vfg2006/seo-campaign-api/internal/config"
	"github.com/vfg2006/seo-campaign-api/internal/domain"
)

// referenceTimezone é o fuso em que a API do Search Console agrega os dias.
// As datas efetivas da consulta são sempre renderizadas nele, independente do
// fuso do chamador
const referenceTimezone = "America/Los_Angeles"

// SearchConsoleIntegrator é o fetcher consumido pelo agregador. Retorno
// (nil, nil) significa "sem dados para a janela": o chamador segue com as
// outras janelas. Erros são reservados para falhas fatais da chamada
// (credencial inválida, cota esgotada depois das esperas)
type SearchConsoleIntegrator interface {
	GetAnalytics(account *domain.GoogleAccount, siteURL string, startDate, endDate time.Time, dimensions []string, waitForAllData bool) ([]gscdomain.Row, error)
}

type SearchConsoleService struct {
	cfg      *config.Config
	Client   gscclient.Client
	location *time.Location
	sleep    func(time.Duration)
}

func New(cfg *config.Config, client gscclient.Client) *SearchConsoleService {
	location, err := time.LoadLocation(referenceTimezone)
	if err != nil {
		// O tzdata embarcado sempre conhece o fuso de referência; se não
		// conhecer, renderizamos em UTC e registramos o desvio
		logrus.WithError(err).Warn("searchconsole: reference timezone unavailable, falling back to UTC")
		location = time.UTC
	}

	return &SearchConsoleService{
		cfg:      cfg,
		Client:   client,
		location: location,
		sleep:    time.Sleep,
	}
}

// GetAnalytics busca todas as linhas da janela [startDate, endDate] para o
// site, paginando em blocos de 25.000 linhas. Com waitForAllData, esperas de
// cota são respeitadas até o limite de tentativas; sem ele, a primeira cota
// excedida encerra a paginação e devolve o que já foi acumulado
func (s *SearchConsoleService) GetAnalytics(
	account *domain.GoogleAccount,
	siteURL string,
	startDate, endDate time.Time,
	dimensions []string,
	waitForAllData bool,
) ([]gscdomain.Row, error) {
	req := &gscdomain.QueryRequest{
		StartDate:  s.formatDate(startDate),
		EndDate:    s.formatDate(endDate),
		Dimensions: dimensions,
		RowLimit:   gscclient.RowLimit,
		StartRow:   0,
	}

	var rows []gscdomain.Row
	quotaRetries := 0

	for {
		resp, err := s.Client.Query(siteURL, account, req)

		if err != nil {
			var quotaErr *gscdomain.QuotaError
			var credErr *gscdomain.CredentialError

			switch {
			case errors.Is(err, gscclient.ErrTokenRefreshed):
				// Repetir a mesma página com o token novo
				continue

			case errors.As(err, &quotaErr):
				if !waitForAllData {
					logrus.WithFields(logrus.Fields{
						"site":          siteURL,
						"rows_so_far":   len(rows),
						"wait_for_data": false,
					}).Warn("searchconsole: quota exceeded, returning partial data")
					return rows, nil
				}

				if quotaRetries >= gscclient.MaxQuotaRetries {
					logrus.WithFields(logrus.Fields{
						"site":    siteURL,
						"retries": quotaRetries,
					}).Error("searchconsole: quota still exceeded after all retries")
					return nil, &gscdomain.QuotaError{Retries: quotaRetries}
				}

				quotaRetries++
				logrus.WithFields(logrus.Fields{
					"site":     siteURL,
					"retry":    quotaRetries,
					"cooldown": gscclient.QuotaCooldown.String(),
				}).Warn("searchconsole: quota exceeded, waiting for cooldown")
				s.sleep(gscclient.QuotaCooldown)
				continue

			case errors.As(err, &credErr):
				// Sem credencial válida nenhuma janela pode ser buscada;
				// propagar para o chamador encerrar a fase
				return nil, err

			default:
				logrus.WithError(err).WithFields(logrus.Fields{
					"site":       siteURL,
					"start_date": req.StartDate,
					"end_date":   req.EndDate,
				}).Error("searchconsole: query failed, treating window as empty")
				return nil, nil
			}
		}

		if resp == nil || len(resp.Rows) == 0 {
			break
		}

		rows = append(rows, resp.Rows...)

		// Página incompleta encerra a paginação
		if len(resp.Rows) < gscclient.RowLimit {
			break
		}

		req.StartRow += gscclient.RowLimit
		s.sleep(gscclient.PageDelay)
	}

	if len(rows) == 0 {
		return nil, nil
	}

	return rows, nil
}

// formatDate renderiza a data no fuso de referência da API. Reancoramos os
// componentes de calendário para que o dia não mude com o fuso do chamador
func (s *SearchConsoleService) formatDate(date time.Time) string {
	anchored := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, s.location)
	return anchored.Format(time.DateOnly)
}
