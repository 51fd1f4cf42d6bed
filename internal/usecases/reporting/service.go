package reporting

import (
	"fmt"

	"github.com/vfg2006/seo-campaign-api/infrastructure/repository"
	"github.com/vfg2006/seo-campaign-api/internal/domain"
)

// Reporter expõe as projeções de leitura consumidas pela API. Tudo vem da
// persistência; nenhuma consulta sai para o Search Console por aqui
type Reporter interface {
	ListCampaigns() ([]*domain.Campaign, error)
	GetCampaignAnalytics(campaignID string) (*domain.SiteAnalytics, error)
	GetCampaignTraffic(campaignID string) (*domain.SiteTraffic, error)
}

type Service struct {
	campaignRepo  repository.CampaignRepository
	analyticsRepo repository.KeywordAnalyticsRepository
	trafficRepo   repository.TrafficRepository
}

func NewService(
	campaignRepo repository.CampaignRepository,
	analyticsRepo repository.KeywordAnalyticsRepository,
	trafficRepo repository.TrafficRepository,
) Reporter {
	return &Service{
		campaignRepo:  campaignRepo,
		analyticsRepo: analyticsRepo,
		trafficRepo:   trafficRepo,
	}
}

func (s *Service) ListCampaigns() ([]*domain.Campaign, error) {
	campaigns, err := s.campaignRepo.ListCampaigns(nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar campanhas: %w", err)
	}

	return campaigns, nil
}

// GetCampaignAnalytics retorna a projeção de keywords da campanha. Retorna
// nil quando o site ainda não tem dados persistidos
func (s *Service) GetCampaignAnalytics(campaignID string) (*domain.SiteAnalytics, error) {
	campaign, err := s.campaignRepo.GetCampaignByID(campaignID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar campanha: %w", err)
	}
	if campaign == nil {
		return nil, fmt.Errorf("campanha não encontrada: %s", campaignID)
	}

	analytics, err := s.analyticsRepo.GetSiteAnalytics(campaign.SearchConsoleSite)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar analytics do site: %w", err)
	}

	return analytics, nil
}

// GetCampaignTraffic retorna a projeção de tráfego da campanha. Retorna nil
// quando o site ainda não tem dados persistidos
func (s *Service) GetCampaignTraffic(campaignID string) (*domain.SiteTraffic, error) {
	campaign, err := s.campaignRepo.GetCampaignByID(campaignID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar campanha: %w", err)
	}
	if campaign == nil {
		return nil, fmt.Errorf("campanha não encontrada: %s", campaignID)
	}

	traffic, err := s.trafficRepo.GetSiteTraffic(campaign.SearchConsoleSite)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar tráfego do site: %w", err)
	}

	return traffic, nil
}
