package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/seo-campaign-api/infrastructure/repository/mocks"
	"github.com/vfg2006/seo-campaign-api/internal/domain"
	analyzingmocks "github.com/vfg2006/seo-campaign-api/internal/usecases/analyzing/mocks"
)

func testCampaigns(ids ...string) []*domain.Campaign {
	campaigns := make([]*domain.Campaign, 0, len(ids))
	for _, id := range ids {
		campaigns = append(campaigns, &domain.Campaign{
			ID:                id,
			SearchConsoleSite: "https://oticavisaocentral.com.br/",
			Status:            domain.CampaignStatusActive,
		})
	}
	return campaigns
}

func TestDailyPositionSyncService_processCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := analyzingmocks.NewMockAnalyzer(ctrl)

	service := &DailyPositionSyncService{
		config: DailyPositionSyncConfig{
			MaxConcurrentJobs:   2,
			RequestDelaySeconds: 0,
		},
		analyzer: mockAnalyzer,
	}

	campaigns := testCampaigns("CMP001", "CMP002", "CMP003")

	mockAnalyzer.EXPECT().FetchAndSaveDailyData("CMP001").Return(true)
	mockAnalyzer.EXPECT().FetchAndSaveDailyData("CMP002").Return(false)
	mockAnalyzer.EXPECT().FetchAndSaveDailyData("CMP003").Return(true)

	succeeded, failed := service.processCampaigns(campaigns, service.analyzer.FetchAndSaveDailyData)

	assert.Equal(t, 2, succeeded)
	assert.Equal(t, 1, failed)
}

func TestDailyPositionSyncService_syncAllCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := analyzingmocks.NewMockAnalyzer(ctrl)
	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)

	service := &DailyPositionSyncService{
		config: DailyPositionSyncConfig{
			MaxConcurrentJobs:   3,
			RequestDelaySeconds: 0,
			SyncEnabled:         true,
		},
		campaignRepo: mockCampaignRepo,
		analyzer:     mockAnalyzer,
	}

	campaigns := testCampaigns("CMP001", "CMP002")

	mockCampaignRepo.EXPECT().
		ListCampaigns([]domain.CampaignStatus{domain.CampaignStatusActive}).
		Return(campaigns, nil)
	mockAnalyzer.EXPECT().FetchAndSaveDailyData("CMP001").Return(true)
	mockAnalyzer.EXPECT().FetchAndSaveDailyData("CMP002").Return(true)

	service.syncAllCampaigns()

	assert.False(t, service.syncRunning)
	assert.False(t, service.lastSyncCompletedAt.IsZero())
}

func TestDailyPositionSyncService_syncSemCampanhasAtivas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)

	service := &DailyPositionSyncService{
		config:       DailyPositionSyncConfig{SyncEnabled: true},
		campaignRepo: mockCampaignRepo,
	}

	mockCampaignRepo.EXPECT().
		ListCampaigns([]domain.CampaignStatus{domain.CampaignStatusActive}).
		Return(nil, nil)

	// Sem campanhas ativas nenhuma operação é disparada
	service.syncAllCampaigns()

	assert.False(t, service.syncRunning)
}

func TestDailyPositionSyncService_TriggerHistoricalBackfill(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := analyzingmocks.NewMockAnalyzer(ctrl)
	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)

	service := &DailyPositionSyncService{
		config: DailyPositionSyncConfig{
			MaxConcurrentJobs:   1,
			RequestDelaySeconds: 0,
			SyncEnabled:         true,
		},
		campaignRepo: mockCampaignRepo,
		analyzer:     mockAnalyzer,
	}

	done := make(chan struct{})

	mockCampaignRepo.EXPECT().
		ListCampaigns([]domain.CampaignStatus{domain.CampaignStatusActive}).
		Return(testCampaigns("CMP001"), nil)
	mockAnalyzer.EXPECT().
		FetchAndSaveHistoricalDailyData("CMP001").
		DoAndReturn(func(string) bool {
			close(done)
			return true
		})

	service.TriggerHistoricalBackfill()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("backfill histórico não executou dentro do prazo")
	}
}

func TestDailyPositionSyncService_GetStatus(t *testing.T) {
	service := &DailyPositionSyncService{
		config: DailyPositionSyncConfig{
			CronSchedule:        "0 6 * * *",
			MaxConcurrentJobs:   3,
			RequestDelaySeconds: 2,
			SyncEnabled:         true,
		},
	}

	status := service.GetStatus()
	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 6 * * *", status["sync_cron"])
	assert.Equal(t, 3, status["sync_max_concurrent"])
	assert.Equal(t, 2, status["sync_request_delay_s"])
}
