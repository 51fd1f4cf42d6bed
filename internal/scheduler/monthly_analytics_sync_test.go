package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/seo-campaign-api/internal/usecases/analyzing"
	"github.com/vfg2006/seo-campaign-api/internal/usecases/analyzing/mocks"
)

func TestMonthlyAnalyticsSyncService_syncAllCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := mocks.NewMockAnalyzer(ctrl)

	service := &MonthlyAnalyticsSyncService{
		config: MonthlyAnalyticsSyncConfig{
			CronSchedule:   "0 5 1 * *",
			WaitForAllData: true,
			SyncEnabled:    true,
		},
		analyzer: mockAnalyzer,
	}

	mockAnalyzer.EXPECT().
		FetchAllCampaignsData(true).
		Return(&analyzing.BatchResult{
			Total:             3,
			Succeeded:         2,
			Failed:            1,
			FailedCampaignIDs: []string{"CMP002"},
		})

	service.syncAllCampaigns()

	assert.False(t, service.syncRunning)
	assert.False(t, service.lastSyncStartedAt.IsZero())
	assert.False(t, service.lastSyncCompletedAt.IsZero())

	status := service.GetStatus()
	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 5 1 * *", status["sync_cron"])
	assert.Equal(t, 3, status["last_sync_total"])
	assert.Equal(t, 2, status["last_sync_succeeded"])
	assert.Equal(t, 1, status["last_sync_failed"])
}

func TestMonthlyAnalyticsSyncService_syncJaEmAndamentoIgnora(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := mocks.NewMockAnalyzer(ctrl)

	service := &MonthlyAnalyticsSyncService{
		config:      MonthlyAnalyticsSyncConfig{SyncEnabled: true},
		analyzer:    mockAnalyzer,
		syncRunning: true,
	}

	// Nenhuma chamada ao Analyzer é esperada enquanto outra carga roda
	service.syncAllCampaigns()
}

func TestMonthlyAnalyticsSyncService_GetStatusSemExecucao(t *testing.T) {
	service := &MonthlyAnalyticsSyncService{
		config: MonthlyAnalyticsSyncConfig{
			CronSchedule: "0 5 1 * *",
			SyncEnabled:  false,
		},
	}

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_enabled"])
	assert.NotContains(t, status, "last_sync_total")
}
