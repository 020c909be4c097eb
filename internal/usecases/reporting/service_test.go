package reporting_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/earnings-report-api/internal/domain"
	"github.com/vfg2006/earnings-report-api/pkg/log"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/earnings-report-api/internal/usecases/reporting"
	"github.com/vfg2006/earnings-report-api/internal/usecases/reporting/mocks"
)

func init() {
	log.SetupTestLogger()
}

type staticExclusions struct {
	set map[string]bool
	err error
}

func (s staticExclusions) CurrentSet(_ time.Time) (map[string]bool, error) {
	return s.set, s.err
}

func facebookReport() *domain.PeriodReport {
	return &domain.PeriodReport{
		Entities: []domain.EntityRecord{{ID: "page-1", Revenue: 10}},
		Daily:    []domain.DailyTotal{{Date: "2026-08-01", Revenue: 10, Views: 100}},
	}
}

func TestBuildCombinedReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, time.August, 31, 6, 0, 0, 0, time.UTC)
	excluded := map[string]bool{"page-9": true}
	creds := reporting.Credentials{Meta: &domain.MetaCredential{SystemToken: "sys"}}

	youtubeReport := &domain.PeriodReport{
		Entities: []domain.EntityRecord{{ID: "ch-1", Revenue: 4}},
		Daily:    []domain.DailyTotal{{Date: "2026-08-01", Revenue: 4, Views: 50}},
	}

	facebook := mocks.NewMockSourceAdapter(ctrl)
	facebook.EXPECT().
		BuildReport(creds, "2026-08-01", "2026-08-31", excluded).
		Return(facebookReport(), nil)

	youtube := mocks.NewMockSourceAdapter(ctrl)
	youtube.EXPECT().
		BuildReport(creds, "2026-08-01", "2026-08-31", excluded).
		Return(youtubeReport, nil)

	service := reporting.NewService(facebook, youtube, staticExclusions{set: excluded})

	combined, err := service.BuildCombinedReport(now, "2026-08-01", "2026-08-31", creds)
	require.NoError(t, err)

	assert.Equal(t, facebookReport(), combined.Facebook)
	assert.Equal(t, youtubeReport, combined.YouTube)
}

func TestBuildCombinedReportPlatformFailureIsIsolated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, time.August, 31, 6, 0, 0, 0, time.UTC)

	facebook := mocks.NewMockSourceAdapter(ctrl)
	facebook.EXPECT().
		BuildReport(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(facebookReport(), nil)

	youtube := mocks.NewMockSourceAdapter(ctrl)
	youtube.EXPECT().
		BuildReport(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)
	youtube.EXPECT().
		Platform().
		Return("youtube")

	service := reporting.NewService(facebook, youtube, staticExclusions{set: map[string]bool{}})

	combined, err := service.BuildCombinedReport(now, "2026-08-01", "2026-08-31", reporting.Credentials{})
	require.NoError(t, err)

	// A plataforma que falhou rende relatório vazio; a outra segue intacta
	assert.Equal(t, facebookReport(), combined.Facebook)
	assert.Empty(t, combined.YouTube.Entities)
	assert.Empty(t, combined.YouTube.Daily)
}

func TestBuildCombinedReportExclusionFailureFallsBackToEmptySet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, time.August, 31, 6, 0, 0, 0, time.UTC)

	facebook := mocks.NewMockSourceAdapter(ctrl)
	facebook.EXPECT().
		BuildReport(gomock.Any(), gomock.Any(), gomock.Any(), map[string]bool{}).
		Return(facebookReport(), nil)

	youtube := mocks.NewMockSourceAdapter(ctrl)
	youtube.EXPECT().
		BuildReport(gomock.Any(), gomock.Any(), gomock.Any(), map[string]bool{}).
		Return(domain.EmptyPeriodReport(), nil)

	service := reporting.NewService(facebook, youtube, staticExclusions{err: assert.AnError})

	combined, err := service.BuildCombinedReport(now, "2026-08-01", "2026-08-31", reporting.Credentials{})
	require.NoError(t, err)
	assert.NotNil(t, combined)
}
