package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/earnings-report-api/infrastructure/repository/mocks"
	"github.com/vfg2006/earnings-report-api/internal/domain"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/earnings-report-api/internal/api/handler"
)

type staticExclusions struct {
	set map[string]bool
	err error
}

func (s staticExclusions) CurrentSet(_ time.Time) (map[string]bool, error) {
	return s.set, s.err
}

func (s staticExclusions) ListForPeriod(_ string) ([]string, error) {
	return nil, nil
}

func (s staticExclusions) Toggle(_, _ string) ([]string, error) {
	return nil, nil
}

func storedReport() *domain.StoredReport {
	return &domain.StoredReport{
		Month:       "August 2026",
		LastUpdated: time.Date(2026, time.August, 31, 6, 0, 0, 0, time.UTC),
		Facebook: []domain.EntityRecord{
			{ID: "page-1", DisplayName: "Página Um", Revenue: 10},
			{ID: "page-2", DisplayName: "Página Dois", Revenue: 5},
		},
		FacebookDaily: []domain.DailyTotal{{Date: "2026-08-30", Revenue: 15}},
		YouTube: []domain.EntityRecord{
			{ID: "ch-1", DisplayName: "Canal Um", Revenue: 4},
		},
		YouTubeDaily: []domain.DailyTotal{{Date: "2026-08-30", Revenue: 4}},
	}
}

func expectStoredReport(store *mocks.MockConfigStore, key string, report *domain.StoredReport) {
	store.EXPECT().
		GetInto(key, gomock.Any()).
		DoAndReturn(func(_ string, out any) (bool, error) {
			if report == nil {
				return false, nil
			}

			*out.(*domain.StoredReport) = *report
			return true, nil
		})
}

func TestGetStoredReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockConfigStore(ctrl)
	expectStoredReport(store, domain.KeyMTDData, storedReport())

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/v1/reports/mtd", nil)

	handler.GetStoredReport(store, staticExclusions{set: map[string]bool{}}, domain.KeyMTDData).
		ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var body domain.StoredReport
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "August 2026", body.Month)
	assert.Len(t, body.Facebook, 2)
	assert.Len(t, body.YouTube, 1)
}

func TestGetStoredReportReappliesExclusions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockConfigStore(ctrl)
	expectStoredReport(store, domain.KeyMTDData, storedReport())

	// page-2 foi excluída depois da última sincronização: some da resposta
	exclusions := staticExclusions{set: map[string]bool{"page-2": true}}

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/v1/reports/mtd", nil)

	handler.GetStoredReport(store, exclusions, domain.KeyMTDData).ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var body domain.StoredReport
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body.Facebook, 1)
	assert.Equal(t, "page-1", body.Facebook[0].ID)
}

func TestGetStoredReportNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockConfigStore(ctrl)
	expectStoredReport(store, domain.KeyLast7DaysData, nil)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/v1/reports/last7days", nil)

	handler.GetStoredReport(store, staticExclusions{}, domain.KeyLast7DaysData).
		ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
