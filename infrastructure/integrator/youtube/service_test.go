package youtube_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/earnings-report-api/internal/config"
	"github.com/vfg2006/earnings-report-api/internal/usecases/reporting"
	"github.com/vfg2006/earnings-report-api/pkg/log"

	"github.com/vfg2006/earnings-report-api/infrastructure/integrator/youtube"
	"github.com/vfg2006/earnings-report-api/infrastructure/integrator/youtube/ytclient"
)

func init() {
	log.SetupTestLogger()
}

type staticTokenProvider struct {
	token string
	err   error
}

func (p staticTokenProvider) GetValidAccessToken(_ context.Context) (string, error) {
	return p.token, p.err
}

const channelList = `{
	"items": [
		{"id": "ch-1", "snippet": {"title": "Canal Um"}},
		{"id": "ch-2", "snippet": {"title": "Canal Dois"}},
		{"id": "ch-3", "snippet": {"title": "Canal Vazio"}}
	]
}`

func channelReport(channelID string) string {
	switch channelID {
	case "ch-1":
		return `{
			"rows": [
				["2026-08-30", 1.5, 3000, 600, 10, 2],
				["2026-08-31", 2.5, 5000, 900, 5, 8]
			]
		}`
	case "ch-2":
		return `{
			"rows": [
				["2026-08-30", 10.0, 4000, 1200, 20, 0],
				["2026-08-31", 10.0, 4000, 1200, 0, 0]
			]
		}`
	default:
		return `{"rows": []}`
	}
}

func newYouTubeServer(t *testing.T) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer valid-token", r.Header.Get("Authorization"))

		switch {
		case strings.HasSuffix(r.URL.Path, "/channels"):
			fmt.Fprint(w, channelList)

		case strings.HasSuffix(r.URL.Path, "/reports"):
			filters := r.URL.Query().Get("filters")
			channelID := strings.TrimPrefix(filters, "channel==")
			fmt.Fprint(w, channelReport(channelID))

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func newIntegrator(serverURL string, tokens youtube.TokenProvider) *youtube.Integrator {
	cfg := &config.Config{
		YouTube: config.YouTube{
			APIBaseURL:       serverURL,
			AnalyticsBaseURL: serverURL,
			ContentOwnerID:   "owner-1",
		},
		EarningsSync: config.EarningsSync{RequestDelayMs: 0},
	}

	return youtube.NewIntegrator(cfg, ytclient.NewClient(cfg), tokens)
}

func TestBuildReport(t *testing.T) {
	server := newYouTubeServer(t)
	defer server.Close()

	integrator := newIntegrator(server.URL, staticTokenProvider{token: "valid-token"})

	report, err := integrator.BuildReport(reporting.Credentials{}, "2026-08-30", "2026-08-31", nil)
	require.NoError(t, err)

	// ch-3 não tem receita nem visualizações: descartado
	require.Len(t, report.Entities, 2)

	first := report.Entities[0]
	assert.Equal(t, "ch-2", first.ID)
	assert.Equal(t, "Canal Dois", first.DisplayName)
	assert.InDelta(t, 20.0, first.Revenue, 1e-9)
	assert.Equal(t, int64(8000), first.Views)
	assert.InDelta(t, 2.5, first.RPM, 1e-9)
	assert.InDelta(t, 40.0, first.WatchHours, 1e-9)
	assert.Equal(t, int64(20), first.SubscriberDelta)

	second := report.Entities[1]
	assert.Equal(t, "ch-1", second.ID)
	assert.InDelta(t, 4.0, second.Revenue, 1e-9)
	assert.Equal(t, int64(8000), second.Views)
	// RPM do YouTube com três casas decimais: 4 / 8000 * 1000 = 0.5
	assert.InDelta(t, 0.5, second.RPM, 1e-9)
	assert.InDelta(t, 25.0, second.WatchHours, 1e-9)
	assert.Equal(t, int64(5), second.SubscriberDelta)

	require.Len(t, report.Daily, 2)
	assert.Equal(t, "2026-08-30", report.Daily[0].Date)
	assert.InDelta(t, 11.5, report.Daily[0].Revenue, 1e-9)
	assert.Equal(t, int64(7000), report.Daily[0].Views)
}

func TestBuildReportRPMThreeDecimals(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/channels") {
			fmt.Fprint(w, `{"items": [{"id": "ch-9", "snippet": {"title": "Canal Nove"}}]}`)
			return
		}

		fmt.Fprint(w, `{"rows": [["2026-08-31", 1.0, 3000, 60, 0, 0]]}`)
	}))
	defer server.Close()

	integrator := newIntegrator(server.URL, staticTokenProvider{token: "valid-token"})

	report, err := integrator.BuildReport(reporting.Credentials{}, "2026-08-31", "2026-08-31", nil)
	require.NoError(t, err)

	require.Len(t, report.Entities, 1)
	// 1 / 3000 * 1000 = 0.333...
	assert.InDelta(t, 0.333, report.Entities[0].RPM, 1e-9)
}

func TestBuildReportWithExclusions(t *testing.T) {
	server := newYouTubeServer(t)
	defer server.Close()

	integrator := newIntegrator(server.URL, staticTokenProvider{token: "valid-token"})

	excluded := map[string]bool{"ch-2": true}

	report, err := integrator.BuildReport(reporting.Credentials{}, "2026-08-30", "2026-08-31", excluded)
	require.NoError(t, err)

	require.Len(t, report.Entities, 1)
	assert.Equal(t, "ch-1", report.Entities[0].ID)
}

func TestBuildReportChannelFailureIsSkipped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/channels") {
			fmt.Fprint(w, channelList)
			return
		}

		filters := r.URL.Query().Get("filters")
		if strings.Contains(filters, "ch-1") {
			fmt.Fprint(w, `{"error": {"code": 403, "message": "acesso negado", "status": "PERMISSION_DENIED"}}`)
			return
		}

		fmt.Fprint(w, channelReport(strings.TrimPrefix(filters, "channel==")))
	}))
	defer server.Close()

	integrator := newIntegrator(server.URL, staticTokenProvider{token: "valid-token"})

	report, err := integrator.BuildReport(reporting.Credentials{}, "2026-08-30", "2026-08-31", nil)
	require.NoError(t, err)

	require.Len(t, report.Entities, 1)
	assert.Equal(t, "ch-2", report.Entities[0].ID)
}

func TestBuildReportTokenFailure(t *testing.T) {
	integrator := newIntegrator("http://unused", staticTokenProvider{err: assert.AnError})

	_, err := integrator.BuildReport(reporting.Credentials{}, "2026-08-01", "2026-08-31", nil)
	assert.Error(t, err)
}
