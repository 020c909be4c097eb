package meta_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/earnings-report-api/internal/config"
	"github.com/vfg2006/earnings-report-api/internal/domain"
	"github.com/vfg2006/earnings-report-api/internal/usecases/reporting"
	"github.com/vfg2006/earnings-report-api/pkg/log"

	"github.com/vfg2006/earnings-report-api/infrastructure/integrator/meta"
	"github.com/vfg2006/earnings-report-api/infrastructure/integrator/meta/metaclient"
)

func init() {
	log.SetupTestLogger()
}

const (
	pageListFirstBatch = `{
		"data": [
			{"id": "page-1", "name": "Página Um", "access_token": "token-1"},
			{"id": "page-2", "name": "Página Dois", "access_token": "token-2"}
		],
		"paging": {"next": "%s/me/accounts?after=cursor&access_token=sys"}
	}`

	pageListSecondBatch = `{
		"data": [
			{"id": "page-3", "name": "Página Três", "access_token": "token-3"},
			{"id": "page-4", "name": "Página Quatro", "access_token": "token-4"}
		]
	}`
)

func earningsBody(micro int64) string {
	return fmt.Sprintf(`{
		"data": [{
			"name": "content_monetization_earnings",
			"period": "day",
			"values": [
				{"end_time": "2026-08-30T08:00:00+0000", "value": {"currency": "USD", "microAmount": %d}},
				{"end_time": "2026-08-31T08:00:00+0000", "value": {"currency": "USD", "microAmount": %d}}
			]
		}]
	}`, micro, micro)
}

func viewsBody(views int) string {
	return fmt.Sprintf(`{
		"data": [{
			"name": "page_views_total",
			"period": "day",
			"values": [
				{"end_time": "2026-08-30T08:00:00+0000", "value": %d},
				{"end_time": "2026-08-31T08:00:00+0000", "value": %d}
			]
		}]
	}`, views, views)
}

func newMetaServer(t *testing.T) *httptest.Server {
	t.Helper()

	var server *httptest.Server

	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/me/accounts"):
			if r.URL.Query().Get("after") == "cursor" {
				fmt.Fprint(w, pageListSecondBatch)
				return
			}

			fmt.Fprintf(w, pageListFirstBatch, server.URL)

		case strings.Contains(r.URL.Path, "/insights"):
			pageID := strings.Split(strings.TrimPrefix(r.URL.Path, "/"), "/")[0]
			metric := r.URL.Query().Get("metric")

			switch pageID {
			case "page-1":
				// 250_000_000 micro por dia = USD 2.50/dia, 1000 views/dia
				if metric == "content_monetization_earnings" {
					fmt.Fprint(w, earningsBody(250_000_000))
					return
				}
				fmt.Fprint(w, viewsBody(1000))

			case "page-2":
				// Página com mais receita, deve aparecer primeiro
				if metric == "content_monetization_earnings" {
					fmt.Fprint(w, earningsBody(1_000_000_000))
					return
				}
				fmt.Fprint(w, viewsBody(2000))

			case "page-3":
				// Falha por entidade: pula a página sem derrubar o relatório
				fmt.Fprint(w, `{"error": {"message": "token expirado", "type": "OAuthException", "code": 190}}`)

			case "page-4":
				// Sem receita e sem visualizações: descartada
				if metric == "content_monetization_earnings" {
					fmt.Fprint(w, earningsBody(0))
					return
				}
				fmt.Fprint(w, viewsBody(0))
			}

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	return server
}

func newIntegrator(serverURL string) *meta.Integrator {
	cfg := &config.Config{
		Meta:         config.Meta{URL: serverURL},
		EarningsSync: config.EarningsSync{RequestDelayMs: 0},
	}

	return meta.NewIntegrator(cfg, metaclient.NewClient(cfg))
}

func metaCredentials() reporting.Credentials {
	return reporting.Credentials{
		Meta: &domain.MetaCredential{SystemToken: "sys"},
	}
}

func TestBuildReport(t *testing.T) {
	server := newMetaServer(t)
	defer server.Close()

	integrator := newIntegrator(server.URL)

	report, err := integrator.BuildReport(metaCredentials(), "2026-08-30", "2026-08-31", nil)
	require.NoError(t, err)

	// page-3 falhou e page-4 não tem dados: sobram duas, ordenadas por receita
	require.Len(t, report.Entities, 2)

	first := report.Entities[0]
	assert.Equal(t, "page-2", first.ID)
	assert.Equal(t, "Página Dois", first.DisplayName)
	assert.InDelta(t, 20.0, first.Revenue, 1e-9)
	assert.Equal(t, int64(4000), first.Views)
	assert.InDelta(t, 5.0, first.RPM, 1e-9)

	second := report.Entities[1]
	assert.Equal(t, "page-1", second.ID)
	assert.InDelta(t, 5.0, second.Revenue, 1e-9)
	assert.Equal(t, int64(2000), second.Views)
	assert.InDelta(t, 2.5, second.RPM, 1e-9)

	// Série diária ordenada por data crescente com totais entre páginas
	require.Len(t, report.Daily, 2)
	assert.Equal(t, "2026-08-30", report.Daily[0].Date)
	assert.Equal(t, "2026-08-31", report.Daily[1].Date)
	assert.InDelta(t, 12.5, report.Daily[0].Revenue, 1e-9)
	assert.Equal(t, int64(3000), report.Daily[0].Views)
}

func TestBuildReportWithExclusions(t *testing.T) {
	server := newMetaServer(t)
	defer server.Close()

	integrator := newIntegrator(server.URL)

	excluded := map[string]bool{"page-2": true}

	report, err := integrator.BuildReport(metaCredentials(), "2026-08-30", "2026-08-31", excluded)
	require.NoError(t, err)

	require.Len(t, report.Entities, 1)
	assert.Equal(t, "page-1", report.Entities[0].ID)

	// Página excluída não contribui para os totais diários
	assert.InDelta(t, 5.0, report.Daily[0].Revenue+report.Daily[1].Revenue, 1e-9)
}

func TestBuildReportZeroEdgeCases(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/me/accounts"):
			fmt.Fprint(w, `{
				"data": [
					{"id": "page-a", "name": "Sem Receita", "access_token": "ta"},
					{"id": "page-b", "name": "Sem Visualizações", "access_token": "tb"}
				]
			}`)

		case strings.Contains(r.URL.Path, "/insights"):
			pageID := strings.Split(strings.TrimPrefix(r.URL.Path, "/"), "/")[0]
			metric := r.URL.Query().Get("metric")

			if pageID == "page-a" {
				// Receita zero mas com visualizações: permanece, com RPM zero
				if metric == "content_monetization_earnings" {
					fmt.Fprint(w, earningsBody(0))
					return
				}
				fmt.Fprint(w, viewsBody(500))
				return
			}

			// Receita sem visualizações: RPM zero independente da receita
			if metric == "content_monetization_earnings" {
				fmt.Fprint(w, earningsBody(250_000_000))
				return
			}
			fmt.Fprint(w, viewsBody(0))
		}
	}))
	defer server.Close()

	integrator := newIntegrator(server.URL)

	report, err := integrator.BuildReport(metaCredentials(), "2026-08-30", "2026-08-31", nil)
	require.NoError(t, err)

	require.Len(t, report.Entities, 2)

	withRevenue := report.Entities[0]
	assert.Equal(t, "page-b", withRevenue.ID)
	assert.Zero(t, withRevenue.RPM)

	withViews := report.Entities[1]
	assert.Equal(t, "page-a", withViews.ID)
	assert.Zero(t, withViews.Revenue)
	assert.Zero(t, withViews.RPM)
	assert.Equal(t, int64(1000), withViews.Views)
}

func TestBuildReportMissingCredential(t *testing.T) {
	integrator := newIntegrator("http://unused")

	_, err := integrator.BuildReport(reporting.Credentials{}, "2026-08-01", "2026-08-31", nil)
	assert.Error(t, err)
}

func TestBuildReportListPagesFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"error": {"message": "token de sistema inválido", "type": "OAuthException", "code": 190}}`)
	}))
	defer server.Close()

	integrator := newIntegrator(server.URL)

	_, err := integrator.BuildReport(metaCredentials(), "2026-08-01", "2026-08-31", nil)
	assert.Error(t, err)
}
