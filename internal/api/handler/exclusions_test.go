package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/earnings-report-api/internal/api/handler"
)

type toggleRecorder struct {
	staticExclusions

	period   string
	entityID string
}

func (r *toggleRecorder) Toggle(period, entityID string) ([]string, error) {
	r.period = period
	r.entityID = entityID
	return []string{"page-1", entityID}, nil
}

func withPeriodParam(r *http.Request, period string) *http.Request {
	params := httprouter.Params{{Key: "period", Value: period}}
	ctx := context.WithValue(r.Context(), httprouter.ParamsKey, params)
	return r.WithContext(ctx)
}

func TestToggleExclusion(t *testing.T) {
	service := &toggleRecorder{}

	body := strings.NewReader(`{"entityId": "page-2"}`)
	recorder := httptest.NewRecorder()
	request := withPeriodParam(
		httptest.NewRequest(http.MethodPost, "/v1/exclusions/September%202026/toggle", body),
		"September 2026",
	)

	handler.ToggleExclusion(service).ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "September 2026", service.period)
	assert.Equal(t, "page-2", service.entityID)
	assert.JSONEq(t,
		`{"period": "September 2026", "excludedPageIds": ["page-1", "page-2"]}`,
		recorder.Body.String())
}

func TestToggleExclusionWithoutEntityID(t *testing.T) {
	service := &toggleRecorder{}

	body := strings.NewReader(`{}`)
	recorder := httptest.NewRecorder()
	request := withPeriodParam(
		httptest.NewRequest(http.MethodPost, "/v1/exclusions/September%202026/toggle", body),
		"September 2026",
	)

	handler.ToggleExclusion(service).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
