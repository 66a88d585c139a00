package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// These are sanity checks that the recorders can be called without panicking
// and show up on the scrape endpoint.

func TestRecorders(t *testing.T) {
	RecordCheckInsLoaded("file", 10)
	RecordCheckInRejected()
	RecordCheckInsImported(4)
	RecordForecastBuild(nil, 20*time.Millisecond)
	RecordForecastBuild(errors.New("boom"), time.Millisecond)
	RecordChartRendered("Monday")
	SetForecastCheckIns("Monday", 42)
}

func TestMetricsHandler(t *testing.T) {
	RecordChartRendered("Tuesday")

	rr := httptest.NewRecorder()
	MetricsHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `checkin_charts_rendered_total{weekday="Tuesday"}`)
}
