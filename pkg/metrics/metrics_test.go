package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_independentRegistries(t *testing.T) {
	a := NewCollector(Namespace)
	b := NewCollector(Namespace)

	a.GamesStarted.WithLabelValues("single", "easy").Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.GamesStarted.WithLabelValues("single", "easy")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.GamesStarted.WithLabelValues("single", "easy")))
}

func TestCollector_Handler(t *testing.T) {
	c := NewCollector(Namespace)
	c.ResultSaves.WithLabelValues("solo", "ok").Inc()

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `pairs_result_saves_total{kind="solo",status="ok"} 1`)
}
