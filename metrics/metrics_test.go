package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seo-optimizer/contentseo/rules"
)

func TestObserver(t *testing.T) {
	m := New()

	m.RuleEvaluated("title-length", rules.StatusPass)
	m.RuleEvaluated("title-length", rules.StatusPass)
	m.RuleEvaluated("title-length", rules.StatusFail)
	m.RulePanicked("broken")
	m.AnalysisCompleted(3, 20*time.Millisecond)
	m.RecordFetch(true)
	m.RecordFetch(false)
	m.RecordFetch(false)
	m.ObserveFetch(time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RuleResults.WithLabelValues("title-length", "pass")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RuleResults.WithLabelValues("title-length", "fail")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RulePanics.WithLabelValues("broken")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Analyses))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.Keyphrases))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FetchCache.WithLabelValues("hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.FetchCache.WithLabelValues("miss")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.FetchDuration))
}

func TestHandler(t *testing.T) {
	m := New()
	m.AnalysisCompleted(1, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "contentseo_analyses_total 1"))
	assert.Contains(t, body, "contentseo_analysis_duration_seconds_bucket")
	assert.Contains(t, body, "go_goroutines")
}

func TestInstancesAreIndependent(t *testing.T) {
	a, b := New(), New()
	a.AnalysisCompleted(1, 0)

	assert.Equal(t, 1.0, testutil.ToFloat64(a.Analyses))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.Analyses))
}
