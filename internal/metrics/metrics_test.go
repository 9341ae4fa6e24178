package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerExposesRegisteredMetrics(t *testing.T) {
	EvaluationsTotal.WithLabelValues("valid").Inc()
	ViolationsTotal.WithLabelValues("slot_alignment").Inc()
	PreferenceScoreTotal.WithLabelValues("ROLE_CONTINUITY").Add(-12.5)
	EvaluationDuration.Observe(0.004)

	server := httptest.NewServer(Handler())
	defer server.Close()

	resp, err := server.Client().Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, 200, resp.StatusCode)
	exposition := string(body)
	assert.Contains(t, exposition, "storecrew_evaluations_total")
	assert.Contains(t, exposition, "storecrew_violations_total")
	assert.Contains(t, exposition, "storecrew_preference_score_total")
	assert.Contains(t, exposition, "storecrew_evaluation_duration_seconds")
}

func TestPreferenceScoreTotalAcceptsPenalties(t *testing.T) {
	gauge := PreferenceScoreTotal.WithLabelValues("ROLE_CONTINUITY")

	assert.NotPanics(t, func() {
		gauge.Add(-30)
		gauge.Add(-30)
	})
}
