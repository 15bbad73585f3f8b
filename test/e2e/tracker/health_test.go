package tracker_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/fernwick/stockfolio/pkg/foliosdk"
	"github.com/stretchr/testify/require"
)

// TestHealthProbes verifies the liveness and readiness endpoints respond
// without a session and report a healthy database.
func TestHealthProbes(t *testing.T) {
	baseURL, cleanup := setupTrackerContainer(t)
	defer cleanup()

	assertHealthy(t, baseURL)

	res, err := http.Get(baseURL + "/readyz")
	require.NoError(t, err)
	defer func() { _ = res.Body.Close() }()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var health foliosdk.HealthResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&health))
	require.Equal(t, "ok", health.Status)
	require.NotEmpty(t, health.Version)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)
}
