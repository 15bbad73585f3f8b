package tracker_test

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/fernwick/stockfolio/pkg/foliosdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for the tracker end-to-end tests.
 * This includes container setup, account helpers, and assertions.
 */

const (
	testImageName = "stockfolio-test:latest"

	defaultPassword = "secret1"
)

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Stockfolio Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Stockfolio Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image if it doesn't exist.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/stockfolio/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupTrackerContainer starts the service in a container and returns the
// base URL. Rate limits are relaxed so rapid test requests don't trip the
// production brute-force guards.
func setupTrackerContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"STOCKFOLIO_DATABASE_FILE":    "/tmp/stockfolio.db",
			"STOCKFOLIO_PEPPER_FILE":      "/tmp/pepper",
			"STOCKFOLIO_SESSION_KEY_FILE": "/tmp/session.key",
			"STOCKFOLIO_ISSUER":           "stockfolio",
			"ENV":                         "test",
			"LOG_LEVEL":                   "info",
			"LOG_FORMAT":                  "json",
			"RATELIMIT_STRICT_REQUESTS":   "1000",
			"RATELIMIT_STRICT_BURST":      "1000",
			"RATELIMIT_MODERATE_REQUESTS": "1000",
			"RATELIMIT_MODERATE_BURST":    "1000",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// setupTrackerContainerWithDefaultRateLimits starts the service with
// production rate limits, specifically for testing that limiting works.
func setupTrackerContainerWithDefaultRateLimits(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"STOCKFOLIO_DATABASE_FILE":    "/tmp/stockfolio.db",
			"STOCKFOLIO_PEPPER_FILE":      "/tmp/pepper",
			"STOCKFOLIO_SESSION_KEY_FILE": "/tmp/session.key",
			"ENV":                         "test",
			"LOG_LEVEL":                   "info",
			"LOG_FORMAT":                  "json",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// newAccount registers and logs in a fresh user, returning a client whose
// cookie jar holds the session.
func newAccount(t *testing.T, baseURL, email, username string) *foliosdk.Client {
	t.Helper()
	ctx := context.Background()

	client, err := foliosdk.NewClient(baseURL)
	require.NoError(t, err)

	_, err = client.Register(ctx, foliosdk.RegisterRequest{
		Email:    email,
		Username: username,
		Password: defaultPassword,
	})
	require.NoError(t, err)

	require.NoError(t, client.Login(ctx, foliosdk.LoginRequest{
		Email:    email,
		Password: defaultPassword,
	}))

	return client
}

// assertAPIError checks that an error is an *foliosdk.APIError with the
// given status and kind.
func assertAPIError(t *testing.T, err error, status int, kind string) {
	t.Helper()

	var apiErr *foliosdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, kind, apiErr.Kind)
}

// assertHealthy verifies the /livez probe responds OK.
func assertHealthy(t *testing.T, baseURL string) {
	t.Helper()

	res, err := http.Get(baseURL + "/livez")
	require.NoError(t, err)
	defer func() { _ = res.Body.Close() }()
	require.Equal(t, http.StatusOK, res.StatusCode)
}
