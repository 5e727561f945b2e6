package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HyunseokSon/Addicton-sub000/internal/api"
	"github.com/HyunseokSon/Addicton-sub000/internal/factory"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "mintonctl-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/mintonctl")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func (r *cliRunner) runWithKey(key string, args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--admin-key", key,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	server   *http.Server
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	// Create application
	app, err := factory.New(factory.Config{})
	require.NoError(t, err)
	require.NoError(t, app.Bootstrap(context.Background()))

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	router := api.NewRouter(api.RouterConfig{
		Logger:             logger,
		RosterController:   app.RosterController,
		MatchingController: app.MatchingController,
		SessionController:  app.SessionController,
		AuditRecorder:      app.AuditRecorder,
		AdminService:       app.AdminService,
	})

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		server: server,
		addr:   serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// setAdminPassword closes the admin gate through the HTTP API. The CLI
// has no password command; keys are set out of band.
func setAdminPassword(t *testing.T, serverURL, password string) {
	t.Helper()

	body, err := json.Marshal(map[string]string{"password": password})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPut, serverURL+"/api/v1/admin/password", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
}

// Response types for JSON parsing
type playerResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	State     string `json:"state"`
	Rank      string `json:"rank"`
	GameCount int    `json:"game_count"`
}

type playerListResponse struct {
	Players []playerResponse `json:"players"`
}

type teamResponse struct {
	ID      string `json:"id"`
	State   string `json:"state"`
	CourtID string `json:"court_id"`
	Members []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"members"`
}

type teamListResponse struct {
	Teams []teamResponse `json:"teams"`
}

type courtResponse struct {
	ID             string `json:"id"`
	Index          int    `json:"index"`
	Name           string `json:"name"`
	Status         string `json:"status"`
	TeamID         string `json:"team_id"`
	ElapsedSeconds int    `json:"elapsed_seconds"`
}

type courtListResponse struct {
	Courts []courtResponse `json:"courts"`
}

type settingsResponse struct {
	TeamSize            int `json:"team_size"`
	CourtCount          int `json:"court_count"`
	GameDurationMinutes int `json:"game_duration_minutes"`
}

type sessionResponse struct {
	Settings     settingsResponse `json:"settings"`
	PlayerCount  int              `json:"player_count"`
	QueuedTeams  int              `json:"queued_teams"`
	GamesRunning int              `json:"games_running"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var resp healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCLI_PlayerCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Add a single ranked player
	output, err := cli.run("players", "add", "Alice", "--rank", "A")
	require.NoError(t, err, "output: %s", output)

	var alice playerResponse
	require.NoError(t, json.Unmarshal([]byte(output), &alice))
	assert.Equal(t, "Alice", alice.Name)
	assert.Equal(t, "A", alice.Rank)
	assert.Equal(t, "waiting", alice.State)

	// Bulk add
	output, err = cli.run("players", "add", "Bob", "Carol", "Dave")
	require.NoError(t, err, "output: %s", output)

	var added playerListResponse
	require.NoError(t, json.Unmarshal([]byte(output), &added))
	assert.Len(t, added.Players, 3)

	// List
	output, err = cli.run("players", "list")
	require.NoError(t, err, "output: %s", output)

	var roster playerListResponse
	require.NoError(t, json.Unmarshal([]byte(output), &roster))
	assert.Len(t, roster.Players, 4)

	// Rest a player
	output, err = cli.run("players", "state", alice.ID, "resting")
	require.NoError(t, err, "output: %s", output)

	var rested playerResponse
	require.NoError(t, json.Unmarshal([]byte(output), &rested))
	assert.Equal(t, "resting", rested.State)

	// Remove a player
	output, err = cli.run("players", "remove", alice.ID)
	require.NoError(t, err, "output: %s", output)

	var msg messageResponse
	require.NoError(t, json.Unmarshal([]byte(output), &msg))
	assert.Equal(t, "Player removed", msg.Message)

	output, err = cli.run("players", "list")
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &roster))
	assert.Len(t, roster.Players, 3)
}

func TestCLI_FullSessionFlow(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Eight players fill two teams of four
	output, err := cli.run("players", "add", "Ari", "Bo", "Cam", "Dana", "Eli", "Fern", "Gus", "Hana")
	require.NoError(t, err, "output: %s", output)

	// Match into teams
	output, err = cli.run("match")
	require.NoError(t, err, "output: %s", output)

	var matched teamListResponse
	require.NoError(t, json.Unmarshal([]byte(output), &matched))
	require.Len(t, matched.Teams, 2)
	for _, team := range matched.Teams {
		assert.Equal(t, "queued", team.State)
		assert.Len(t, team.Members, 4)
	}

	// Start everything
	output, err = cli.run("start", "--all")
	require.NoError(t, err, "output: %s", output)

	var started teamListResponse
	require.NoError(t, json.Unmarshal([]byte(output), &started))
	require.Len(t, started.Teams, 2)
	for _, team := range started.Teams {
		assert.Equal(t, "playing", team.State)
		assert.NotEmpty(t, team.CourtID)
	}

	// Both courts occupied
	output, err = cli.run("courts")
	require.NoError(t, err, "output: %s", output)

	var courts courtListResponse
	require.NoError(t, json.Unmarshal([]byte(output), &courts))
	require.Len(t, courts.Courts, 2)
	for _, court := range courts.Courts {
		assert.Equal(t, "occupied", court.Status)
		assert.NotEmpty(t, court.TeamID)
	}

	// End the game on court 1 by index
	output, err = cli.run("end", "1")
	require.NoError(t, err, "output: %s", output)

	var finished teamResponse
	require.NoError(t, json.Unmarshal([]byte(output), &finished))
	assert.Equal(t, "finished", finished.State)
	assert.Len(t, finished.Members, 4)

	// One game left running
	output, err = cli.run("session", "show")
	require.NoError(t, err, "output: %s", output)

	var session sessionResponse
	require.NoError(t, json.Unmarshal([]byte(output), &session))
	assert.Equal(t, 8, session.PlayerCount)
	assert.Equal(t, 1, session.GamesRunning)
	assert.Equal(t, 0, session.QueuedTeams)

	output, err = cli.run("teams")
	require.NoError(t, err, "output: %s", output)

	var remaining teamListResponse
	require.NoError(t, json.Unmarshal([]byte(output), &remaining))
	assert.Len(t, remaining.Teams, 1)
}

func TestCLI_StartOnChosenCourt(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("players", "add", "Ari", "Bo", "Cam", "Dana")
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("match")
	require.NoError(t, err, "output: %s", output)

	var matched teamListResponse
	require.NoError(t, json.Unmarshal([]byte(output), &matched))
	require.Len(t, matched.Teams, 1)

	// Court 2 by index rather than id
	output, err = cli.run("start", matched.Teams[0].ID, "--court", "2")
	require.NoError(t, err, "output: %s", output)

	var started teamResponse
	require.NoError(t, json.Unmarshal([]byte(output), &started))
	assert.Equal(t, "playing", started.State)

	output, err = cli.run("courts")
	require.NoError(t, err, "output: %s", output)

	var courts courtListResponse
	require.NoError(t, json.Unmarshal([]byte(output), &courts))
	for _, court := range courts.Courts {
		if court.Index == 2 {
			assert.Equal(t, "occupied", court.Status)
			assert.Equal(t, started.CourtID, court.ID)
		} else {
			assert.Equal(t, "available", court.Status)
		}
	}
}

func TestCLI_SessionSettings(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Gate is open until a password is set
	output, err := cli.run("session", "set", "--court-count", "3")
	require.NoError(t, err, "output: %s", output)

	var settings settingsResponse
	require.NoError(t, json.Unmarshal([]byte(output), &settings))
	assert.Equal(t, 3, settings.CourtCount)
	assert.Equal(t, 4, settings.TeamSize)

	output, err = cli.run("courts")
	require.NoError(t, err, "output: %s", output)

	var courts courtListResponse
	require.NoError(t, json.Unmarshal([]byte(output), &courts))
	assert.Len(t, courts.Courts, 3)

	// Unset flags keep their values
	output, err = cli.run("session", "set", "--duration", "20")
	require.NoError(t, err, "output: %s", output)

	require.NoError(t, json.Unmarshal([]byte(output), &settings))
	assert.Equal(t, 3, settings.CourtCount)
	assert.Equal(t, 20, settings.GameDurationMinutes)
}

func TestCLI_AdminGate(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	setAdminPassword(t, ts.addr, "letmein")

	// Gated command without a key
	output, err := cli.run("session", "reset")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "admin key")

	// Wrong key
	output, err = cli.runWithKey("nope", "session", "reset")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "invalid")

	// Right key
	output, err = cli.runWithKey("letmein", "session", "reset")
	require.NoError(t, err, "output: %s", output)

	var msg messageResponse
	require.NoError(t, json.Unmarshal([]byte(output), &msg))
	assert.Equal(t, "Session reset", msg.Message)
}

func TestCLI_ErrorHandling(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Unknown player
	output, err := cli.run("players", "state", "nobody", "resting")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "not found")

	// Match with an empty roster
	output, err = cli.run("match")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "not enough")

	// Court index out of range
	output, err = cli.run("end", "99")
	assert.Error(t, err)
	assert.Contains(t, output, "no court with index 99")
}
