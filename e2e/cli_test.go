package e2e_test

import (
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

	"github.com/psellars/cardtable/internal/api"
	"github.com/psellars/cardtable/internal/factory"
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
	binaryPath := filepath.Join(projectRoot, "bin", "cardtable-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/cardtable")
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

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	router := api.NewRouter(api.RouterConfig{
		Logger:              logger,
		Records:             app.Records,
		SessionController:   app.SessionController,
		GoFishController:    app.GoFishController,
		EightsController:    app.EightsController,
		PresidentController: app.PresidentController,
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
		addr: serverURL,
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

// Response types for JSON parsing
type cardResponse struct {
	Rank string `json:"rank"`
	Suit string `json:"suit"`
}

type playerResponse struct {
	Name     string         `json:"name"`
	Hand     []cardResponse `json:"hand"`
	NumPairs int            `json:"numPairs"`
}

type gameResponse struct {
	Game struct {
		Code           string           `json:"code"`
		Type           string           `json:"game"`
		Players        []playerResponse `json:"players"`
		Turn           int              `json:"turn"`
		Pond           []cardResponse   `json:"pond"`
		Started        bool             `json:"started"`
		Finished       bool             `json:"finished"`
		PlayerRankings []string         `json:"playerRankings"`
		TurnState      string           `json:"turnState"`
		CurrentCard    *cardResponse    `json:"currentCard"`
	} `json:"game"`
}

type healthResponse struct {
	Status string `json:"status"`
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

func TestCLI_GameLifecycle(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Create game
	output, err := cli.run("game", "create", "crazyeights", "Alice")
	require.NoError(t, err, "output: %s", output)

	var created gameResponse
	require.NoError(t, json.Unmarshal([]byte(output), &created))
	assert.Equal(t, "crazyEights", created.Game.Type)
	assert.False(t, created.Game.Started)
	assert.Len(t, created.Game.Players, 1)
	code := created.Game.Code
	require.Len(t, code, 4)

	// Join
	output, err = cli.run("game", "join", code, "Bob")
	require.NoError(t, err, "output: %s", output)

	var joined gameResponse
	require.NoError(t, json.Unmarshal([]byte(output), &joined))
	assert.Len(t, joined.Game.Players, 2)

	// Get
	output, err = cli.run("game", "get", code)
	require.NoError(t, err, "output: %s", output)

	var fetched gameResponse
	require.NoError(t, json.Unmarshal([]byte(output), &fetched))
	assert.Equal(t, code, fetched.Game.Code)

	// Start
	output, err = cli.run("game", "start", code)
	require.NoError(t, err, "output: %s", output)

	var started gameResponse
	require.NoError(t, json.Unmarshal([]byte(output), &started))
	assert.True(t, started.Game.Started)
	require.NotNil(t, started.Game.CurrentCard)
	for _, p := range started.Game.Players {
		assert.Len(t, p.Hand, 8)
	}

	// Cancel
	output, err = cli.run("game", "cancel", code)
	require.NoError(t, err, "output: %s", output)

	_, err = cli.run("game", "get", code)
	assert.Error(t, err, "should not find game after cancel")
}

func TestCLI_LeaveEmptiesGame(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("game", "create", "gofish", "Alice")
	require.NoError(t, err, "output: %s", output)
	var created gameResponse
	require.NoError(t, json.Unmarshal([]byte(output), &created))
	code := created.Game.Code

	// Last player leaving deletes the game
	output, err = cli.run("game", "leave", code, "Alice")
	require.NoError(t, err, "output: %s", output)

	_, err = cli.run("game", "get", code)
	assert.Error(t, err)
}

func TestCLI_FullGoFishGame(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Set up a two player game
	output, err := cli.run("game", "create", "gofish", "Alice")
	require.NoError(t, err, "output: %s", output)
	var game gameResponse
	require.NoError(t, json.Unmarshal([]byte(output), &game))
	code := game.Game.Code

	output, err = cli.run("game", "join", code, "Bob")
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("game", "start", code)
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &game))
	require.True(t, game.Game.Started)

	// Play legal moves until the game finishes. Every move below is always
	// legal for the current player, so the game must terminate.
	for turns := 0; turns < 2000; turns++ {
		output, err = cli.run("game", "get", code)
		require.NoError(t, err, "output: %s", output)
		require.NoError(t, json.Unmarshal([]byte(output), &game))

		if game.Game.Finished {
			break
		}

		current := game.Game.Players[game.Game.Turn]
		target := game.Game.Players[(game.Game.Turn+1)%2]

		switch game.Game.TurnState {
		case "choosingCard":
			require.NotEmpty(t, current.Hand)
			output, err = cli.run("gofish", "ask", code, current.Name, target.Name, current.Hand[0].Rank)
		default:
			output, err = cli.run("gofish", "draw", code, current.Name)
		}
		require.NoError(t, err, "output: %s", output)
	}

	require.True(t, game.Game.Finished, "game should have finished")
	assert.Len(t, game.Game.PlayerRankings, 2)

	totalPairs := 0
	for _, p := range game.Game.Players {
		totalPairs += p.NumPairs
	}
	assert.Equal(t, 26, totalPairs)
}

func TestCLI_ErrorHandling(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Get non-existent game
	output, err := cli.run("game", "get", "9999")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "not found")

	// Create a game with an unknown type
	output, err = cli.run("game", "create", "poker", "Alice")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "unknown")

	// Bad card shorthand is rejected client-side
	output, err = cli.run("eights", "play", "1234", "Alice", "ZZ")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "invalid")
}
