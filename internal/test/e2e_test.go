package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"coinflip/internal/config"
	"coinflip/internal/database"
	"coinflip/internal/handler"
	"coinflip/internal/model"
	"coinflip/internal/remote"
	"coinflip/internal/repository/postgres"
	"coinflip/internal/service"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPool *pgxpool.Pool

const minDeposit = "10000000000000000000000"

// Runs as first function
func TestMain(m *testing.M) {
	if os.Getenv("SKIP_E2E") != "" {
		fmt.Println("Skipping E2E tests")
		os.Exit(0)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	pool, err := database.NewPool(ctx, cfg.Database)
	if err != nil {
		fmt.Printf("database not available, E2E tests will be skipped: %v\n", err)
		os.Exit(m.Run())
	}
	if err := database.EnsureSchema(ctx, pool); err != nil {
		fmt.Printf("failed to prepare schema: %v\n", err)
		pool.Close()
		os.Exit(1)
	}

	testPool = pool
	code := m.Run()
	pool.Close()
	os.Exit(code)
}

// zeroEntropy makes every draw 0, so every flip lands on Heads.
type zeroEntropy struct{}

func (zeroEntropy) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}

type e2eEnv struct {
	router   http.Handler
	resolver service.Resolver
	promises *service.Promises
}

func setupE2E(t *testing.T) e2eEnv {
	if testPool == nil {
		t.Skip("Database connection not available")
	}

	_, err := testPool.Exec(context.Background(), "DELETE FROM pending_wagers")
	require.NoError(t, err)

	logger := zerolog.Nop()
	wagerCfg := config.WagerConfig{
		MinDeposit:  decimal.RequireFromString(minDeposit),
		CallbackGas: uint64(5 * model.TeraGas),
		DefaultGas:  uint64(300 * model.TeraGas),
	}
	remoteCfg := config.RemoteConfig{
		ContractID:          "outlayer.near",
		Repo:                "https://github.com/zavodil/random-ark",
		Commit:              "main",
		BuildTarget:         "wasm32-wasip1",
		MaxInstructions:     10_000_000_000,
		MaxMemoryMB:         128,
		MaxExecutionSeconds: 60,
		CallTimeout:         10 * time.Second,
	}

	pendingRepo := postgres.NewPendingRepository(testPool)
	executor := remote.NewLocalExecutor(zeroEntropy{}, 10*model.TeraGas, logger)
	promises := service.NewPromises()
	resolver := service.NewResolver(pendingRepo, promises, logger)
	flipSvc := service.NewFlipService(pendingRepo, executor, resolver, promises, wagerCfg, remoteCfg, logger)

	h := handler.NewHandler(flipSvc, executor, model.Gas(wagerCfg.DefaultGas), 10*time.Second, logger)
	return e2eEnv{router: h.SetupRoutes(), resolver: resolver, promises: promises}
}

func pendingCount(t *testing.T) int {
	var n int
	err := testPool.QueryRow(context.Background(), "SELECT COUNT(*) FROM pending_wagers").Scan(&n)
	require.NoError(t, err)
	return n
}

func flip(router http.Handler, player, choice, deposit string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(model.FlipRequest{Choice: choice, Deposit: deposit})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/flips", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(handler.HeaderPlayerID, player)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// Test_ConcurrentFlips_EachResolvedOnce verifies:
// - Concurrent wagers from many players all resolve
// - Heads wins and Tails loses against an all-zero entropy source
// - The pending table is empty once every response is back
func Test_ConcurrentFlips_EachResolvedOnce(t *testing.T) {
	env := setupE2E(t)

	const numRequests = 20

	// Channel to synchronize goroutine start
	barrier := make(chan struct{})

	type result struct {
		choice     string
		statusCode int
		outcome    model.FlipOutcome
	}
	results := make(chan result, numRequests)

	var wg sync.WaitGroup
	wg.Add(numRequests)

	for i := 0; i < numRequests; i++ {
		choice := "Heads"
		if i%2 == 1 {
			choice = "Tails"
		}
		player := fmt.Sprintf("player-%d.near", i)

		go func() {
			defer wg.Done()
			<-barrier

			w := flip(env.router, player, choice, minDeposit)

			var outcome model.FlipOutcome
			_ = json.Unmarshal(w.Body.Bytes(), &outcome)
			results <- result{choice: choice, statusCode: w.Code, outcome: outcome}
		}()
	}

	close(barrier)
	wg.Wait()
	close(results)

	var wins, losses int
	for res := range results {
		require.Equal(t, http.StatusOK, res.statusCode)
		assert.Equal(t, model.Heads, res.outcome.Result)
		assert.Equal(t, uint32(0), res.outcome.RandomNumber)

		if res.choice == "Heads" {
			assert.True(t, res.outcome.Won)
			assert.Contains(t, res.outcome.Message, "won")
			wins++
		} else {
			assert.False(t, res.outcome.Won)
			assert.Contains(t, res.outcome.Message, "lost")
			losses++
		}
	}

	assert.Equal(t, numRequests/2, wins)
	assert.Equal(t, numRequests/2, losses)
	assert.Equal(t, 0, pendingCount(t), "every pending wager should be taken")
	assert.Equal(t, 0, env.promises.Len())
}

// Test_DuplicateCallbacks_OnlyFirstResolves races several callbacks for the
// same request id against the postgres pending table.
func Test_DuplicateCallbacks_OnlyFirstResolves(t *testing.T) {
	env := setupE2E(t)
	ctx := context.Background()

	requestID := uuid.NewString()
	_, err := testPool.Exec(ctx,
		"INSERT INTO pending_wagers (request_id, player, choice, deposit, created_at) VALUES ($1, $2, $3, $4, NOW())",
		requestID, "alice.near", int16(model.Heads), decimal.RequireFromString(minDeposit))
	require.NoError(t, err)

	const numCallbacks = 10
	barrier := make(chan struct{})
	errs := make(chan error, numCallbacks)

	var wg sync.WaitGroup
	wg.Add(numCallbacks)
	for i := 0; i < numCallbacks; i++ {
		go func() {
			defer wg.Done()
			<-barrier
			_, err := env.resolver.Resolve(ctx, requestID, model.ValueResult(model.RandomResponse{RandomNumber: 0}))
			errs <- err
		}()
	}

	close(barrier)
	wg.Wait()
	close(errs)

	var resolved, rejected int
	for err := range errs {
		if err == nil {
			resolved++
			continue
		}
		assert.ErrorIs(t, err, model.ErrWagerNotFound)
		rejected++
	}

	assert.Equal(t, 1, resolved)
	assert.Equal(t, numCallbacks-1, rejected)
	assert.Equal(t, 0, pendingCount(t))
}

// Test_BasicFlipFlow verifies validation happens before anything is stored
func Test_BasicFlipFlow(t *testing.T) {
	env := setupE2E(t)

	t.Run("Deposit below minimum is rejected", func(t *testing.T) {
		below := decimal.RequireFromString(minDeposit).Sub(decimal.NewFromInt(1)).String()

		w := flip(env.router, "alice.near", "Heads", below)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var errResp model.ErrorResponse
		_ = json.Unmarshal(w.Body.Bytes(), &errResp)
		assert.Equal(t, "INSUFFICIENT_DEPOSIT", errResp.Code)
		assert.Equal(t, 0, pendingCount(t))
	})

	t.Run("Deposit at minimum proceeds", func(t *testing.T) {
		w := flip(env.router, "alice.near", "Heads", minDeposit)

		assert.Equal(t, http.StatusOK, w.Code)
		var outcome model.FlipOutcome
		_ = json.Unmarshal(w.Body.Bytes(), &outcome)
		assert.True(t, outcome.Won)
		assert.Equal(t, "alice.near", outcome.Player)
	})
}
