package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	dto "baccarat_sim/internal/api/dto/simulation"
	simulationAPI "baccarat_sim/internal/api/simulation"
	"baccarat_sim/internal/config/env"
	"baccarat_sim/internal/repository/run_cache_repo"
	"baccarat_sim/internal/service/simulation"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() chi.Router {
	serv := simulation.NewSimulationService(env.DefaultSimulationConfig(), run_cache_repo.NewRunCacheRepository())
	return NewRouter(simulationAPI.NewHandler(simulationAPI.HandlerDeps{Serv: serv}))
}

func do(t *testing.T, r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRouter_NoRunYet(t *testing.T) {
	r := newTestRouter()

	for _, target := range []string{
		"/simulation/last",
		"/simulation/last/export.csv",
		"/simulation/last/strategies/always_banker/flat",
	} {
		rec := do(t, r, http.MethodGet, target, "")
		assert.Equal(t, http.StatusNotFound, rec.Code, target)
		assert.Contains(t, rec.Body.String(), "no simulation run yet", target)
	}
}

func TestRouter_RunAndInspect(t *testing.T) {
	r := newTestRouter()

	rec := do(t, r, http.MethodPost, "/simulation/run", `{"seed": 42}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var run dto.RunResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &run))
	assert.Equal(t, int64(42), run.Seed)
	assert.Equal(t, 72, run.ShoeLength)
	assert.Len(t, run.Shoe, 72)
	assert.Equal(t, int64(1), run.UnitStake)
	assert.Equal(t, 3, run.MaxSteps)
	require.Len(t, run.Ranking, 15)
	assert.Equal(t, 1, run.Ranking[0].Rank)
	assert.Len(t, run.Ranking[0].History, 73)

	rec = do(t, r, http.MethodGet, "/simulation/last", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var last dto.RunResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &last))
	assert.Equal(t, run.ID, last.ID)

	rec = do(t, r, http.MethodGet, "/simulation/last/strategies/follow_two_back/martingale", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var detail dto.StrategyDetailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, "follow_two_back + martingale", detail.Name)
	assert.Len(t, detail.Ledger, 72)
	assert.Equal(t, detail.FinalBalance, detail.Ledger[71].Balance)

	rec = do(t, r, http.MethodGet, "/simulation/last/strategies/martian/flat", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, r, http.MethodGet, "/simulation/last/export.csv", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "strategy_analysis_")
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "\uFEFFrank,position,rule"))
	assert.Len(t, strings.Split(strings.TrimSpace(body), "\n"), 16)

	rec = do(t, r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "baccarat_runs_total")
}

func TestRouter_RunSubset(t *testing.T) {
	r := newTestRouter()

	rec := do(t, r, http.MethodPost, "/simulation/run",
		`{"shoe_length": 30, "unit_stake": 2, "max_steps": 4, "seed": 7, "positions": ["opposite"], "rules": ["anti_martingale"]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var run dto.RunResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &run))
	require.Len(t, run.Ranking, 1)
	assert.Equal(t, "opposite + anti_martingale", run.Ranking[0].Name)
	assert.Equal(t, int64(2), run.UnitStake)
	assert.Len(t, run.Shoe, 30)
}

func TestRouter_RunBadRequest(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "shoe too short", body: `{"shoe_length": 10}`, want: "shoe_length"},
		{name: "negative value", body: `{"max_steps": -1}`, want: "MaxSteps"},
		{name: "unknown position", body: `{"positions": ["martian"]}`, want: "unknown strategy"},
		{name: "unknown rule", body: `{"rules": ["fibonacci"]}`, want: "unknown strategy"},
		{name: "duplicate rule", body: `{"rules": ["flat", "flat"]}`, want: "duplicate flat"},
		{name: "broken json", body: `{"shoe_length":`, want: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, r, http.MethodPost, "/simulation/run", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}

	rec := do(t, r, http.MethodGet, "/simulation/last", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_Config(t *testing.T) {
	rec := do(t, newTestRouter(), http.MethodGet, "/simulation/config", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var cfg dto.ConfigResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cfg))
	assert.Equal(t, dto.Bounds{Min: 30, Max: 200, Default: 72}, cfg.ShoeLength)
	assert.Equal(t, dto.Bounds{Min: 2, Max: 4, Default: 3}, cfg.MaxSteps)
	assert.Equal(t, int64(10000), cfg.StakeScale)
	assert.Len(t, cfg.Positions, 5)
	assert.Equal(t, []string{"flat", "martingale", "anti_martingale"}, cfg.Rules)
}
