package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"taskloop/internal/domain"
	"taskloop/internal/journal"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHealthz(t *testing.T) {
	s := NewServer(journal.New(0), time.Hour, "task")

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestStatusEmpty(t *testing.T) {
	s := NewServer(journal.New(0), 6*time.Hour, "IPTV Updater")

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp statusResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "IPTV Updater", resp.Label)
	require.Equal(t, "6 hours", resp.Interval)
	require.Zero(t, resp.Cycles)
	require.Nil(t, resp.LastRun)
}

func TestStatusReportsRuns(t *testing.T) {
	j := journal.New(0)
	j.Record(domain.Run{ID: "a", Cycle: 1, Status: domain.StatusDone})
	j.Record(domain.Run{ID: "b", Cycle: 2, Status: domain.StatusFailed, ExitCode: 1})

	s := NewServer(j, 10*time.Second, "task")

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp statusResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, uint64(2), resp.Cycles)
	require.NotNil(t, resp.LastRun)
	require.Equal(t, "b", resp.LastRun.ID)
	require.Equal(t, 1, resp.LastRun.ExitCode)
	require.Len(t, resp.Recent, 2)
	require.Equal(t, "b", resp.Recent[0].ID)
}
