package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"coinflip/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executorServer(t *testing.T, status int, body string) *HTTPExecutor {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, ExecutionsPath, r.URL.Path)
		assert.Equal(t, "1", r.Header.Get(HeaderAttachedDeposit))
		assert.Equal(t, "100000000000000", r.Header.Get(HeaderAttachedGas))

		var req model.ExecutionRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, `{"min":0,"max":1}`, req.InputData)

		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewHTTPExecutor(srv.URL+"/", 5*time.Second, zerolog.Nop())
}

func TestHTTPExecutor_Value(t *testing.T) {
	exec := executorServer(t, http.StatusOK, `{"random_number":0}`)

	res := exec.RequestExecution(context.Background(), coinRequest(t), attachment())

	require.Equal(t, model.ResultValue, res.Kind)
	assert.Equal(t, uint32(0), res.Response.RandomNumber)
}

func TestHTTPExecutor_NullIsEmpty(t *testing.T) {
	exec := executorServer(t, http.StatusOK, "null\n")

	res := exec.RequestExecution(context.Background(), coinRequest(t), attachment())

	assert.Equal(t, model.ResultEmpty, res.Kind)
}

func TestHTTPExecutor_GarbageIsEmpty(t *testing.T) {
	exec := executorServer(t, http.StatusOK, `{"random_number":"x"}`)

	res := exec.RequestExecution(context.Background(), coinRequest(t), attachment())

	assert.Equal(t, model.ResultEmpty, res.Kind)
}

func TestHTTPExecutor_ServerErrorIsError(t *testing.T) {
	exec := executorServer(t, http.StatusServiceUnavailable, `{"error":"exceeded the prepaid gas"}`)

	res := exec.RequestExecution(context.Background(), coinRequest(t), attachment())

	require.Equal(t, model.ResultError, res.Kind)
	assert.Contains(t, res.Err.Error(), "503")
}

func TestHTTPExecutor_UnreachableIsError(t *testing.T) {
	exec := NewHTTPExecutor("http://127.0.0.1:1", time.Second, zerolog.Nop())

	res := exec.RequestExecution(context.Background(), coinRequest(t), attachment())

	assert.Equal(t, model.ResultError, res.Kind)
}
