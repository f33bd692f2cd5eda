package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"coinflip/internal/model"

	"github.com/rs/zerolog"
)

var _ Executor = (*HTTPExecutor)(nil)

const maxResponseBody = 1 << 20

// HTTPExecutor forwards execution requests to another instance's
// executions endpoint.
type HTTPExecutor struct {
	client   *http.Client
	endpoint string
	logger   zerolog.Logger
}

func NewHTTPExecutor(baseURL string, timeout time.Duration, logger zerolog.Logger) *HTTPExecutor {
	return &HTTPExecutor{
		client:   &http.Client{Timeout: timeout},
		endpoint: strings.TrimRight(baseURL, "/") + ExecutionsPath,
		logger:   logger,
	}
}

// RequestExecution maps transport failures and non-200 replies to an error
// result, a JSON null body to an empty result and a random response to a value.
func (e *HTTPExecutor) RequestExecution(ctx context.Context, req *model.ExecutionRequest, att model.Attachment) model.CallbackResult {
	body, err := json.Marshal(req)
	if err != nil {
		return model.ErrorResult(fmt.Errorf("marshal execution request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader(body))
	if err != nil {
		return model.ErrorResult(fmt.Errorf("build execution request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(HeaderAttachedDeposit, att.Deposit.String())
	httpReq.Header.Set(HeaderAttachedGas, strconv.FormatUint(uint64(att.Gas), 10))

	resp, err := e.client.Do(httpReq)
	if err != nil {
		return model.ErrorResult(fmt.Errorf("call remote executor: %w", err))
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return model.ErrorResult(fmt.Errorf("read remote response: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		return model.ErrorResult(fmt.Errorf("remote executor returned %d: %s", resp.StatusCode, strings.TrimSpace(string(data))))
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return model.EmptyResult()
	}

	var out model.RandomResponse
	if err := json.Unmarshal(trimmed, &out); err != nil {
		e.logger.Warn().Err(err).Str("body", string(trimmed)).Msg("remote executor returned an unreadable result")
		return model.EmptyResult()
	}
	return model.ValueResult(out)
}
