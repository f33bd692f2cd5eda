package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"coinflip/internal/model"
	"coinflip/internal/rng"

	"github.com/rs/zerolog"
)

var _ Executor = (*LocalExecutor)(nil)

// LocalExecutor runs the random number generator in process, through the same
// framed boundary the sandboxed build exposes.
type LocalExecutor struct {
	entropy io.Reader
	minGas  model.Gas
	logger  zerolog.Logger
}

func NewLocalExecutor(entropy io.Reader, minGas model.Gas, logger zerolog.Logger) *LocalExecutor {
	return &LocalExecutor{
		entropy: entropy,
		minGas:  minGas,
		logger:  logger,
	}
}

type sandboxOutput struct {
	buf []byte
	err error
}

func (e *LocalExecutor) RequestExecution(ctx context.Context, req *model.ExecutionRequest, att model.Attachment) model.CallbackResult {
	if att.Gas < e.minGas {
		return model.ErrorResult(fmt.Errorf("exceeded the prepaid gas: attached %s, need at least %s", att.Gas, e.minGas))
	}

	if req.ResponseFormat != model.ResponseFormatJSON {
		e.logger.Warn().Str("response_format", req.ResponseFormat).Msg("unsupported response format")
		return model.EmptyResult()
	}

	runCtx := ctx
	if req.ResourceLimits.MaxExecutionSeconds > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, time.Duration(req.ResourceLimits.MaxExecutionSeconds)*time.Second)
		defer cancel()
	}

	done := make(chan sandboxOutput, 1)
	go func() {
		buf, err := rng.Execute([]byte(req.InputData), e.entropy)
		done <- sandboxOutput{buf: buf, err: err}
	}()

	var out sandboxOutput
	select {
	case <-runCtx.Done():
		if ctx.Err() != nil {
			return model.ErrorResult(fmt.Errorf("remote call aborted: %w", ctx.Err()))
		}
		e.logger.Warn().Uint64("max_execution_seconds", req.ResourceLimits.MaxExecutionSeconds).Msg("execution exceeded wall-clock limit")
		return model.EmptyResult()
	case out = <-done:
	}

	if out.err != nil {
		e.logger.Warn().Err(out.err).Int32("status", rng.Status(out.err)).Msg("sandbox execution failed")
		return model.EmptyResult()
	}

	payload, err := rng.ReadFrame(out.buf)
	if err != nil {
		e.logger.Warn().Err(err).Msg("sandbox returned a malformed frame")
		return model.EmptyResult()
	}

	var resp model.RandomResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		e.logger.Warn().Err(err).Str("payload", string(payload)).Msg("sandbox output is not a random response")
		return model.EmptyResult()
	}

	e.logger.Debug().
		Str("payer", req.PayerAccountID).
		Str("refund", att.Deposit.String()).
		Msg("unused deposit refunded to payer")

	return model.ValueResult(resp)
}
