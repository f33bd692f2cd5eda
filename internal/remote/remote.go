// Package remote talks to the off-chain compute service that runs the random
// number generator on behalf of the coordinator.
package remote

import (
	"context"
	"encoding/json"
	"fmt"

	"coinflip/internal/config"
	"coinflip/internal/model"
)

const (
	HeaderAttachedDeposit = "X-Attached-Deposit"
	HeaderAttachedGas     = "X-Attached-Gas"

	ExecutionsPath = "/api/v1/executions"
)

// Executor requests a remote execution and reports how it ended. It never
// collapses an empty result into an error or the other way round.
type Executor interface {
	RequestExecution(ctx context.Context, req *model.ExecutionRequest, att model.Attachment) model.CallbackResult
}

// NewRequest builds an execution request for the configured code source and
// resource limits. payer receives any refund of the attached deposit.
func NewRequest(cfg config.RemoteConfig, input model.RangeRequest, payer string) (*model.ExecutionRequest, error) {
	data, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("marshal range input: %w", err)
	}

	return &model.ExecutionRequest{
		CodeSource: model.CodeSource{
			Repo:        cfg.Repo,
			Commit:      cfg.Commit,
			BuildTarget: cfg.BuildTarget,
		},
		ResourceLimits: model.ResourceLimits{
			MaxInstructions:     cfg.MaxInstructions,
			MaxMemoryMB:         cfg.MaxMemoryMB,
			MaxExecutionSeconds: cfg.MaxExecutionSeconds,
		},
		InputData:      string(data),
		ResponseFormat: model.ResponseFormatJSON,
		PayerAccountID: payer,
	}, nil
}
