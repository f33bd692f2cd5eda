package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

const ResponseFormatJSON = "Json"

// Wager is the state carried from the coordinator to the resolver.
// It is never mutated after creation.
type Wager struct {
	RequestID string          `json:"request_id"`
	Player    string          `json:"player"`
	Choice    CoinSide        `json:"choice"`
	Deposit   decimal.Decimal `json:"deposit"`
	CreatedAt time.Time       `json:"created_at"`
}

// Call describes the incoming call: who made it, what was attached and how
// much of the prepaid gas is already spent.
type Call struct {
	Player     string
	Deposit    decimal.Decimal
	PrepaidGas Gas
	UsedGas    Gas
}

// Attachment is what travels with the outbound remote request.
type Attachment struct {
	Deposit decimal.Decimal
	Gas     Gas
}

type CodeSource struct {
	Repo        string `json:"repo"`
	Commit      string `json:"commit"`
	BuildTarget string `json:"build_target"`
}

type ResourceLimits struct {
	MaxInstructions     uint64 `json:"max_instructions"`
	MaxMemoryMB         uint32 `json:"max_memory_mb"`
	MaxExecutionSeconds uint64 `json:"max_execution_seconds"`
}

type ExecutionRequest struct {
	CodeSource     CodeSource      `json:"code_source"`
	ResourceLimits ResourceLimits  `json:"resource_limits"`
	InputData      string          `json:"input_data"`
	SecretsRef     json.RawMessage `json:"secrets_ref,omitempty" swaggertype:"object"`
	ResponseFormat string          `json:"response_format"`
	PayerAccountID string          `json:"payer_account_id,omitempty"`
}

type RangeRequest struct {
	Min uint32 `json:"min"`
	Max uint32 `json:"max"`
}

type RandomResponse struct {
	RandomNumber uint32 `json:"random_number"`
}

type FlipOutcome struct {
	RequestID    string   `json:"request_id"`
	Player       string   `json:"player"`
	Choice       CoinSide `json:"choice" swaggertype:"string" enums:"Heads,Tails"`
	Result       CoinSide `json:"result" swaggertype:"string" enums:"Heads,Tails"`
	RandomNumber uint32   `json:"random_number"`
	Won          bool     `json:"won"`
	Message      string   `json:"message"`
}

type FlipRequest struct {
	Choice  string `json:"choice" binding:"required" example:"Heads" enums:"Heads,Tails"`
	Deposit string `json:"deposit" binding:"required" example:"10000000000000000000000"`
	Gas     uint64 `json:"gas,omitempty" example:"300000000000000"`
}

type FlipPendingResponse struct {
	RequestID string `json:"request_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Status    string `json:"status" example:"pending"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"deposit below minimum"`
	Code    string `json:"code,omitempty" example:"INSUFFICIENT_DEPOSIT"`
	Details string `json:"details,omitempty"`
}
