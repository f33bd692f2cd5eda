package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"coinflip/internal/model"
	"coinflip/internal/remote"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// Execute
// @Summary Run a random number execution
// @Description Executes the range-bounded generator for a remote coordinator. A null body means the execution produced no result.
// @Tags executions
// @Accept json
// @Produce json
// @Param X-Attached-Deposit header string false "Deposit attached to the request"
// @Param X-Attached-Gas header int true "Gas attached to the request"
// @Param execution body model.ExecutionRequest true "Execution request"
// @Success 200 {object} model.RandomResponse
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 503 {object} model.ErrorResponse "Execution could not complete"
// @Router /executions [post]
func (h *Handler) Execute(c *gin.Context) {
	att, err := attachmentFromHeaders(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: err.Error(),
			Code:  "INVALID_ATTACHMENT",
		})
		return
	}

	var req model.ExecutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	result := h.executor.RequestExecution(c.Request.Context(), &req, att)
	switch result.Kind {
	case model.ResultValue:
		c.JSON(http.StatusOK, result.Response)
	case model.ResultEmpty:
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte("null"))
	default:
		err := result.Err
		if err == nil {
			err = model.ErrSystemError
		}
		h.logger.Warn().Err(err).Str("payer", req.PayerAccountID).Msg("execution could not complete")
		c.JSON(http.StatusServiceUnavailable, model.ErrorResponse{
			Error: err.Error(),
			Code:  "SYSTEM_ERROR",
		})
	}
}

func attachmentFromHeaders(c *gin.Context) (model.Attachment, error) {
	att := model.Attachment{Deposit: decimal.Zero}

	if raw := c.GetHeader(remote.HeaderAttachedDeposit); raw != "" {
		deposit, err := parseAmount(raw)
		if err != nil {
			return att, err
		}
		att.Deposit = deposit
	}

	raw := c.GetHeader(remote.HeaderAttachedGas)
	if raw == "" {
		return att, fmt.Errorf("%s header is required", remote.HeaderAttachedGas)
	}
	gas, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return att, fmt.Errorf("invalid %s header: %q", remote.HeaderAttachedGas, raw)
	}
	att.Gas = model.Gas(gas)

	return att, nil
}
