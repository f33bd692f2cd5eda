package handler

import (
	"context"
	"fmt"
	"net/http"

	"coinflip/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// FlipCoin
// @Summary Place a coin flip wager
// @Description Validates the deposit, requests a random number from the remote executor and waits for the callback
// @Tags flips
// @Accept json
// @Produce json
// @Param X-Player-ID header string true "Player account"
// @Param flip body model.FlipRequest true "Wager details"
// @Success 200 {object} model.FlipOutcome "Resolved"
// @Success 202 {object} model.FlipPendingResponse "Still waiting for the callback"
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 502 {object} model.ErrorResponse "Execution failed"
// @Failure 503 {object} model.ErrorResponse "System error"
// @Router /flips [post]
func (h *Handler) FlipCoin(c *gin.Context) {
	player := c.GetHeader(HeaderPlayerID)
	if player == "" {
		h.handleError(c, fmt.Errorf("%w: %s header is required", model.ErrInvalidPlayer, HeaderPlayerID))
		return
	}

	var req model.FlipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	choice, err := model.ParseCoinSide(req.Choice)
	if err != nil {
		h.handleError(c, err)
		return
	}

	deposit, err := parseAmount(req.Deposit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	gas := model.Gas(req.Gas)
	if gas == 0 {
		gas = h.defaultGas
	}

	promise, err := h.flipService.FlipCoin(c.Request.Context(), model.Call{
		Player:     player,
		Deposit:    deposit,
		PrepaidGas: gas,
	}, choice)
	if err != nil {
		h.handleError(c, err)
		return
	}

	waitCtx, cancel := context.WithTimeout(c.Request.Context(), h.waitTimeout)
	defer cancel()

	select {
	case <-promise.Done():
	case <-waitCtx.Done():
		c.JSON(http.StatusAccepted, model.FlipPendingResponse{
			RequestID: promise.RequestID,
			Status:    "pending",
		})
		return
	}

	outcome, err := promise.Wait(context.Background())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, outcome)
}

// parseAmount accepts a non-negative integer amount in the smallest unit.
func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", model.ErrInvalidDeposit, s)
	}
	if amount.IsNegative() || !amount.IsInteger() {
		return decimal.Zero, fmt.Errorf("%w: %s must be a non-negative integer", model.ErrInvalidDeposit, s)
	}
	return amount, nil
}
