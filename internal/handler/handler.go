package handler

import (
	"errors"
	"net/http"
	"time"

	"coinflip/internal/model"
	"coinflip/internal/remote"
	"coinflip/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// HeaderPlayerID carries the account placing the wager.
const HeaderPlayerID = "X-Player-ID"

type Handler struct {
	flipService service.FlipService
	executor    remote.Executor
	defaultGas  model.Gas
	waitTimeout time.Duration
	logger      zerolog.Logger
}

// NewHandler wires the flip endpoint to flipSvc and the executions endpoint to
// executor. waitTimeout bounds how long a flip request waits for its callback.
func NewHandler(
	flipSvc service.FlipService,
	executor remote.Executor,
	defaultGas model.Gas,
	waitTimeout time.Duration,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		flipService: flipSvc,
		executor:    executor,
		defaultGas:  defaultGas,
		waitTimeout: waitTimeout,
		logger:      logger,
	}
}

func (h *Handler) SetupRoutes() *gin.Engine {
	router := gin.New()

	// Middlewares
	router.Use(
		RequestIDMiddleware(),
		LoggingMiddleware(h.logger),
		gin.Recovery(),
	)

	// Swagger and health checks
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	v1.POST("/flips", h.FlipCoin)
	v1.POST("/executions", h.Execute)

	return router
}

func (h *Handler) handleError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL_SERVER_ERROR"

	resp := model.ErrorResponse{Error: err.Error()}

	switch {
	case errors.Is(err, model.ErrInsufficientDeposit):
		status = http.StatusBadRequest
		code = "INSUFFICIENT_DEPOSIT"
	case errors.Is(err, model.ErrInsufficientGas):
		status = http.StatusBadRequest
		code = "INSUFFICIENT_GAS"
	case errors.Is(err, model.ErrInvalidChoice):
		status = http.StatusBadRequest
		code = "INVALID_CHOICE"
	case errors.Is(err, model.ErrInvalidDeposit):
		status = http.StatusBadRequest
		code = "INVALID_DEPOSIT"
	case errors.Is(err, model.ErrInvalidPlayer):
		status = http.StatusBadRequest
		code = "INVALID_PLAYER"
	case errors.Is(err, model.ErrDuplicateRequest):
		status = http.StatusConflict
		code = "DUPLICATE_REQUEST"
	case errors.Is(err, model.ErrExecutionFailed):
		status = http.StatusBadGateway
		code = "EXECUTION_FAILED"
		resp.Details = "The random number generator produced no result"
	case errors.Is(err, model.ErrSystemError):
		status = http.StatusServiceUnavailable
		code = "SYSTEM_ERROR"
	}
	resp.Code = code

	if status >= http.StatusInternalServerError {
		h.logger.Error().Err(err).Str("code", code).Msg("request failed")
	}

	c.JSON(status, resp)
}
