package handlers

import (
	"net/http"
	"time"

	"bank-ledger/internal/ledger"

	"github.com/labstack/echo/v4"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	bank *ledger.Bank
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(bank *ledger.Bank) *HealthCheckHandler {
	return &HealthCheckHandler{bank: bank}
}

// HealthCheck reports service liveness and the size of the ledger
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":        "healthy",
		"open_accounts": h.bank.AccountCount(),
		"time":          time.Now().UTC().Format(time.RFC3339),
	})
}
