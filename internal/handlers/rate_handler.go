package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-pos/internal/audit"
	"github.com/BruksfildServices01/barber-pos/internal/exchange"
	"github.com/BruksfildServices01/barber-pos/internal/httperr"
	"github.com/BruksfildServices01/barber-pos/internal/httpresp"
)

type RateHandler struct {
	tracker   *exchange.Tracker
	refresher *exchange.Refresher
	audit     *audit.Dispatcher
}

func NewRateHandler(
	tracker *exchange.Tracker,
	refresher *exchange.Refresher,
	audit *audit.Dispatcher,
) *RateHandler {
	return &RateHandler{
		tracker:   tracker,
		refresher: refresher,
		audit:     audit,
	}
}

type OverrideRateRequest struct {
	Value decimal.Decimal `json:"value"`
}

// Get reports the current rate, its age and the last fetch error, if any.
func (h *RateHandler) Get(c *gin.Context) {
	httpresp.OK(c, h.tracker.Status())
}

// Override stores a rate typed by the cashier while the source is unreachable.
func (h *RateHandler) Override(c *gin.Context) {
	var req OverrideRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	rate, err := h.tracker.Override(req.Value)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   audit.ActionRateOverridden,
		Entity:   "rate",
		Metadata: map[string]any{"value": rate.Value.String()},
	})

	httpresp.OK(c, rate)
}

// Refresh fetches now, sharing any fetch already running.
func (h *RateHandler) Refresh(c *gin.Context) {
	if _, err := h.refresher.Refresh(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error_code": httperr.CodeRateUnavailable,
			"kind":       httperr.KindOf(httperr.CodeRateUnavailable),
			"message":    err.Error(),
			"status":     h.tracker.Status(),
		})
		return
	}

	httpresp.OK(c, h.tracker.Status())
}
