package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/barber-pos/internal/domain/payment"
	"github.com/BruksfildServices01/barber-pos/internal/httperr"
	"github.com/BruksfildServices01/barber-pos/internal/httpresp"
	"github.com/BruksfildServices01/barber-pos/internal/usecase/payment"
)

type PaymentHandler struct {
	register *payment.RegisterPayment
	quote    *payment.QuotePayment
}

func NewPaymentHandler(
	register *payment.RegisterPayment,
	quote *payment.QuotePayment,
) *PaymentHandler {
	return &PaymentHandler{
		register: register,
		quote:    quote,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type TenderRequest struct {
	Method    string          `json:"method"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Reference string          `json:"reference" binding:"max=100"`
}

// RegisterPaymentRequest accepts either a single tender inline
// (amount/currency/reference) or, for Mixed, the list of partial tenders.
type RegisterPaymentRequest struct {
	Method    string          `json:"method" binding:"required"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Reference string          `json:"reference" binding:"max=100"`
	Tenders   []TenderRequest `json:"tenders" binding:"dive"`
}

type QuoteRequest struct {
	// Due is only read when the appointment is not part of the path.
	Due     decimal.Decimal `json:"due"`
	Tenders []TenderRequest `json:"tenders" binding:"required,min=1,dive"`
}

func (r RegisterPaymentRequest) tenders() []payment.TenderInput {
	if len(r.Tenders) == 0 && !strings.EqualFold(r.Method, string(domain.MethodMixed)) {
		return []payment.TenderInput{{
			Method:    r.Method,
			Amount:    r.Amount,
			Currency:  r.Currency,
			Reference: r.Reference,
		}}
	}
	return toTenderInputs(r.Tenders)
}

func toTenderInputs(in []TenderRequest) []payment.TenderInput {
	out := make([]payment.TenderInput, 0, len(in))
	for _, t := range in {
		out = append(out, payment.TenderInput{
			Method:    t.Method,
			Amount:    t.Amount,
			Currency:  t.Currency,
			Reference: t.Reference,
		})
	}
	return out
}

// ======================================================
// REGISTER
// ======================================================

func (h *PaymentHandler) Register(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req RegisterPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	receipt, err := h.register.Execute(c.Request.Context(), payment.RegisterPaymentInput{
		AppointmentID: id,
		Method:        req.Method,
		Tenders:       req.tenders(),
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, receipt)
}

// ======================================================
// QUOTE
// ======================================================

// Quote runs the change calculator against an appointment's total.
func (h *PaymentHandler) Quote(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	h.runQuote(c, id)
}

// QuoteAmount runs the change calculator against a free amount.
func (h *PaymentHandler) QuoteAmount(c *gin.Context) {
	h.runQuote(c, 0)
}

func (h *PaymentHandler) runQuote(c *gin.Context, appointmentID uint) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	q, err := h.quote.Execute(c.Request.Context(), payment.QuoteInput{
		AppointmentID: appointmentID,
		Due:           req.Due,
		Tenders:       toTenderInputs(req.Tenders),
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, q)
}
