package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-pos/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-pos/internal/httperr"
	"github.com/BruksfildServices01/barber-pos/internal/httpresp"
	"github.com/BruksfildServices01/barber-pos/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create       *appointment.CreateAppointment
	express      *appointment.CreateExpressAppointment
	cancel       *appointment.CancelAppointment
	reassign     *appointment.ReassignClient
	listByDate   *appointment.ListAppointmentsByDate
	listByMonth  *appointment.ListAppointmentsByMonth
	detail       *appointment.GetAppointmentDetail
	availability *appointment.GetAvailability
}

func NewAppointmentHandler(
	create *appointment.CreateAppointment,
	express *appointment.CreateExpressAppointment,
	cancel *appointment.CancelAppointment,
	reassign *appointment.ReassignClient,
	listByDate *appointment.ListAppointmentsByDate,
	listByMonth *appointment.ListAppointmentsByMonth,
	detail *appointment.GetAppointmentDetail,
	availability *appointment.GetAvailability,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:       create,
		express:      express,
		cancel:       cancel,
		reassign:     reassign,
		listByDate:   listByDate,
		listByMonth:  listByMonth,
		detail:       detail,
		availability: availability,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	// omitted or 0 books the walk-in client
	ClientID  uint   `json:"client_id"`
	ServiceID uint   `json:"service_id" binding:"required"`
	BarberID  uint   `json:"barber_id" binding:"required"`
	Date      string `json:"date" binding:"required,isodate"`
	Time      string `json:"time" binding:"required,clock"`
	Notes     string `json:"notes" binding:"max=255"`
}

type CreateExpressRequest struct {
	ClientID  uint   `json:"client_id"`
	ServiceID uint   `json:"service_id" binding:"required"`
	BarberID  uint   `json:"barber_id" binding:"required"`
	Notes     string `json:"notes" binding:"max=200"`
}

type ReassignClientRequest struct {
	ClientID uint `json:"client_id" binding:"required"`
	Confirm  bool `json:"confirm"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), appointment.CreateAppointmentInput{
		ClientID:  req.ClientID,
		ServiceID: req.ServiceID,
		BarberID:  req.BarberID,
		Date:      req.Date,
		Start:     req.Time,
		Notes:     req.Notes,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

func (h *AppointmentHandler) CreateExpress(c *gin.Context) {
	var req CreateExpressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	ap, err := h.express.Execute(c.Request.Context(), appointment.CreateExpressInput{
		ClientID:  req.ClientID,
		ServiceID: req.ServiceID,
		BarberID:  req.BarberID,
		Notes:     req.Notes,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, httperr.CodeInvalidDate, "Fecha obligatoria.")
		return
	}

	barberID, ok := optionalUintQuery(c, "barber_id")
	if !ok {
		return
	}

	list, err := h.listByDate.Execute(c.Request.Context(), date, barberID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, list)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidDate, "Año inválido.")
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidDate, "Mes inválido.")
		return
	}

	barberID, ok := optionalUintQuery(c, "barber_id")
	if !ok {
		return
	}

	list, err := h.listByMonth.Execute(c.Request.Context(), year, month, barberID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":         year,
		"month":        month,
		"appointments": list,
	})
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	d, err := h.detail.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, d)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	date := c.Query("date")
	serviceID, ok := uintQuery(c, "service_id")
	if !ok {
		return
	}
	barberID, ok := uintQuery(c, "barber_id")
	if !ok {
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		BarberID:  barberID,
		ServiceID: serviceID,
		Date:      date,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  date,
		"slots": slots,
	})
}

// ======================================================
// CANCEL / REASSIGN
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) ReassignClient(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req ReassignClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	ap, err := h.reassign.Execute(c.Request.Context(), appointment.ReassignClientInput{
		AppointmentID: id,
		ClientID:      req.ClientID,
		Confirm:       req.Confirm,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, ap)
}
