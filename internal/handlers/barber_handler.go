package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-pos/internal/httperr"
	"github.com/BruksfildServices01/barber-pos/internal/httpresp"
	"github.com/BruksfildServices01/barber-pos/internal/usecase/catalog"
)

type BarberHandler struct {
	barbers *catalog.Barbers
}

func NewBarberHandler(barbers *catalog.Barbers) *BarberHandler {
	return &BarberHandler{barbers: barbers}
}

type CreateBarberRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

func (h *BarberHandler) List(c *gin.Context) {
	barbers, err := h.barbers.List(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, barbers)
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	b, err := h.barbers.Create(c.Request.Context(), req.Name)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, b)
}

func (h *BarberHandler) Deactivate(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.barbers.Deactivate(c.Request.Context(), id); err != nil {
		httperr.FromError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
