package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-pos/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-pos/internal/httperr"
	"github.com/BruksfildServices01/barber-pos/internal/httpresp"
	"github.com/BruksfildServices01/barber-pos/internal/usecase/catalog"
)

type SettingsHandler struct {
	hours *catalog.BusinessHours
}

func NewSettingsHandler(hours *catalog.BusinessHours) *SettingsHandler {
	return &SettingsHandler{hours: hours}
}

type BusinessHoursRequest struct {
	Opening string `json:"opening" binding:"required,clock"`
	Closing string `json:"closing" binding:"required,clock"`
}

func (h *SettingsHandler) GetHours(c *gin.Context) {
	hours, err := h.hours.Get(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, hours)
}

func (h *SettingsHandler) UpdateHours(c *gin.Context) {
	var req BusinessHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	hours, err := h.hours.Update(c.Request.Context(), domain.BusinessHours{
		Opening: req.Opening,
		Closing: req.Closing,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, hours)
}
