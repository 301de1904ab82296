package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-pos/internal/httperr"
	"github.com/BruksfildServices01/barber-pos/internal/httpresp"
	"github.com/BruksfildServices01/barber-pos/internal/usecase/report"
)

type ReportHandler struct {
	closing     *report.DailyClosing
	archive     *report.ArchiveClosing
	commissions *report.ComputeCommissions
	dashboard   *report.Dashboard
}

func NewReportHandler(
	closing *report.DailyClosing,
	archive *report.ArchiveClosing,
	commissions *report.ComputeCommissions,
	dashboard *report.Dashboard,
) *ReportHandler {
	return &ReportHandler{
		closing:     closing,
		archive:     archive,
		commissions: commissions,
		dashboard:   dashboard,
	}
}

// ======================================================
// CLOSING
// ======================================================

func (h *ReportHandler) Closing(c *gin.Context) {
	out, err := h.closing.Execute(c.Request.Context(), c.Query("date"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *ReportHandler) ArchiveClosing(c *gin.Context) {
	out, err := h.archive.Execute(c.Request.Context(), c.Query("date"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// ======================================================
// COMMISSIONS
// ======================================================

func (h *ReportHandler) Commissions(c *gin.Context) {
	out, err := h.commissions.Execute(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, out)
}

// ======================================================
// DASHBOARD
// ======================================================

func (h *ReportHandler) TopServices(c *gin.Context) {
	out, err := h.dashboard.TopServices(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, out)
}

func (h *ReportHandler) WeeklyRevenue(c *gin.Context) {
	out, err := h.dashboard.WeeklyRevenue(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, out)
}

func (h *ReportHandler) BarberMonth(c *gin.Context) {
	out, err := h.dashboard.BarberMonth(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *ReportHandler) KPIs(c *gin.Context) {
	out, err := h.dashboard.KPIs(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, out)
}
