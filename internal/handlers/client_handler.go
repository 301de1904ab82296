package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-pos/internal/httperr"
	"github.com/BruksfildServices01/barber-pos/internal/httpresp"
	"github.com/BruksfildServices01/barber-pos/internal/usecase/catalog"
)

type ClientHandler struct {
	clients *catalog.Clients
}

func NewClientHandler(clients *catalog.Clients) *ClientHandler {
	return &ClientHandler{clients: clients}
}

type ClientRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Phone string `json:"phone" binding:"max=20"`
	Email string `json:"email" binding:"omitempty,email,max=100"`
}

func (r ClientRequest) input() catalog.ClientInput {
	return catalog.ClientInput{Name: r.Name, Phone: r.Phone, Email: r.Email}
}

// ======================================================
// LIST / SEARCH
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.clients.List(c.Request.Context(), c.Query("query"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, clients)
}

// ======================================================
// CREATE / UPDATE
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	client, err := h.clients.Create(c.Request.Context(), req.input())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	client, err := h.clients.Update(c.Request.Context(), id, req.input())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, client)
}

// ======================================================
// HISTORY
// ======================================================

func (h *ClientHandler) History(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	history, err := h.clients.History(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, history)
}
