package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-pos/internal/httperr"
)

func invalidRequest(c *gin.Context) {
	httperr.BadRequest(c, httperr.CodeInvalidRequest, "Datos inválidos.")
}

// idParam reads the :id path segment, answering 400 itself when malformed.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, httperr.CodeInvalidRequest, "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

func uintQuery(c *gin.Context, key string) (uint, bool) {
	v, err := strconv.ParseUint(c.Query(key), 10, 64)
	if err != nil || v == 0 {
		httperr.BadRequest(c, httperr.CodeInvalidRequest, "Parámetro inválido: "+key+".")
		return 0, false
	}
	return uint(v), true
}

// optionalUintQuery treats a missing key as 0.
func optionalUintQuery(c *gin.Context, key string) (uint, bool) {
	if c.Query(key) == "" {
		return 0, true
	}
	return uintQuery(c, key)
}
