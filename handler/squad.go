package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sarilacivert/matchcenter-service/errs"
)

type SquadHandler struct {
	squadService SquadService
}

func NewSquadHandler(squadService SquadService) *SquadHandler {
	return &SquadHandler{squadService: squadService}
}

func (h *SquadHandler) List(c *gin.Context) {
	result, err := h.squadService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "code": errs.CodeInternalServerError})

		return
	}

	c.JSON(http.StatusOK, result)
}
