package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sarilacivert/matchcenter-service/errs"
)

type StandingsHandler struct {
	standingsService StandingsService
}

func NewStandingsHandler(standingsService StandingsService) *StandingsHandler {
	return &StandingsHandler{standingsService: standingsService}
}

func (h *StandingsHandler) List(c *gin.Context) {
	result, err := h.standingsService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "code": errs.CodeInternalServerError})

		return
	}

	c.JSON(http.StatusOK, result)
}
