package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sarilacivert/matchcenter-service/errs"
)

type FixtureHandler struct {
	fixtureService FixtureService
}

func NewFixtureHandler(fixtureService FixtureService) *FixtureHandler {
	return &FixtureHandler{fixtureService: fixtureService}
}

func (h *FixtureHandler) List(c *gin.Context) {
	result, err := h.fixtureService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "code": errs.CodeInternalServerError})

		return
	}

	c.JSON(http.StatusOK, result)
}
