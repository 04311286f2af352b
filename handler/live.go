package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type LiveHandler struct {
	liveMatchService LiveMatchService
}

func NewLiveHandler(liveMatchService LiveMatchService) *LiveHandler {
	return &LiveHandler{liveMatchService: liveMatchService}
}

func (h *LiveHandler) State(c *gin.Context) {
	c.JSON(http.StatusOK, h.liveMatchService.State())
}
