package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sarilacivert/matchcenter-service/errs"
)

type TriggerHandler struct {
	summaryCheckerService SummaryCheckerService
}

func NewTriggerHandler(summaryCheckerService SummaryCheckerService) *TriggerHandler {
	return &TriggerHandler{summaryCheckerService: summaryCheckerService}
}

func (h *TriggerHandler) CheckSummary(c *gin.Context) {
	var params TriggerSummaryCheckRequest
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": errs.CodeInvalidRequest})

		return
	}

	err := h.summaryCheckerService.CheckSummary(c.Request.Context(), params.MatchID, params.Attempt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "code": errs.CodeInternalServerError})

		return
	}

	c.Status(http.StatusNoContent)
}
