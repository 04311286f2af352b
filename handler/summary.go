package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sarilacivert/matchcenter-service/errs"
)

type SummaryHandler struct {
	matchSummaryService MatchSummaryService
}

func NewSummaryHandler(matchSummaryService MatchSummaryService) *SummaryHandler {
	return &SummaryHandler{matchSummaryService: matchSummaryService}
}

func (h *SummaryHandler) GetByID(c *gin.Context) {
	var params GetSummaryRequest
	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": errs.CodeInvalidRequest})

		return
	}

	result, err := h.matchSummaryService.GetByID(c.Request.Context(), params.MatchID)
	if errors.As(err, &errs.SummaryNotReadyError{}) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "code": errs.CodeResourceNotFound})

		return
	}

	if errors.As(err, &errs.UnprocessableContentError{}) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "code": errs.CodeUnprocessableContent})

		return
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "code": errs.CodeInternalServerError})

		return
	}

	c.JSON(http.StatusOK, result)
}
