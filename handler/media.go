package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sarilacivert/matchcenter-service/errs"
)

type MediaHandler struct {
	mediaService MediaService
}

func NewMediaHandler(mediaService MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

func (h *MediaHandler) GetAsset(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("path"), "/")
	if path == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "asset path is required", "code": errs.CodeInvalidRequest})

		return
	}

	asset, err := h.mediaService.GetAsset(c.Request.Context(), path)
	if errors.As(err, &errs.ResourceNotFoundError{}) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "code": errs.CodeResourceNotFound})

		return
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "code": errs.CodeInternalServerError})

		return
	}

	c.Data(http.StatusOK, asset.ContentType, asset.Data)
}
