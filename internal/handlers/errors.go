package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prudhivi99/shop-manager/internal/apperrors"
)

// writeError responds with the status mapped from err and {"error": message}
func writeError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func writeBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
}
