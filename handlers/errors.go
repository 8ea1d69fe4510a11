package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"quotes-api/models"
)

// respondError maps service errors onto HTTP statuses. Validation
// failures and duplicates carry their message to the client; storage
// failures are logged and masked.
func respondError(c *gin.Context, err error) {
	var validation *models.ValidationError
	var storageErr *models.StorageError

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
	case errors.Is(err, models.ErrDuplicateProduct):
		c.JSON(http.StatusConflict, gin.H{"error": models.ErrDuplicateProduct.Error()})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": models.ErrNotFound.Error()})
	case errors.As(err, &storageErr):
		zap.S().Errorw("storage failure", "op", storageErr.Op, "error", storageErr.Err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage failure"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
