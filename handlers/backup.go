package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quotes-api/services"
)

type BackupHandler struct {
	Backups *services.BackupService
}

// RunBackup takes an on-demand snapshot of every collection.
func (h *BackupHandler) RunBackup(c *gin.Context) {
	path, err := h.Backups.Run()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Backup created", "file": path})
}
