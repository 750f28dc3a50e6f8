package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zamara-Intern12/Financial-Frontier/internal/dto"
	"github.com/Zamara-Intern12/Financial-Frontier/internal/models"
	appErrors "github.com/Zamara-Intern12/Financial-Frontier/pkg/errors"
	"github.com/Zamara-Intern12/Financial-Frontier/pkg/response"
)

type backupService interface {
	Create(ctx context.Context, req dto.CreateBackupRequest) (*models.Snapshot, error)
	List(ctx context.Context) ([]models.Snapshot, error)
	Delete(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error
}

// BackupHandler exposes backup lifecycle endpoints.
type BackupHandler struct {
	service backupService
}

// NewBackupHandler builds a new handler.
func NewBackupHandler(service backupService) *BackupHandler {
	return &BackupHandler{service: service}
}

// List godoc
// @Summary List backups newest first
// @Tags Backups
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /backups [get]
func (h *BackupHandler) List(c *gin.Context) {
	snaps, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, snaps, nil)
}

// Create godoc
// @Summary Create a backup of the full document set
// @Tags Backups
// @Accept json
// @Produce json
// @Param payload body dto.CreateBackupRequest false "Backup options"
// @Success 201 {object} response.Envelope
// @Router /backups [post]
func (h *BackupHandler) Create(c *gin.Context) {
	var req dto.CreateBackupRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid backup payload"))
			return
		}
	}
	snap, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, snap)
}

// Delete godoc
// @Summary Delete a backup
// @Tags Backups
// @Produce json
// @Param id path string true "Backup ID"
// @Success 204
// @Router /backups/{id} [delete]
func (h *BackupHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Restore godoc
// @Summary Restore the document set from a backup
// @Tags Backups
// @Produce json
// @Param id path string true "Backup ID"
// @Success 200 {object} response.Envelope
// @Router /backups/{id}/restore [post]
func (h *BackupHandler) Restore(c *gin.Context) {
	if err := h.service.Restore(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.RestoreBackupResponse{Message: "backup restored"}, nil)
}
