// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/brisk-budget/backend/internal/application/usecase/backup"
	domainerror "github.com/brisk-budget/backend/internal/domain/error"
	"github.com/brisk-budget/backend/internal/integration/entrypoint/dto"
)

// maxRestoreSize caps uploaded backup archives at 32 MiB.
const maxRestoreSize = 32 << 20

// BackupController handles backup export and restore endpoints.
type BackupController struct {
	exportUseCase  *backup.ExportUseCase
	restoreUseCase *backup.RestoreUseCase
}

// NewBackupController creates a new backup controller instance.
func NewBackupController(
	exportUseCase *backup.ExportUseCase,
	restoreUseCase *backup.RestoreUseCase,
) *BackupController {
	return &BackupController{
		exportUseCase:  exportUseCase,
		restoreUseCase: restoreUseCase,
	}
}

// Export handles GET /backup/export requests. The response is a zip archive
// of every data file.
func (c *BackupController) Export(ctx *gin.Context) {
	filename := fmt.Sprintf("backup-%s.zip", time.Now().UTC().Format("20060102-150405"))
	ctx.Header("Content-Type", "application/zip")
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := c.exportUseCase.Execute(ctx.Request.Context(), ctx.Writer); err != nil {
		// Headers may already be written; the truncated body is the
		// client's signal that the download failed.
		ctx.Status(http.StatusInternalServerError)
	}
}

// Restore handles POST /backup/restore requests. The archive is validated
// in full before any existing data is replaced; a rejected archive leaves
// the store untouched.
func (c *BackupController) Restore(ctx *gin.Context) {
	archive, err := c.readArchive(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Could not read uploaded archive",
		})
		return
	}

	if err := c.restoreUseCase.Execute(ctx.Request.Context(), archive); err != nil {
		c.handleBackupError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// readArchive reads the uploaded archive from either a multipart "file"
// field or the raw request body.
func (c *BackupController) readArchive(ctx *gin.Context) ([]byte, error) {
	if file, err := ctx.FormFile("file"); err == nil {
		f, err := file.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(io.LimitReader(f, maxRestoreSize))
	}
	return io.ReadAll(io.LimitReader(ctx.Request.Body, maxRestoreSize))
}

// handleBackupError handles backup errors and returns appropriate HTTP responses.
func (c *BackupController) handleBackupError(ctx *gin.Context, err error) {
	var bkpErr *domainerror.BackupError
	if errors.As(err, &bkpErr) {
		ctx.JSON(c.getStatusCodeForBackupError(bkpErr.Code), dto.ErrorResponse{
			Error: bkpErr.Message,
			Code:  string(bkpErr.Code),
		})
		return
	}

	respondInternalError(ctx)
}

// getStatusCodeForBackupError maps backup error codes to HTTP status codes.
func (c *BackupController) getStatusCodeForBackupError(code domainerror.BackupErrorCode) int {
	switch code {
	case domainerror.ErrCodeMalformedBackup,
		domainerror.ErrCodeBackupMissingFile,
		domainerror.ErrCodeBackupInvalidJSON:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
