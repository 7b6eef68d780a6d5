package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/erp_ledger_app/internal/apperrors"
	"github.com/SscSPs/erp_ledger_app/internal/dto"
	"github.com/SscSPs/erp_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

func respond(c *gin.Context, status int, data any) {
	c.JSON(status, dto.SuccessResponse{Success: true, Data: data})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, dto.ErrorResponse{Success: false, Error: message})
}

// statusForError maps service errors onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate),
		errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrReferentialIntegrity):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

// handleServiceError writes the error envelope for err. Client errors carry
// the service message; server errors only say which action failed.
func handleServiceError(c *gin.Context, logger *slog.Logger, action string, err error) {
	status := statusForError(err)
	if status >= http.StatusInternalServerError {
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		respondError(c, status, "Failed to "+action)
		return
	}
	logger.Warn("Rejected request to "+action, slog.String("error", err.Error()), slog.Int("status", status))
	respondError(c, status, err.Error())
}

func bindJSON(c *gin.Context, logger *slog.Logger, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		logger.Warn("Failed to bind request body", slog.String("error", err.Error()))
		respondError(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return false
	}
	return true
}

func bindQuery(c *gin.Context, logger *slog.Logger, params any) bool {
	if err := c.ShouldBindQuery(params); err != nil {
		logger.Warn("Failed to bind query parameters", slog.String("error", err.Error()))
		respondError(c, http.StatusBadRequest, "Invalid query parameters: "+err.Error())
		return false
	}
	return true
}

// requireUserID reads the caller set by the auth middleware.
func requireUserID(c *gin.Context, logger *slog.Logger) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return "", false
	}
	return userID, true
}
