package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/erp_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger_app/internal/dto"
	"github.com/SscSPs/erp_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles HTTP requests related to ledgers.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{
		ledgerService: ls,
	}
}

// registerLedgerRoutes registers the ledger routes under a company.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	ledgers := rg.Group("/ledgers")
	{
		ledgers.POST("", h.createLedger)
		ledgers.GET("", h.listLedgers)
		ledgers.GET("/:ledgerID", h.getLedger)
		ledgers.PUT("/:ledgerID", h.updateLedger)
		ledgers.DELETE("/:ledgerID", h.deleteLedger)
		ledgers.GET("/:ledgerID/statement", h.getStatement)
	}
}

// createLedger godoc
// @Summary Create a ledger
// @Description Creates a ledger under a group with an optional opening balance
// @Tags ledgers
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   ledger body dto.CreateLedgerRequest true "Ledger details"
// @Success 201 {object} dto.SuccessResponse{data=dto.LedgerResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Ledger name already used"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /companies/{companyID}/ledgers [post]
func (h *ledgerHandler) createLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	var req dto.CreateLedgerRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("company_id", companyID))

	ledger, err := h.ledgerService.CreateLedger(c.Request.Context(), companyID, req, userID)
	if err != nil {
		handleServiceError(c, logger, "create ledger", err)
		return
	}

	logger.Info("Ledger created successfully", slog.String("ledger_id", ledger.LedgerID))
	respond(c, http.StatusCreated, dto.ToLedgerResponse(ledger))
}

// getLedger godoc
// @Summary Get a ledger
// @Description Returns the ledger with its balance recomputed from its opening balance and vouchers
// @Tags ledgers
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   ledgerID path string true "Ledger ID"
// @Success 200 {object} dto.SuccessResponse{data=dto.LedgerResponse}
// @Failure 404 {object} dto.ErrorResponse "Ledger not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /companies/{companyID}/ledgers/{ledgerID} [get]
func (h *ledgerHandler) getLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ledgerID := c.Param("ledgerID")

	ledger, err := h.ledgerService.GetLedger(c.Request.Context(), c.Param("companyID"), ledgerID)
	if err != nil {
		handleServiceError(c, logger.With(slog.String("ledger_id", ledgerID)), "get ledger", err)
		return
	}

	respond(c, http.StatusOK, dto.ToLedgerResponse(ledger))
}

// listLedgers godoc
// @Summary List ledgers
// @Tags ledgers
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   groupId query string false "Only ledgers directly under this group"
// @Success 200 {object} dto.SuccessResponse{data=[]dto.LedgerResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /companies/{companyID}/ledgers [get]
func (h *ledgerHandler) listLedgers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListLedgersParams
	if !bindQuery(c, logger, &params) {
		return
	}

	ledgers, err := h.ledgerService.ListLedgers(c.Request.Context(), c.Param("companyID"), params)
	if err != nil {
		handleServiceError(c, logger, "list ledgers", err)
		return
	}

	respond(c, http.StatusOK, dto.ToListLedgerResponse(ledgers))
}

// updateLedger godoc
// @Summary Update a ledger
// @Tags ledgers
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   ledgerID path string true "Ledger ID"
// @Param   ledger body dto.UpdateLedgerRequest true "Fields to update"
// @Success 200 {object} dto.SuccessResponse{data=dto.LedgerResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Ledger not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /companies/{companyID}/ledgers/{ledgerID} [put]
func (h *ledgerHandler) updateLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ledgerID := c.Param("ledgerID")

	var req dto.UpdateLedgerRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	ledger, err := h.ledgerService.UpdateLedger(c.Request.Context(), c.Param("companyID"), ledgerID, req, userID)
	if err != nil {
		handleServiceError(c, logger.With(slog.String("ledger_id", ledgerID)), "update ledger", err)
		return
	}

	logger.Info("Ledger updated successfully", slog.String("ledger_id", ledgerID))
	respond(c, http.StatusOK, dto.ToLedgerResponse(ledger))
}

// deleteLedger godoc
// @Summary Delete a ledger
// @Description Ledgers referenced by any voucher cannot be deleted
// @Tags ledgers
// @Param   companyID path string true "Company ID"
// @Param   ledgerID path string true "Ledger ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse "Ledger not found"
// @Failure 409 {object} dto.ErrorResponse "Ledger is used by vouchers"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /companies/{companyID}/ledgers/{ledgerID} [delete]
func (h *ledgerHandler) deleteLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ledgerID := c.Param("ledgerID")

	if err := h.ledgerService.DeleteLedger(c.Request.Context(), c.Param("companyID"), ledgerID); err != nil {
		handleServiceError(c, logger.With(slog.String("ledger_id", ledgerID)), "delete ledger", err)
		return
	}

	logger.Info("Ledger deleted", slog.String("ledger_id", ledgerID))
	c.Status(http.StatusNoContent)
}

// getStatement godoc
// @Summary Get a ledger statement
// @Description Lists the ledger's vouchers in date order with a running balance
// @Tags ledgers
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   ledgerID path string true "Ledger ID"
// @Param   startDate query string false "Start date (YYYY-MM-DD)"
// @Param   endDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.SuccessResponse{data=domain.LedgerStatement}
// @Failure 400 {object} dto.ErrorResponse "Invalid dates"
// @Failure 404 {object} dto.ErrorResponse "Ledger not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /companies/{companyID}/ledgers/{ledgerID}/statement [get]
func (h *ledgerHandler) getStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ledgerID := c.Param("ledgerID")

	var params dto.StatementParams
	if !bindQuery(c, logger, &params) {
		return
	}

	statement, err := h.ledgerService.GetStatement(c.Request.Context(), c.Param("companyID"), ledgerID, params)
	if err != nil {
		handleServiceError(c, logger.With(slog.String("ledger_id", ledgerID)), "build ledger statement", err)
		return
	}

	respond(c, http.StatusOK, statement)
}
