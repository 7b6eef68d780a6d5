package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/erp_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger_app/internal/dto"
	"github.com/SscSPs/erp_ledger_app/internal/middleware"
	"github.com/SscSPs/erp_ledger_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// voucherHandler handles HTTP requests related to vouchers.
type voucherHandler struct {
	voucherService portssvc.VoucherSvcFacade
	analytics      *utils.PosthogClientWrapper
}

// newVoucherHandler creates a new voucherHandler.
func newVoucherHandler(vs portssvc.VoucherSvcFacade, analytics *utils.PosthogClientWrapper) *voucherHandler {
	return &voucherHandler{
		voucherService: vs,
		analytics:      analytics,
	}
}

// registerVoucherRoutes registers the voucher routes under a company.
func registerVoucherRoutes(rg *gin.RouterGroup, voucherService portssvc.VoucherSvcFacade, analytics *utils.PosthogClientWrapper) {
	h := newVoucherHandler(voucherService, analytics)

	vouchers := rg.Group("/vouchers")
	{
		vouchers.POST("", h.postVoucher)
		vouchers.GET("", h.listVouchers)
		vouchers.GET("/:voucherID", h.getVoucher)
		vouchers.PUT("/:voucherID", h.updateVoucher)
		vouchers.DELETE("/:voucherID", h.deleteVoucher)
	}
}

// postVoucher godoc
// @Summary Post a voucher
// @Description Validates that debits equal credits, assigns the next number for the type and month, and records stock and GST side effects
// @Tags vouchers
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   voucher body dto.CreateVoucherRequest true "Voucher"
// @Success 201 {object} dto.SuccessResponse{data=dto.VoucherResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid or unbalanced voucher"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /companies/{companyID}/vouchers [post]
func (h *voucherHandler) postVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	var req dto.CreateVoucherRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("company_id", companyID), slog.String("voucher_type", string(req.VoucherType)))

	voucher, err := h.voucherService.PostVoucher(c.Request.Context(), companyID, req, userID)
	if err != nil {
		handleServiceError(c, logger, "post voucher", err)
		return
	}

	middleware.PosthogEvent(c, h.analytics, "voucher_posted", map[string]any{
		"company_id":   companyID,
		"voucher_type": string(voucher.VoucherType),
		"entries":      len(voucher.Entries),
		"has_gst":      voucher.GSTDetails != nil,
		"has_items":    len(voucher.Items) > 0,
	})
	logger.Info("Voucher posted successfully", slog.String("voucher_id", voucher.VoucherID), slog.String("voucher_number", voucher.VoucherNumber))
	respond(c, http.StatusCreated, dto.ToVoucherResponse(voucher))
}

// getVoucher godoc
// @Summary Get a voucher
// @Tags vouchers
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   voucherID path string true "Voucher ID"
// @Success 200 {object} dto.SuccessResponse{data=dto.VoucherResponse}
// @Failure 404 {object} dto.ErrorResponse "Voucher not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /companies/{companyID}/vouchers/{voucherID} [get]
func (h *voucherHandler) getVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	voucherID := c.Param("voucherID")

	voucher, err := h.voucherService.GetVoucher(c.Request.Context(), c.Param("companyID"), voucherID)
	if err != nil {
		handleServiceError(c, logger.With(slog.String("voucher_id", voucherID)), "get voucher", err)
		return
	}

	respond(c, http.StatusOK, dto.ToVoucherResponse(voucher))
}

// listVouchers godoc
// @Summary List vouchers
// @Description Lists vouchers newest first, optionally filtered by type and date range
// @Tags vouchers
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   voucherType query string false "Voucher type" Enums(Sales,Purchase,Payment,Receipt,Journal,Contra,DebitNote,CreditNote)
// @Param   startDate query string false "Start date (YYYY-MM-DD)"
// @Param   endDate query string false "End date (YYYY-MM-DD)"
// @Param   page query int false "Page number (1-based)"
// @Param   limit query int false "Page size"
// @Success 200 {object} dto.SuccessResponse{data=dto.ListVouchersResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /companies/{companyID}/vouchers [get]
func (h *voucherHandler) listVouchers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListVouchersParams
	if !bindQuery(c, logger, &params) {
		return
	}

	page, err := h.voucherService.ListVouchers(c.Request.Context(), c.Param("companyID"), params)
	if err != nil {
		handleServiceError(c, logger, "list vouchers", err)
		return
	}

	respond(c, http.StatusOK, page)
}

// updateVoucher godoc
// @Summary Update a voucher
// @Description Replaces the voucher's date, entries and details. The number and type are kept and the change is recorded in the edit history.
// @Tags vouchers
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   voucherID path string true "Voucher ID"
// @Param   voucher body dto.UpdateVoucherRequest true "Voucher"
// @Success 200 {object} dto.SuccessResponse{data=dto.VoucherResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid or unbalanced voucher"
// @Failure 404 {object} dto.ErrorResponse "Voucher not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /companies/{companyID}/vouchers/{voucherID} [put]
func (h *voucherHandler) updateVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	voucherID := c.Param("voucherID")

	var req dto.UpdateVoucherRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("voucher_id", voucherID))

	voucher, err := h.voucherService.UpdateVoucher(c.Request.Context(), c.Param("companyID"), voucherID, req, userID)
	if err != nil {
		handleServiceError(c, logger, "update voucher", err)
		return
	}

	logger.Info("Voucher updated successfully")
	respond(c, http.StatusOK, dto.ToVoucherResponse(voucher))
}

// deleteVoucher godoc
// @Summary Delete a voucher
// @Description Removes the voucher, reverses its stock movements and drops its GST entry
// @Tags vouchers
// @Param   companyID path string true "Company ID"
// @Param   voucherID path string true "Voucher ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse "Voucher not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /companies/{companyID}/vouchers/{voucherID} [delete]
func (h *voucherHandler) deleteVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	voucherID := c.Param("voucherID")

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("voucher_id", voucherID))

	if err := h.voucherService.DeleteVoucher(c.Request.Context(), c.Param("companyID"), voucherID, userID); err != nil {
		handleServiceError(c, logger, "delete voucher", err)
		return
	}

	logger.Info("Voucher deleted")
	c.Status(http.StatusNoContent)
}
