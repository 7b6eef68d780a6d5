package handlers

import (
	"context"
	"net/http"

	portssvc "github.com/SscSPs/erp_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger_app/internal/dto"
	"github.com/SscSPs/erp_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler serves the financial reports of a company.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the report routes under a company.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.trialBalance)
		reports.GET("/profit-loss", h.profitAndLoss)
		reports.GET("/balance-sheet", h.balanceSheet)
		reports.GET("/cash-book", h.cashBook)
		reports.GET("/bank-book", h.bankBook)
		reports.GET("/day-book", h.dayBook)
		reports.GET("/receivables", h.receivables)
		reports.GET("/payables", h.payables)
		reports.GET("/dashboard", h.dashboard)
	}
}

type reportBuilder func(ctx context.Context, companyID string, params dto.ReportParams) (any, error)

// serve binds the report query, runs build and writes the result.
func (h *reportingHandler) serve(c *gin.Context, action string, build reportBuilder) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ReportParams
	if !bindQuery(c, logger, &params) {
		return
	}

	report, err := build(c.Request.Context(), c.Param("companyID"), params)
	if err != nil {
		handleServiceError(c, logger, action, err)
		return
	}
	respond(c, http.StatusOK, report)
}

// trialBalance godoc
// @Summary Trial balance
// @Description Closing balance of every ledger with Dr and Cr totals
// @Tags reports
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   asOf query string false "As-of date (YYYY-MM-DD)"
// @Success 200 {object} dto.SuccessResponse{data=domain.TrialBalance}
// @Failure 400 {object} dto.ErrorResponse "Invalid date"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /companies/{companyID}/reports/trial-balance [get]
func (h *reportingHandler) trialBalance(c *gin.Context) {
	h.serve(c, "build trial balance", func(ctx context.Context, companyID string, p dto.ReportParams) (any, error) {
		return h.reportingService.TrialBalance(ctx, companyID, p)
	})
}

// profitAndLoss godoc
// @Summary Profit and loss
// @Description Trading and P&L account with gross and net profit
// @Tags reports
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   startDate query string false "Start date (YYYY-MM-DD)"
// @Param   endDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.SuccessResponse{data=domain.ProfitAndLoss}
// @Failure 400 {object} dto.ErrorResponse "Invalid dates"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /companies/{companyID}/reports/profit-loss [get]
func (h *reportingHandler) profitAndLoss(c *gin.Context) {
	h.serve(c, "build profit and loss", func(ctx context.Context, companyID string, p dto.ReportParams) (any, error) {
		return h.reportingService.ProfitAndLoss(ctx, companyID, p)
	})
}

// balanceSheet godoc
// @Summary Balance sheet
// @Description Assets against liabilities and capital, with the year's profit carried to capital
// @Tags reports
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   asOf query string false "As-of date (YYYY-MM-DD)"
// @Success 200 {object} dto.SuccessResponse{data=domain.BalanceSheet}
// @Failure 400 {object} dto.ErrorResponse "Invalid date"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /companies/{companyID}/reports/balance-sheet [get]
func (h *reportingHandler) balanceSheet(c *gin.Context) {
	h.serve(c, "build balance sheet", func(ctx context.Context, companyID string, p dto.ReportParams) (any, error) {
		return h.reportingService.BalanceSheet(ctx, companyID, p)
	})
}

// cashBook godoc
// @Summary Cash book
// @Description One book per Cash-in-Hand ledger, or only the given ledger
// @Tags reports
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   ledgerId query string false "Cash ledger ID"
// @Param   startDate query string false "Start date (YYYY-MM-DD)"
// @Param   endDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.SuccessResponse{data=[]domain.Book}
// @Failure 400 {object} dto.ErrorResponse "Invalid dates"
// @Failure 404 {object} dto.ErrorResponse "Ledger not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /companies/{companyID}/reports/cash-book [get]
func (h *reportingHandler) cashBook(c *gin.Context) {
	h.serve(c, "build cash book", func(ctx context.Context, companyID string, p dto.ReportParams) (any, error) {
		return h.reportingService.CashBook(ctx, companyID, p)
	})
}

// bankBook godoc
// @Summary Bank book
// @Tags reports
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   ledgerId query string true "Bank ledger ID"
// @Param   startDate query string false "Start date (YYYY-MM-DD)"
// @Param   endDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.SuccessResponse{data=domain.Book}
// @Failure 400 {object} dto.ErrorResponse "Missing ledger or not a bank account"
// @Failure 404 {object} dto.ErrorResponse "Ledger not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /companies/{companyID}/reports/bank-book [get]
func (h *reportingHandler) bankBook(c *gin.Context) {
	h.serve(c, "build bank book", func(ctx context.Context, companyID string, p dto.ReportParams) (any, error) {
		return h.reportingService.BankBook(ctx, companyID, p)
	})
}

// dayBook godoc
// @Summary Day book
// @Description All vouchers of one date, today when no date is given
// @Tags reports
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   date query string false "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.SuccessResponse{data=domain.DayBook}
// @Failure 400 {object} dto.ErrorResponse "Invalid date"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /companies/{companyID}/reports/day-book [get]
func (h *reportingHandler) dayBook(c *gin.Context) {
	h.serve(c, "build day book", func(ctx context.Context, companyID string, p dto.ReportParams) (any, error) {
		return h.reportingService.DayBook(ctx, companyID, p)
	})
}

// receivables godoc
// @Summary Outstanding receivables
// @Description Sundry Debtors with a debit balance
// @Tags reports
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   asOf query string false "As-of date (YYYY-MM-DD)"
// @Success 200 {object} dto.SuccessResponse{data=domain.Outstanding}
// @Failure 400 {object} dto.ErrorResponse "Invalid date"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /companies/{companyID}/reports/receivables [get]
func (h *reportingHandler) receivables(c *gin.Context) {
	h.serve(c, "build receivables", func(ctx context.Context, companyID string, p dto.ReportParams) (any, error) {
		return h.reportingService.Receivables(ctx, companyID, p)
	})
}

// payables godoc
// @Summary Outstanding payables
// @Description Sundry Creditors with a credit balance
// @Tags reports
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   asOf query string false "As-of date (YYYY-MM-DD)"
// @Success 200 {object} dto.SuccessResponse{data=domain.Outstanding}
// @Failure 400 {object} dto.ErrorResponse "Invalid date"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /companies/{companyID}/reports/payables [get]
func (h *reportingHandler) payables(c *gin.Context) {
	h.serve(c, "build payables", func(ctx context.Context, companyID string, p dto.ReportParams) (any, error) {
		return h.reportingService.Payables(ctx, companyID, p)
	})
}

// dashboard godoc
// @Summary Dashboard
// @Description Cash, bank, receivables, payables, profit and the latest vouchers
// @Tags reports
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Success 200 {object} dto.SuccessResponse{data=domain.Dashboard}
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /companies/{companyID}/reports/dashboard [get]
func (h *reportingHandler) dashboard(c *gin.Context) {
	h.serve(c, "build dashboard", func(ctx context.Context, companyID string, _ dto.ReportParams) (any, error) {
		return h.reportingService.Dashboard(ctx, companyID)
	})
}
