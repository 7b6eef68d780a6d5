package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/erp_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger_app/internal/dto"
	"github.com/SscSPs/erp_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// companyHandler handles HTTP requests related to companies.
type companyHandler struct {
	companyService portssvc.CompanySvcFacade
}

// newCompanyHandler creates a new companyHandler.
func newCompanyHandler(cs portssvc.CompanySvcFacade) *companyHandler {
	return &companyHandler{
		companyService: cs,
	}
}

// registerCompanyRoutes registers routes for the company setup endpoints.
func registerCompanyRoutes(rg *gin.RouterGroup, companyService portssvc.CompanySvcFacade) {
	h := newCompanyHandler(companyService)

	companies := rg.Group("/companies")
	{
		companies.POST("", h.createCompany)
		companies.GET("", h.listCompanies)
		companies.GET("/:companyID", h.getCompany)
	}
}

// createCompany godoc
// @Summary Create a company
// @Description Creates a company and seeds its default chart of accounts
// @Tags companies
// @Accept  json
// @Produce  json
// @Param   company body dto.CreateCompanyRequest true "Company details"
// @Success 201 {object} dto.SuccessResponse{data=dto.CompanyResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /companies [post]
func (h *companyHandler) createCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCompanyRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	company, err := h.companyService.CreateCompany(c.Request.Context(), req, userID)
	if err != nil {
		handleServiceError(c, logger, "create company", err)
		return
	}

	logger.Info("Company created successfully", slog.String("company_id", company.CompanyID))
	respond(c, http.StatusCreated, dto.ToCompanyResponse(company))
}

// getCompany godoc
// @Summary Get a company by ID
// @Tags companies
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Success 200 {object} dto.SuccessResponse{data=dto.CompanyResponse}
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /companies/{companyID} [get]
func (h *companyHandler) getCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	company, err := h.companyService.GetCompanyByID(c.Request.Context(), companyID)
	if err != nil {
		handleServiceError(c, logger.With(slog.String("company_id", companyID)), "get company", err)
		return
	}

	respond(c, http.StatusOK, dto.ToCompanyResponse(company))
}

// listCompanies godoc
// @Summary List companies
// @Tags companies
// @Produce  json
// @Param   page query int false "Page number (1-based)"
// @Param   limit query int false "Page size"
// @Success 200 {object} dto.SuccessResponse{data=[]dto.CompanyResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /companies [get]
func (h *companyHandler) listCompanies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListCompaniesParams
	if !bindQuery(c, logger, &params) {
		return
	}

	companies, err := h.companyService.ListCompanies(c.Request.Context(), params)
	if err != nil {
		handleServiceError(c, logger, "list companies", err)
		return
	}

	respond(c, http.StatusOK, dto.ToListCompanyResponse(companies))
}
