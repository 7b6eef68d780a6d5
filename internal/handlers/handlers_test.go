package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/erp_ledger_app/internal/apperrors"
	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/erp_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger_app/internal/dto"
	"github.com/SscSPs/erp_ledger_app/internal/handlers"
	"github.com/SscSPs/erp_ledger_app/internal/middleware"
	"github.com/SscSPs/erp_ledger_app/internal/platform/config"
	"github.com/SscSPs/erp_ledger_app/internal/utils/pagination"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	testCompanyID = "company-1"
	testUserID    = "user-42"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

type HandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	jwtSecret     string
	mockCompany   *MockCompanyService
	mockGroup     *MockGroupService
	mockLedger    *MockLedgerService
	mockVoucher   *MockVoucherService
	mockInventory *MockInventoryService
	mockReporting *MockReportingService
}

func (suite *HandlerTestSuite) generateTestToken(userID string, expiresIn time.Duration) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "erp-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	suite.Require().NoError(err)
	return signed
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.jwtSecret = "test-secret-for-handlers"

	suite.mockCompany = new(MockCompanyService)
	suite.mockGroup = new(MockGroupService)
	suite.mockLedger = new(MockLedgerService)
	suite.mockVoucher = new(MockVoucherService)
	suite.mockInventory = new(MockInventoryService)
	suite.mockReporting = new(MockReportingService)

	cfg := &config.Config{AuthEnabled: true, JWTSecret: suite.jwtSecret, IsProduction: true}
	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, suite.container(), nil)
}

func (suite *HandlerTestSuite) container() *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Company:   suite.mockCompany,
		Group:     suite.mockGroup,
		Ledger:    suite.mockLedger,
		Voucher:   suite.mockVoucher,
		Inventory: suite.mockInventory,
		Reporting: suite.mockReporting,
	}
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.mockCompany.AssertExpectations(suite.T())
	suite.mockGroup.AssertExpectations(suite.T())
	suite.mockLedger.AssertExpectations(suite.T())
	suite.mockVoucher.AssertExpectations(suite.T())
	suite.mockInventory.AssertExpectations(suite.T())
	suite.mockReporting.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) do(method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, path, reader)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(testUserID, time.Hour))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func companyPath(format string, args ...any) string {
	return "/api/v1/companies/" + testCompanyID + fmt.Sprintf(format, args...)
}

func salesVoucherBody() map[string]any {
	return map[string]any{
		"voucherType": "Sales",
		"date":        "2024-04-10",
		"narration":   "Invoice 17",
		"entries": []map[string]any{
			{"ledgerID": "debtor", "type": "Dr", "amount": "59000"},
			{"ledgerID": "sales", "type": "Cr", "amount": "59000"},
		},
	}
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (suite *HandlerTestSuite) TestHealth() {
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlerTestSuite) TestMetricsEndpoint() {
	req, _ := http.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestAuth_MissingToken() {
	req, _ := http.NewRequest(http.MethodGet, companyPath("/vouchers"), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockVoucher.AssertNotCalled(suite.T(), "ListVouchers", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestAuth_ExpiredToken() {
	req, _ := http.NewRequest(http.MethodGet, companyPath("/vouchers"), nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(testUserID, -time.Minute))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	var env envelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env))
	suite.Equal("Token has expired", env.Error)
}

func (suite *HandlerTestSuite) TestPostVoucher_Success() {
	posted := &domain.Voucher{
		VoucherID:     "v-1",
		CompanyID:     testCompanyID,
		VoucherNumber: "SAL-202404-0001",
		VoucherType:   domain.Sales,
		Date:          time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC),
		Entries: []domain.VoucherEntry{
			{LedgerID: "debtor", Type: domain.Debit, Amount: decimal.NewFromInt(59000)},
			{LedgerID: "sales", Type: domain.Credit, Amount: decimal.NewFromInt(59000)},
		},
		TotalAmount: decimal.NewFromInt(59000),
	}
	suite.mockVoucher.On("PostVoucher", mock.Anything, testCompanyID,
		mock.MatchedBy(func(req dto.CreateVoucherRequest) bool {
			return req.VoucherType == domain.Sales && len(req.Entries) == 2 &&
				req.Entries[0].Amount.Equal(decimal.NewFromInt(59000)) && req.Date == "2024-04-10"
		}), testUserID).Return(posted, nil).Once()

	w, env := suite.do(http.MethodPost, companyPath("/vouchers"), salesVoucherBody())

	suite.Equal(http.StatusCreated, w.Code)
	suite.True(env.Success)
	var resp dto.VoucherResponse
	suite.Require().NoError(json.Unmarshal(env.Data, &resp))
	suite.Equal("SAL-202404-0001", resp.VoucherNumber)
	suite.Equal("2024-04-10", resp.Date)
	suite.True(resp.TotalAmount.Equal(decimal.NewFromInt(59000)))
}

func (suite *HandlerTestSuite) TestPostVoucher_Unbalanced() {
	suite.mockVoucher.On("PostVoucher", mock.Anything, testCompanyID, mock.Anything, testUserID).
		Return(nil, fmt.Errorf("%w: debits 59000.00 do not equal credits 50000.00", apperrors.ErrValidation)).Once()

	w, env := suite.do(http.MethodPost, companyPath("/vouchers"), salesVoucherBody())

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.False(env.Success)
	suite.Contains(env.Error, "do not equal credits")
}

func (suite *HandlerTestSuite) TestPostVoucher_BindingRejectsBadInput() {
	testCases := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"unknown voucher type", func(b map[string]any) { b["voucherType"] = "Invoice" }},
		{"bad date", func(b map[string]any) { b["date"] = "10/04/2024" }},
		{"single entry", func(b map[string]any) {
			b["entries"] = []map[string]any{{"ledgerID": "debtor", "type": "Dr", "amount": "1"}}
		}},
		{"bad side", func(b map[string]any) {
			b["entries"] = []map[string]any{
				{"ledgerID": "debtor", "type": "Debit", "amount": "1"},
				{"ledgerID": "sales", "type": "Cr", "amount": "1"},
			}
		}},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			body := salesVoucherBody()
			tc.mutate(body)

			w, env := suite.do(http.MethodPost, companyPath("/vouchers"), body)

			suite.Equal(http.StatusBadRequest, w.Code)
			suite.Contains(env.Error, "Invalid request format")
		})
	}
	suite.mockVoucher.AssertNotCalled(suite.T(), "PostVoucher", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestGetVoucher_NotFound() {
	suite.mockVoucher.On("GetVoucher", mock.Anything, testCompanyID, "v-404").
		Return(nil, apperrors.NewNotFoundError("voucher v-404")).Once()

	w, env := suite.do(http.MethodGet, companyPath("/vouchers/v-404"), nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(env.Error, "voucher v-404")
}

func (suite *HandlerTestSuite) TestListVouchers_PassesFilters() {
	page := &dto.ListVouchersResponse{
		Vouchers:   []dto.VoucherResponse{{VoucherID: "v-1", VoucherNumber: "SAL-202404-0001"}},
		Pagination: pagination.Meta{Page: 2, Limit: 10, Total: 11, TotalPages: 2},
	}
	suite.mockVoucher.On("ListVouchers", mock.Anything, testCompanyID,
		mock.MatchedBy(func(p dto.ListVouchersParams) bool {
			return p.VoucherType == "Sales" && p.StartDate == "2024-04-01" && p.Page == 2 && p.Limit == 10
		})).Return(page, nil).Once()

	w, env := suite.do(http.MethodGet, companyPath("/vouchers?voucherType=Sales&startDate=2024-04-01&page=2&limit=10"), nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListVouchersResponse
	suite.Require().NoError(json.Unmarshal(env.Data, &resp))
	suite.Len(resp.Vouchers, 1)
	suite.Equal(2, resp.Pagination.Page)
}

func (suite *HandlerTestSuite) TestUpdateVoucher() {
	updated := &domain.Voucher{VoucherID: "v-1", VoucherNumber: "SAL-202404-0001", VoucherType: domain.Sales}
	suite.mockVoucher.On("UpdateVoucher", mock.Anything, testCompanyID, "v-1",
		mock.MatchedBy(func(req dto.UpdateVoucherRequest) bool { return req.Narration == "Invoice 17" }),
		testUserID).Return(updated, nil).Once()

	body := salesVoucherBody()
	delete(body, "voucherType")
	w, env := suite.do(http.MethodPut, companyPath("/vouchers/v-1"), body)

	suite.Equal(http.StatusOK, w.Code)
	suite.True(env.Success)
}

func (suite *HandlerTestSuite) TestDeleteVoucher() {
	suite.mockVoucher.On("DeleteVoucher", mock.Anything, testCompanyID, "v-1", testUserID).Return(nil).Once()

	w, _ := suite.do(http.MethodDelete, companyPath("/vouchers/v-1"), nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlerTestSuite) TestCreateCompany() {
	company := &domain.Company{
		CompanyID:          testCompanyID,
		Name:               "Acme Traders",
		FinancialYearStart: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		BooksBeginFrom:     time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	}
	suite.mockCompany.On("CreateCompany", mock.Anything,
		dto.CreateCompanyRequest{Name: "Acme Traders", FinancialYearStart: "2024-04-01"}, testUserID).
		Return(company, nil).Once()

	w, env := suite.do(http.MethodPost, "/api/v1/companies", map[string]any{
		"name":               "Acme Traders",
		"financialYearStart": "2024-04-01",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.CompanyResponse
	suite.Require().NoError(json.Unmarshal(env.Data, &resp))
	suite.Equal("2024-04-01", resp.BooksBeginFrom)
}

func (suite *HandlerTestSuite) TestCreateCompany_MissingName() {
	w, _ := suite.do(http.MethodPost, "/api/v1/companies", map[string]any{"financialYearStart": "2024-04-01"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCompany.AssertNotCalled(suite.T(), "CreateCompany", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestListGroups_HidesInternalErrors() {
	suite.mockGroup.On("ListGroups", mock.Anything, testCompanyID).
		Return(nil, errors.New("connection reset by peer")).Once()

	w, env := suite.do(http.MethodGet, companyPath("/groups"), nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Failed to list groups", env.Error)
}

func (suite *HandlerTestSuite) TestDeleteGroup_Conflict() {
	suite.mockGroup.On("DeleteGroup", mock.Anything, testCompanyID, "g-1").
		Return(fmt.Errorf("%w: group has ledgers", apperrors.ErrReferentialIntegrity)).Once()

	w, _ := suite.do(http.MethodDelete, companyPath("/groups/g-1"), nil)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestGetLedger() {
	ledger := &domain.Ledger{
		LedgerID:       "sales",
		CompanyID:      testCompanyID,
		GroupID:        "g-sales",
		Name:           "Sales",
		CurrentBalance: domain.Balance{Amount: decimal.NewFromInt(50000), Type: domain.Credit},
	}
	suite.mockLedger.On("GetLedger", mock.Anything, testCompanyID, "sales").Return(ledger, nil).Once()

	w, env := suite.do(http.MethodGet, companyPath("/ledgers/sales"), nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LedgerResponse
	suite.Require().NoError(json.Unmarshal(env.Data, &resp))
	suite.Equal(domain.Credit, resp.CurrentBalance.Type)
	suite.True(resp.CurrentBalance.Amount.Equal(decimal.NewFromInt(50000)))
	suite.Equal(domain.Debit, resp.OpeningBalance.Type)
}

func (suite *HandlerTestSuite) TestDeleteLedger_UsedByVouchers() {
	suite.mockLedger.On("DeleteLedger", mock.Anything, testCompanyID, "cash").
		Return(fmt.Errorf("%w: ledger cash is used by 3 vouchers", apperrors.ErrReferentialIntegrity)).Once()

	w, env := suite.do(http.MethodDelete, companyPath("/ledgers/cash"), nil)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(env.Error, "used by 3 vouchers")
}

func (suite *HandlerTestSuite) TestGetStatement() {
	statement := &domain.LedgerStatement{LedgerID: "cash", LedgerName: "Cash"}
	suite.mockLedger.On("GetStatement", mock.Anything, testCompanyID, "cash",
		dto.StatementParams{StartDate: "2024-04-01", EndDate: "2024-04-30"}).Return(statement, nil).Once()

	w, _ := suite.do(http.MethodGet, companyPath("/ledgers/cash/statement?startDate=2024-04-01&endDate=2024-04-30"), nil)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestDeleteItem_HasStock() {
	suite.mockInventory.On("DeleteItem", mock.Anything, testCompanyID, "item-1").
		Return(fmt.Errorf("%w: item has stock transactions", apperrors.ErrReferentialIntegrity)).Once()

	w, _ := suite.do(http.MethodDelete, companyPath("/inventory-items/item-1"), nil)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestListGSTEntries() {
	suite.mockInventory.On("ListGSTEntries", mock.Anything, testCompanyID, dto.GSTEntriesParams{StartDate: "2024-04-01"}).
		Return([]domain.GSTEntry{{GSTEntryID: "gst-1", VoucherNumber: "SAL-202404-0001"}}, nil).Once()

	w, env := suite.do(http.MethodGet, companyPath("/gst-entries?startDate=2024-04-01"), nil)

	suite.Equal(http.StatusOK, w.Code)
	var entries []domain.GSTEntry
	suite.Require().NoError(json.Unmarshal(env.Data, &entries))
	suite.Len(entries, 1)
}

func (suite *HandlerTestSuite) TestTrialBalance_PassesAsOf() {
	tb := &domain.TrialBalance{TotalDebit: decimal.NewFromInt(69000), TotalCredit: decimal.NewFromInt(69000), IsBalanced: true}
	suite.mockReporting.On("TrialBalance", mock.Anything, testCompanyID, dto.ReportParams{AsOf: "2024-04-30"}).
		Return(tb, nil).Once()

	w, env := suite.do(http.MethodGet, companyPath("/reports/trial-balance?asOf=2024-04-30"), nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp domain.TrialBalance
	suite.Require().NoError(json.Unmarshal(env.Data, &resp))
	suite.True(resp.IsBalanced)
}

func (suite *HandlerTestSuite) TestReports_RejectBadDate() {
	w, _ := suite.do(http.MethodGet, companyPath("/reports/balance-sheet?asOf=2024-13-01"), nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReporting.AssertNotCalled(suite.T(), "BalanceSheet", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestBankBook_RequiresLedger() {
	suite.mockReporting.On("BankBook", mock.Anything, testCompanyID, dto.ReportParams{}).
		Return(nil, fmt.Errorf("%w: ledgerId is required", apperrors.ErrValidation)).Once()

	w, env := suite.do(http.MethodGet, companyPath("/reports/bank-book"), nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(env.Error, "ledgerId")
}

func (suite *HandlerTestSuite) TestDashboard() {
	suite.mockReporting.On("Dashboard", mock.Anything, testCompanyID).
		Return(&domain.Dashboard{VoucherCount: 3, NetProfit: decimal.NewFromInt(50000)}, nil).Once()

	w, env := suite.do(http.MethodGet, companyPath("/reports/dashboard"), nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp domain.Dashboard
	suite.Require().NoError(json.Unmarshal(env.Data, &resp))
	suite.Equal(3, resp.VoucherCount)
}

func TestRegisterRoutes_AnonymousWhenAuthDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	groups := new(MockGroupService)
	router := gin.New()
	handlers.RegisterRoutes(router, &config.Config{IsProduction: true}, &portssvc.ServiceContainer{Group: groups}, nil)

	created := &domain.Group{GroupID: "g-1", CompanyID: testCompanyID, Name: "Petty Cash", Nature: domain.NatureAssets}
	groups.On("CreateGroup", mock.Anything, testCompanyID, mock.Anything, middleware.AnonymousUserID).Return(created, nil).Once()

	raw, err := json.Marshal(map[string]any{"name": "Petty Cash", "parentGroupID": "g-cash"})
	require.NoError(t, err)
	req, _ := http.NewRequest(http.MethodPost, companyPath("/groups"), bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	groups.AssertExpectations(t)
}
