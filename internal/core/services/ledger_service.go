package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/erp_ledger_app/internal/apperrors"
	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger_app/internal/dto"
	"github.com/SscSPs/erp_ledger_app/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ledgerService struct {
	BaseService
	ledgerRepo  portsrepo.LedgerRepositoryFacade
	groupRepo   portsrepo.GroupReader
	companyRepo portsrepo.CompanyReader
	voucherRepo portsrepo.VoucherReader
	txManager   portsrepo.TransactionManager
}

// NewLedgerService creates the ledger service.
func NewLedgerService(
	ledgerRepo portsrepo.LedgerRepositoryFacade,
	groupRepo portsrepo.GroupReader,
	companyRepo portsrepo.CompanyReader,
	voucherRepo portsrepo.VoucherReader,
	txManager portsrepo.TransactionManager,
) portssvc.LedgerSvcFacade {
	return &ledgerService{
		ledgerRepo:  ledgerRepo,
		groupRepo:   groupRepo,
		companyRepo: companyRepo,
		voucherRepo: voucherRepo,
		txManager:   txManager,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) findLedger(ctx context.Context, companyID, ledgerID string) (*domain.Ledger, error) {
	ledger, err := s.ledgerRepo.FindLedgerByID(ctx, companyID, ledgerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("ledger " + ledgerID)
		}
		s.LogError(ctx, err, "Failed to find ledger", slog.String("ledger_id", ledgerID))
		return nil, fmt.Errorf("failed to find ledger: %w", err)
	}
	return ledger, nil
}

func (s *ledgerService) vouchersFor(ctx context.Context, companyID, ledgerID string) ([]domain.Voucher, error) {
	vouchers, err := s.voucherRepo.FindVouchers(ctx, companyID, domain.VoucherFilter{LedgerID: &ledgerID})
	if err != nil {
		return nil, fmt.Errorf("failed to load vouchers for ledger %s: %w", ledgerID, err)
	}
	return vouchers, nil
}

// refresh recomputes the ledger's balance and stores it when it differs from the cache.
func (s *ledgerService) refresh(ctx context.Context, ledger *domain.Ledger) error {
	vouchers, err := s.vouchersFor(ctx, ledger.CompanyID, ledger.LedgerID)
	if err != nil {
		return err
	}
	balance := accounting.ComputeBalance(*ledger, vouchers)
	balance.Amount = accounting.RoundAmount(balance.Amount)
	if balance.Amount.Equal(ledger.CurrentBalance.Amount) && balance.Type == ledger.CurrentBalance.Type {
		return nil
	}
	now := time.Now().UTC()
	if err := s.ledgerRepo.UpdateLedgerBalance(ctx, ledger.LedgerID, balance, now); err != nil {
		return fmt.Errorf("failed to store balance of ledger %s: %w", ledger.LedgerID, err)
	}
	s.LogDebug(ctx, "Ledger balance refreshed",
		slog.String("ledger_id", ledger.LedgerID),
		slog.String("balance", balance.String()))
	ledger.CurrentBalance = balance
	ledger.LastUpdatedAt = now
	return nil
}

// GetLedger returns the ledger with its balance recomputed from every voucher.
func (s *ledgerService) GetLedger(ctx context.Context, companyID string, ledgerID string) (*domain.Ledger, error) {
	ledger, err := s.findLedger(ctx, companyID, ledgerID)
	if err != nil {
		return nil, err
	}
	if err := s.refresh(ctx, ledger); err != nil {
		s.LogError(ctx, err, "Failed to refresh ledger balance", slog.String("ledger_id", ledgerID))
		return nil, err
	}
	return ledger, nil
}

func (s *ledgerService) ListLedgers(ctx context.Context, companyID string, params dto.ListLedgersParams) ([]domain.Ledger, error) {
	var groupID *string
	if params.GroupID != "" {
		groupID = &params.GroupID
	}
	ledgers, err := s.ledgerRepo.ListLedgers(ctx, companyID, groupID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledgers", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to list ledgers: %w", err)
	}
	if ledgers == nil {
		ledgers = []domain.Ledger{}
	}
	return ledgers, nil
}

func (s *ledgerService) GetStatement(ctx context.Context, companyID string, ledgerID string, params dto.StatementParams) (*domain.LedgerStatement, error) {
	period, err := dto.ParsePeriod(params.StartDate, params.EndDate)
	if err != nil {
		return nil, err
	}
	ledger, err := s.findLedger(ctx, companyID, ledgerID)
	if err != nil {
		return nil, err
	}
	vouchers, err := s.vouchersFor(ctx, companyID, ledgerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to build statement", slog.String("ledger_id", ledgerID))
		return nil, err
	}
	stmt := accounting.RunningStatement(*ledger, vouchers, period)
	return &stmt, nil
}

func (s *ledgerService) requireGroup(ctx context.Context, companyID, groupID string) error {
	if _, err := s.groupRepo.FindGroupByID(ctx, companyID, groupID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: group %s not found in company", apperrors.ErrValidation, groupID)
		}
		return fmt.Errorf("failed to find group: %w", err)
	}
	return nil
}

// applyOpening copies an opening balance request onto ob, keeping fields the request leaves out.
func applyOpening(ob *domain.OpeningBalance, req *dto.OpeningBalanceRequest) error {
	if req.Amount.IsNegative() {
		return fmt.Errorf("%w: opening balance cannot be negative", apperrors.ErrValidation)
	}
	ob.Amount = accounting.RoundAmount(req.Amount)
	if req.Type != "" {
		if !req.Type.IsValid() {
			return fmt.Errorf("%w: opening balance type must be Dr or Cr", apperrors.ErrValidation)
		}
		ob.Type = req.Type
	}
	if req.Date != "" {
		d, err := dto.ParseDate("openingBalance.date", req.Date)
		if err != nil {
			return err
		}
		ob.Date = d
	}
	return nil
}

func (s *ledgerService) CreateLedger(ctx context.Context, companyID string, req dto.CreateLedgerRequest, userID string) (*domain.Ledger, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("company " + companyID)
		}
		return nil, fmt.Errorf("failed to find company: %w", err)
	}
	if err := s.requireGroup(ctx, companyID, req.GroupID); err != nil {
		return nil, err
	}

	opening := domain.OpeningBalance{Amount: decimal.Zero, Type: domain.Debit, Date: company.BooksBeginFrom}
	if req.OpeningBalance != nil {
		if err := applyOpening(&opening, req.OpeningBalance); err != nil {
			return nil, err
		}
	}

	ledger := domain.Ledger{
		LedgerID:       uuid.NewString(),
		CompanyID:      companyID,
		GroupID:        req.GroupID,
		Name:           req.Name,
		OpeningBalance: opening,
		CurrentBalance: domain.Balance{Amount: opening.Amount, Type: opening.Type},
		ContactDetails: req.ContactDetails,
		BankDetails:    req.BankDetails,
		GSTApplicable:  req.GSTApplicable,
		AuditFields:    newAuditFields(time.Now().UTC(), userID),
	}
	if err := s.ledgerRepo.SaveLedger(ctx, ledger); err != nil {
		s.LogError(ctx, err, "Failed to save ledger", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to create ledger: %w", err)
	}
	s.LogInfo(ctx, "Ledger created", slog.String("ledger_id", ledger.LedgerID), slog.String("company_id", companyID))
	return &ledger, nil
}

// UpdateLedger changes a ledger's details. A new opening balance is replayed into the cached balance.
func (s *ledgerService) UpdateLedger(ctx context.Context, companyID string, ledgerID string, req dto.UpdateLedgerRequest, userID string) (*domain.Ledger, error) {
	var updated *domain.Ledger
	err := s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		ledger, err := s.findLedger(ctx, companyID, ledgerID)
		if err != nil {
			return err
		}
		if req.Name != nil {
			ledger.Name = *req.Name
		}
		if req.GroupID != nil && *req.GroupID != ledger.GroupID {
			if err := s.requireGroup(ctx, companyID, *req.GroupID); err != nil {
				return err
			}
			ledger.GroupID = *req.GroupID
		}
		if req.OpeningBalance != nil {
			if err := applyOpening(&ledger.OpeningBalance, req.OpeningBalance); err != nil {
				return err
			}
		}
		if req.ContactDetails != nil {
			ledger.ContactDetails = req.ContactDetails
		}
		if req.BankDetails != nil {
			ledger.BankDetails = req.BankDetails
		}
		if req.GSTApplicable != nil {
			ledger.GSTApplicable = *req.GSTApplicable
		}
		touch(&ledger.AuditFields, time.Now().UTC(), userID)

		if err := s.ledgerRepo.UpdateLedger(ctx, *ledger); err != nil {
			return fmt.Errorf("failed to update ledger: %w", err)
		}
		if err := s.refresh(ctx, ledger); err != nil {
			return err
		}
		updated = ledger
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update ledger", slog.String("ledger_id", ledgerID))
		return nil, err
	}
	return updated, nil
}

func (s *ledgerService) DeleteLedger(ctx context.Context, companyID string, ledgerID string) error {
	if _, err := s.findLedger(ctx, companyID, ledgerID); err != nil {
		return err
	}
	count, err := s.voucherRepo.CountVouchersByLedger(ctx, ledgerID)
	if err != nil {
		return fmt.Errorf("failed to count vouchers for ledger: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: ledger is used by %d vouchers", apperrors.ErrReferentialIntegrity, count)
	}
	if err := s.ledgerRepo.DeleteLedger(ctx, companyID, ledgerID); err != nil {
		s.LogError(ctx, err, "Failed to delete ledger", slog.String("ledger_id", ledgerID))
		return fmt.Errorf("failed to delete ledger: %w", err)
	}
	s.LogInfo(ctx, "Ledger deleted", slog.String("ledger_id", ledgerID))
	return nil
}

// RefreshBalances recomputes the cached balance of each ledger. Unknown IDs are skipped.
func (s *ledgerService) RefreshBalances(ctx context.Context, companyID string, ledgerIDs []string) error {
	if len(ledgerIDs) == 0 {
		return nil
	}
	ledgers, err := s.ledgerRepo.FindLedgersByIDs(ctx, companyID, ledgerIDs)
	if err != nil {
		return fmt.Errorf("failed to load ledgers for refresh: %w", err)
	}
	for _, id := range ledgerIDs {
		ledger, ok := ledgers[id]
		if !ok {
			continue
		}
		if err := s.refresh(ctx, &ledger); err != nil {
			return err
		}
	}
	return nil
}
