package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/erp_ledger_app/internal/apperrors"
	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger_app/internal/dto"
	"github.com/SscSPs/erp_ledger_app/internal/utils/accounting"
	"github.com/SscSPs/erp_ledger_app/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Voucher change actions reported to the observer.
const (
	VoucherActionPost   = "post"
	VoucherActionUpdate = "update"
	VoucherActionDelete = "delete"
)

// VoucherObserver is told about every committed voucher change.
type VoucherObserver func(action string, voucherType domain.VoucherType)

type voucherService struct {
	BaseService
	voucherRepo     portsrepo.VoucherRepositoryFacade
	ledgerRepo      portsrepo.LedgerReader
	inventoryRepo   portsrepo.InventoryRepositoryFacade
	gstRepo         portsrepo.GSTEntryRepositoryFacade
	balances        portssvc.LedgerBalanceSvc
	txManager       portsrepo.TransactionManager
	observer        VoucherObserver
	defaultPageSize int
}

// VoucherServiceOption configures the voucher service
type VoucherServiceOption func(*voucherService)

// WithVoucherObserver registers a callback run after each committed post, update or delete.
func WithVoucherObserver(observer VoucherObserver) VoucherServiceOption {
	return func(s *voucherService) {
		s.observer = observer
	}
}

// WithVoucherDefaultPageSize sets the page size used when a listing gives none.
func WithVoucherDefaultPageSize(size int) VoucherServiceOption {
	return func(s *voucherService) {
		if size > 0 {
			s.defaultPageSize = size
		}
	}
}

// NewVoucherService creates the voucher posting service.
func NewVoucherService(
	voucherRepo portsrepo.VoucherRepositoryFacade,
	ledgerRepo portsrepo.LedgerReader,
	inventoryRepo portsrepo.InventoryRepositoryFacade,
	gstRepo portsrepo.GSTEntryRepositoryFacade,
	balances portssvc.LedgerBalanceSvc,
	txManager portsrepo.TransactionManager,
	options ...VoucherServiceOption,
) portssvc.VoucherSvcFacade {
	svc := &voucherService{
		voucherRepo:     voucherRepo,
		ledgerRepo:      ledgerRepo,
		inventoryRepo:   inventoryRepo,
		gstRepo:         gstRepo,
		balances:        balances,
		txManager:       txManager,
		defaultPageSize: 20,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.VoucherSvcFacade = (*voucherService)(nil)

func (s *voucherService) notify(action string, t domain.VoucherType) {
	if s.observer != nil {
		s.observer(action, t)
	}
}

// buildVoucher turns the request body into an unnumbered voucher of type t.
func buildVoucher(companyID string, t domain.VoucherType, body dto.VoucherBody) (domain.Voucher, error) {
	date, err := dto.ParseDate("date", body.Date)
	if err != nil {
		return domain.Voucher{}, err
	}
	v := domain.Voucher{
		CompanyID:   companyID,
		VoucherType: t,
		Date:        date,
		Narration:   body.Narration,
		Entries:     make([]domain.VoucherEntry, len(body.Entries)),
	}
	if body.PartyLedgerID != nil && *body.PartyLedgerID != "" {
		party := *body.PartyLedgerID
		v.PartyLedgerID = &party
	}
	for i, e := range body.Entries {
		v.Entries[i] = domain.VoucherEntry{LedgerID: e.LedgerID, Type: e.Type, Amount: e.Amount}
	}
	for _, it := range body.Items {
		amount := it.Amount
		if amount.IsZero() {
			amount = it.Quantity.Mul(it.Rate).Sub(it.Discount)
		}
		v.Items = append(v.Items, domain.VoucherItem{
			InventoryItemID: it.InventoryItemID,
			Quantity:        it.Quantity,
			Rate:            it.Rate,
			Amount:          amount,
			Discount:        it.Discount,
		})
	}
	if g := body.GSTDetails; g != nil {
		total := g.TotalTax
		if total.IsZero() {
			total = g.CGST.Add(g.SGST).Add(g.IGST)
		}
		v.GSTDetails = &domain.GSTDetails{
			TaxableAmount: g.TaxableAmount,
			CGST:          g.CGST,
			SGST:          g.SGST,
			IGST:          g.IGST,
			TotalTax:      total,
			PlaceOfSupply: g.PlaceOfSupply,
		}
	}
	accounting.RoundVoucher(&v)
	debit, _ := accounting.Totals(v.Entries)
	v.TotalAmount = debit
	return v, nil
}

// resolveLedgers checks that every entry and the party ledger belong to the company and fills in their names.
func (s *voucherService) resolveLedgers(ctx context.Context, v *domain.Voucher) (map[string]domain.Ledger, error) {
	ids := v.LedgerIDs()
	if v.PartyLedgerID != nil {
		ids = append(ids, *v.PartyLedgerID)
	}
	ledgers, err := s.ledgerRepo.FindLedgersByIDs(ctx, v.CompanyID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load voucher ledgers: %w", err)
	}
	for i, e := range v.Entries {
		l, ok := ledgers[e.LedgerID]
		if !ok {
			return nil, fmt.Errorf("%w: ledger %s not found in company", apperrors.ErrValidation, e.LedgerID)
		}
		v.Entries[i].LedgerName = l.Name
	}
	if v.PartyLedgerID != nil {
		party, ok := ledgers[*v.PartyLedgerID]
		if !ok {
			return nil, fmt.Errorf("%w: party ledger %s not found in company", apperrors.ErrValidation, *v.PartyLedgerID)
		}
		v.PartyLedgerName = party.Name
	}
	return ledgers, nil
}

// loadItems locks the inventory items referenced by ids. Every id must exist in the company.
func (s *voucherService) loadItems(ctx context.Context, companyID string, ids []string) (map[string]domain.InventoryItem, error) {
	if len(ids) == 0 {
		return map[string]domain.InventoryItem{}, nil
	}
	items, err := s.inventoryRepo.FindItemsByIDs(ctx, companyID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory items: %w", err)
	}
	for _, id := range ids {
		if _, ok := items[id]; !ok {
			return nil, fmt.Errorf("%w: inventory item %s not found in company", apperrors.ErrValidation, id)
		}
	}
	return items, nil
}

func itemIDs(v domain.Voucher, previous []domain.StockTransaction) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, it := range v.Items {
		if !seen[it.InventoryItemID] {
			seen[it.InventoryItemID] = true
			ids = append(ids, it.InventoryItemID)
		}
	}
	for _, t := range previous {
		if !seen[t.InventoryItemID] {
			seen[t.InventoryItemID] = true
			ids = append(ids, t.InventoryItemID)
		}
	}
	return ids
}

func reverseDirection(d domain.StockDirection) domain.StockDirection {
	if d == domain.StockOut {
		return domain.StockIn
	}
	return domain.StockOut
}

// stockLedger tracks the stock levels of the items one voucher change touches.
type stockLedger struct {
	items   map[string]domain.InventoryItem
	touched []string
	seen    map[string]bool
}

func newStockLedger(items map[string]domain.InventoryItem) *stockLedger {
	return &stockLedger{items: items, seen: make(map[string]bool)}
}

func (l *stockLedger) move(itemID string, dir domain.StockDirection, qty, value decimal.Decimal) {
	item := l.items[itemID]
	item.CurrentStock = item.CurrentStock.Apply(dir, qty, value)
	l.items[itemID] = item
	if !l.seen[itemID] {
		l.seen[itemID] = true
		l.touched = append(l.touched, itemID)
	}
}

// reverse undoes movements recorded earlier for a voucher.
func (l *stockLedger) reverse(txns []domain.StockTransaction) {
	for _, t := range txns {
		l.move(t.InventoryItemID, reverseDirection(t.Direction), t.Quantity, t.Value)
	}
}

// apply moves stock for each voucher item and returns the movements to record.
// Item names are filled in on v.
func (l *stockLedger) apply(v *domain.Voucher, now time.Time) []domain.StockTransaction {
	dir := v.VoucherType.StockDirection()
	txns := make([]domain.StockTransaction, 0, len(v.Items))
	for i, it := range v.Items {
		v.Items[i].ItemName = l.items[it.InventoryItemID].Name
		l.move(it.InventoryItemID, dir, it.Quantity, it.Amount)
		txns = append(txns, domain.StockTransaction{
			StockTransactionID: uuid.NewString(),
			CompanyID:          v.CompanyID,
			VoucherID:          v.VoucherID,
			InventoryItemID:    it.InventoryItemID,
			Date:               v.Date,
			Direction:          dir,
			Quantity:           it.Quantity,
			Rate:               it.Rate,
			Value:              it.Amount,
			CreatedAt:          now,
		})
	}
	return txns
}

func (s *voucherService) saveStock(ctx context.Context, l *stockLedger, txns []domain.StockTransaction, now time.Time) error {
	for _, id := range l.touched {
		if err := s.inventoryRepo.UpdateItemStock(ctx, id, l.items[id].CurrentStock, now); err != nil {
			return fmt.Errorf("failed to update stock of item %s: %w", id, err)
		}
	}
	if len(txns) == 0 {
		return nil
	}
	if err := s.inventoryRepo.SaveStockTransactions(ctx, txns); err != nil {
		return fmt.Errorf("failed to save stock transactions: %w", err)
	}
	return nil
}

// gstEntryFor derives the tax register record of a voucher with tax.
func gstEntryFor(v domain.Voucher, ledgers map[string]domain.Ledger, items map[string]domain.InventoryItem, now time.Time) domain.GSTEntry {
	g := v.GSTDetails
	entry := domain.GSTEntry{
		GSTEntryID:    uuid.NewString(),
		CompanyID:     v.CompanyID,
		VoucherID:     v.VoucherID,
		VoucherNumber: v.VoucherNumber,
		Date:          v.Date,
		VoucherType:   v.VoucherType,
		PartyLedgerID: v.PartyLedgerID,
		TaxableAmount: g.TaxableAmount,
		CGST:          g.CGST,
		SGST:          g.SGST,
		IGST:          g.IGST,
		TotalTax:      g.TotalTax,
		LineItems:     make([]domain.GSTLineItem, 0, len(v.Items)),
		CreatedAt:     now,
	}
	if v.PartyLedgerID != nil {
		if cd := ledgers[*v.PartyLedgerID].ContactDetails; cd != nil {
			entry.GSTIN = cd.GSTIN
		}
	}
	hundred := decimal.NewFromInt(100)
	for _, it := range v.Items {
		inv := items[it.InventoryItemID]
		entry.LineItems = append(entry.LineItems, domain.GSTLineItem{
			InventoryItemID: it.InventoryItemID,
			ItemName:        inv.Name,
			HSNCode:         inv.HSNCode,
			TaxableValue:    it.Amount,
			GSTRate:         inv.GSTRate,
			TaxAmount:       it.Amount.Mul(inv.GSTRate).Div(hundred).Round(2),
		})
	}
	return entry
}

// clearSideRecords removes the stock movements and GST record of a voucher and returns the movements removed.
func (s *voucherService) clearSideRecords(ctx context.Context, voucherID string) ([]domain.StockTransaction, error) {
	previous, err := s.inventoryRepo.ListStockTransactionsByVoucher(ctx, voucherID)
	if err != nil {
		return nil, fmt.Errorf("failed to load stock transactions: %w", err)
	}
	if err := s.inventoryRepo.DeleteStockTransactionsByVoucher(ctx, voucherID); err != nil {
		return nil, fmt.Errorf("failed to delete stock transactions: %w", err)
	}
	if err := s.gstRepo.DeleteGSTEntryByVoucher(ctx, voucherID); err != nil {
		return nil, fmt.Errorf("failed to delete gst entry: %w", err)
	}
	return previous, nil
}

func (s *voucherService) findVoucher(ctx context.Context, companyID, voucherID string) (*domain.Voucher, error) {
	v, err := s.voucherRepo.FindVoucherByID(ctx, companyID, voucherID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("voucher " + voucherID)
		}
		return nil, fmt.Errorf("failed to find voucher: %w", err)
	}
	return v, nil
}

func (s *voucherService) GetVoucher(ctx context.Context, companyID string, voucherID string) (*domain.Voucher, error) {
	v, err := s.findVoucher(ctx, companyID, voucherID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to get voucher", slog.String("voucher_id", voucherID))
	}
	return v, err
}

func (s *voucherService) ListVouchers(ctx context.Context, companyID string, params dto.ListVouchersParams) (*dto.ListVouchersResponse, error) {
	period, err := dto.ParsePeriod(params.StartDate, params.EndDate)
	if err != nil {
		return nil, err
	}
	filter := domain.VoucherFilter{Period: period}
	if params.VoucherType != "" {
		t := domain.VoucherType(params.VoucherType)
		if !t.IsValid() {
			return nil, fmt.Errorf("%w: unknown voucher type %q", apperrors.ErrValidation, params.VoucherType)
		}
		filter.VoucherType = &t
	}

	page := pagination.Normalize(params.Page, params.Limit, s.defaultPageSize)
	vouchers, total, err := s.voucherRepo.ListVouchers(ctx, companyID, filter, page.Limit, page.Offset())
	if err != nil {
		s.LogError(ctx, err, "Failed to list vouchers", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to list vouchers: %w", err)
	}
	return &dto.ListVouchersResponse{
		Vouchers:   dto.ToListVoucherResponse(vouchers),
		Pagination: pagination.NewMeta(page, total),
	}, nil
}

// PostVoucher validates, numbers and stores a voucher, then refreshes the balances of its
// ledgers and writes its stock and GST side records, all in one transaction.
func (s *voucherService) PostVoucher(ctx context.Context, companyID string, req dto.CreateVoucherRequest, userID string) (*domain.Voucher, error) {
	v, err := buildVoucher(companyID, req.VoucherType, req.VoucherBody)
	if err != nil {
		return nil, err
	}
	if err := accounting.ValidateVoucher(v); err != nil {
		s.LogDebug(ctx, "Voucher rejected", slog.String("error", err.Error()))
		return nil, err
	}

	now := time.Now().UTC()
	v.VoucherID = uuid.NewString()
	v.AuditFields = newAuditFields(now, userID)

	err = s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		ledgers, err := s.resolveLedgers(ctx, &v)
		if err != nil {
			return err
		}
		seq, err := s.voucherRepo.NextVoucherSequence(ctx, companyID, v.VoucherType, v.Date)
		if err != nil {
			return fmt.Errorf("failed to allocate voucher number: %w", err)
		}
		v.VoucherNumber = accounting.GenerateVoucherNumber(v.VoucherType, v.Date, seq-1)

		if err := s.writeSideRecordsAfterSave(ctx, &v, ledgers, nil, now, s.voucherRepo.SaveVoucher); err != nil {
			return err
		}
		return s.balances.RefreshBalances(ctx, companyID, v.LedgerIDs())
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to post voucher", slog.String("company_id", companyID))
		}
		return nil, err
	}

	s.notify(VoucherActionPost, v.VoucherType)
	s.LogInfo(ctx, "Voucher posted",
		slog.String("voucher_id", v.VoucherID),
		slog.String("voucher_number", v.VoucherNumber),
		slog.String("company_id", companyID))
	return &v, nil
}

// writeSideRecordsAfterSave stores the voucher with save and then writes its stock and GST
// records. previous holds the movements of an earlier version of the voucher, undone first.
// Stock rows reference the voucher, so the voucher row goes first.
func (s *voucherService) writeSideRecordsAfterSave(ctx context.Context, v *domain.Voucher, ledgers map[string]domain.Ledger, previous []domain.StockTransaction, now time.Time, save func(context.Context, domain.Voucher) error) error {
	// Item names are resolved before the voucher row is written so they are stored with it.
	items, err := s.loadItems(ctx, v.CompanyID, itemIDs(*v, previous))
	if err != nil {
		return err
	}
	for i, it := range v.Items {
		v.Items[i].ItemName = items[it.InventoryItemID].Name
	}
	if err := save(ctx, *v); err != nil {
		return fmt.Errorf("failed to save voucher: %w", err)
	}

	stock := newStockLedger(items)
	stock.reverse(previous)
	txns := stock.apply(v, now)
	if err := s.saveStock(ctx, stock, txns, now); err != nil {
		return err
	}
	if v.HasTax() {
		if err := s.gstRepo.SaveGSTEntry(ctx, gstEntryFor(*v, ledgers, items, now)); err != nil {
			return fmt.Errorf("failed to save gst entry: %w", err)
		}
	}
	return nil
}

// UpdateVoucher replaces the voucher's data while keeping its type and number.
func (s *voucherService) UpdateVoucher(ctx context.Context, companyID string, voucherID string, req dto.UpdateVoucherRequest, userID string) (*domain.Voucher, error) {
	var updated domain.Voucher
	err := s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		existing, err := s.findVoucher(ctx, companyID, voucherID)
		if err != nil {
			return err
		}

		v, err := buildVoucher(companyID, existing.VoucherType, req.VoucherBody)
		if err != nil {
			return err
		}
		if err := accounting.ValidateVoucher(v); err != nil {
			return err
		}
		v.VoucherID = existing.VoucherID
		v.VoucherNumber = existing.VoucherNumber
		v.AuditFields = existing.AuditFields

		now := time.Now().UTC()
		touch(&v.AuditFields, now, userID)
		v.EditHistory = append(append([]domain.EditRecord{}, existing.EditHistory...), domain.EditRecord{
			EditedBy: userID,
			EditedAt: now,
			Changes:  describeChanges(*existing, v),
		})

		ledgers, err := s.resolveLedgers(ctx, &v)
		if err != nil {
			return err
		}
		previous, err := s.clearSideRecords(ctx, voucherID)
		if err != nil {
			return err
		}
		if err := s.writeSideRecordsAfterSave(ctx, &v, ledgers, previous, now, s.voucherRepo.UpdateVoucher); err != nil {
			return err
		}

		affected := append(existing.LedgerIDs(), v.LedgerIDs()...)
		if err := s.balances.RefreshBalances(ctx, companyID, affected); err != nil {
			return err
		}
		updated = v
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update voucher", slog.String("voucher_id", voucherID))
		}
		return nil, err
	}

	s.notify(VoucherActionUpdate, updated.VoucherType)
	s.LogInfo(ctx, "Voucher updated",
		slog.String("voucher_id", voucherID),
		slog.String("user_id", userID))
	return &updated, nil
}

// DeleteVoucher removes the voucher, undoes its stock moves and refreshes the ledgers it posted to.
func (s *voucherService) DeleteVoucher(ctx context.Context, companyID string, voucherID string, userID string) error {
	var voucherType domain.VoucherType
	err := s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		existing, err := s.findVoucher(ctx, companyID, voucherID)
		if err != nil {
			return err
		}
		voucherType = existing.VoucherType

		previous, err := s.clearSideRecords(ctx, voucherID)
		if err != nil {
			return err
		}
		if len(previous) > 0 {
			items, err := s.inventoryRepo.FindItemsByIDs(ctx, companyID, itemIDs(domain.Voucher{}, previous))
			if err != nil {
				return fmt.Errorf("failed to load inventory items: %w", err)
			}
			stock := newStockLedger(items)
			stock.reverse(previous)
			if err := s.saveStock(ctx, stock, nil, time.Now().UTC()); err != nil {
				return err
			}
		}

		if err := s.voucherRepo.DeleteVoucher(ctx, companyID, voucherID); err != nil {
			return fmt.Errorf("failed to delete voucher: %w", err)
		}
		return s.balances.RefreshBalances(ctx, companyID, existing.LedgerIDs())
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete voucher", slog.String("voucher_id", voucherID))
		}
		return err
	}

	s.notify(VoucherActionDelete, voucherType)
	s.LogInfo(ctx, "Voucher deleted",
		slog.String("voucher_id", voucherID),
		slog.String("user_id", userID))
	return nil
}

// describeChanges summarises what an edit changed for the edit history.
func describeChanges(old, updated domain.Voucher) string {
	var changes []string
	if !old.Date.Equal(updated.Date) {
		changes = append(changes, fmt.Sprintf("date %s -> %s", dto.FormatDate(old.Date), dto.FormatDate(updated.Date)))
	}
	if !old.TotalAmount.Equal(updated.TotalAmount) {
		changes = append(changes, fmt.Sprintf("amount %s -> %s", old.TotalAmount.StringFixed(2), updated.TotalAmount.StringFixed(2)))
	}
	if !sameEntries(old.Entries, updated.Entries) {
		changes = append(changes, "entries")
	}
	if old.Narration != updated.Narration {
		changes = append(changes, "narration")
	}
	if len(old.Items) != len(updated.Items) || (old.GSTDetails == nil) != (updated.GSTDetails == nil) {
		changes = append(changes, "items/gst")
	}
	if len(changes) == 0 {
		return "no changes"
	}
	return strings.Join(changes, "; ")
}

func sameEntries(a, b []domain.VoucherEntry) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].LedgerID != b[i].LedgerID || a[i].Type != b[i].Type || !a[i].Amount.Equal(b[i].Amount) {
			return false
		}
	}
	return true
}
