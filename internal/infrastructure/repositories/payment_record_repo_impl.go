package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/domain/entities"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/infrastructure/models"
	domainrepos "github.com/RozoAI/rozo-app-backend-sub000/internal/domain/repositories"
)

// rankExpr mirrors entities.StatusRank in SQL so the stale/duplicate guard can
// live inside the UPDATE's WHERE clause. Works on both postgres and sqlite.
const rankExpr = "CASE status WHEN 'PENDING' THEN 0 WHEN 'PROCESSING' THEN 1 ELSE 2 END"

// PaymentRecordRepositoryImpl implements PaymentRecordRepository for one of
// the two physical tables. Orders and deposits share the implementation; only
// the table name and record kind differ.
type PaymentRecordRepositoryImpl struct {
	db    *gorm.DB
	kind  entities.RecordKind
	table string
}

func NewOrderRepository(db *gorm.DB) *PaymentRecordRepositoryImpl {
	return &PaymentRecordRepositoryImpl{db: db, kind: entities.RecordKindOrder, table: "orders"}
}

func NewDepositRepository(db *gorm.DB) *PaymentRecordRepositoryImpl {
	return &PaymentRecordRepositoryImpl{db: db, kind: entities.RecordKindDeposit, table: "deposits"}
}

func (r *PaymentRecordRepositoryImpl) Kind() entities.RecordKind {
	return r.kind
}

func (r *PaymentRecordRepositoryImpl) Create(ctx context.Context, record *entities.PaymentRecord) error {
	now := time.Now()
	row := r.toRow(record)
	row.CreatedAt = now
	row.UpdatedAt = now
	return r.db.WithContext(ctx).Table(r.table).Create(row).Error
}

func (r *PaymentRecordRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.PaymentRecord, error) {
	return r.getOne(ctx, "id = ?", id)
}

func (r *PaymentRecordRepositoryImpl) GetByNumber(ctx context.Context, number string) (*entities.PaymentRecord, error) {
	return r.getOne(ctx, "number = ?", number)
}

func (r *PaymentRecordRepositoryImpl) GetByPaymentID(ctx context.Context, paymentID string) (*entities.PaymentRecord, error) {
	return r.getOne(ctx, "payment_id = ?", paymentID)
}

func (r *PaymentRecordRepositoryImpl) getOne(ctx context.Context, cond string, arg interface{}) (*entities.PaymentRecord, error) {
	var row models.PaymentRecordRow
	if err := r.db.WithContext(ctx).Table(r.table).Where(cond, arg).Take(&row).Error; err != nil {
		return nil, err
	}
	return r.toEntity(&row), nil
}

func (r *PaymentRecordRepositoryImpl) ListByMerchant(ctx context.Context, merchantID uuid.UUID, limit, offset int) ([]*entities.PaymentRecord, int, error) {
	var total int64
	if err := r.db.WithContext(ctx).Table(r.table).
		Where("merchant_id = ?", merchantID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.PaymentRecordRow
	if err := r.db.WithContext(ctx).Table(r.table).
		Where("merchant_id = ?", merchantID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	records := make([]*entities.PaymentRecord, 0, len(rows))
	for i := range rows {
		records = append(records, r.toEntity(&rows[i]))
	}
	return records, int(total), nil
}

// TryTransition is the lifecycle transition authority. The status guard lives
// inside the UPDATE's WHERE clause so that two concurrent callers can never
// both observe the pre-transition status and both apply: row-level atomicity
// of the conditional UPDATE is the arbiter.
//
// Same-rank policy: the only permitted move between terminal statuses is
// COMPLETED -> DISCREPANCY (the processor reclassifying a settled payment).
// Every other same-rank request is reported as stale.
func (r *PaymentRecordRepositoryImpl) TryTransition(ctx context.Context, id uuid.UUID, target entities.RecordStatus, fields entities.TransitionFields) (domainrepos.TransitionOutcome, error) {
	if !target.IsValid() {
		return "", errors.New("invalid target status: " + string(target))
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":     string(target),
		"updated_at": now,
	}
	if fields.SourceTxnHash != "" {
		updates["source_txn_hash"] = fields.SourceTxnHash
	}
	if fields.SourceChainName != "" {
		updates["source_chain_name"] = fields.SourceChainName
	}
	if fields.SourceTokenAddr != "" {
		updates["source_token_address"] = fields.SourceTokenAddr
	}
	if fields.SourceTokenAmount != "" {
		updates["source_token_amount"] = fields.SourceTokenAmount
	}
	if fields.CallbackPayload != "" {
		updates["callback_payload"] = fields.CallbackPayload
	}

	cond := "id = ? AND " + rankExpr + " < ?"
	args := []interface{}{id, entities.StatusRank(target)}
	if target == entities.RecordStatusDiscrepancy {
		cond = "id = ? AND (" + rankExpr + " < ? OR status = ?)"
		args = append(args, string(entities.RecordStatusCompleted))
	}

	res := r.db.WithContext(ctx).Table(r.table).Where(cond, args...).Updates(updates)
	if res.Error != nil {
		return "", res.Error
	}
	if res.RowsAffected > 0 {
		return domainrepos.TransitionApplied, nil
	}

	// Guard rejected the write; classify without mutating anything
	var current struct {
		Status string `gorm:"column:status"`
	}
	err := r.db.WithContext(ctx).Table(r.table).Select("status").Where("id = ?", id).Take(&current).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainrepos.TransitionNotFound, nil
	}
	if err != nil {
		return "", err
	}
	if entities.RecordStatus(current.Status) == target {
		return domainrepos.TransitionIgnoredDuplicate, nil
	}
	return domainrepos.TransitionIgnoredStale, nil
}

// ExpireStale performs one sweep over the table: every PENDING record whose
// expired_at has passed, or that predates expired_at entirely and is older
// than the grace period, becomes EXPIRED. The candidate read is advisory; the
// single conditional UPDATE re-checks the full predicate, so a record that a
// webhook completes between the two statements is left untouched.
func (r *PaymentRecordRepositoryImpl) ExpireStale(ctx context.Context, now time.Time, grace time.Duration) (*domainrepos.SweepResult, error) {
	deadline := "status = ? AND (expired_at < ? OR (expired_at IS NULL AND created_at < ?))"
	graceCutoff := now.Add(-grace)

	var candidates []models.PaymentRecordRow
	if err := r.db.WithContext(ctx).Table(r.table).
		Where(deadline, string(entities.RecordStatusPending), now, graceCutoff).
		Find(&candidates).Error; err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return &domainrepos.SweepResult{}, nil
	}

	ids := make([]uuid.UUID, 0, len(candidates))
	for i := range candidates {
		ids = append(ids, candidates[i].ID)
	}

	res := r.db.WithContext(ctx).Table(r.table).
		Where("id IN ?", ids).
		Where(deadline, string(entities.RecordStatusPending), now, graceCutoff).
		Updates(map[string]interface{}{
			"status":     string(entities.RecordStatusExpired),
			"updated_at": now,
		})
	if res.Error != nil {
		return nil, res.Error
	}

	result := &domainrepos.SweepResult{Count: int(res.RowsAffected)}
	if res.RowsAffected == 0 {
		return result, nil
	}

	expired, err := r.collectExpired(ctx, ids, now)
	if err != nil {
		return nil, err
	}
	for i := range expired {
		result.Numbers = append(result.Numbers, expired[i].Number)
		result.Records = append(result.Records, r.toEntity(&expired[i]))
	}
	return result, nil
}

// collectExpired re-reads the rows the sweep's UPDATE stamped with this run's
// updated_at. A concurrent sweep may have expired other candidates between the
// candidate read and the UPDATE; those carry a different stamp and must not be
// reported here, or merchants would be notified twice.
func (r *PaymentRecordRepositoryImpl) collectExpired(ctx context.Context, ids []uuid.UUID, stamp time.Time) ([]models.PaymentRecordRow, error) {
	var expired []models.PaymentRecordRow
	err := r.db.WithContext(ctx).Table(r.table).
		Where("id IN ? AND status = ? AND updated_at = ?", ids, string(entities.RecordStatusExpired), stamp).
		Find(&expired).Error
	return expired, err
}

func (r *PaymentRecordRepositoryImpl) toRow(e *entities.PaymentRecord) *models.PaymentRecordRow {
	return &models.PaymentRecordRow{
		ID:                e.ID,
		Number:            e.Number,
		PaymentID:         e.PaymentID,
		MerchantID:        e.MerchantID,
		Status:            string(e.Status),
		RequiredAmountUSD: e.RequiredAmountUSD,
		DisplayAmount:     e.DisplayAmount,
		DisplayCurrency:   e.DisplayCurrency,
		RequiredToken:     e.RequiredToken,
		MerchantChainID:   e.MerchantChainID,
		MerchantAddress:   e.MerchantAddress,
		CallbackPayload:   e.CallbackPayload.Ptr(),
		SourceTxnHash:     e.SourceTxnHash.Ptr(),
		SourceChainName:   e.SourceChainName.Ptr(),
		SourceTokenAddr:   e.SourceTokenAddr.Ptr(),
		SourceTokenAmount: e.SourceTokenAmount.Ptr(),
		ExpiredAt:         e.ExpiredAt,
	}
}

func (r *PaymentRecordRepositoryImpl) toEntity(row *models.PaymentRecordRow) *entities.PaymentRecord {
	return &entities.PaymentRecord{
		ID:                row.ID,
		Kind:              r.kind,
		Number:            row.Number,
		PaymentID:         row.PaymentID,
		MerchantID:        row.MerchantID,
		Status:            entities.RecordStatus(row.Status),
		RequiredAmountUSD: row.RequiredAmountUSD,
		DisplayAmount:     row.DisplayAmount,
		DisplayCurrency:   row.DisplayCurrency,
		RequiredToken:     row.RequiredToken,
		MerchantChainID:   row.MerchantChainID,
		MerchantAddress:   row.MerchantAddress,
		CallbackPayload:   null.StringFromPtr(row.CallbackPayload),
		SourceTxnHash:     null.StringFromPtr(row.SourceTxnHash),
		SourceChainName:   null.StringFromPtr(row.SourceChainName),
		SourceTokenAddr:   null.StringFromPtr(row.SourceTokenAddr),
		SourceTokenAmount: null.StringFromPtr(row.SourceTokenAmount),
		ExpiredAt:         row.ExpiredAt,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}
}
