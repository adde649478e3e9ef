package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/domain/entities"
	domainerrors "github.com/RozoAI/rozo-app-backend-sub000/internal/domain/errors"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/domain/repositories"
	"github.com/RozoAI/rozo-app-backend-sub000/pkg/utils"
)

// RecordUsecase handles order/deposit creation and reads. Orders and deposits
// share one implementation; the repository's kind selects the table. Records
// are always created PENDING with an explicit expiry deadline; only the
// transition authority may change status afterwards.
type RecordUsecase struct {
	repo         repositories.PaymentRecordRepository
	merchantRepo repositories.MerchantRepository
	currency     *CurrencyUsecase
	linkClient   PaymentLinkClient
	ttl          time.Duration
}

// NewRecordUsecase creates a new record usecase
func NewRecordUsecase(
	repo repositories.PaymentRecordRepository,
	merchantRepo repositories.MerchantRepository,
	currency *CurrencyUsecase,
	linkClient PaymentLinkClient,
	ttl time.Duration,
) *RecordUsecase {
	return &RecordUsecase{
		repo:         repo,
		merchantRepo: merchantRepo,
		currency:     currency,
		linkClient:   linkClient,
		ttl:          ttl,
	}
}

// CreateRecord creates a PENDING record and issues a payment link for it
func (u *RecordUsecase) CreateRecord(ctx context.Context, input entities.CreateRecordInput) (*entities.CreateRecordResponse, error) {
	merchant, err := u.merchantRepo.GetByID(ctx, input.MerchantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.NotFound("merchant not found")
		}
		return nil, domainerrors.StorageError(err)
	}
	if merchant.Status != entities.MerchantStatusActive {
		return nil, domainerrors.Forbidden("merchant not active")
	}

	chainID := input.MerchantChainID
	if chainID == "" {
		chainID = merchant.DefaultChainID
	}
	address := input.MerchantAddress
	if address == "" {
		address = merchant.DefaultAddress
	}
	token := input.RequiredToken
	if token == "" {
		token = merchant.DefaultToken
	}
	if address == "" {
		return nil, domainerrors.BadRequest("no merchant address for record")
	}

	amountUSD, err := u.currency.ToUSD(ctx, input.DisplayAmount, input.DisplayCurrency)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	number, err := utils.GenerateRecordNumber(now)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	expiresAt := now.Add(u.ttl)

	link, err := u.linkClient.CreateLink(ctx, number, amountUSD, token, chainID, address, expiresAt)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	record := &entities.PaymentRecord{
		ID:                uuid.New(),
		Number:            number,
		PaymentID:         link.PaymentID,
		MerchantID:        merchant.ID,
		Status:            entities.RecordStatusPending,
		RequiredAmountUSD: amountUSD,
		DisplayAmount:     input.DisplayAmount,
		DisplayCurrency:   input.DisplayCurrency,
		RequiredToken:     token,
		MerchantChainID:   chainID,
		MerchantAddress:   address,
		ExpiredAt:         &expiresAt,
	}
	if err := u.repo.Create(ctx, record); err != nil {
		return nil, domainerrors.StorageError(err)
	}

	return &entities.CreateRecordResponse{
		ID:                record.ID,
		Number:            number,
		PaymentID:         link.PaymentID,
		PaymentLink:       link.URL,
		Status:            entities.RecordStatusPending,
		RequiredAmountUSD: amountUSD,
		DisplayAmount:     input.DisplayAmount,
		DisplayCurrency:   input.DisplayCurrency,
		ExpiredAt:         expiresAt,
	}, nil
}

// GetByNumber returns one record by its human-readable number
func (u *RecordUsecase) GetByNumber(ctx context.Context, number string) (*entities.PaymentRecord, error) {
	record, err := u.repo.GetByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.NotFound("record not found")
		}
		return nil, domainerrors.StorageError(err)
	}
	return record, nil
}

// ListByMerchant returns a merchant's records, newest first
func (u *RecordUsecase) ListByMerchant(ctx context.Context, merchantID uuid.UUID, page, limit int) ([]*entities.PaymentRecord, utils.PaginationMeta, error) {
	params := utils.GetPaginationParams(page, limit)
	records, total, err := u.repo.ListByMerchant(ctx, merchantID, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, utils.PaginationMeta{}, domainerrors.StorageError(err)
	}
	return records, utils.CalculateMeta(int64(total), params.Page, params.Limit), nil
}
