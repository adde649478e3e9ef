package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/domain/entities"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/infrastructure/models"
)

// MerchantRepositoryImpl implements MerchantRepository
type MerchantRepositoryImpl struct {
	db *gorm.DB
}

func NewMerchantRepository(db *gorm.DB) *MerchantRepositoryImpl {
	return &MerchantRepositoryImpl{db: db}
}

func (r *MerchantRepositoryImpl) Create(ctx context.Context, merchant *entities.Merchant) error {
	now := time.Now()
	m := &models.Merchant{
		ID:             merchant.ID,
		Email:          merchant.Email,
		BusinessName:   merchant.BusinessName,
		Status:         string(merchant.Status),
		DefaultChainID: merchant.DefaultChainID,
		DefaultAddress: merchant.DefaultAddress,
		DefaultToken:   merchant.DefaultToken,
		PinHash:        merchant.PinHash,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MerchantRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.Merchant, error) {
	var m models.Merchant
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return toMerchantEntity(&m), nil
}

func (r *MerchantRepositoryImpl) GetByEmail(ctx context.Context, email string) (*entities.Merchant, error) {
	var m models.Merchant
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		return nil, err
	}
	return toMerchantEntity(&m), nil
}

func toMerchantEntity(m *models.Merchant) *entities.Merchant {
	return &entities.Merchant{
		ID:             m.ID,
		Email:          m.Email,
		BusinessName:   m.BusinessName,
		Status:         entities.MerchantStatus(m.Status),
		DefaultChainID: m.DefaultChainID,
		DefaultAddress: m.DefaultAddress,
		DefaultToken:   m.DefaultToken,
		PinHash:        m.PinHash,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
