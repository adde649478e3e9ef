package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/domain/entities"
)

// MerchantRepository interface
type MerchantRepository interface {
	Create(ctx context.Context, merchant *entities.Merchant) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Merchant, error)
	GetByEmail(ctx context.Context, email string) (*entities.Merchant, error)
}
