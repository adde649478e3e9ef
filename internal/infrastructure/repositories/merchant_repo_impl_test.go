package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/domain/entities"
)

func TestMerchantRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	createMerchantTable(t, db)
	repo := NewMerchantRepository(db)
	ctx := context.Background()

	m := &entities.Merchant{
		ID:             uuid.New(),
		Email:          "shop@example.com",
		BusinessName:   "Example Shop",
		Status:         entities.MerchantStatusActive,
		DefaultChainID: "8453",
		DefaultAddress: "0x8ba1f109551bD432803012645Ac136ddd64DBA72",
		DefaultToken:   "USDC",
		PinHash:        "$2a$10$hash",
	}
	require.NoError(t, repo.Create(ctx, m))

	got, err := repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	require.Equal(t, m.Email, got.Email)
	require.Equal(t, entities.MerchantStatusActive, got.Status)

	got, err = repo.GetByEmail(ctx, "shop@example.com")
	require.NoError(t, err)
	require.Equal(t, m.ID, got.ID)

	_, err = repo.GetByEmail(ctx, "missing@example.com")
	require.Error(t, err)
}
