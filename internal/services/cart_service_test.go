package services_test

import (
	"testing"

	"clothingshop/internal/models"
	"clothingshop/internal/repositories"
	"clothingshop/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartFixture(t *testing.T) (*services.CartService, *repositories.MockStockRepository) {
	t.Helper()
	cartRepo := repositories.NewMockCartRepository()
	stockRepo := repositories.NewMockStockRepository()
	productRepo := repositories.NewMockProductRepository()

	require.NoError(t, productRepo.Create(&models.Product{
		ID: "p1", Name: "Lina Relaxed Tee", Category: "t-shirts", Price: decimal.NewFromInt(68),
	}))
	require.NoError(t, stockRepo.Upsert(&models.StockEntry{ProductID: "p1", Size: "M", Quantity: 5}))

	return services.NewCartService(cartRepo, stockRepo, productRepo), stockRepo
}

func TestCartService_AddLine(t *testing.T) {
	service, _ := newCartFixture(t)

	line, err := service.AddLine("user-1", "p1", "M", 2)

	require.NoError(t, err)
	assert.NotEmpty(t, line.ID)
	assert.Equal(t, 2, line.Quantity)
}

func TestCartService_AddLine_CoalescesRepeatAdds(t *testing.T) {
	service, _ := newCartFixture(t)

	first, err := service.AddLine("user-1", "p1", "M", 2)
	require.NoError(t, err)
	second, err := service.AddLine("user-1", "p1", "M", 1)
	require.NoError(t, err)

	// Same line, accumulated quantity, no duplicate rows.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 3, second.Quantity)

	cart, err := service.GetCart("user-1")
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, 3, cart[0].Quantity)
	assert.Equal(t, "Lina Relaxed Tee", cart[0].Name)
	assert.True(t, decimal.NewFromInt(68).Equal(cart[0].Price))
}

func TestCartService_AddLine_CappedByStock(t *testing.T) {
	service, _ := newCartFixture(t)

	_, err := service.AddLine("user-1", "p1", "M", 4)
	require.NoError(t, err)

	// 4 in the cart + 2 more would exceed the 5 available.
	_, err = service.AddLine("user-1", "p1", "M", 2)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient stock")

	cart, err := service.GetCart("user-1")
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, 4, cart[0].Quantity)
}

func TestCartService_AddLine_UnknownSize(t *testing.T) {
	service, _ := newCartFixture(t)

	_, err := service.AddLine("user-1", "p1", "XXL", 1)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not available")
}

func TestCartService_UpdateLine(t *testing.T) {
	service, _ := newCartFixture(t)

	line, err := service.AddLine("user-1", "p1", "M", 1)
	require.NoError(t, err)

	require.NoError(t, service.UpdateLine("user-1", line.ID, 5))

	cart, _ := service.GetCart("user-1")
	require.Len(t, cart, 1)
	assert.Equal(t, 5, cart[0].Quantity)

	// Above stock is rejected.
	err = service.UpdateLine("user-1", line.ID, 6)
	assert.Error(t, err)

	// Another user cannot touch the line.
	err = service.UpdateLine("user-2", line.ID, 1)
	assert.Error(t, err)
}

func TestCartService_RemoveAndClear(t *testing.T) {
	service, _ := newCartFixture(t)

	line, err := service.AddLine("user-1", "p1", "M", 1)
	require.NoError(t, err)

	require.NoError(t, service.RemoveLine("user-1", line.ID))
	cart, _ := service.GetCart("user-1")
	assert.Empty(t, cart)

	_, err = service.AddLine("user-1", "p1", "M", 2)
	require.NoError(t, err)
	removed, err := service.Clear("user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
}
