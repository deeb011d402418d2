package services_test

import (
	"fmt"
	"testing"

	"clothingshop/internal/models"
	"clothingshop/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a mock implementation of repositories.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByUserID(userID string) ([]models.Order, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	stockRepo := new(MockStockRepository)
	service := services.NewOrderService(orderRepo, productRepo, stockRepo)

	lines := []models.CartLine{
		{ProductID: "p1", Size: "M", Quantity: 2},
		{ProductID: "p2", Size: "S", Quantity: 1},
	}

	productRepo.On("GetByID", "p1").Return(&models.Product{ID: "p1", Price: decimal.NewFromInt(198)}, nil).Once()
	productRepo.On("GetByID", "p2").Return(&models.Product{ID: "p2", Price: decimal.NewFromInt(88)}, nil).Once()
	orderRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(nil).Once()
	stockRepo.On("TryDecrement", "p1", "M", 2).Return(true, nil).Once()
	stockRepo.On("TryDecrement", "p2", "S", 1).Return(true, nil).Once()

	order, err := service.CreateOrder("user-1", lines, `{"city":"Oslo"}`)

	assert.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, "user-1", order.UserID)
	assert.Equal(t, models.OrderStatusConfirmed, order.Status)
	// 198*2 + 88*1, recomputed server-side from live prices.
	assert.True(t, decimal.NewFromInt(484).Equal(order.Total), "expected total 484, got %s", order.Total)
	assert.Len(t, order.Lines, 2)
	assert.True(t, decimal.NewFromInt(198).Equal(order.Lines[0].Price))
	assert.True(t, decimal.NewFromInt(88).Equal(order.Lines[1].Price))
	orderRepo.AssertExpectations(t)
	stockRepo.AssertExpectations(t)
}

func TestOrderService_CreateOrder_TotalMatchesLineSum(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	stockRepo := new(MockStockRepository)
	service := services.NewOrderService(orderRepo, productRepo, stockRepo)

	lines := []models.CartLine{
		{ProductID: "p1", Size: "M", Quantity: 3},
		{ProductID: "p2", Size: "L", Quantity: 2},
	}

	productRepo.On("GetByID", "p1").Return(&models.Product{ID: "p1", Price: decimal.RequireFromString("19.99")}, nil).Once()
	productRepo.On("GetByID", "p2").Return(&models.Product{ID: "p2", Price: decimal.RequireFromString("45.50")}, nil).Once()
	orderRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(nil).Once()
	stockRepo.On("TryDecrement", mock.Anything, mock.Anything, mock.Anything).Return(true, nil)

	order, err := service.CreateOrder("user-1", lines, "{}")

	assert.NoError(t, err)
	sum := decimal.Zero
	for _, line := range order.Lines {
		sum = sum.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	assert.True(t, order.Total.Equal(sum), "total %s must equal line sum %s", order.Total, sum)
}

func TestOrderService_CreateOrder_StockExhaustedRollsBack(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	stockRepo := new(MockStockRepository)
	service := services.NewOrderService(orderRepo, productRepo, stockRepo)

	lines := []models.CartLine{
		{ProductID: "p1", Size: "M", Quantity: 2},
		{ProductID: "p2", Size: "S", Quantity: 1},
	}

	productRepo.On("GetByID", "p1").Return(&models.Product{ID: "p1", Price: decimal.NewFromInt(100)}, nil).Once()
	productRepo.On("GetByID", "p2").Return(&models.Product{ID: "p2", Price: decimal.NewFromInt(50)}, nil).Once()
	orderRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(nil).Once()
	// First decrement wins, second loses the race.
	stockRepo.On("TryDecrement", "p1", "M", 2).Return(true, nil).Once()
	stockRepo.On("TryDecrement", "p2", "S", 1).Return(false, nil).Once()
	// Rollback: the first decrement is restored and the order removed.
	stockRepo.On("Increment", "p1", "M", 2).Return(nil).Once()
	orderRepo.On("Delete", mock.AnythingOfType("string")).Return(nil).Once()

	order, err := service.CreateOrder("user-1", lines, "{}")

	assert.Nil(t, order)
	var stockErr *services.StockExhaustedError
	assert.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "p2", stockErr.ProductID)
	assert.Equal(t, "S", stockErr.Size)
	assert.Equal(t, 1, stockErr.Requested)
	orderRepo.AssertExpectations(t)
	stockRepo.AssertExpectations(t)
}

func TestOrderService_CreateOrder_FirstLineExhaustedRestoresNothing(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	stockRepo := new(MockStockRepository)
	service := services.NewOrderService(orderRepo, productRepo, stockRepo)

	lines := []models.CartLine{
		{ProductID: "p1", Size: "M", Quantity: 2},
	}

	productRepo.On("GetByID", "p1").Return(&models.Product{ID: "p1", Price: decimal.NewFromInt(100)}, nil).Once()
	orderRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(nil).Once()
	stockRepo.On("TryDecrement", "p1", "M", 2).Return(false, nil).Once()
	orderRepo.On("Delete", mock.AnythingOfType("string")).Return(nil).Once()

	_, err := service.CreateOrder("user-1", lines, "{}")

	var stockErr *services.StockExhaustedError
	assert.ErrorAs(t, err, &stockErr)
	// No Increment calls: nothing was decremented before the failure.
	stockRepo.AssertNotCalled(t, "Increment", mock.Anything, mock.Anything, mock.Anything)
	orderRepo.AssertExpectations(t)
}

func TestOrderService_CreateOrder_PersistenceFailure(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	stockRepo := new(MockStockRepository)
	service := services.NewOrderService(orderRepo, productRepo, stockRepo)

	lines := []models.CartLine{
		{ProductID: "p1", Size: "M", Quantity: 1},
	}

	productRepo.On("GetByID", "p1").Return(&models.Product{ID: "p1", Price: decimal.NewFromInt(100)}, nil).Once()
	orderRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(fmt.Errorf("disk full")).Once()

	order, err := service.CreateOrder("user-1", lines, "{}")

	assert.Nil(t, order)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create order")
	// Stock is untouched when the header insert already failed.
	stockRepo.AssertNotCalled(t, "TryDecrement", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_CreateOrder_UnknownProduct(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	stockRepo := new(MockStockRepository)
	service := services.NewOrderService(orderRepo, productRepo, stockRepo)

	lines := []models.CartLine{
		{ProductID: "ghost", Size: "M", Quantity: 1},
	}

	productRepo.On("GetByID", "ghost").Return(nil, fmt.Errorf("product with ID ghost not found")).Once()

	order, err := service.CreateOrder("user-1", lines, "{}")

	assert.Nil(t, order)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	orderRepo.AssertNotCalled(t, "Create", mock.Anything)
}
