package services

import (
	"clothingshop/internal/models"
	"clothingshop/internal/repositories"
)

// productSizes is the size axis every garment is stocked on.
var productSizes = []string{"XS", "S", "M", "L", "XL"}

// ProductService handles catalog reads.
type ProductService struct {
	productRepo repositories.ProductRepository
	stockRepo   repositories.StockRepository
}

// NewProductService creates a new ProductService.
func NewProductService(productRepo repositories.ProductRepository, stockRepo repositories.StockRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		stockRepo:   stockRepo,
	}
}

// ProductDetail is a product joined with its per-size stock.
type ProductDetail struct {
	models.Product
	Sizes     []string       `json:"sizes"`
	SizeStock map[string]int `json:"size_stock"`
}

// GetAllProducts returns the catalog sorted by category, then name.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.productRepo.GetAll()
}

// GetProductByID returns one product with its per-size availability.
func (s *ProductService) GetProductByID(id string) (*ProductDetail, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	entries, err := s.stockRepo.GetByProductID(id)
	if err != nil {
		return nil, err
	}

	sizeStock := make(map[string]int, len(entries))
	for _, entry := range entries {
		sizeStock[entry.Size] = entry.Quantity
	}

	return &ProductDetail{
		Product:   *product,
		Sizes:     productSizes,
		SizeStock: sizeStock,
	}, nil
}

// CreateProduct adds a product to the catalog. Only the seeding path uses
// this; there is no admin API.
func (s *ProductService) CreateProduct(product *models.Product) error {
	return s.productRepo.Create(product)
}
