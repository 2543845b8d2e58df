package query

import (
	"fmt"

	"github.com/gamebay/retail-ops/internal/product/domain"
)

// GetStatsQuery represents the query to get catalog statistics
type GetStatsQuery struct{}

// ProductStats represents catalog statistics
type ProductStats struct {
	TotalProducts   int64   `json:"total_products"`
	ActiveProducts  int64   `json:"active_products"`
	Bestsellers     int64   `json:"bestsellers"`
	AveragePrice    float64 `json:"average_price"`
	TotalCategories int64   `json:"total_categories"`
}

// GetStatsHandler handles get stats query
type GetStatsHandler struct {
	repo domain.ProductRepository
}

// NewGetStatsHandler creates a new get stats handler
func NewGetStatsHandler(repo domain.ProductRepository) *GetStatsHandler {
	return &GetStatsHandler{repo: repo}
}

// Handle executes the get stats query
func (h *GetStatsHandler) Handle(q GetStatsQuery) (*ProductStats, error) {
	totalProducts, err := h.repo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to get product count: %w", err)
	}

	products, err := h.repo.FindAll(10000, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	var activeProducts, bestsellers int64
	var totalPrice float64
	categories := make(map[string]bool)

	for _, product := range products {
		if product.IsActive {
			activeProducts++
		}
		if product.Bestseller {
			bestsellers++
		}
		totalPrice += product.Price
		if product.Category != "" {
			categories[product.Category] = true
		}
	}

	averagePrice := 0.0
	if totalProducts > 0 {
		averagePrice = totalPrice / float64(totalProducts)
	}

	return &ProductStats{
		TotalProducts:   totalProducts,
		ActiveProducts:  activeProducts,
		Bestsellers:     bestsellers,
		AveragePrice:    averagePrice,
		TotalCategories: int64(len(categories)),
	}, nil
}
