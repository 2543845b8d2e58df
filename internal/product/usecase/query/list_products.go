package query

import (
	"fmt"

	"github.com/gamebay/retail-ops/internal/product/domain"
)

// ListProductsQuery represents the query to list products, optionally
// narrowed to one category or a name substring.
type ListProductsQuery struct {
	Limit    int
	Offset   int
	Category string
	Search   string
}

// ListProductsHandler handles list products query
type ListProductsHandler struct {
	repo domain.ProductRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle executes the list products query
func (h *ListProductsHandler) Handle(q ListProductsQuery) ([]domain.Product, error) {
	if q.Limit <= 0 {
		q.Limit = 50
	}

	var (
		products []domain.Product
		err      error
	)
	switch {
	case q.Search != "":
		products, err = h.repo.SearchByName(q.Search, q.Limit, q.Offset)
	case q.Category != "":
		products, err = h.repo.FindByCategory(q.Category, q.Limit, q.Offset)
	default:
		products, err = h.repo.FindAll(q.Limit, q.Offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}
