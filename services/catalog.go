package services

import (
	"strings"

	"quotes-api/models"
	"quotes-api/storage"
	"quotes-api/utils"
)

type CatalogService struct {
	store storage.Store
}

func NewCatalogService(store storage.Store) *CatalogService {
	return &CatalogService{store: store}
}

func (s *CatalogService) load() ([]models.Product, error) {
	products := []models.Product{}
	if err := s.store.Get(storage.KeyProducts, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Add registers a new product and persists the full catalog.
func (s *CatalogService) Add(req models.CreateProductRequest) (*models.Product, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, &models.ValidationError{Field: "name", Message: "product name is required"}
	}
	if req.CostPrice < 0 {
		return nil, &models.ValidationError{Field: "costPrice", Message: "cost price cannot be negative"}
	}
	if req.SalePrice < 0 {
		return nil, &models.ValidationError{Field: "salePrice", Message: "sale price cannot be negative"}
	}

	products, err := s.load()
	if err != nil {
		return nil, err
	}

	product := models.Product{
		ID:        utils.NewID(),
		Name:      req.Name,
		CostPrice: req.CostPrice,
		SalePrice: req.SalePrice,
		Category:  req.Category,
	}

	products = append(products, product)
	if err := s.store.Set(storage.KeyProducts, products); err != nil {
		return nil, err
	}

	return &product, nil
}

// List returns all products in insertion order.
func (s *CatalogService) List() ([]models.Product, error) {
	return s.load()
}

// GetByID resolves a product or returns ErrNotFound.
func (s *CatalogService) GetByID(id string) (*models.Product, error) {
	products, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, models.ErrNotFound
}

// Remove deletes a product by id. The shell must already have
// confirmed the delete; removal here is unconditional. Existing
// budgets and calculations keep their snapshotted name and prices.
func (s *CatalogService) Remove(id string) error {
	products, err := s.load()
	if err != nil {
		return err
	}

	next := make([]models.Product, 0, len(products))
	found := false
	for _, p := range products {
		if p.ID == id {
			found = true
			continue
		}
		next = append(next, p)
	}
	if !found {
		return models.ErrNotFound
	}

	return s.store.Set(storage.KeyProducts, next)
}

// GroupByCategory is a pure projection of the catalog for display,
// with per-unit profit and margin. Categories keep first-seen order.
func (s *CatalogService) GroupByCategory() ([]models.CategoryGroup, error) {
	products, err := s.load()
	if err != nil {
		return nil, err
	}

	groups := []models.CategoryGroup{}
	index := map[string]int{}
	for _, p := range products {
		i, ok := index[p.Category]
		if !ok {
			i = len(groups)
			index[p.Category] = i
			groups = append(groups, models.CategoryGroup{Category: p.Category})
		}
		groups[i].Products = append(groups[i].Products, productView(p))
	}

	return groups, nil
}

func productView(p models.Product) models.ProductView {
	view := models.ProductView{
		Product:    p,
		UnitProfit: p.SalePrice - p.CostPrice,
	}
	if p.SalePrice > 0 {
		view.ProfitMargin = (p.SalePrice - p.CostPrice) / p.SalePrice * 100
	}
	return view
}
