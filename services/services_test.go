package services

import (
	"testing"

	"quotes-api/models"
	"quotes-api/storage"
)

func newTestStore(t *testing.T) storage.Store {
	t.Helper()

	store, err := storage.Open("bolt", t.TempDir())
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func addTestProduct(t *testing.T, catalog *CatalogService, name string, cost, sale float64, category string) models.Product {
	t.Helper()

	product, err := catalog.Add(models.CreateProductRequest{
		Name:      name,
		CostPrice: cost,
		SalePrice: sale,
		Category:  category,
	})
	if err != nil {
		t.Fatalf("failed to add product %q: %v", name, err)
	}
	return *product
}
