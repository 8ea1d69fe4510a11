package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quotes-api/models"
	"quotes-api/services"
)

type ProductHandler struct {
	Catalog *services.CatalogService
	Export  *services.ExportService
}

// CreateProduct registers a new catalog product.
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.Catalog.Add(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

// ListProducts returns the full catalog in insertion order.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.Catalog.List()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProduct resolves one product by id.
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.Catalog.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// ListProductsGrouped returns the catalog grouped by category with
// per-unit profit figures.
func (h *ProductHandler) ListProductsGrouped(c *gin.Context) {
	groups, err := h.Catalog.GroupByCategory()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, groups)
}

// DeleteProduct removes a product from the catalog. Saved budgets and
// calculations keep their snapshotted prices.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.Catalog.Remove(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

// ExportProductsCSV downloads the catalog as CSV.
func (h *ProductHandler) ExportProductsCSV(c *gin.Context) {
	data, err := h.Export.ProductsCSV()
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="produtos.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
