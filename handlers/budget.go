package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"quotes-api/models"
	"quotes-api/services"
)

type BudgetHandler struct {
	Budgets *services.BudgetService
	Catalog *services.CatalogService
	Reports *services.ReportService
	Export  *services.ExportService
}

// AddItem adds a catalog product to a draft budget and returns the
// draft with every derived value recomputed.
func (h *BudgetHandler) AddItem(c *gin.Context) {
	var req models.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.Catalog.GetByID(req.ProductID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.Budgets.AddItem(req.Budget, *product))
}

// SetQuantity sets a draft item's quantity. Zero or less removes the
// item.
func (h *BudgetHandler) SetQuantity(c *gin.Context) {
	var req models.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.Budgets.SetQuantity(req.Budget, req.ItemID, req.Quantity))
}

// RemoveItem drops an item from a draft budget.
func (h *BudgetHandler) RemoveItem(c *gin.Context) {
	var req models.RemoveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.Budgets.RemoveItem(req.Budget, req.ItemID))
}

// CreateBudget validates and persists a draft budget.
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var draft models.Budget
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	budget, err := h.Budgets.Save(draft)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, budget)
}

// UpdateBudget replaces an existing budget's fields and items, keeping
// its id and creation time.
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	var draft models.Budget
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	budget, err := h.Budgets.Update(c.Param("id"), draft)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, budget)
}

// ListBudgets returns all saved budgets.
func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	budgets, err := h.Budgets.List()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, budgets)
}

// GetBudget resolves one budget by id.
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	budget, err := h.Budgets.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, budget)
}

// DeleteBudget removes a budget. The confirmation gate runs before
// this handler.
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	if err := h.Budgets.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Budget deleted"})
}

// BudgetReport renders the printable quote document inline.
func (h *BudgetHandler) BudgetReport(c *gin.Context) {
	budget, err := h.Budgets.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	html, err := h.Reports.RenderBudget(*budget)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

// DownloadBudgetReport renders the same document as an attachment.
func (h *BudgetHandler) DownloadBudgetReport(c *gin.Context) {
	budget, err := h.Budgets.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	html, err := h.Reports.RenderBudget(*budget)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, services.BudgetFilename(*budget)))
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

// ExportBudgetsCSV downloads one summary row per saved budget.
func (h *BudgetHandler) ExportBudgetsCSV(c *gin.Context) {
	data, err := h.Export.BudgetsCSV()
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="orcamentos.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
