package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quotes-api/handlers"
	"quotes-api/middleware"
	"quotes-api/services"
)

// SetupProductRoutes wires the catalog endpoints.
func SetupProductRoutes(rg *gin.RouterGroup, catalog *services.CatalogService, export *services.ExportService) {
	h := &handlers.ProductHandler{Catalog: catalog, Export: export}

	rg.GET("/products", h.ListProducts)
	rg.POST("/products", h.CreateProduct)
	rg.GET("/products/grouped", h.ListProductsGrouped)
	rg.GET("/products/export", h.ExportProductsCSV)
	rg.GET("/products/:id", h.GetProduct)
	rg.DELETE("/products/:id", middleware.ConfirmDelete(), h.DeleteProduct)
}

// SetupBudgetRoutes wires the quote endpoints, draft operations
// included.
func SetupBudgetRoutes(rg *gin.RouterGroup, budgets *services.BudgetService, catalog *services.CatalogService, reports *services.ReportService, export *services.ExportService) {
	h := &handlers.BudgetHandler{Budgets: budgets, Catalog: catalog, Reports: reports, Export: export}

	rg.POST("/budgets/draft/add-item", h.AddItem)
	rg.POST("/budgets/draft/set-quantity", h.SetQuantity)
	rg.POST("/budgets/draft/remove-item", h.RemoveItem)

	rg.GET("/budgets", h.ListBudgets)
	rg.POST("/budgets", h.CreateBudget)
	rg.GET("/budgets/export", h.ExportBudgetsCSV)
	rg.GET("/budgets/:id", h.GetBudget)
	rg.PUT("/budgets/:id", h.UpdateBudget)
	rg.DELETE("/budgets/:id", middleware.ConfirmDelete(), h.DeleteBudget)
	rg.GET("/budgets/:id/report", h.BudgetReport)
	rg.GET("/budgets/:id/report/download", h.DownloadBudgetReport)
}

// SetupConsumptionRoutes wires the consumption calculations and the
// per-event views.
func SetupConsumptionRoutes(rg *gin.RouterGroup, calculations *services.ConsumptionService, catalog *services.CatalogService, reports *services.ReportService) {
	h := &handlers.ConsumptionHandler{Calculations: calculations, Catalog: catalog, Reports: reports}

	rg.POST("/calculations/draft/add-product", h.AddProduct)
	rg.POST("/calculations/draft/set-field", h.SetField)
	rg.POST("/calculations/draft/set-headcount", h.SetHeadcount)
	rg.POST("/calculations/draft/remove-product", h.RemoveProduct)

	rg.GET("/calculations", h.ListCalculations)
	rg.POST("/calculations", h.CreateCalculation)
	rg.GET("/calculations/grouped", h.ListCalculationsGrouped)
	rg.DELETE("/calculations/:id", middleware.ConfirmDelete(), h.DeleteCalculation)

	rg.GET("/events/:name/summary", h.EventSummary)
	rg.GET("/events/:name/report", h.EventReport)
	rg.GET("/events/:name/report/download", h.DownloadEventReport)
}

// SetupDashboardRoutes wires the aggregated figures endpoint.
func SetupDashboardRoutes(rg *gin.RouterGroup, dashboard *services.DashboardService) {
	h := &handlers.DashboardHandler{Dashboard: dashboard}

	rg.GET("/dashboard", h.GetStats)
}

// SetupBackupRoutes wires the on-demand snapshot endpoint.
func SetupBackupRoutes(rg *gin.RouterGroup, backups *services.BackupService) {
	h := &handlers.BackupHandler{Backups: backups}

	rg.POST("/backup", h.RunBackup)
}

// SetupHealthRoute exposes a liveness probe.
func SetupHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
