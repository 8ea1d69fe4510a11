package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"quotes-api/models"
	"quotes-api/routes"
	"quotes-api/services"
	"quotes-api/storage"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := storage.Open("bolt", t.TempDir())
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	catalog := services.NewCatalogService(store)
	budgets := services.NewBudgetService(store)
	calculations := services.NewConsumptionService(store)
	dashboard := services.NewDashboardService(budgets)
	export := services.NewExportService(catalog, budgets)
	backups := services.NewBackupService(store, t.TempDir())

	reports, err := services.NewReportService()
	if err != nil {
		t.Fatalf("failed to load report templates: %v", err)
	}

	router := gin.New()
	v1 := router.Group("/api/v1")
	routes.SetupProductRoutes(v1, catalog, export)
	routes.SetupBudgetRoutes(v1, budgets, catalog, reports, export)
	routes.SetupConsumptionRoutes(v1, calculations, catalog, reports)
	routes.SetupDashboardRoutes(v1, dashboard)
	routes.SetupBackupRoutes(v1, backups)
	routes.SetupHealthRoute(router)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}

func createProduct(t *testing.T, router *gin.Engine, name string, cost, sale float64, category string) models.Product {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/v1/products", models.CreateProductRequest{
		Name: name, CostPrice: cost, SalePrice: sale, Category: category,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create product returned %d: %s", w.Code, w.Body.String())
	}

	var product models.Product
	decode(t, w, &product)
	return product
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("health returned %d", w.Code)
	}
}

func TestCreateProductValidation(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/products", gin.H{"costPrice": 2})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing name should be 400, got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodPost, "/api/v1/products", gin.H{"name": "Gin", "salePrice": -5})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("negative price should be 400, got %d", w.Code)
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	router := newTestRouter(t)
	product := createProduct(t, router, "Cerveja", 2, 5, "Bebidas")

	w := doJSON(t, router, http.MethodDelete, "/api/v1/products/"+product.ID, nil)
	if w.Code != http.StatusPreconditionRequired {
		t.Fatalf("unconfirmed delete should be 428, got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/products/"+product.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("product must survive unconfirmed delete, got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodDelete, "/api/v1/products/"+product.ID+"?confirm=true", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("confirmed delete should be 200, got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/products/"+product.ID, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("deleted product should be 404, got %d", w.Code)
	}
}

func TestBudgetDraftFlow(t *testing.T) {
	router := newTestRouter(t)
	beer := createProduct(t, router, "Cerveja", 2, 5, "Bebidas")

	draft := models.Budget{ClientName: "João"}
	for i := 0; i < 3; i++ {
		w := doJSON(t, router, http.MethodPost, "/api/v1/budgets/draft/add-item", models.AddItemRequest{
			Budget: draft, ProductID: beer.ID,
		})
		if w.Code != http.StatusOK {
			t.Fatalf("add-item returned %d: %s", w.Code, w.Body.String())
		}
		decode(t, w, &draft)
	}

	if len(draft.Items) != 1 || draft.Items[0].Quantity != 3 {
		t.Fatalf("draft should merge duplicates: %+v", draft.Items)
	}
	if draft.Subtotal != 15 || draft.Profit != 9 {
		t.Fatalf("derived values wrong: %+v", draft)
	}

	w := doJSON(t, router, http.MethodPost, "/api/v1/budgets/draft/add-item", models.AddItemRequest{
		Budget: draft, ProductID: "missing",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("stale product should be 404, got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodPost, "/api/v1/budgets", draft)
	if w.Code != http.StatusCreated {
		t.Fatalf("save returned %d: %s", w.Code, w.Body.String())
	}

	var saved models.Budget
	decode(t, w, &saved)
	if saved.ID == "" {
		t.Fatal("saved budget must carry an id")
	}
}

func TestSaveBudgetValidation(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/budgets", models.Budget{ClientName: "João"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("empty items should be 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "items") {
		t.Fatalf("error should name the failing field: %s", w.Body.String())
	}
}

func TestBudgetReportPreviewAndDownload(t *testing.T) {
	router := newTestRouter(t)
	beer := createProduct(t, router, "Cerveja", 2, 5, "Bebidas")

	var draft models.Budget
	w := doJSON(t, router, http.MethodPost, "/api/v1/budgets/draft/add-item", models.AddItemRequest{
		Budget: models.Budget{ClientName: "João Silva"}, ProductID: beer.ID,
	})
	decode(t, w, &draft)

	w = doJSON(t, router, http.MethodPost, "/api/v1/budgets", draft)
	var saved models.Budget
	decode(t, w, &saved)

	preview := doJSON(t, router, http.MethodGet, "/api/v1/budgets/"+saved.ID+"/report", nil)
	if preview.Code != http.StatusOK {
		t.Fatalf("preview returned %d", preview.Code)
	}
	if !strings.Contains(preview.Body.String(), "ORÇAMENTO") {
		t.Fatal("preview should render the quote document")
	}
	if preview.Header().Get("Content-Disposition") != "" {
		t.Fatal("preview must not force a download")
	}

	download := doJSON(t, router, http.MethodGet, "/api/v1/budgets/"+saved.ID+"/report/download", nil)
	if download.Code != http.StatusOK {
		t.Fatalf("download returned %d", download.Code)
	}
	disposition := download.Header().Get("Content-Disposition")
	if !strings.Contains(disposition, "orcamento-joão-silva.html") {
		t.Fatalf("unexpected disposition %q", disposition)
	}
}

func TestConsumptionDraftDuplicate(t *testing.T) {
	router := newTestRouter(t)
	beer := createProduct(t, router, "Cerveja", 2, 5, "Bebidas")

	var draft models.ConsumptionCalculation
	w := doJSON(t, router, http.MethodPost, "/api/v1/calculations/draft/add-product", models.AddConsumptionProductRequest{
		Calculation: models.ConsumptionCalculation{NumberOfPeople: 10}, ProductID: beer.ID,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("add-product returned %d: %s", w.Code, w.Body.String())
	}
	decode(t, w, &draft)

	w = doJSON(t, router, http.MethodPost, "/api/v1/calculations/draft/add-product", models.AddConsumptionProductRequest{
		Calculation: draft, ProductID: beer.ID,
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate product should be 409, got %d", w.Code)
	}
}

func TestEventSummaryAndReport(t *testing.T) {
	router := newTestRouter(t)
	beer := createProduct(t, router, "Cerveja", 2, 5, "Bebidas")

	saveCalc := func(name string, people int, rate float64) {
		var draft models.ConsumptionCalculation
		w := doJSON(t, router, http.MethodPost, "/api/v1/calculations/draft/add-product", models.AddConsumptionProductRequest{
			Calculation: models.ConsumptionCalculation{EventName: "Festa", CalculationName: name, NumberOfPeople: people},
			ProductID:   beer.ID,
		})
		decode(t, w, &draft)

		w = doJSON(t, router, http.MethodPost, "/api/v1/calculations/draft/set-field", models.SetFieldRequest{
			Calculation: draft, ItemID: draft.Products[0].ID, Field: "consumptionPerPerson", Value: rate,
		})
		decode(t, w, &draft)

		w = doJSON(t, router, http.MethodPost, "/api/v1/calculations", draft)
		if w.Code != http.StatusCreated {
			t.Fatalf("save calculation returned %d: %s", w.Code, w.Body.String())
		}
	}
	saveCalc("Bebidas", 10, 1.0)
	saveCalc("Comida", 20, 0.5)

	w := doJSON(t, router, http.MethodGet, "/api/v1/events/Festa/summary", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("summary returned %d: %s", w.Code, w.Body.String())
	}

	var summary models.EventSummary
	decode(t, w, &summary)
	if len(summary.Calculations) != 2 || summary.NumberOfPeople != 15 {
		t.Fatalf("summary mismatch: %+v", summary)
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/events/Festa/report", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Relatório de Custos") {
		t.Fatalf("event report failed: %d", w.Code)
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/events/Desconhecido/summary", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown event should be 404, got %d", w.Code)
	}
}

func TestProductsCSVExport(t *testing.T) {
	router := newTestRouter(t)
	createProduct(t, router, "Cerveja", 2, 5, "Bebidas")

	w := doJSON(t, router, http.MethodGet, "/api/v1/products/export", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("export returned %d", w.Code)
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), "produtos.csv") {
		t.Fatalf("unexpected disposition %q", w.Header().Get("Content-Disposition"))
	}
	body := w.Body.String()
	if !strings.Contains(body, "Cerveja") || !strings.Contains(body, "60.0%") {
		t.Fatalf("csv missing expected row: %s", body)
	}
}

func TestDashboardEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/dashboard", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("dashboard returned %d", w.Code)
	}

	var stats models.DashboardStats
	decode(t, w, &stats)
	if stats.TotalBudgets != 0 {
		t.Fatalf("fresh store should report zero budgets, got %d", stats.TotalBudgets)
	}
}

func TestBackupEndpoint(t *testing.T) {
	router := newTestRouter(t)
	createProduct(t, router, "Cerveja", 2, 5, "Bebidas")

	w := doJSON(t, router, http.MethodPost, "/api/v1/backup", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("backup returned %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]string
	decode(t, w, &resp)
	if resp["file"] == "" {
		t.Fatal("backup response must name the written file")
	}
}

func TestUpdateMissingBudget(t *testing.T) {
	router := newTestRouter(t)

	budget := models.Budget{ClientName: "João", Items: []models.BudgetItem{{ID: "x", ProductName: "Cerveja", Quantity: 1, UnitPrice: 5}}}
	w := doJSON(t, router, http.MethodPut, "/api/v1/budgets/missing", budget)
	if w.Code != http.StatusNotFound {
		t.Fatalf("update of missing budget should be 404, got %d", w.Code)
	}
}
