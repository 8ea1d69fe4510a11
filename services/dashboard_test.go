package services

import (
	"testing"
	"time"

	"quotes-api/models"
	"quotes-api/storage"
)

func seedBudgets(t *testing.T, store storage.Store, budgets []models.Budget) {
	t.Helper()

	if err := store.Set(storage.KeyBudgets, budgets); err != nil {
		t.Fatalf("failed to seed budgets: %v", err)
	}
}

func TestDashboardStatsEmpty(t *testing.T) {
	store := newTestStore(t)
	dashboard := NewDashboardService(NewBudgetService(store))

	stats, err := dashboard.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.TotalBudgets != 0 || stats.TotalRevenue != 0 || stats.AverageMargin != 0 {
		t.Fatalf("empty store must yield zero stats: %+v", stats)
	}
	if stats.TopProducts == nil || stats.RecentBudgets == nil {
		t.Fatal("stats slices must be non-nil for JSON encoding")
	}
}

func TestDashboardStats(t *testing.T) {
	store := newTestStore(t)
	dashboard := NewDashboardService(NewBudgetService(store))

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	seedBudgets(t, store, []models.Budget{
		{
			ID: "b1", ClientName: "A", CreatedAt: base,
			Subtotal: 100, TotalCost: 40, Profit: 60, ProfitMargin: 60,
			Items: []models.BudgetItem{
				{ProductName: "Cerveja", Quantity: 10, Total: 50},
				{ProductName: "Vinho", Quantity: 2, Total: 50},
			},
		},
		{
			ID: "b2", ClientName: "B", CreatedAt: base.AddDate(0, 0, 1),
			Subtotal: 200, TotalCost: 120, Profit: 80, ProfitMargin: 40,
			Items: []models.BudgetItem{
				{ProductName: "Cerveja", Quantity: 20, Total: 120},
				{ProductName: "Whisky", Quantity: 1, Total: 80},
			},
		},
	})

	stats, err := dashboard.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}

	if stats.TotalBudgets != 2 {
		t.Errorf("total budgets = %d, want 2", stats.TotalBudgets)
	}
	if !almostEqual(stats.TotalRevenue, 300) {
		t.Errorf("total revenue = %v, want 300", stats.TotalRevenue)
	}
	if !almostEqual(stats.TotalCosts, 160) {
		t.Errorf("total costs = %v, want 160", stats.TotalCosts)
	}
	if !almostEqual(stats.TotalProfit, 140) {
		t.Errorf("total profit = %v, want 140", stats.TotalProfit)
	}
	// mean of per-budget margins, not revenue-weighted
	if !almostEqual(stats.AverageMargin, 50) {
		t.Errorf("average margin = %v, want 50", stats.AverageMargin)
	}
	if !almostEqual(stats.OverallMargin, 140.0/300.0*100) {
		t.Errorf("overall margin = %v", stats.OverallMargin)
	}

	if len(stats.TopProducts) != 3 {
		t.Fatalf("expected 3 merged products, got %d", len(stats.TopProducts))
	}
	top := stats.TopProducts[0]
	if top.Name != "Cerveja" || !almostEqual(top.Revenue, 170) || !almostEqual(top.Quantity, 30) {
		t.Errorf("top product mismatch: %+v", top)
	}

	if len(stats.RecentBudgets) != 2 || stats.RecentBudgets[0].ID != "b2" {
		t.Errorf("recent budgets must come newest first: %+v", stats.RecentBudgets)
	}
}

func TestDashboardLimitsTopProducts(t *testing.T) {
	store := newTestStore(t)
	dashboard := NewDashboardService(NewBudgetService(store))

	items := []models.BudgetItem{}
	for _, name := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		items = append(items, models.BudgetItem{ProductName: name, Quantity: 1, Total: 10})
	}
	seedBudgets(t, store, []models.Budget{{ID: "b1", ClientName: "X", Items: items, Subtotal: 70}})

	stats, err := dashboard.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if len(stats.TopProducts) != 5 {
		t.Errorf("top products must cap at 5, got %d", len(stats.TopProducts))
	}
}
