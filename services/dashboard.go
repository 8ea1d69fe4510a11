package services

import (
	"sort"

	"quotes-api/models"
)

// DashboardService derives read-only business figures from the saved
// budgets. Nothing here is persisted.
type DashboardService struct {
	budgets *BudgetService
}

func NewDashboardService(budgets *BudgetService) *DashboardService {
	return &DashboardService{budgets: budgets}
}

func (s *DashboardService) Stats() (*models.DashboardStats, error) {
	budgets, err := s.budgets.List()
	if err != nil {
		return nil, err
	}

	stats := &models.DashboardStats{
		TotalBudgets:  len(budgets),
		TopProducts:   []models.ProductSales{},
		RecentBudgets: []models.Budget{},
	}

	var marginSum float64
	for _, b := range budgets {
		stats.TotalRevenue += b.Subtotal
		stats.TotalCosts += b.TotalCost
		marginSum += b.ProfitMargin
	}
	stats.TotalProfit = stats.TotalRevenue - stats.TotalCosts
	if len(budgets) > 0 {
		stats.AverageMargin = marginSum / float64(len(budgets))
	}
	if stats.TotalRevenue > 0 {
		stats.OverallMargin = stats.TotalProfit / stats.TotalRevenue * 100
	}

	stats.TopProducts = topProducts(budgets, 5)
	stats.RecentBudgets = recentBudgets(budgets, 5)
	return stats, nil
}

// topProducts merges sold items by product name and ranks by revenue.
func topProducts(budgets []models.Budget, limit int) []models.ProductSales {
	sales := []models.ProductSales{}
	index := map[string]int{}
	for _, b := range budgets {
		for _, item := range b.Items {
			i, ok := index[item.ProductName]
			if !ok {
				i = len(sales)
				index[item.ProductName] = i
				sales = append(sales, models.ProductSales{Name: item.ProductName})
			}
			sales[i].Quantity += item.Quantity
			sales[i].Revenue += item.Total
		}
	}

	sort.SliceStable(sales, func(i, j int) bool {
		return sales[i].Revenue > sales[j].Revenue
	})
	if len(sales) > limit {
		sales = sales[:limit]
	}
	return sales
}

func recentBudgets(budgets []models.Budget, limit int) []models.Budget {
	recent := make([]models.Budget, len(budgets))
	copy(recent, budgets)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > limit {
		recent = recent[:limit]
	}
	return recent
}
