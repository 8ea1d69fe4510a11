package models

// ProductSales accumulates quantity and revenue per product name
// across every saved budget.
type ProductSales struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

type DashboardStats struct {
	TotalBudgets  int            `json:"totalBudgets"`
	TotalRevenue  float64        `json:"totalRevenue"`
	TotalCosts    float64        `json:"totalCosts"`
	TotalProfit   float64        `json:"totalProfit"`
	AverageMargin float64        `json:"averageMargin"`
	OverallMargin float64        `json:"overallMargin"`
	TopProducts   []ProductSales `json:"topProducts"`
	RecentBudgets []Budget       `json:"recentBudgets"`
}
