package services

import (
	"github.com/gocarina/gocsv"

	"quotes-api/utils"
)

// ExportService renders the catalog and the saved quotes as CSV
// downloads.
type ExportService struct {
	catalog *CatalogService
	budgets *BudgetService
}

func NewExportService(catalog *CatalogService, budgets *BudgetService) *ExportService {
	return &ExportService{catalog: catalog, budgets: budgets}
}

type productCSVRow struct {
	ID           string  `csv:"id"`
	Name         string  `csv:"name"`
	Category     string  `csv:"category"`
	CostPrice    float64 `csv:"cost_price"`
	SalePrice    float64 `csv:"sale_price"`
	UnitProfit   float64 `csv:"unit_profit"`
	ProfitMargin string  `csv:"profit_margin"`
}

// ProductsCSV exports the full catalog with the derived per-unit
// figures shown on listings.
func (s *ExportService) ProductsCSV() ([]byte, error) {
	products, err := s.catalog.List()
	if err != nil {
		return nil, err
	}

	rows := make([]productCSVRow, 0, len(products))
	for _, p := range products {
		view := productView(p)
		rows = append(rows, productCSVRow{
			ID:           p.ID,
			Name:         p.Name,
			Category:     p.Category,
			CostPrice:    p.CostPrice,
			SalePrice:    p.SalePrice,
			UnitProfit:   view.UnitProfit,
			ProfitMargin: utils.FormatPercent(view.ProfitMargin),
		})
	}

	return gocsv.MarshalBytes(&rows)
}

type budgetCSVRow struct {
	ID           string  `csv:"id"`
	ClientName   string  `csv:"client_name"`
	CreatedAt    string  `csv:"created_at"`
	Items        int     `csv:"items"`
	Subtotal     float64 `csv:"subtotal"`
	TotalCost    float64 `csv:"total_cost"`
	Profit       float64 `csv:"profit"`
	ProfitMargin string  `csv:"profit_margin"`
}

// BudgetsCSV exports one summary row per saved quote.
func (s *ExportService) BudgetsCSV() ([]byte, error) {
	budgets, err := s.budgets.List()
	if err != nil {
		return nil, err
	}

	rows := make([]budgetCSVRow, 0, len(budgets))
	for _, b := range budgets {
		rows = append(rows, budgetCSVRow{
			ID:           b.ID,
			ClientName:   b.ClientName,
			CreatedAt:    utils.FormatDate(b.CreatedAt),
			Items:        len(b.Items),
			Subtotal:     b.Subtotal,
			TotalCost:    b.TotalCost,
			Profit:       b.Profit,
			ProfitMargin: utils.FormatPercent(b.ProfitMargin),
		})
	}

	return gocsv.MarshalBytes(&rows)
}
