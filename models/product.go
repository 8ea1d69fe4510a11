package models

// Product is a catalog entry. Prices are stored at full precision;
// two-decimal formatting happens only at the report boundary.
type Product struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	CostPrice float64 `json:"costPrice"`
	SalePrice float64 `json:"salePrice"`
	Category  string  `json:"category"`
}

type CreateProductRequest struct {
	Name      string  `json:"name" binding:"required"`
	CostPrice float64 `json:"costPrice"`
	SalePrice float64 `json:"salePrice"`
	Category  string  `json:"category"`
}

// ProductView adds the derived per-unit figures shown on catalog
// listings. Never persisted.
type ProductView struct {
	Product
	UnitProfit   float64 `json:"unitProfit"`
	ProfitMargin float64 `json:"profitMargin"`
}

type CategoryGroup struct {
	Category string        `json:"category"`
	Products []ProductView `json:"products"`
}
