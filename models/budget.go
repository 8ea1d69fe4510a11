package models

import "time"

// BudgetItem is a quote line. Product name and prices are snapshots
// taken at add-time: a later catalog change (or delete) never rewrites
// an existing quote.
type BudgetItem struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	CostPrice   float64 `json:"costPrice"`
	Total       float64 `json:"total"`
	TotalCost   float64 `json:"totalCost"`

	// Set when the item was derived from a consumption calculation.
	ConsumptionPerPerson        float64 `json:"consumptionPerPerson,omitempty"`
	Unit                        string  `json:"unit,omitempty"`
	IsCalculatedFromConsumption bool    `json:"isCalculatedFromConsumption,omitempty"`
}

// Budget is a client-facing quote. Subtotal, TotalCost, Profit and
// ProfitMargin are derived from the items and recomputed on every
// mutation, never edited directly.
type Budget struct {
	ID             string       `json:"id"`
	ClientName     string       `json:"clientName"`
	ClientEmail    string       `json:"clientEmail"`
	ClientPhone    string       `json:"clientPhone"`
	EventDate      string       `json:"eventDate"`
	EventType      string       `json:"eventType"`
	NumberOfPeople int          `json:"numberOfPeople,omitempty"`
	Items          []BudgetItem `json:"items"`
	Subtotal       float64      `json:"subtotal"`
	TotalCost      float64      `json:"totalCost"`
	Profit         float64      `json:"profit"`
	ProfitMargin   float64      `json:"profitMargin"`
	CreatedAt      time.Time    `json:"createdAt"`
	Notes          string       `json:"notes"`
}

// Draft mutation payloads. The shell holds the in-progress budget and
// sends it back with each operation; the server returns it with every
// derived value recomputed.

type AddItemRequest struct {
	Budget    Budget `json:"budget"`
	ProductID string `json:"productId" binding:"required"`
}

type SetQuantityRequest struct {
	Budget   Budget  `json:"budget"`
	ItemID   string  `json:"itemId" binding:"required"`
	Quantity float64 `json:"quantity"`
}

type RemoveItemRequest struct {
	Budget Budget `json:"budget"`
	ItemID string `json:"itemId" binding:"required"`
}
