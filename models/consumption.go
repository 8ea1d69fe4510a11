package models

import "time"

// Measurement units accepted for consumption rates.
const (
	UnitKg     = "kg"
	UnitLiters = "litros"
	UnitCount  = "unidades"
)

func ValidUnit(u string) bool {
	switch u {
	case UnitKg, UnitLiters, UnitCount:
		return true
	}
	return false
}

// ConsumptionProduct is one product inside a consumption calculation.
// TotalNeeded and TotalCost are recomputed together whenever the rate,
// the unit or the calculation's headcount changes.
type ConsumptionProduct struct {
	ID                   string  `json:"id"`
	ProductID            string  `json:"productId"`
	ProductName          string  `json:"productName"`
	CostPrice            float64 `json:"costPrice"`
	ConsumptionPerPerson float64 `json:"consumptionPerPerson"`
	Unit                 string  `json:"unit"`
	TotalNeeded          float64 `json:"totalNeeded"`
	TotalCost            float64 `json:"totalCost"`
}

// ConsumptionCalculation is a named per-category plan for one event,
// e.g. "Bebidas" for "Festa da Empresa".
type ConsumptionCalculation struct {
	ID              string               `json:"id"`
	EventName       string               `json:"eventName"`
	CalculationName string               `json:"calculationName"`
	NumberOfPeople  int                  `json:"numberOfPeople"`
	Products        []ConsumptionProduct `json:"products"`
	TotalCost       float64              `json:"totalCost"`
	CreatedAt       time.Time            `json:"createdAt"`
}

// EventGroup is the list-view projection of all calculations sharing
// an event name.
type EventGroup struct {
	EventName    string                   `json:"eventName"`
	Calculations []ConsumptionCalculation `json:"calculations"`
	TotalCost    float64                  `json:"totalCost"`
}

// EventSummary merges the calculations of one event. NumberOfPeople is
// the rounded mean headcount shown on reports; CostPerPerson divides
// by the exact mean. Derived on demand, never persisted.
type EventSummary struct {
	EventName      string                   `json:"eventName"`
	Calculations   []ConsumptionCalculation `json:"calculations"`
	TotalCost      float64                  `json:"totalCost"`
	CostPerPerson  float64                  `json:"costPerPerson"`
	NumberOfPeople int                      `json:"numberOfPeople"`
}

// Draft mutation payloads, mirroring the budget draft flow.

type AddConsumptionProductRequest struct {
	Calculation ConsumptionCalculation `json:"calculation"`
	ProductID   string                 `json:"productId" binding:"required"`
}

type SetFieldRequest struct {
	Calculation ConsumptionCalculation `json:"calculation"`
	ItemID      string                 `json:"itemId" binding:"required"`
	Field       string                 `json:"field" binding:"required"`
	Value       interface{}            `json:"value"`
}

type SetHeadcountRequest struct {
	Calculation    ConsumptionCalculation `json:"calculation"`
	NumberOfPeople int                    `json:"numberOfPeople"`
}

type RemoveConsumptionProductRequest struct {
	Calculation ConsumptionCalculation `json:"calculation"`
	ItemID      string                 `json:"itemId" binding:"required"`
}
