package services

import (
	"strings"
	"time"

	"quotes-api/models"
	"quotes-api/storage"
	"quotes-api/utils"
)

type BudgetService struct {
	store storage.Store
}

func NewBudgetService(store storage.Store) *BudgetService {
	return &BudgetService{store: store}
}

func (s *BudgetService) load() ([]models.Budget, error) {
	budgets := []models.Budget{}
	if err := s.store.Get(storage.KeyBudgets, &budgets); err != nil {
		return nil, err
	}
	return budgets, nil
}

// AddItem adds a product to the draft, snapshotting its name and
// prices. Adding a product already on the quote bumps its quantity by
// one instead of creating a second line.
func (s *BudgetService) AddItem(budget models.Budget, product models.Product) models.Budget {
	for _, item := range budget.Items {
		if item.ProductID == product.ID {
			return s.SetQuantity(budget, item.ID, item.Quantity+1)
		}
	}

	item := models.BudgetItem{
		ID:          utils.NewItemID(),
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    1,
		UnitPrice:   product.SalePrice,
		CostPrice:   product.CostPrice,
		Total:       product.SalePrice,
		TotalCost:   product.CostPrice,
	}

	next := make([]models.BudgetItem, 0, len(budget.Items)+1)
	next = append(next, budget.Items...)
	budget.Items = append(next, item)
	return s.Recalculate(budget)
}

// SetQuantity sets an item's quantity and recomputes its totals. A
// quantity of zero or less removes the item entirely.
func (s *BudgetService) SetQuantity(budget models.Budget, itemID string, quantity float64) models.Budget {
	next := make([]models.BudgetItem, 0, len(budget.Items))
	for _, item := range budget.Items {
		if item.ID == itemID {
			if quantity <= 0 {
				continue
			}
			item.Quantity = quantity
			item.Total = item.UnitPrice * quantity
			item.TotalCost = item.CostPrice * quantity
		}
		next = append(next, item)
	}
	budget.Items = next
	return s.Recalculate(budget)
}

// RemoveItem drops an item unconditionally.
func (s *BudgetService) RemoveItem(budget models.Budget, itemID string) models.Budget {
	next := make([]models.BudgetItem, 0, len(budget.Items))
	for _, item := range budget.Items {
		if item.ID == itemID {
			continue
		}
		next = append(next, item)
	}
	budget.Items = next
	return s.Recalculate(budget)
}

// Recalculate rebuilds every derived value from the items: per-item
// totals, subtotal, total cost, profit and margin.
func (s *BudgetService) Recalculate(budget models.Budget) models.Budget {
	var subtotal, totalCost float64
	next := make([]models.BudgetItem, 0, len(budget.Items))
	for _, item := range budget.Items {
		item.Total = item.UnitPrice * item.Quantity
		item.TotalCost = item.CostPrice * item.Quantity
		subtotal += item.Total
		totalCost += item.TotalCost
		next = append(next, item)
	}
	budget.Items = next
	budget.Subtotal = subtotal
	budget.TotalCost = totalCost
	budget.Profit = subtotal - totalCost
	if subtotal > 0 {
		budget.ProfitMargin = budget.Profit / subtotal * 100
	} else {
		budget.ProfitMargin = 0
	}
	return budget
}

func validateBudget(b models.Budget) error {
	if strings.TrimSpace(b.ClientName) == "" {
		return &models.ValidationError{Field: "clientName", Message: "client name is required"}
	}
	if len(b.Items) == 0 {
		return &models.ValidationError{Field: "items", Message: "budget needs at least one item"}
	}
	return nil
}

// Save validates the draft, assigns id and creation time and persists
// the full collection.
func (s *BudgetService) Save(draft models.Budget) (*models.Budget, error) {
	if err := validateBudget(draft); err != nil {
		return nil, err
	}

	budgets, err := s.load()
	if err != nil {
		return nil, err
	}

	draft.ID = utils.NewID()
	draft.CreatedAt = time.Now()
	draft = s.Recalculate(draft)

	budgets = append(budgets, draft)
	if err := s.store.Set(storage.KeyBudgets, budgets); err != nil {
		return nil, err
	}

	return &draft, nil
}

// Update replaces the client fields and items of an existing budget,
// preserving its id and creation time.
func (s *BudgetService) Update(id string, draft models.Budget) (*models.Budget, error) {
	if err := validateBudget(draft); err != nil {
		return nil, err
	}

	budgets, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := range budgets {
		if budgets[i].ID != id {
			continue
		}
		draft.ID = budgets[i].ID
		draft.CreatedAt = budgets[i].CreatedAt
		draft = s.Recalculate(draft)
		budgets[i] = draft
		if err := s.store.Set(storage.KeyBudgets, budgets); err != nil {
			return nil, err
		}
		return &draft, nil
	}

	return nil, models.ErrNotFound
}

// List returns all saved budgets in insertion order.
func (s *BudgetService) List() ([]models.Budget, error) {
	return s.load()
}

// GetByID resolves a budget or returns ErrNotFound.
func (s *BudgetService) GetByID(id string) (*models.Budget, error) {
	budgets, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range budgets {
		if budgets[i].ID == id {
			return &budgets[i], nil
		}
	}
	return nil, models.ErrNotFound
}

// Delete removes a budget by id. Unconditional once invoked; the
// confirmation gate lives in the shell.
func (s *BudgetService) Delete(id string) error {
	budgets, err := s.load()
	if err != nil {
		return err
	}

	next := make([]models.Budget, 0, len(budgets))
	found := false
	for _, b := range budgets {
		if b.ID == id {
			found = true
			continue
		}
		next = append(next, b)
	}
	if !found {
		return models.ErrNotFound
	}

	return s.store.Set(storage.KeyBudgets, next)
}
