package services

import (
	"math"
	"strings"
	"time"

	"github.com/spf13/cast"

	"quotes-api/models"
	"quotes-api/storage"
	"quotes-api/utils"
)

type ConsumptionService struct {
	store storage.Store
}

func NewConsumptionService(store storage.Store) *ConsumptionService {
	return &ConsumptionService{store: store}
}

func (s *ConsumptionService) load() ([]models.ConsumptionCalculation, error) {
	calcs := []models.ConsumptionCalculation{}
	if err := s.store.Get(storage.KeyCalculations, &calcs); err != nil {
		return nil, err
	}
	return calcs, nil
}

// AddProduct appends a product to the draft with a zero consumption
// rate and the default unit. A product can appear only once per
// calculation; a second add returns ErrDuplicateProduct and leaves the
// draft unchanged.
func (s *ConsumptionService) AddProduct(calc models.ConsumptionCalculation, product models.Product) (models.ConsumptionCalculation, error) {
	for _, p := range calc.Products {
		if p.ProductID == product.ID {
			return calc, models.ErrDuplicateProduct
		}
	}

	entry := models.ConsumptionProduct{
		ID:          utils.NewItemID(),
		ProductID:   product.ID,
		ProductName: product.Name,
		CostPrice:   product.CostPrice,
		Unit:        models.UnitKg,
	}

	next := make([]models.ConsumptionProduct, 0, len(calc.Products)+1)
	next = append(next, calc.Products...)
	calc.Products = append(next, entry)
	calc.TotalCost = sumConsumption(calc.Products)
	return calc, nil
}

// SetField updates one field of a selected product. Changing the
// consumption rate or the unit recomputes that product's totals
// against the calculation's current headcount. Values arrive as
// untyped JSON and are coerced.
func (s *ConsumptionService) SetField(calc models.ConsumptionCalculation, itemID, field string, value interface{}) (models.ConsumptionCalculation, error) {
	next := make([]models.ConsumptionProduct, 0, len(calc.Products))
	found := false
	for _, p := range calc.Products {
		if p.ID == itemID {
			found = true
			switch field {
			case "consumptionPerPerson":
				rate := cast.ToFloat64(value)
				if rate < 0 {
					return calc, &models.ValidationError{Field: field, Message: "consumption rate cannot be negative"}
				}
				p.ConsumptionPerPerson = rate
				p = recomputeConsumption(p, calc.NumberOfPeople)
			case "unit":
				unit := cast.ToString(value)
				if !models.ValidUnit(unit) {
					return calc, &models.ValidationError{Field: field, Message: "unit must be kg, litros or unidades"}
				}
				p.Unit = unit
				p = recomputeConsumption(p, calc.NumberOfPeople)
			default:
				return calc, &models.ValidationError{Field: field, Message: "unknown field"}
			}
		}
		next = append(next, p)
	}
	if !found {
		return calc, models.ErrNotFound
	}

	calc.Products = next
	calc.TotalCost = sumConsumption(next)
	return calc, nil
}

// SetHeadcount updates the number of people and eagerly recomputes
// TotalNeeded and TotalCost for every product in the calculation.
func (s *ConsumptionService) SetHeadcount(calc models.ConsumptionCalculation, people int) models.ConsumptionCalculation {
	calc.NumberOfPeople = people
	next := make([]models.ConsumptionProduct, 0, len(calc.Products))
	for _, p := range calc.Products {
		next = append(next, recomputeConsumption(p, people))
	}
	calc.Products = next
	calc.TotalCost = sumConsumption(next)
	return calc
}

// RemoveProduct drops a product from the draft.
func (s *ConsumptionService) RemoveProduct(calc models.ConsumptionCalculation, itemID string) models.ConsumptionCalculation {
	next := make([]models.ConsumptionProduct, 0, len(calc.Products))
	for _, p := range calc.Products {
		if p.ID == itemID {
			continue
		}
		next = append(next, p)
	}
	calc.Products = next
	calc.TotalCost = sumConsumption(next)
	return calc
}

func recomputeConsumption(p models.ConsumptionProduct, people int) models.ConsumptionProduct {
	p.TotalNeeded = p.ConsumptionPerPerson * float64(people)
	p.TotalCost = p.TotalNeeded * p.CostPrice
	return p
}

func sumConsumption(products []models.ConsumptionProduct) float64 {
	var total float64
	for _, p := range products {
		total += p.TotalCost
	}
	return total
}

// Save validates the draft, assigns id and creation time and persists
// the full collection. All derived values are recomputed first.
func (s *ConsumptionService) Save(draft models.ConsumptionCalculation) (*models.ConsumptionCalculation, error) {
	if strings.TrimSpace(draft.EventName) == "" {
		return nil, &models.ValidationError{Field: "eventName", Message: "event name is required"}
	}
	if strings.TrimSpace(draft.CalculationName) == "" {
		return nil, &models.ValidationError{Field: "calculationName", Message: "calculation name is required"}
	}
	if draft.NumberOfPeople <= 0 {
		return nil, &models.ValidationError{Field: "numberOfPeople", Message: "number of people must be greater than zero"}
	}
	if len(draft.Products) == 0 {
		return nil, &models.ValidationError{Field: "products", Message: "calculation needs at least one product"}
	}

	calcs, err := s.load()
	if err != nil {
		return nil, err
	}

	draft.ID = utils.NewID()
	draft.CreatedAt = time.Now()
	draft = s.SetHeadcount(draft, draft.NumberOfPeople)

	calcs = append(calcs, draft)
	if err := s.store.Set(storage.KeyCalculations, calcs); err != nil {
		return nil, err
	}

	return &draft, nil
}

// List returns all saved calculations in insertion order.
func (s *ConsumptionService) List() ([]models.ConsumptionCalculation, error) {
	return s.load()
}

// Delete removes a calculation by id.
func (s *ConsumptionService) Delete(id string) error {
	calcs, err := s.load()
	if err != nil {
		return err
	}

	next := make([]models.ConsumptionCalculation, 0, len(calcs))
	found := false
	for _, c := range calcs {
		if c.ID == id {
			found = true
			continue
		}
		next = append(next, c)
	}
	if !found {
		return models.ErrNotFound
	}

	return s.store.Set(storage.KeyCalculations, next)
}

// GroupByEvent partitions calculations by event name. Group order and
// the order of calculations inside a group both follow insertion
// order.
func GroupByEvent(calcs []models.ConsumptionCalculation) []models.EventGroup {
	groups := []models.EventGroup{}
	index := map[string]int{}
	for _, c := range calcs {
		i, ok := index[c.EventName]
		if !ok {
			i = len(groups)
			index[c.EventName] = i
			groups = append(groups, models.EventGroup{EventName: c.EventName})
		}
		groups[i].Calculations = append(groups[i].Calculations, c)
		groups[i].TotalCost += c.TotalCost
	}
	return groups
}

// Summarize merges every calculation of one event. The displayed
// headcount is the rounded mean; cost per person divides by the exact
// mean so the figure does not drift with rounding.
func Summarize(eventName string, calcs []models.ConsumptionCalculation) models.EventSummary {
	group := []models.ConsumptionCalculation{}
	var totalCost, peopleSum float64
	for _, c := range calcs {
		if c.EventName != eventName {
			continue
		}
		group = append(group, c)
		totalCost += c.TotalCost
		peopleSum += float64(c.NumberOfPeople)
	}

	summary := models.EventSummary{
		EventName:    eventName,
		Calculations: group,
		TotalCost:    totalCost,
	}
	if len(group) > 0 {
		avg := peopleSum / float64(len(group))
		summary.NumberOfPeople = int(math.Round(avg))
		if avg > 0 {
			summary.CostPerPerson = totalCost / avg
		}
	}
	return summary
}
