package kitchen

import (
	"fmt"

	"github.com/hammamikhairi/gastro/internal/domain"
)

// Meal is a named bundle of foods sold together. The same food may appear
// more than once.
type Meal struct {
	name  string
	foods []*Food
}

// NewMeal creates an empty meal.
func NewMeal(name string) (*Meal, error) {
	m := &Meal{}
	if err := m.SetName(name); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Meal) Name() string { return m.name }

func (m *Meal) SetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: meal name cannot be empty", domain.ErrValidation)
	}
	m.name = name
	return nil
}

// AddFood appends a food to the meal.
func (m *Meal) AddFood(f *Food) error {
	if f == nil {
		return fmt.Errorf("%w: food cannot be nil", domain.ErrNilReference)
	}
	m.foods = append(m.foods, f)
	return nil
}

// Foods returns a copy of the meal's food list.
func (m *Meal) Foods() []*Food {
	out := make([]*Food, len(m.foods))
	copy(out, m.foods)
	return out
}

// TotalPrice sums the current sale prices of the meal's foods. It is
// computed on every call so food price changes show up immediately.
func (m *Meal) TotalPrice() float64 {
	total := 0.0
	for _, f := range m.foods {
		total += f.SalePrice()
	}
	return total
}
