package kitchen

import (
	"fmt"

	"github.com/hammamikhairi/gastro/internal/domain"
)

// Portion is one ingredient requirement of a food.
type Portion struct {
	Ingredient *Ingredient
	Quantity   float64
}

// Food is a priced dish composed of ingredient quantities. Ingredients are
// shared with the restaurant's stock, not owned.
type Food struct {
	name        string
	description string
	salePrice   float64
	measure     domain.MeasureType
	amount      float64

	// quantities is keyed by ingredient identity; order keeps the
	// insertion order for display.
	quantities map[*Ingredient]float64
	order      []*Ingredient
}

// NewFood creates a food. Measure defaults to MeasureCount when zero.
func NewFood(name string, salePrice float64, description string, measure domain.MeasureType, amount float64) (*Food, error) {
	f := &Food{
		description: description,
		measure:     measure,
		quantities:  make(map[*Ingredient]float64),
	}
	if f.measure == 0 {
		f.measure = domain.MeasureCount
	}
	if err := f.SetName(name); err != nil {
		return nil, err
	}
	if err := f.SetSalePrice(salePrice); err != nil {
		return nil, err
	}
	if err := domain.NonNegative("amount", amount); err != nil {
		return nil, err
	}
	f.amount = amount
	return f, nil
}

func (f *Food) Name() string                { return f.name }
func (f *Food) Description() string         { return f.description }
func (f *Food) SalePrice() float64          { return f.salePrice }
func (f *Food) Measure() domain.MeasureType { return f.measure }
func (f *Food) Amount() float64             { return f.amount }

func (f *Food) SetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: food name cannot be empty", domain.ErrValidation)
	}
	f.name = name
	return nil
}

func (f *Food) SetSalePrice(p float64) error {
	if err := domain.NonNegative("food price", p); err != nil {
		return err
	}
	f.salePrice = p
	return nil
}

// AddIngredient records how much of ing one portion needs. Adding an
// ingredient that is already present replaces its quantity.
func (f *Food) AddIngredient(ing *Ingredient, qty float64) error {
	if ing == nil {
		return fmt.Errorf("%w: ingredient cannot be nil", domain.ErrNilReference)
	}
	if err := domain.Positive("ingredient quantity", qty); err != nil {
		return err
	}
	if _, ok := f.quantities[ing]; !ok {
		f.order = append(f.order, ing)
	}
	f.quantities[ing] = qty
	return nil
}

// Quantity returns the required quantity of ing, or 0 if it is not used.
func (f *Food) Quantity(ing *Ingredient) float64 {
	return f.quantities[ing]
}

// Ingredients returns the ingredient requirements in insertion order.
func (f *Food) Ingredients() []Portion {
	out := make([]Portion, 0, len(f.order))
	for _, ing := range f.order {
		out = append(out, Portion{Ingredient: ing, Quantity: f.quantities[ing]})
	}
	return out
}
