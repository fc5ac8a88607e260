// Package kitchen holds the sellable building blocks of the menu:
// ingredients kept in stock, foods made from them, and meals that bundle
// foods together.
package kitchen

import (
	"fmt"

	"github.com/hammamikhairi/gastro/internal/domain"
)

// Nutrition is the nutritional profile of an ingredient. Vitamin and
// Mineral are optional free-form tags.
type Nutrition struct {
	Protein  float64
	Calories float64
	Fat      float64
	Carb     float64
	Vitamin  string
	Mineral  string
}

// Ingredient is a raw stock item with nutritional data, stock level and
// unit price. Stock never goes negative.
type Ingredient struct {
	name       string
	nutrition  Nutrition
	stock      float64
	pricePerKg float64
}

// NewIngredient creates an ingredient, validating every field the same way
// the setters do.
func NewIngredient(name string, n Nutrition, stock, pricePerKg float64) (*Ingredient, error) {
	ing := &Ingredient{}
	setters := []func() error{
		func() error { return ing.SetName(name) },
		func() error { return ing.SetProtein(n.Protein) },
		func() error { return ing.SetCalories(n.Calories) },
		func() error { return ing.SetFat(n.Fat) },
		func() error { return ing.SetCarb(n.Carb) },
		func() error { return ing.SetPrice(pricePerKg) },
	}
	for _, set := range setters {
		if err := set(); err != nil {
			return nil, err
		}
	}
	if err := domain.NonNegative("stock", stock); err != nil {
		return nil, err
	}
	ing.nutrition.Vitamin = n.Vitamin
	ing.nutrition.Mineral = n.Mineral
	ing.stock = stock
	return ing, nil
}

func (i *Ingredient) Name() string         { return i.name }
func (i *Ingredient) Nutrition() Nutrition { return i.nutrition }
func (i *Ingredient) Stock() float64       { return i.stock }
func (i *Ingredient) Price() float64       { return i.pricePerKg }

func (i *Ingredient) SetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: ingredient name cannot be empty", domain.ErrValidation)
	}
	i.name = name
	return nil
}

func (i *Ingredient) SetProtein(v float64) error {
	if err := domain.NonNegative("protein", v); err != nil {
		return err
	}
	i.nutrition.Protein = v
	return nil
}

func (i *Ingredient) SetCalories(v float64) error {
	if err := domain.NonNegative("calories", v); err != nil {
		return err
	}
	i.nutrition.Calories = v
	return nil
}

func (i *Ingredient) SetFat(v float64) error {
	if err := domain.NonNegative("fat", v); err != nil {
		return err
	}
	i.nutrition.Fat = v
	return nil
}

func (i *Ingredient) SetCarb(v float64) error {
	if err := domain.NonNegative("carb", v); err != nil {
		return err
	}
	i.nutrition.Carb = v
	return nil
}

func (i *Ingredient) SetVitamin(tag string) { i.nutrition.Vitamin = tag }
func (i *Ingredient) SetMineral(tag string) { i.nutrition.Mineral = tag }

// SetPrice sets the price per kilogram.
func (i *Ingredient) SetPrice(v float64) error {
	if err := domain.NonNegative("price", v); err != nil {
		return err
	}
	i.pricePerKg = v
	return nil
}

// AddStock increases the stock level. The amount must be a finite positive
// number.
func (i *Ingredient) AddStock(amount float64) error {
	if err := domain.Positive("stock to add", amount); err != nil {
		return err
	}
	i.stock += amount
	return nil
}

// ReduceStock decreases the stock level. It fails without touching the
// stock when amount is not a positive number or exceeds what is on hand.
func (i *Ingredient) ReduceStock(amount float64) error {
	if err := domain.Positive("stock to reduce", amount); err != nil {
		return err
	}
	if amount > i.stock {
		return fmt.Errorf("%w: %s has %s, need %s", domain.ErrInsufficientStock,
			i.name, domain.FormatAmount(i.stock), domain.FormatAmount(amount))
	}
	i.stock -= amount
	return nil
}
