// Package restaurant holds the restaurant aggregate (menu, stock, budget)
// and the customer's cart.
package restaurant

import (
	"fmt"

	"github.com/hammamikhairi/gastro/internal/domain"
	"github.com/hammamikhairi/gastro/internal/kitchen"
)

// Restaurant owns the canonical meals and ingredients and tracks the
// running budget (cumulative revenue). Nothing is ever removed.
type Restaurant struct {
	meals       []*kitchen.Meal
	ingredients []*kitchen.Ingredient
	budget      float64
}

// New creates an empty restaurant with a zero budget.
func New() *Restaurant {
	return &Restaurant{}
}

// AddMeal puts a meal on the menu.
func (r *Restaurant) AddMeal(m *kitchen.Meal) error {
	if m == nil {
		return fmt.Errorf("%w: meal cannot be nil", domain.ErrNilReference)
	}
	r.meals = append(r.meals, m)
	return nil
}

// AddIngredient adds an ingredient to the stock list.
func (r *Restaurant) AddIngredient(i *kitchen.Ingredient) error {
	if i == nil {
		return fmt.Errorf("%w: ingredient cannot be nil", domain.ErrNilReference)
	}
	r.ingredients = append(r.ingredients, i)
	return nil
}

// Meals returns the menu in insertion order.
func (r *Restaurant) Meals() []*kitchen.Meal {
	out := make([]*kitchen.Meal, len(r.meals))
	copy(out, r.meals)
	return out
}

// Ingredients returns the stock list in insertion order.
func (r *Restaurant) Ingredients() []*kitchen.Ingredient {
	out := make([]*kitchen.Ingredient, len(r.ingredients))
	copy(out, r.ingredients)
	return out
}

// Meal returns the meal at 1-based menu position n.
func (r *Restaurant) Meal(n int) (*kitchen.Meal, error) {
	if n < 1 || n > len(r.meals) {
		return nil, fmt.Errorf("%w: meal #%d (menu has %d)", domain.ErrNotFound, n, len(r.meals))
	}
	return r.meals[n-1], nil
}

// Ingredient returns the ingredient at 1-based stock position n.
func (r *Restaurant) Ingredient(n int) (*kitchen.Ingredient, error) {
	if n < 1 || n > len(r.ingredients) {
		return nil, fmt.Errorf("%w: ingredient #%d (stock has %d)", domain.ErrNotFound, n, len(r.ingredients))
	}
	return r.ingredients[n-1], nil
}

// AddBudget credits revenue. Negative and non-finite amounts are rejected.
func (r *Restaurant) AddBudget(amount float64) error {
	if err := domain.NonNegative("budget", amount); err != nil {
		return err
	}
	r.budget += amount
	return nil
}

// Budget returns the cumulative revenue.
func (r *Restaurant) Budget() float64 { return r.budget }

// ShowMeals renders the numbered menu with each meal's current price.
func (r *Restaurant) ShowMeals() []string {
	lines := []string{"===== MENU ====="}
	for i, m := range r.meals {
		lines = append(lines, fmt.Sprintf("%d. %s - %s", i+1, m.Name(), domain.FormatPrice(m.TotalPrice())))
	}
	return lines
}

// ShowStock renders the numbered stock list.
func (r *Restaurant) ShowStock() []string {
	lines := []string{"===== STOCK ====="}
	for i, ing := range r.ingredients {
		lines = append(lines, fmt.Sprintf("%d. %s - %s kg - %s/kg",
			i+1, ing.Name(), domain.FormatAmount(ing.Stock()), domain.FormatPrice(ing.Price())))
	}
	return lines
}
