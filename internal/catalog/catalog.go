// Package catalog loads the restaurant's menu (ingredients, foods and
// meals) from YAML and builds the Restaurant from it.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/hammamikhairi/gastro/internal/domain"
	"github.com/hammamikhairi/gastro/internal/kitchen"
	"github.com/hammamikhairi/gastro/internal/logger"
	"github.com/hammamikhairi/gastro/internal/restaurant"
)

//go:embed default.yaml
var defaultCatalog []byte

// File is the on-disk catalog layout.
type File struct {
	Ingredients []IngredientEntry `yaml:"ingredients"`
	Foods       []FoodEntry       `yaml:"foods"`
	Meals       []MealEntry       `yaml:"meals"`
}

// IngredientEntry describes one stock item.
type IngredientEntry struct {
	Name       string  `yaml:"name"`
	Protein    float64 `yaml:"protein"`
	Calories   float64 `yaml:"calories"`
	Fat        float64 `yaml:"fat"`
	Carb       float64 `yaml:"carb"`
	Vitamin    string  `yaml:"vitamin,omitempty"`
	Mineral    string  `yaml:"mineral,omitempty"`
	Stock      float64 `yaml:"stock"`
	PricePerKg float64 `yaml:"price_per_kg"`
}

// FoodEntry describes a dish and the ingredients it needs.
type FoodEntry struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description,omitempty"`
	SalePrice   float64        `yaml:"sale_price"`
	Measure     string         `yaml:"measure,omitempty"` // count, weight or volume
	Amount      float64        `yaml:"amount,omitempty"`  // defaults to 1
	Ingredients []PortionEntry `yaml:"ingredients"`
}

// PortionEntry references an ingredient by name.
type PortionEntry struct {
	Name     string  `yaml:"name"`
	Quantity float64 `yaml:"quantity"`
}

// MealEntry lists food names; repeats are allowed.
type MealEntry struct {
	Name  string   `yaml:"name"`
	Foods []string `yaml:"foods"`
}

// Default returns the built-in catalog.
func Default() (File, error) {
	return Parse(defaultCatalog)
}

// Load reads and parses a catalog file.
func Load(path string) (File, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return File{}, fmt.Errorf("reading catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes catalog YAML. Unknown fields are rejected.
func Parse(data []byte) (File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("parsing catalog: %w", err)
	}
	return f, nil
}

// Open builds a restaurant from the catalog at path, or from the built-in
// catalog when path is empty.
func Open(path string, log *logger.Logger) (*restaurant.Restaurant, error) {
	var (
		f   File
		err error
	)
	if path == "" {
		f, err = Default()
	} else {
		f, err = Load(path)
	}
	if err != nil {
		return nil, err
	}
	return Build(f, log)
}

// Build creates the ingredients, foods and meals described by f and
// registers the ingredients and meals with a new Restaurant. Names must be
// unique per kind; references to unknown names fail with ErrNotFound.
func Build(f File, log *logger.Logger) (*restaurant.Restaurant, error) {
	r := restaurant.New()

	ingredients := make(map[string]*kitchen.Ingredient, len(f.Ingredients))
	for _, e := range f.Ingredients {
		if _, dup := ingredients[e.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate ingredient %q", domain.ErrValidation, e.Name)
		}
		ing, err := kitchen.NewIngredient(e.Name, kitchen.Nutrition{
			Protein:  e.Protein,
			Calories: e.Calories,
			Fat:      e.Fat,
			Carb:     e.Carb,
			Vitamin:  e.Vitamin,
			Mineral:  e.Mineral,
		}, e.Stock, e.PricePerKg)
		if err != nil {
			return nil, fmt.Errorf("ingredient %q: %w", e.Name, err)
		}
		if err := r.AddIngredient(ing); err != nil {
			return nil, err
		}
		ingredients[e.Name] = ing
	}

	foods := make(map[string]*kitchen.Food, len(f.Foods))
	for _, e := range f.Foods {
		food, err := buildFood(e, ingredients)
		if err != nil {
			return nil, fmt.Errorf("food %q: %w", e.Name, err)
		}
		if _, dup := foods[e.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate food %q", domain.ErrValidation, e.Name)
		}
		foods[e.Name] = food
	}

	for _, e := range f.Meals {
		meal, err := kitchen.NewMeal(e.Name)
		if err != nil {
			return nil, fmt.Errorf("meal %q: %w", e.Name, err)
		}
		for _, name := range e.Foods {
			food, ok := foods[name]
			if !ok {
				return nil, fmt.Errorf("meal %q: %w: food %q", e.Name, domain.ErrNotFound, name)
			}
			if err := meal.AddFood(food); err != nil {
				return nil, err
			}
		}
		if err := r.AddMeal(meal); err != nil {
			return nil, err
		}
	}

	log.Info("catalog loaded: %d ingredients, %d foods, %d meals", len(ingredients), len(foods), len(f.Meals))
	return r, nil
}

func buildFood(e FoodEntry, ingredients map[string]*kitchen.Ingredient) (*kitchen.Food, error) {
	measure, err := domain.ParseMeasure(e.Measure)
	if err != nil {
		return nil, err
	}
	amount := e.Amount
	if amount == 0 {
		amount = 1
	}

	food, err := kitchen.NewFood(e.Name, e.SalePrice, e.Description, measure, amount)
	if err != nil {
		return nil, err
	}
	for _, p := range e.Ingredients {
		ing, ok := ingredients[p.Name]
		if !ok {
			return nil, fmt.Errorf("%w: ingredient %q", domain.ErrNotFound, p.Name)
		}
		if err := food.AddIngredient(ing, p.Quantity); err != nil {
			return nil, err
		}
	}
	return food, nil
}
