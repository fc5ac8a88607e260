package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/gastro/internal/domain"
	"github.com/hammamikhairi/gastro/internal/logger"
)

func TestDefaultCatalog(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)

	r, err := Open("", log)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"===== MENU =====",
		"1. Salad Meal - 5 AZN",
		"2. Pizza Meal - 15 AZN",
		"3. Chicken Meal - 20 AZN",
	}, r.ShowMeals())

	ings := r.Ingredients()
	require.Len(t, ings, 3)
	assert.Equal(t, "Cheese", ings[1].Name())
	assert.Equal(t, 5.0, ings[1].Stock())
	assert.Equal(t, 10.0, ings[1].Price())
	assert.Equal(t, 400.0, ings[1].Nutrition().Calories)
	assert.Zero(t, r.Budget())

	pizza, err := r.Meal(2)
	require.NoError(t, err)
	foods := pizza.Foods()
	require.Len(t, foods, 1)
	assert.Equal(t, "Extra cheese pizza", foods[0].Description())
	assert.Equal(t, domain.MeasureCount, foods[0].Measure())
	assert.Equal(t, 0.1, foods[0].Quantity(ings[1]))
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
ingredients:
  - {name: Rice, stock: 20, price_per_kg: 3, vitamin: B1}
foods:
  - name: Plov
    sale_price: 12
    measure: weight
    amount: 0.4
    ingredients: [{name: Rice, quantity: 0.2}]
meals:
  - name: Double Plov
    foods: [Plov, Plov]
`), 0o644))

	r, err := Open(path, logger.New(logger.LevelOff, nil))
	require.NoError(t, err)

	meal, err := r.Meal(1)
	require.NoError(t, err)
	assert.Equal(t, 24.0, meal.TotalPrice())
	assert.Equal(t, domain.MeasureWeight, meal.Foods()[0].Measure())
	assert.Equal(t, 0.4, meal.Foods()[0].Amount())
	assert.Equal(t, "B1", r.Ingredients()[0].Nutrition().Vitamin)
}

func TestBuildErrors(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)

	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			"unknown ingredient",
			"foods: [{name: Soup, sale_price: 3, ingredients: [{name: Water, quantity: 1}]}]",
			domain.ErrNotFound,
		},
		{
			"unknown food",
			"meals: [{name: Lunch, foods: [Soup]}]",
			domain.ErrNotFound,
		},
		{
			"negative stock",
			"ingredients: [{name: Salt, stock: -1}]",
			domain.ErrValidation,
		},
		{
			"NaN stock",
			"ingredients: [{name: Salt, stock: .nan}]",
			domain.ErrValidation,
		},
		{
			"infinite price",
			"ingredients: [{name: Salt, stock: 1, price_per_kg: .inf}]",
			domain.ErrValidation,
		},
		{
			"NaN sale price",
			"foods: [{name: Chips, sale_price: .nan}]",
			domain.ErrValidation,
		},
		{
			"zero quantity",
			"ingredients: [{name: Salt, stock: 1}]\nfoods: [{name: Chips, sale_price: 2, ingredients: [{name: Salt, quantity: 0}]}]",
			domain.ErrValidation,
		},
		{
			"bad measure",
			"foods: [{name: Soup, sale_price: 3, measure: bowls}]",
			domain.ErrValidation,
		},
		{
			"duplicate ingredient",
			"ingredients: [{name: Salt}, {name: Salt}]",
			domain.ErrValidation,
		},
		{
			"empty meal name",
			"meals: [{name: ''}]",
			domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)

			_, err = Build(f, log)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("ingredients: [{name: Salt, colour: white}]"))
	assert.Error(t, err)
}

func TestParseEmpty(t *testing.T) {
	f, err := Parse(nil)
	require.NoError(t, err)

	r, err := Build(f, logger.New(logger.LevelOff, nil))
	require.NoError(t, err)
	assert.Empty(t, r.Meals())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
