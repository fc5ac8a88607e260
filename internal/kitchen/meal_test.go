package kitchen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/gastro/internal/domain"
)

func TestMealTotalPrice(t *testing.T) {
	salad, err := NewFood("Tomato Salad", 5, "", domain.MeasureCount, 1)
	require.NoError(t, err)
	pizza, err := NewFood("Cheese Pizza", 15, "", domain.MeasureCount, 1)
	require.NoError(t, err)

	meal, err := NewMeal("Combo")
	require.NoError(t, err)
	assert.Zero(t, meal.TotalPrice())

	require.NoError(t, meal.AddFood(salad))
	require.NoError(t, meal.AddFood(pizza))
	require.NoError(t, meal.AddFood(pizza))

	assert.Equal(t, 35.0, meal.TotalPrice())
	assert.Len(t, meal.Foods(), 3)
}

func TestMealPriceFollowsFoodPrice(t *testing.T) {
	pizza, err := NewFood("Cheese Pizza", 15, "", domain.MeasureCount, 1)
	require.NoError(t, err)
	meal, err := NewMeal("Pizza Meal")
	require.NoError(t, err)
	require.NoError(t, meal.AddFood(pizza))

	require.NoError(t, pizza.SetSalePrice(18))
	assert.Equal(t, 18.0, meal.TotalPrice())
}

func TestMealRejects(t *testing.T) {
	_, err := NewMeal("")
	assert.True(t, errors.Is(err, domain.ErrValidation))

	meal, err := NewMeal("Empty")
	require.NoError(t, err)
	assert.True(t, errors.Is(meal.AddFood(nil), domain.ErrNilReference))
	assert.Empty(t, meal.Foods())
}

func TestFoodsReturnsCopy(t *testing.T) {
	pizza, err := NewFood("Cheese Pizza", 15, "", domain.MeasureCount, 1)
	require.NoError(t, err)
	meal, err := NewMeal("Pizza Meal")
	require.NoError(t, err)
	require.NoError(t, meal.AddFood(pizza))

	foods := meal.Foods()
	foods[0] = nil
	assert.Equal(t, 15.0, meal.TotalPrice())
}
