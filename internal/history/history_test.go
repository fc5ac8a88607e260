package history

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/gastro/internal/domain"
	"github.com/hammamikhairi/gastro/internal/kitchen"
)

func pizzaMeal(t *testing.T) *kitchen.Meal {
	t.Helper()
	pizza, err := kitchen.NewFood("Cheese Pizza", 15, "Extra cheese pizza", domain.MeasureCount, 1)
	require.NoError(t, err)
	meal, err := kitchen.NewMeal("Pizza Meal")
	require.NoError(t, err)
	require.NoError(t, meal.AddFood(pizza))
	return meal
}

// steppingClock returns a clock that advances one minute per call.
func steppingClock(start time.Time) func() time.Time {
	next := start
	return func() time.Time {
		now := next
		next = next.Add(time.Minute)
		return now
	}
}

func TestAddOrderIsAppendOnly(t *testing.T) {
	meal := pizzaMeal(t)
	h := New()

	first := h.AddOrder([]*kitchen.Meal{meal}, 15)
	require.Equal(t, 1, h.Len())

	cart := []*kitchen.Meal{meal, meal}
	second := h.AddOrder(cart, 30)
	require.Equal(t, 2, h.Len())

	// Mutating the caller's slice does not reach the record.
	cart[0] = nil

	orders := h.Orders()
	assert.Equal(t, first.ID(), orders[0].ID())
	assert.Equal(t, first.Timestamp(), orders[0].Timestamp())
	assert.Equal(t, 15.0, orders[0].TotalPrice())
	assert.Len(t, orders[0].Meals(), 1)

	assert.Equal(t, second.ID(), orders[1].ID())
	assert.Equal(t, 30.0, orders[1].TotalPrice())
	require.Len(t, orders[1].Meals(), 2)
	assert.NotNil(t, orders[1].Meals()[0])
	assert.False(t, orders[1].Timestamp().Before(orders[0].Timestamp()))
	assert.NotEqual(t, first.ID(), second.ID())
}

func TestTimestampsNeverGoBackwards(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.Local)
	readings := []time.Time{base, base.Add(-time.Hour), base.Add(time.Minute)}
	i := 0
	h := New(WithClock(func() time.Time {
		ts := readings[i]
		i++
		return ts
	}))

	meal := pizzaMeal(t)
	for range readings {
		h.AddOrder([]*kitchen.Meal{meal}, 15)
	}

	orders := h.Orders()
	assert.Equal(t, base, orders[0].Timestamp())
	assert.Equal(t, base, orders[1].Timestamp())
	assert.Equal(t, base.Add(time.Minute), orders[2].Timestamp())
}

func TestRecordLine(t *testing.T) {
	h := New(WithClock(func() time.Time {
		return time.Date(2025, 3, 1, 12, 30, 5, 0, time.Local)
	}))
	meal := pizzaMeal(t)

	rec := h.AddOrder([]*kitchen.Meal{meal, meal}, 30)
	assert.Equal(t, "2025-03-01 12:30:05 | 30 AZN | Pizza Meal Pizza Meal ", rec.Line())
}

func TestShowAllOrders(t *testing.T) {
	h := New(WithClock(steppingClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.Local))))

	assert.Equal(t, []string{"No orders yet."}, slices.Collect(h.ShowAllOrders()))

	meal := pizzaMeal(t)
	h.AddOrder([]*kitchen.Meal{meal}, 15)
	h.AddOrder([]*kitchen.Meal{meal, meal}, 30)

	want := []string{
		"===== ORDER HISTORY =====",
		"Order #1 - 2025-03-01 09:00:00",
		"Total Price: 15 AZN",
		"Items:",
		"  Pizza Meal",
		"------------------------",
		"Order #2 - 2025-03-01 09:01:00",
		"Total Price: 30 AZN",
		"Items:",
		"  Pizza Meal",
		"  Pizza Meal",
		"------------------------",
	}

	view := h.ShowAllOrders()
	assert.Equal(t, want, slices.Collect(view))
	// Ranging a second time yields the same lines.
	assert.Equal(t, want, slices.Collect(view))
}

func TestShowAllOrdersStopsEarly(t *testing.T) {
	h := New()
	meal := pizzaMeal(t)
	h.AddOrder([]*kitchen.Meal{meal}, 15)

	var got []string
	for line := range h.ShowAllOrders() {
		got = append(got, line)
		if len(got) == 2 {
			break
		}
	}
	assert.Len(t, got, 2)
}

func TestAllIsOneIndexed(t *testing.T) {
	h := New()
	meal := pizzaMeal(t)
	h.AddOrder([]*kitchen.Meal{meal}, 15)
	h.AddOrder([]*kitchen.Meal{meal}, 15)

	var idx []int
	for n := range h.All() {
		idx = append(idx, n)
	}
	assert.Equal(t, []int{1, 2}, idx)
}

func TestSaveToFileAppendsEveryRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "order_history.txt")
	h := New(WithClock(steppingClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.Local))))
	meal := pizzaMeal(t)

	h.AddOrder([]*kitchen.Meal{meal}, 15)
	require.NoError(t, h.SaveToFile(path))

	h.AddOrder([]*kitchen.Meal{meal, meal}, 30)
	require.NoError(t, h.SaveToFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"2025-03-01 09:00:00 | 15 AZN | Pizza Meal \n"+
			"2025-03-01 09:00:00 | 15 AZN | Pizza Meal \n"+
			"2025-03-01 09:01:00 | 30 AZN | Pizza Meal Pizza Meal \n",
		string(data))
}

func TestSaveToFileOpenFailure(t *testing.T) {
	h := New()
	h.AddOrder([]*kitchen.Meal{pizzaMeal(t)}, 15)

	err := h.SaveToFile(filepath.Join(t.TempDir(), "nope", "log.txt"))
	assert.True(t, errors.Is(err, domain.ErrOrderLog))
}
