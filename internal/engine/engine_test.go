package engine

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/gastro/internal/account"
	"github.com/hammamikhairi/gastro/internal/catalog"
	"github.com/hammamikhairi/gastro/internal/domain"
	"github.com/hammamikhairi/gastro/internal/logger"
	"github.com/hammamikhairi/gastro/internal/storage"
)

type countingChime struct {
	rings int
	err   error
}

func (c *countingChime) Ring(context.Context) error {
	c.rings++
	return c.err
}

func setupEngine(t *testing.T, opts ...Option) (*Engine, context.Context) {
	t.Helper()
	log := logger.New(logger.LevelOff, nil)

	f, err := catalog.Default()
	require.NoError(t, err)
	r, err := catalog.Build(f, log)
	require.NoError(t, err)

	store := storage.NewMemoryStore[domain.Role, account.Person](log)
	auth := account.NewAuth(store, log)

	opts = append([]Option{WithHistoryPath(filepath.Join(t.TempDir(), "orders.txt"))}, opts...)
	return New(r, auth, log, opts...), context.Background()
}

func loginUser(t *testing.T, eng *Engine, ctx context.Context) {
	t.Helper()
	require.NoError(t, eng.Register(ctx, domain.RoleUser, "Ali", "Vali", "a@b.com", "pw"))
	require.NoError(t, eng.Login(ctx, domain.RoleUser, "a@b.com", "pw"))
}

func TestCheckoutScenario(t *testing.T) {
	chime := &countingChime{}
	path := filepath.Join(t.TempDir(), "orders.txt")
	eng, ctx := setupEngine(t, WithHistoryPath(path), WithChime(chime))

	loginUser(t, eng, ctx)
	assert.Equal(t, domain.RoleUser, eng.Role())
	assert.Equal(t, domain.ScreenUser, eng.Screen())

	// Pizza Meal is second on the default menu.
	require.NoError(t, eng.AddToCart(2))
	require.NoError(t, eng.AddToCart(2))
	assert.Equal(t, 30.0, eng.CartTotal())
	assert.Equal(t, "User | cart: 2 | 30 AZN", eng.Status())

	total, err := eng.Checkout(ctx)
	require.NoError(t, err)
	assert.Equal(t, 30.0, total)

	assert.Equal(t, 0, eng.CartLen())
	assert.Equal(t, 30.0, eng.Restaurant().Budget())
	assert.Equal(t, 1, chime.rings)

	history, err := eng.History(ctx)
	require.NoError(t, err)
	lines := slices.Collect(history)
	require.Greater(t, len(lines), 2)
	assert.Equal(t, "===== ORDER HISTORY =====", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Order #1 - "))
	assert.Contains(t, lines, "Total Price: 30 AZN")
	assert.Equal(t, 2, countOf(lines, "  Pizza Meal"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), "| 30 AZN | Pizza Meal Pizza Meal \n"))
}

func countOf(lines []string, want string) int {
	n := 0
	for _, l := range lines {
		if l == want {
			n++
		}
	}
	return n
}

func TestCheckoutLogFailureKeepsCart(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "missing", "orders.txt")
	chime := &countingChime{}
	eng, ctx := setupEngine(t, WithHistoryPath(bad), WithChime(chime))

	loginUser(t, eng, ctx)
	require.NoError(t, eng.AddToCart(1))

	_, err := eng.Checkout(ctx)
	require.ErrorIs(t, err, domain.ErrOrderLog)

	assert.Equal(t, 1, eng.CartLen())
	assert.Zero(t, eng.Restaurant().Budget())
	assert.Zero(t, chime.rings)
}

func TestChimeFailureDoesNotFailCheckout(t *testing.T) {
	eng, ctx := setupEngine(t, WithChime(&countingChime{err: errors.New("no device")}))

	loginUser(t, eng, ctx)
	require.NoError(t, eng.AddToCart(3))

	total, err := eng.Checkout(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20.0, total)
}

func TestLogin(t *testing.T) {
	eng, ctx := setupEngine(t)
	require.NoError(t, eng.Register(ctx, domain.RoleAdmin, "Ada", "Admin", "admin@x", "secret"))

	tests := []struct {
		name     string
		role     domain.Role
		email    string
		password string
		wantErr  error
	}{
		{"wrong password", domain.RoleAdmin, "admin@x", "nope", domain.ErrBadCredentials},
		{"no user registered", domain.RoleUser, "admin@x", "secret", domain.ErrBadCredentials},
		{"invalid role", domain.Role(-1), "admin@x", "secret", domain.ErrInvalidRole},
		{"match", domain.RoleAdmin, "admin@x", "secret", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := eng.Login(ctx, tt.role, tt.email, tt.password)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, domain.RoleNone, eng.Role())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.RoleAdmin, eng.Role())
		})
	}

	eng.Logout()
	assert.Equal(t, domain.RoleNone, eng.Role())
	assert.Equal(t, "Logged out", eng.Status())
}

func TestRoleGates(t *testing.T) {
	eng, ctx := setupEngine(t)

	require.ErrorIs(t, eng.AddToCart(1), domain.ErrNotLoggedIn)
	_, err := eng.Checkout(ctx)
	require.ErrorIs(t, err, domain.ErrNotLoggedIn)
	_, err = eng.Budget()
	require.ErrorIs(t, err, domain.ErrNotLoggedIn)
	_, err = eng.Stock()
	require.ErrorIs(t, err, domain.ErrNotLoggedIn)
	require.ErrorIs(t, eng.Restock(1, 1), domain.ErrNotLoggedIn)

	loginUser(t, eng, ctx)
	_, err = eng.Budget()
	require.ErrorIs(t, err, domain.ErrNotLoggedIn)
}

func TestAddToCartOutOfRange(t *testing.T) {
	eng, ctx := setupEngine(t)
	loginUser(t, eng, ctx)

	for _, n := range []int{0, 4, -1} {
		require.ErrorIs(t, eng.AddToCart(n), domain.ErrNotFound)
	}
	assert.Equal(t, 0, eng.CartLen())
	assert.Equal(t, []string{"Cart empty."}, eng.Cart())
}

func TestAdminRestock(t *testing.T) {
	eng, ctx := setupEngine(t)
	require.NoError(t, eng.Register(ctx, domain.RoleAdmin, "Ada", "Admin", "admin@x", "secret"))
	require.NoError(t, eng.Login(ctx, domain.RoleAdmin, "admin@x", "secret"))

	require.NoError(t, eng.Restock(1, 2.5))
	stock, err := eng.Stock()
	require.NoError(t, err)
	assert.Equal(t, "1. Tomato - 12.5 kg - 2 AZN/kg", stock[1])

	require.ErrorIs(t, eng.Restock(1, 0), domain.ErrValidation)
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		require.ErrorIs(t, eng.Restock(2, bad), domain.ErrValidation)
	}
	stock, err = eng.Stock()
	require.NoError(t, err)
	assert.Equal(t, "2. Cheese - 5 kg - 10 AZN/kg", stock[2])
	require.ErrorIs(t, eng.Restock(9, 1), domain.ErrNotFound)

	budget, err := eng.Budget()
	require.NoError(t, err)
	assert.Zero(t, budget)
	assert.Equal(t, "Admin | budget: 0 AZN", eng.Status())
}
