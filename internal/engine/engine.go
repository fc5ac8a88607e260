// Package engine implements the ordering session: who is logged in, what
// is in the cart, and what happens on checkout.
package engine

import (
	"context"
	"fmt"
	"iter"

	"github.com/hammamikhairi/gastro/internal/account"
	"github.com/hammamikhairi/gastro/internal/domain"
	"github.com/hammamikhairi/gastro/internal/logger"
	"github.com/hammamikhairi/gastro/internal/restaurant"
)

// DefaultHistoryPath is the order log written on every checkout.
const DefaultHistoryPath = "order_history.txt"

// Option configures the engine.
type Option func(*Engine)

// WithHistoryPath sets the order log path.
func WithHistoryPath(path string) Option {
	return func(e *Engine) {
		e.historyPath = path
	}
}

// WithChime sets the chime rung after a successful checkout.
func WithChime(c domain.Chime) Option {
	return func(e *Engine) {
		e.chime = c
	}
}

// Engine ties the restaurant, the accounts and the cart together. It has
// no terminal dependencies and is driven entirely through its methods.
type Engine struct {
	restaurant  *restaurant.Restaurant
	auth        *account.Auth
	cart        *restaurant.Cart
	chime       domain.Chime
	log         *logger.Logger
	historyPath string
}

// New creates an engine with an empty cart.
func New(r *restaurant.Restaurant, auth *account.Auth, log *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		restaurant:  r,
		auth:        auth,
		cart:        restaurant.NewCart(),
		log:         log,
		historyPath: DefaultHistoryPath,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Restaurant returns the restaurant the engine sells from.
func (e *Engine) Restaurant() *restaurant.Restaurant { return e.restaurant }

// Role returns the logged-in role, or RoleNone.
func (e *Engine) Role() domain.Role { return e.auth.Role() }

// Screen returns the menu screen for the current login state.
func (e *Engine) Screen() domain.Screen { return domain.ScreenFor(e.auth.Role()) }

// Register creates the account for role.
func (e *Engine) Register(ctx context.Context, role domain.Role, first, last, email, password string) error {
	_, err := e.auth.Register(ctx, role, first, last, email, password)
	return err
}

// Login logs in as role. A credential mismatch returns ErrBadCredentials.
func (e *Engine) Login(ctx context.Context, role domain.Role, email, password string) error {
	ok, err := e.auth.Login(ctx, role, email, password)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrBadCredentials
	}
	return nil
}

// Logout returns to the logged-out state. The cart is left as is.
func (e *Engine) Logout() {
	e.auth.Logout()
}

// Menu returns the printable meal list.
func (e *Engine) Menu() []string {
	return e.restaurant.ShowMeals()
}

// AddToCart puts meal number n (1-based, as shown by Menu) in the cart.
func (e *Engine) AddToCart(n int) error {
	if err := e.require(domain.RoleUser); err != nil {
		return err
	}
	m, err := e.restaurant.Meal(n)
	if err != nil {
		return err
	}
	if err := e.cart.Add(m); err != nil {
		return err
	}
	e.log.Debug("cart: added %q (%d items, %s)", m.Name(), e.cart.Len(), domain.FormatPrice(e.cart.Total()))
	return nil
}

// Cart returns the printable cart contents.
func (e *Engine) Cart() []string { return e.cart.Show() }

// CartLen returns the number of meals in the cart.
func (e *Engine) CartLen() int { return e.cart.Len() }

// CartTotal returns the current cart total.
func (e *Engine) CartTotal() float64 { return e.cart.Total() }

// ClearCart empties the cart.
func (e *Engine) ClearCart() {
	e.cart.Clear()
	e.log.Debug("cart cleared")
}

// Checkout places the cart as an order for the logged-in user and returns
// the charged total. The order is added to the user's history, the history
// is appended to the order log, the budget is credited and the cart is
// cleared, in that order. If the log cannot be written the order stays in
// history, but the budget and cart are left untouched.
func (e *Engine) Checkout(ctx context.Context) (float64, error) {
	if err := e.require(domain.RoleUser); err != nil {
		return 0, err
	}
	user, err := e.auth.User(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading user: %w", err)
	}

	total := e.cart.Total()
	rec := user.AddOrder(e.cart.Items(), total)

	if err := user.SaveHistoryToFile(e.historyPath); err != nil {
		return 0, fmt.Errorf("saving order %s: %w", rec.ID(), err)
	}
	if err := e.restaurant.AddBudget(total); err != nil {
		return 0, err
	}
	e.cart.Clear()

	e.log.Info("order %s placed: %s, budget now %s", rec.ID(),
		domain.FormatPrice(total), domain.FormatPrice(e.restaurant.Budget()))

	if e.chime != nil {
		if err := e.chime.Ring(ctx); err != nil {
			e.log.Warn("chime failed: %v", err)
		}
	}
	return total, nil
}

// History returns the logged-in user's printable order history.
func (e *Engine) History(ctx context.Context) (iter.Seq[string], error) {
	if err := e.require(domain.RoleUser); err != nil {
		return nil, err
	}
	user, err := e.auth.User(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading user: %w", err)
	}
	return user.ShowHistory(), nil
}

// Budget returns the restaurant's revenue. Admin only.
func (e *Engine) Budget() (float64, error) {
	if err := e.require(domain.RoleAdmin); err != nil {
		return 0, err
	}
	return e.restaurant.Budget(), nil
}

// Stock returns the printable ingredient stock. Admin only.
func (e *Engine) Stock() ([]string, error) {
	if err := e.require(domain.RoleAdmin); err != nil {
		return nil, err
	}
	return e.restaurant.ShowStock(), nil
}

// Restock adds amount kilograms to ingredient number n. Admin only.
func (e *Engine) Restock(n int, amount float64) error {
	if err := e.require(domain.RoleAdmin); err != nil {
		return err
	}
	ing, err := e.restaurant.Ingredient(n)
	if err != nil {
		return err
	}
	if err := ing.AddStock(amount); err != nil {
		return err
	}
	e.log.Info("restocked %s: +%s, now %s", ing.Name(),
		domain.FormatAmount(amount), domain.FormatAmount(ing.Stock()))
	return nil
}

// Status is a one-line summary of the session for the status bar.
func (e *Engine) Status() string {
	switch e.auth.Role() {
	case domain.RoleUser:
		return fmt.Sprintf("User | cart: %d | %s", e.cart.Len(), domain.FormatPrice(e.cart.Total()))
	case domain.RoleAdmin:
		return fmt.Sprintf("Admin | budget: %s", domain.FormatPrice(e.restaurant.Budget()))
	default:
		return "Logged out"
	}
}

func (e *Engine) require(role domain.Role) error {
	if e.auth.Role() != role {
		return fmt.Errorf("%w as %s", domain.ErrNotLoggedIn, role)
	}
	return nil
}
