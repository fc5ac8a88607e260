package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/hammamikhairi/gastro/internal/command"
	"github.com/hammamikhairi/gastro/internal/display"
	"github.com/hammamikhairi/gastro/internal/domain"
	"github.com/hammamikhairi/gastro/internal/engine"
	"github.com/hammamikhairi/gastro/internal/logger"
)

type cliApp struct {
	engine  *engine.Engine
	parser  *command.Parser
	console display.Console
	log     *logger.Logger
	pause   time.Duration // delay after each menu iteration
}

// run shows the menu for the current login state until Exit is picked or
// input ends. Errors from a single iteration are logged and reported, and
// the loop carries on.
func (a *cliApp) run(ctx context.Context) error {
	a.console.PrintChat("Welcome to Gastro! Type 'help' for keywords.")

	for {
		screen := a.engine.Screen()
		a.console.SetStatus(a.engine.Status())
		a.console.PrintHint(command.Menu(screen))

		input, err := a.console.Ask(ctx, "Choice", false)
		if err != nil {
			return endOfInput(err)
		}

		action := a.parser.Parse(screen, input)
		if action.Type == domain.ActionExit {
			a.console.PrintChat("Goodbye!")
			return nil
		}

		if err := a.handle(ctx, action); err != nil {
			if isEnd(err) {
				return endOfInput(err)
			}
			a.log.Error("%s: %v", action.Type, err)
			a.console.PrintUrgent("Error: " + err.Error())
		}

		if err := a.wait(ctx); err != nil {
			return nil
		}
	}
}

func (a *cliApp) handle(ctx context.Context, action domain.Action) error {
	switch action.Type {
	case domain.ActionLogin:
		return a.login(ctx)
	case domain.ActionRegister:
		return a.register(ctx)
	case domain.ActionLogout:
		a.engine.Logout()
		a.console.PrintChat("Logged out.")
	case domain.ActionViewMeals:
		a.printBlock(a.engine.Menu())
	case domain.ActionViewBudget:
		budget, err := a.engine.Budget()
		if err != nil {
			return err
		}
		a.console.PrintLine("Budget: " + domain.FormatPrice(budget))
	case domain.ActionViewStock:
		stock, err := a.engine.Stock()
		if err != nil {
			return err
		}
		a.printBlock(stock)
	case domain.ActionRestock:
		return a.restock(ctx)
	case domain.ActionAddToCart:
		return a.addToCart(ctx)
	case domain.ActionViewCart:
		a.printBlock(a.engine.Cart())
	case domain.ActionCheckout:
		return a.checkout(ctx)
	case domain.ActionHistory:
		lines, err := a.engine.History(ctx)
		if err != nil {
			return err
		}
		a.printBlock(slices.Collect(lines))
	case domain.ActionClearCart:
		a.engine.ClearCart()
		a.console.PrintChat("Cart cleared.")
	case domain.ActionHelp:
		for _, l := range command.Help(a.engine.Screen()) {
			a.console.PrintHint(l)
		}
	default:
		if action.Input != "" {
			a.console.PrintUrgent(fmt.Sprintf("Unknown option %q. Type 'help' for keywords.", action.Input))
		}
	}
	return nil
}

func (a *cliApp) register(ctx context.Context) error {
	role, err := a.askRole(ctx)
	if err != nil {
		return err
	}
	first, err := a.console.Ask(ctx, "First name", false)
	if err != nil {
		return err
	}
	last, err := a.console.Ask(ctx, "Last name", false)
	if err != nil {
		return err
	}
	email, err := a.console.Ask(ctx, "Email", false)
	if err != nil {
		return err
	}
	password, err := a.console.Ask(ctx, "Password", true)
	if err != nil {
		return err
	}

	if err := a.engine.Register(ctx, role, first, last, email, password); err != nil {
		return err
	}
	a.console.PrintChat("Registered!")
	return nil
}

func (a *cliApp) login(ctx context.Context) error {
	role, err := a.askRole(ctx)
	if err != nil {
		return err
	}
	email, err := a.console.Ask(ctx, "Email", false)
	if err != nil {
		return err
	}
	password, err := a.console.Ask(ctx, "Password", true)
	if err != nil {
		return err
	}

	err = a.engine.Login(ctx, role, email, password)
	if errors.Is(err, domain.ErrBadCredentials) {
		a.console.PrintUrgent("Wrong credentials")
		return nil
	}
	if err != nil {
		return err
	}
	a.console.PrintChat(fmt.Sprintf("Logged in as %s.", role))
	return nil
}

func (a *cliApp) askRole(ctx context.Context) (domain.Role, error) {
	input, err := a.console.Ask(ctx, "Role (1. Admin 2. User)", false)
	if err != nil {
		return domain.RoleNone, err
	}
	role := domain.ParseRole(input)
	if !role.Valid() {
		return domain.RoleNone, fmt.Errorf("%w: %q", domain.ErrInvalidRole, strings.TrimSpace(input))
	}
	return role, nil
}

func (a *cliApp) addToCart(ctx context.Context) error {
	n, err := a.askNumber(ctx, "Meal number")
	if err != nil {
		return err
	}
	if err := a.engine.AddToCart(n); err != nil {
		return err
	}
	a.console.PrintChat(fmt.Sprintf("Added. Cart total: %s", domain.FormatPrice(a.engine.CartTotal())))
	return nil
}

func (a *cliApp) checkout(ctx context.Context) error {
	answer, err := a.console.Ask(ctx,
		fmt.Sprintf("Total %s. Confirm? y/n", domain.FormatPrice(a.engine.CartTotal())), false)
	if err != nil {
		return err
	}
	if !strings.EqualFold(strings.TrimSpace(answer), "y") {
		a.console.PrintHint("Checkout cancelled.")
		return nil
	}

	if _, err := a.engine.Checkout(ctx); err != nil {
		return err
	}
	a.console.PrintChat("Order placed!")
	return nil
}

func (a *cliApp) restock(ctx context.Context) error {
	if _, err := a.engine.Stock(); err != nil {
		return err
	}
	n, err := a.askNumber(ctx, "Ingredient number")
	if err != nil {
		return err
	}
	input, err := a.console.Ask(ctx, "Amount (kg)", false)
	if err != nil {
		return err
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return fmt.Errorf("%w: %q is not a number", domain.ErrValidation, input)
	}

	if err := a.engine.Restock(n, amount); err != nil {
		return err
	}
	a.console.PrintChat("Restocked.")
	return nil
}

func (a *cliApp) askNumber(ctx context.Context, prompt string) (int, error) {
	input, err := a.console.Ask(ctx, prompt, false)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", domain.ErrValidation, input)
	}
	return n, nil
}

// printBlock prints a rendered listing, styling "=====" titles as headers.
func (a *cliApp) printBlock(lines []string) {
	for _, l := range lines {
		if strings.HasPrefix(l, "=====") {
			a.console.PrintHeader(l)
		} else {
			a.console.PrintLine(l)
		}
	}
}

func (a *cliApp) wait(ctx context.Context) error {
	if a.pause <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(a.pause):
		return nil
	}
}

func isEnd(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, context.Canceled)
}

// endOfInput turns the end of input into a clean exit.
func endOfInput(err error) error {
	if isEnd(err) {
		return nil
	}
	return err
}
