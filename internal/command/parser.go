// Package command maps console input to menu actions.
package command

import (
	"regexp"
	"strings"

	"github.com/hammamikhairi/gastro/internal/domain"
	"github.com/hammamikhairi/gastro/internal/logger"
)

// Parser matches menu input to actions using option numbers and keywords.
// Each screen has its own numbering.
type Parser struct {
	log   *logger.Logger
	rules map[domain.Screen][]rule
}

type rule struct {
	regex  *regexp.Regexp
	action domain.ActionType
}

// NewParser creates a parser for the guest, admin and user menus.
func NewParser(log *logger.Logger) *Parser {
	help := rule{regexp.MustCompile(`(?i)^(help|h|\?)$`), domain.ActionHelp}

	return &Parser{
		log: log,
		rules: map[domain.Screen][]rule{
			domain.ScreenGuest: {
				{regexp.MustCompile(`(?i)^(1|login|log in|signin|sign in)$`), domain.ActionLogin},
				{regexp.MustCompile(`(?i)^(2|register|signup|sign up)$`), domain.ActionRegister},
				{regexp.MustCompile(`(?i)^(3|exit|quit|q)$`), domain.ActionExit},
				help,
			},
			domain.ScreenAdmin: {
				{regexp.MustCompile(`(?i)^(1|meals|menu|view meals)$`), domain.ActionViewMeals},
				{regexp.MustCompile(`(?i)^(2|budget|view budget)$`), domain.ActionViewBudget},
				{regexp.MustCompile(`(?i)^(3|stock|view stock|ingredients)$`), domain.ActionViewStock},
				{regexp.MustCompile(`(?i)^(4|restock)$`), domain.ActionRestock},
				{regexp.MustCompile(`(?i)^(5|logout|log out)$`), domain.ActionLogout},
				help,
			},
			domain.ScreenUser: {
				{regexp.MustCompile(`(?i)^(1|meals|menu|view meals)$`), domain.ActionViewMeals},
				{regexp.MustCompile(`(?i)^(2|add|add to cart)$`), domain.ActionAddToCart},
				{regexp.MustCompile(`(?i)^(3|cart|view cart)$`), domain.ActionViewCart},
				{regexp.MustCompile(`(?i)^(4|checkout|pay)$`), domain.ActionCheckout},
				{regexp.MustCompile(`(?i)^(5|history|orders|order history)$`), domain.ActionHistory},
				{regexp.MustCompile(`(?i)^(6|logout|log out)$`), domain.ActionLogout},
				{regexp.MustCompile(`(?i)^(7|clear|clear cart)$`), domain.ActionClearCart},
				help,
			},
		},
	}
}

// Parse converts menu input on the given screen into an action.
func (p *Parser) Parse(screen domain.Screen, input string) domain.Action {
	trimmed := strings.Join(strings.Fields(input), " ")
	if trimmed == "" {
		return domain.Action{Type: domain.ActionUnknown}
	}

	for _, r := range p.rules[screen] {
		if r.regex.MatchString(trimmed) {
			p.log.Debug("%s screen: %q -> %s", screen, trimmed, r.action)
			return domain.Action{Type: r.action, Input: trimmed}
		}
	}

	p.log.Debug("%s screen: no match for %q", screen, trimmed)
	return domain.Action{Type: domain.ActionUnknown, Input: trimmed}
}

// Menu returns the one-line option list for a screen.
func Menu(screen domain.Screen) string {
	switch screen {
	case domain.ScreenAdmin:
		return "1.View Meals 2.View Budget 3.View Stock 4.Restock 5.Logout"
	case domain.ScreenUser:
		return "1.View Meals 2.Add to Cart 3.View Cart 4.Checkout 5.Order History 6.Logout 7.Clear Cart"
	default:
		return "1.Login 2.Register 3.Exit"
	}
}

// Help returns the keyword aliases accepted on a screen.
func Help(screen domain.Screen) []string {
	switch screen {
	case domain.ScreenAdmin:
		return []string{
			"meals / menu      Show the menu with prices",
			"budget            Show the restaurant budget",
			"stock             Show ingredient stock",
			"restock           Add stock to an ingredient",
			"logout            End the admin session",
		}
	case domain.ScreenUser:
		return []string{
			"meals / menu      Show the menu with prices",
			"add               Add a meal to the cart by number",
			"cart              Show the cart",
			"checkout / pay    Place the order",
			"history / orders  Show your past orders",
			"clear             Empty the cart",
			"logout            End your session",
		}
	default:
		return []string{
			"login             Log in as admin or user",
			"register          Create the admin or user account",
			"exit / quit       Leave the program",
		}
	}
}
