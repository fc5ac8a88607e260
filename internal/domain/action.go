package domain

// Screen is the menu shown for the current login state.
type Screen int

const (
	ScreenGuest Screen = iota
	ScreenAdmin
	ScreenUser
)

// String returns a human-readable screen name.
func (s Screen) String() string {
	switch s {
	case ScreenGuest:
		return "guest"
	case ScreenAdmin:
		return "admin"
	case ScreenUser:
		return "user"
	default:
		return "unknown"
	}
}

// ScreenFor returns the screen matching a login role.
func ScreenFor(r Role) Screen {
	switch r {
	case RoleAdmin:
		return ScreenAdmin
	case RoleUser:
		return ScreenUser
	default:
		return ScreenGuest
	}
}

// ActionType classifies what the operator picked from a menu.
type ActionType int

const (
	ActionUnknown ActionType = iota
	ActionLogin
	ActionRegister
	ActionExit
	ActionViewMeals
	ActionViewBudget
	ActionViewStock
	ActionRestock
	ActionAddToCart
	ActionViewCart
	ActionCheckout
	ActionHistory
	ActionClearCart
	ActionLogout
	ActionHelp
)

// String returns a human-readable action type.
func (a ActionType) String() string {
	switch a {
	case ActionLogin:
		return "login"
	case ActionRegister:
		return "register"
	case ActionExit:
		return "exit"
	case ActionViewMeals:
		return "view_meals"
	case ActionViewBudget:
		return "view_budget"
	case ActionViewStock:
		return "view_stock"
	case ActionRestock:
		return "restock"
	case ActionAddToCart:
		return "add_to_cart"
	case ActionViewCart:
		return "view_cart"
	case ActionCheckout:
		return "checkout"
	case ActionHistory:
		return "history"
	case ActionClearCart:
		return "clear_cart"
	case ActionLogout:
		return "logout"
	case ActionHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Action is a parsed menu selection.
type Action struct {
	Type  ActionType
	Input string // raw input, kept for error messages
}
