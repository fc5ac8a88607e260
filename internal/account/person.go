// Package account models the people who use the console (one admin and
// one customer) and the login state machine that gates the menus.
package account

import (
	"iter"

	"github.com/hammamikhairi/gastro/internal/domain"
	"github.com/hammamikhairi/gastro/internal/history"
	"github.com/hammamikhairi/gastro/internal/kitchen"
)

// Person is an account holder. Admin and User are the only variants.
type Person interface {
	Role() domain.Role
	FirstName() string
	LastName() string
	Email() string
	Password() string
}

// Compile-time interface checks.
var (
	_ Person = (*Admin)(nil)
	_ Person = (*User)(nil)
)

type profile struct {
	firstName string
	lastName  string
	email     string
	password  string
}

func (p profile) FirstName() string { return p.firstName }
func (p profile) LastName() string  { return p.lastName }
func (p profile) Email() string     { return p.email }
func (p profile) Password() string  { return p.password }

// Admin manages the restaurant. It carries no state beyond its profile.
type Admin struct {
	profile
}

// NewAdmin creates an admin account.
func NewAdmin(first, last, email, password string) *Admin {
	return &Admin{profile{first, last, email, password}}
}

func (a *Admin) Role() domain.Role { return domain.RoleAdmin }

// User is a customer. It owns its order history.
type User struct {
	profile
	history *history.History
}

// NewUser creates a customer account with an empty history.
func NewUser(first, last, email, password string, opts ...history.Option) *User {
	return &User{
		profile: profile{first, last, email, password},
		history: history.New(opts...),
	}
}

func (u *User) Role() domain.Role { return domain.RoleUser }

// History returns the user's order history.
func (u *User) History() *history.History { return u.history }

// AddOrder records a completed order in the user's history.
func (u *User) AddOrder(meals []*kitchen.Meal, totalPrice float64) history.OrderRecord {
	return u.history.AddOrder(meals, totalPrice)
}

// ShowHistory yields the printable order history.
func (u *User) ShowHistory() iter.Seq[string] {
	return u.history.ShowAllOrders()
}

// SaveHistoryToFile appends the user's history to the order log at path.
func (u *User) SaveHistoryToFile(path string) error {
	return u.history.SaveToFile(path)
}
