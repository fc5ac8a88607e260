// Package history keeps the append-only log of a user's completed orders.
package history

import (
	"iter"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hammamikhairi/gastro/internal/domain"
	"github.com/hammamikhairi/gastro/internal/kitchen"
	"github.com/hammamikhairi/gastro/internal/storage"
)

// TimeLayout is the local timestamp format used in displays and the log file.
const TimeLayout = "2006-01-02 15:04:05"

// OrderRecord is one completed order. It is immutable once created.
type OrderRecord struct {
	id         string
	meals      []*kitchen.Meal
	totalPrice float64
	timestamp  time.Time
}

func (r OrderRecord) ID() string           { return r.id }
func (r OrderRecord) TotalPrice() float64  { return r.totalPrice }
func (r OrderRecord) Timestamp() time.Time { return r.timestamp }

// Meals returns a copy of the ordered meals.
func (r OrderRecord) Meals() []*kitchen.Meal {
	out := make([]*kitchen.Meal, len(r.meals))
	copy(out, r.meals)
	return out
}

// Line renders the record as one order log line (without the newline):
//
//	2025-01-02 15:04:05 | 30 AZN | Pizza Meal Pizza Meal
//
// Every meal name is followed by a single space.
func (r OrderRecord) Line() string {
	var b strings.Builder
	b.WriteString(r.timestamp.Local().Format(TimeLayout))
	b.WriteString(" | ")
	b.WriteString(domain.FormatPrice(r.totalPrice))
	b.WriteString(" | ")
	for _, m := range r.meals {
		b.WriteString(m.Name())
		b.WriteByte(' ')
	}
	return b.String()
}

// Option configures a History.
type Option func(*History)

// WithClock sets the time source used to stamp new orders.
func WithClock(now func() time.Time) Option {
	return func(h *History) {
		h.now = now
	}
}

// History is an append-only sequence of order records. Existing records
// are never modified.
type History struct {
	orders []OrderRecord
	now    func() time.Time
}

// New creates an empty history.
func New(opts ...Option) *History {
	h := &History{now: time.Now}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// AddOrder appends a record for the given cart contents, stamped with the
// current time. Timestamps never go backwards: a clock reading earlier
// than the previous record reuses that record's time.
func (h *History) AddOrder(meals []*kitchen.Meal, totalPrice float64) OrderRecord {
	ts := h.now()
	if n := len(h.orders); n > 0 && ts.Before(h.orders[n-1].timestamp) {
		ts = h.orders[n-1].timestamp
	}

	rec := OrderRecord{
		id:         uuid.NewString(),
		meals:      append([]*kitchen.Meal(nil), meals...),
		totalPrice: totalPrice,
		timestamp:  ts,
	}
	h.orders = append(h.orders, rec)
	return rec
}

// Len returns the number of recorded orders.
func (h *History) Len() int { return len(h.orders) }

// Orders returns a copy of all records in insertion order.
func (h *History) Orders() []OrderRecord {
	out := make([]OrderRecord, len(h.orders))
	copy(out, h.orders)
	return out
}

// All yields every record with its 1-based position.
func (h *History) All() iter.Seq2[int, OrderRecord] {
	return func(yield func(int, OrderRecord) bool) {
		for i, rec := range h.orders {
			if !yield(i+1, rec) {
				return
			}
		}
	}
}

// ShowAllOrders yields the printable history, one line at a time. The
// sequence is computed on each iteration and can be ranged over again.
func (h *History) ShowAllOrders() iter.Seq[string] {
	return func(yield func(string) bool) {
		if len(h.orders) == 0 {
			yield("No orders yet.")
			return
		}
		if !yield("===== ORDER HISTORY =====") {
			return
		}
		for n, rec := range h.All() {
			lines := []string{
				"Order #" + strconv.Itoa(n) + " - " + rec.timestamp.Local().Format(TimeLayout),
				"Total Price: " + domain.FormatPrice(rec.totalPrice),
				"Items:",
			}
			for _, m := range rec.meals {
				lines = append(lines, "  "+m.Name())
			}
			lines = append(lines, "------------------------")
			for _, l := range lines {
				if !yield(l) {
					return
				}
			}
		}
	}
}

// SaveToFile appends one line per record, for every record in the
// history, to the file at path. The file is created if missing.
func (h *History) SaveToFile(path string) error {
	lines := make([]string, 0, len(h.orders))
	for _, rec := range h.orders {
		lines = append(lines, rec.Line())
	}
	return storage.AppendLines(path, lines)
}
