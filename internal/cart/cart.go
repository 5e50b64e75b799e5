// Package cart is the client-side catalog/cart module: a pure product
// filter plus a shopping cart with buy/rent pricing, persisted locally so a
// restart keeps its contents. It has no network dependence; callers hand it
// whatever product list they render.
package cart

import (
	"strings"

	"github.com/sahilthakare215/LeafYGo-Goodness-that-Grows/internal/domain"
)

type Mode string

const (
	Buy  Mode = "buy"
	Rent Mode = "rent"
)

// Item is one cart line. Key is "{productID}-{mode}", so a product added
// under both modes holds two independent lines. RentDays is zero for buy
// lines.
type Item struct {
	Key      string  `json:"key"`
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Qty      int     `json:"qty"`
	Mode     Mode    `json:"mode"`
	RentDays int     `json:"rentDays,omitempty"`
}

// Filter returns products matching the category and free-text query.
// Category "All" (or empty) passes everything; the query is matched
// case-insensitively against the title, the joined tags, and the
// description. Pure function of its inputs.
func Filter(products []domain.Product, query, category string) []domain.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if category != "" && category != "All" && p.Category != category {
			continue
		}
		if q != "" {
			hay := strings.ToLower(p.Title + " " + strings.Join(p.Tags, " ") + " " + p.Description)
			if !strings.Contains(hay, q) {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

// Cart holds the mutable cart state. It runs in a single-threaded UI event
// context and is not safe for concurrent use. Every mutation triggers a
// fire-and-forget save through the store; save failures are swallowed since
// the cart is a non-critical local cache.
type Cart struct {
	mode     Mode
	rentDays int
	items    []Item
	store    Store
}

// New builds a cart loaded from store. Absent or unparsable stored data
// silently yields an empty cart.
func New(store Store) *Cart {
	c := &Cart{mode: Buy, rentDays: 1, store: store}
	if store != nil {
		if items, err := store.Load(); err == nil && items != nil {
			c.items = items
		}
	}
	return c
}

func (c *Cart) Mode() Mode    { return c.mode }
func (c *Cart) RentDays() int { return c.rentDays }

// SetMode switches pricing for future adds; existing lines keep the mode
// they were added under.
func (c *Cart) SetMode(m Mode) {
	if m != Buy && m != Rent {
		return
	}
	c.mode = m
}

func (c *Cart) SetRentDays(days int) {
	if days < 1 {
		days = 1
	}
	c.rentDays = days
}

// Items returns a copy of the cart lines, newest first.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Add upserts a line for the product under the current mode. An existing
// line gets its quantity bumped; otherwise a new line is inserted at the
// front with the unit price for the mode.
func (c *Cart) Add(p domain.Product, qty int) {
	if qty < 1 {
		qty = 1
	}
	key := p.ID + "-" + string(c.mode)
	for i := range c.items {
		if c.items[i].Key == key {
			c.items[i].Qty += qty
			c.save()
			return
		}
	}
	it := Item{Key: key, ID: p.ID, Title: p.Title, Price: p.Price, Qty: qty, Mode: c.mode}
	if c.mode == Rent {
		it.Price = p.RentPerDay
		it.RentDays = c.rentDays
	}
	c.items = append([]Item{it}, c.items...)
	c.save()
}

// Remove deletes the line with the given key; no-op if absent.
func (c *Cart) Remove(key string) {
	kept := c.items[:0]
	for _, it := range c.items {
		if it.Key != key {
			kept = append(kept, it)
		}
	}
	c.items = kept
	c.save()
}

// UpdateQty sets a line's quantity, clamped to a minimum of 1. Dropping a
// line happens only through Remove, never by decrementing to zero.
func (c *Cart) UpdateQty(key string, qty int) {
	if qty < 1 {
		qty = 1
	}
	for i := range c.items {
		if c.items[i].Key == key {
			c.items[i].Qty = qty
			break
		}
	}
	c.save()
}

func (c *Cart) Clear() {
	c.items = nil
	c.save()
}

// Subtotal recomputes the cart total: price × qty, times rentDays for rent
// lines.
func (c *Cart) Subtotal() float64 {
	sum := 0.0
	for _, it := range c.items {
		base := it.Price * float64(it.Qty)
		if it.Mode == Rent && it.RentDays > 0 {
			sum += base * float64(it.RentDays)
		} else {
			sum += base
		}
	}
	return sum
}

func (c *Cart) save() {
	if c.store != nil {
		_ = c.store.Save(c.items)
	}
}
