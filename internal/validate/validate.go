package validate

import (
	"fmt"
	"strings"

	"github.com/sahilthakare215/LeafYGo-Goodness-that-Grows/internal/domain"
)

// Error marks a client-input failure, as opposed to a store failure. The
// HTTP layer maps it to a 400 response.
type Error struct{ Msg string }

func (e *Error) Error() string { return e.Msg }

func fail(format string, args ...any) error {
	return &Error{Msg: fmt.Sprintf(format, args...)}
}

// Category reports whether s is one of the fixed catalog categories.
func Category(s string) bool {
	for _, c := range domain.Categories {
		if s == c {
			return true
		}
	}
	return false
}

// Product checks a full product record before any store write. It is
// independent of the persistence layer so it can be unit tested without a
// live database.
func Product(p domain.Product) error {
	if strings.TrimSpace(p.Title) == "" {
		return fail("title is required")
	}
	if !Category(p.Category) {
		return fail("category must be one of %s", strings.Join(domain.Categories, ", "))
	}
	if p.Price < 0 {
		return fail("price must not be negative")
	}
	if p.RentPerDay < 0 {
		return fail("rentPerDay must not be negative")
	}
	if strings.TrimSpace(p.Img) == "" {
		return fail("img is required")
	}
	if p.Rating < 0 || p.Rating > 5 {
		return fail("rating must be between 0 and 5")
	}
	if strings.TrimSpace(p.Description) == "" {
		return fail("description is required")
	}
	if p.Stock < 0 {
		return fail("stock must not be negative")
	}
	return nil
}

// CursorPosition checks a cursor record before insert. x and y arrive as
// pointers so a missing field can be told apart from a legitimate zero.
func CursorPosition(userID string, x, y *float64, page string) error {
	if strings.TrimSpace(userID) == "" || x == nil || y == nil || strings.TrimSpace(page) == "" {
		return fail("Missing required fields: userId, x, y, page")
	}
	if *x < 0 || *y < 0 {
		return fail("x and y must not be negative")
	}
	return nil
}
