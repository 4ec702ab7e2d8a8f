// Package query derives the admin dashboard view of the catalog: filtered,
// searchable, sortable, and strictly read-only. Identical (catalog, query)
// input always yields the identical output sequence.
package query

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/crystalplaza/go-menu/internal/catalog"
)

// CategoryAll matches every item regardless of category, including items
// whose category reference dangles.
const CategoryAll = "all"

// Availability is the three-way availability selector.
type Availability string

const (
	AvailabilityAll       Availability = "all"
	AvailabilityAvailable Availability = "available"
	AvailabilityHidden    Availability = "hidden"
)

// Sort selects the ordering regime.
type Sort string

const (
	// SortDefault partitions special offers first, preserving catalog
	// insertion order within each partition.
	SortDefault    Sort = "default"
	SortAscending  Sort = "ascending"
	SortDescending Sort = "descending"
)

// Query captures one admin dashboard view request.
type Query struct {
	Category     string
	Search       string
	Availability Availability
	Sort         Sort
}

// collator performs case-insensitive, locale-aware comparison of canonical
// names. Construction is cheap enough to share process-wide.
var collator = collate.New(language.English, collate.IgnoreCase)

// Items applies the query pipeline (category filter, multilingual search,
// availability filter, sort) over the catalog items without mutating the
// aggregate.
func Items(c catalog.Catalog, q Query) []catalog.FoodItem {
	out := make([]catalog.FoodItem, 0, len(c.Items))
	term := strings.ToLower(strings.TrimSpace(q.Search))

	for _, item := range c.Items {
		if !matchesCategory(item, q.Category) {
			continue
		}
		if !matchesSearch(item, term) {
			continue
		}
		if !matchesAvailability(item, q.Availability) {
			continue
		}
		out = append(out, item)
	}

	switch q.Sort {
	case SortAscending:
		sort.SliceStable(out, func(i, j int) bool {
			return collator.CompareString(out[i].Name.EN, out[j].Name.EN) < 0
		})
	case SortDescending:
		sort.SliceStable(out, func(i, j int) bool {
			return collator.CompareString(out[i].Name.EN, out[j].Name.EN) > 0
		})
	default:
		// Stable partition: special offers first, insertion order preserved
		// within each partition.
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].IsSpecialOffer && !out[j].IsSpecialOffer
		})
	}

	return out
}

func matchesCategory(item catalog.FoodItem, category string) bool {
	if category == "" || category == CategoryAll {
		return true
	}
	return item.Category == category
}

// matchesSearch reports whether any of the four name slots contains the
// term, case-insensitively. An empty term matches everything.
func matchesSearch(item catalog.FoodItem, term string) bool {
	if term == "" {
		return true
	}
	for _, lang := range catalog.Languages() {
		if strings.Contains(strings.ToLower(item.Name.Get(lang)), term) {
			return true
		}
	}
	return false
}

func matchesAvailability(item catalog.FoodItem, availability Availability) bool {
	switch availability {
	case AvailabilityAvailable:
		return item.IsAvailable
	case AvailabilityHidden:
		return !item.IsAvailable
	default:
		return true
	}
}
