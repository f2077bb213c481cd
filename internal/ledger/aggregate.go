package ledger

import (
	"sort"
	"strings"

	"github.com/wishfund-ledger/internal/domain/money"
	"github.com/wishfund-ledger/internal/domain/wishlist"
)

// ItemProgress pairs a wishlist item with its derived saving figures
type ItemProgress struct {
	Item       *wishlist.Item
	TotalSaved float64
	Progress   float64
}

// Summary is the aggregated dashboard view
type Summary struct {
	Wishlists          []ItemProgress
	TotalWishlistValue float64
	TotalSaved         float64
	AvailableMoney     float64
	TotalIncome        float64
	TotalExpenses      float64
	RecentEntries      []*money.Entry
}

// SortOrder selects the ordering of a money history view
type SortOrder string

// Supported history sort orders
const (
	SortNone       SortOrder = ""
	SortNewest     SortOrder = "newest"
	SortOldest     SortOrder = "oldest"
	SortAmountHigh SortOrder = "amount-high"
	SortAmountLow  SortOrder = "amount-low"
)

// HistoryQuery filters and orders the money entry history. Search matches
// case-insensitive substrings of category, note, and type; Type is an exact
// match. Zero values leave the corresponding dimension unconstrained.
type HistoryQuery struct {
	Search string
	Type   money.EntryType
	Sort   SortOrder
}

// itemProgress computes the total saved toward an item and its progress
// percentage. Progress is defined as 0 when price is not positive to keep the
// zero-price edge case away from division.
func itemProgress(s *Store, item *wishlist.Item) ItemProgress {
	var total float64
	for _, saving := range s.savings.list() {
		if saving.WishlistID == item.ID {
			total += saving.Amount
		}
	}

	var progress float64
	if item.Price > 0 {
		progress = total / item.Price * 100
	}

	return ItemProgress{Item: item, TotalSaved: total, Progress: progress}
}

// availableBalance recomputes the spendable pool from scratch on every call.
// Datasets are small enough that a single source of truth beats a cache.
func availableBalance(s *Store) float64 {
	var balance float64
	for _, entry := range s.entries.list() {
		if entry.Type.Outgoing() {
			balance -= entry.Amount
		} else {
			balance += entry.Amount
		}
	}
	return balance
}

func allProgress(s *Store) []ItemProgress {
	items := s.items.list()
	out := make([]ItemProgress, 0, len(items))
	for _, item := range items {
		out = append(out, itemProgress(s, item))
	}
	return out
}

// dashboardSummary aggregates totals, per-item progress, and the last
// recentN money entries in insertion order.
func dashboardSummary(s *Store, recentN int) Summary {
	summary := Summary{
		Wishlists:      allProgress(s),
		AvailableMoney: availableBalance(s),
	}

	for _, item := range s.items.list() {
		summary.TotalWishlistValue += item.Price
	}
	for _, saving := range s.savings.list() {
		summary.TotalSaved += saving.Amount
	}
	for _, entry := range s.entries.list() {
		switch entry.Type {
		case money.TypeIncome:
			summary.TotalIncome += entry.Amount
		case money.TypeExpense:
			summary.TotalExpenses += entry.Amount
		}
	}

	entries := s.entries.list()
	if len(entries) > recentN {
		entries = entries[len(entries)-recentN:]
	}
	summary.RecentEntries = entries

	return summary
}

// moneyHistory returns a filtered, ordered copy of the money entries. The
// store itself is never reordered; without an explicit sort the relative
// insertion order is preserved.
func moneyHistory(s *Store, q HistoryQuery) []*money.Entry {
	entries := make([]*money.Entry, 0, s.entries.len())
	search := strings.ToLower(q.Search)
	for _, entry := range s.entries.list() {
		if q.Type != "" && entry.Type != q.Type {
			continue
		}
		if search != "" && !matchesSearch(entry, search) {
			continue
		}
		entries = append(entries, entry)
	}

	switch q.Sort {
	case SortNewest:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Date.After(entries[j].Date)
		})
	case SortOldest:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Date.Before(entries[j].Date)
		})
	case SortAmountHigh:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Amount > entries[j].Amount
		})
	case SortAmountLow:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Amount < entries[j].Amount
		})
	}

	return entries
}

func matchesSearch(entry *money.Entry, search string) bool {
	return strings.Contains(strings.ToLower(entry.Category), search) ||
		strings.Contains(strings.ToLower(entry.Note), search) ||
		strings.Contains(string(entry.Type), search)
}
