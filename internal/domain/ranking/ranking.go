// Package ranking orders players or teams by a single stat for leaderboards.
package ranking

import (
	"math"
	"sort"
	"strings"

	"github.com/okian/scouthub/internal/domain/model"
	"github.com/okian/scouthub/internal/domain/types"
)

// Direction selects the sort order of a leaderboard.
type Direction int

// Supported directions. Desc is the "top N" order.
const (
	Desc Direction = iota
	Asc
)

// String returns "desc" or "asc".
func (d Direction) String() string {
	if d == Asc {
		return "asc"
	}
	return "desc"
}

// ParseDirection accepts desc/top, asc/bottom (case-insensitive) and "" as desc.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "desc", "top":
		return Desc, nil
	case "asc", "bottom":
		return Asc, nil
	default:
		return Desc, ErrInvalidDirection
	}
}

// Value extracts the sort key for item. Missing keys, the sentinel and NaN all
// count as 0, so an unrecorded stat ties with a genuine zero.
func Value(item model.Ranked, key string) float64 {
	v, ok := item.Stat(key)
	if !ok {
		return 0
	}
	f := v.OrZero()
	if math.IsNaN(f) {
		return 0
	}
	return f
}

// TopN returns up to n items ordered by the stat under key.
// The sort is stable: items with equal values keep their input order.
// items is not modified.
func TopN[T model.Ranked](items []T, key string, n int, dir Direction) []T {
	if n <= 0 || len(items) == 0 {
		return []T{}
	}

	keyed := make([]keyedItem[T], len(items))
	for i, item := range items {
		keyed[i] = keyedItem[T]{item: item, value: Value(item, key)}
	}

	sort.SliceStable(keyed, func(i, j int) bool {
		if dir == Asc {
			return keyed[i].value < keyed[j].value
		}
		return keyed[i].value > keyed[j].value
	})

	if n > len(keyed) {
		n = len(keyed)
	}
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = keyed[i].item
	}
	return out
}

type keyedItem[T any] struct {
	item  T
	value float64
}

// Entries converts ranked items to leaderboard rows. Rank is the 1-based
// position; ties are not collapsed.
func Entries[T model.Ranked](items []T, key string) []types.Entry {
	out := make([]types.Entry, len(items))
	for i, item := range items {
		display := model.Sentinel
		if v, ok := item.Stat(key); ok {
			display = v.String()
		}
		out[i] = types.Entry{
			Rank:    i + 1,
			ID:      item.Key(),
			Name:    item.Label(),
			Value:   Value(item, key),
			Display: display,
		}
	}
	return out
}
