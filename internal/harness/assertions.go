package harness

import (
	"context"
	"fmt"
	"slices"

	"github.com/hamdanyasser/hotelref/internal/hotel"
	"github.com/hamdanyasser/hotelref/internal/testutil"
)

// evaluateAssertions checks every assertion against the final state and
// records failures in result.
func evaluateAssertions(ctx context.Context, h *Harness, assertions []Assertion, result *Result) {
	for i, a := range assertions {
		if err := evaluateAssertion(ctx, h, a, result); err != nil {
			result.AddError(fmt.Sprintf("assertions[%d] %s: %v", i, a.Type, err))
		}
	}
}

func evaluateAssertion(ctx context.Context, h *Harness, a Assertion, result *Result) error {
	switch a.Type {
	case AssertListOrder:
		got := testutil.Names(result.Final)
		if !slices.Equal(got, a.Names) {
			return fmt.Errorf("list = %s, want %s", quoteList(got), quoteList(a.Names))
		}

	case AssertListCount:
		if len(result.Final) != a.Count {
			return fmt.Errorf("list has %d records, want %d", len(result.Final), a.Count)
		}

	case AssertScroll:
		if len(result.Scrolls) == 0 {
			return fmt.Errorf("no scroll signal, want position %d", a.Position)
		}
		if got := result.Scrolls[len(result.Scrolls)-1]; got != a.Position {
			return fmt.Errorf("scrolled to %d, want %d", got, a.Position)
		}

	case AssertInvalidations:
		if result.Invalidations != a.Count {
			return fmt.Errorf("%d invalidations, want %d", result.Invalidations, a.Count)
		}

	case AssertRecord:
		rec, ok, err := h.store.Get(ctx, a.ID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("record %d not found", a.ID)
		}
		return matchFields(rec, a.Fields)

	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
	return nil
}

// matchFields is a subset match of want against rec's text fields.
func matchFields(rec hotel.Hotel, want map[string]string) error {
	got := map[string]string{
		"name":     rec.Name,
		"phone":    rec.Phone,
		"website":  rec.Website,
		"location": rec.Location,
		"nearby":   rec.Nearby,
		"food":     rec.Food,
	}

	keys := make([]string, 0, len(want))
	for k := range want {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		v, ok := got[k]
		if !ok {
			return fmt.Errorf("unknown field %q", k)
		}
		if v != want[k] {
			return fmt.Errorf("%s = %q, want %q", k, v, want[k])
		}
	}
	return nil
}
