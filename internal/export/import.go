package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/theirongolddev/subtrack/internal/model"
	"github.com/theirongolddev/subtrack/internal/store"
)

// ReadJSON parses a dump and validates every record before anything is
// returned, so a corrupt file cannot partially overwrite the store.
func ReadJSON(r io.Reader) (Dump, error) {
	var d Dump
	dec := json.NewDecoder(r)
	if err := dec.Decode(&d); err != nil {
		return Dump{}, fmt.Errorf("decoding dump: %w", err)
	}
	if d.Version > store.SchemaVersion {
		return Dump{}, fmt.Errorf("dump is schema v%d, this build reads up to v%d",
			d.Version, store.SchemaVersion)
	}
	if msgs := checkDump(d); len(msgs) > 0 {
		return Dump{}, fmt.Errorf("invalid dump: %s", strings.Join(msgs, "; "))
	}
	return d, nil
}

// checkDump collects every shape problem in the dump.
func checkDump(d Dump) []string {
	var msgs []string
	for i, s := range d.Subscriptions {
		where := fmt.Sprintf("subscription %d (%s)", i, s.Name)
		if s.ID == "" {
			msgs = append(msgs, where+": missing id")
		}
		if strings.TrimSpace(s.Name) == "" {
			msgs = append(msgs, fmt.Sprintf("subscription %d: missing name", i))
		}
		if s.Cost <= 0 {
			msgs = append(msgs, where+": cost must be positive")
		}
		if !model.KnownCycle(s.Cycle.Type) {
			msgs = append(msgs, fmt.Sprintf("%s: unknown cycle %q", where, s.Cycle.Type))
		}
		if s.Cycle.Type == model.CycleCustom && s.Cycle.CustomDays <= 0 {
			msgs = append(msgs, where+": custom cycle needs a positive day interval")
		}
		if s.NextBillingDate.IsZero() {
			msgs = append(msgs, where+": missing next billing date")
		}
	}
	for i, b := range d.Budgets {
		where := fmt.Sprintf("budget %d", i)
		if b.ID == "" {
			msgs = append(msgs, where+": missing id")
		}
		if !model.KnownBudgetType(b.Type) {
			msgs = append(msgs, fmt.Sprintf("%s: unknown type %q", where, b.Type))
		}
		if b.Amount <= 0 {
			msgs = append(msgs, where+": amount must be positive")
		}
		if b.AlertThreshold < 0 || b.AlertThreshold > 100 {
			msgs = append(msgs, where+": alert threshold out of range")
		}
	}
	for i, c := range d.Categories {
		if strings.TrimSpace(c.Name) == "" {
			msgs = append(msgs, fmt.Sprintf("category %d: missing name", i))
		}
	}
	return msgs
}

// Restore overwrites every collection in the store with the dump's
// contents. Call only with a dump returned by ReadJSON.
func Restore(st *store.Store, d Dump) error {
	if err := st.SaveSubscriptions(d.Subscriptions); err != nil {
		return err
	}
	if err := st.SaveBudgets(d.Budgets); err != nil {
		return err
	}
	if err := st.SaveCategories(d.Categories); err != nil {
		return err
	}
	return st.SaveSettings(d.Settings)
}
