// Package export writes and reads the full data set as CSV or JSON.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/theirongolddev/subtrack/internal/model"
	"github.com/theirongolddev/subtrack/internal/store"
)

// csvHeader is the fixed subscription CSV column order.
var csvHeader = []string{
	"Name", "Cost", "Currency", "Billing Cycle", "Next Billing Date",
	"Category", "Status", "Notes", "Created Date",
}

// Dump is the JSON export shape; Version allows future migrations.
type Dump struct {
	Version       int                  `json:"version"`
	Subscriptions []model.Subscription `json:"subscriptions"`
	Budgets       []model.Budget       `json:"budgets"`
	Categories    []model.Category     `json:"categories"`
	Settings      model.Settings       `json:"settings"`
}

// WriteCSV writes subscriptions in the fixed column order. encoding/csv
// quotes fields containing commas, quotes, or newlines, doubling embedded
// quotes.
func WriteCSV(w io.Writer, subs []model.Subscription) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, s := range subs {
		status := "inactive"
		if s.Active {
			status = "active"
		}
		cycle := string(s.Cycle.Type)
		if s.Cycle.Type == model.CycleCustom {
			cycle = fmt.Sprintf("custom (%dd)", s.Cycle.CustomDays)
		}
		row := []string{
			s.Name,
			strconv.FormatFloat(s.Cost, 'f', 2, 64),
			s.Currency,
			cycle,
			s.NextBillingDate.Format("2006-01-02"),
			s.Category,
			status,
			s.Notes,
			s.CreatedAt.Format("2006-01-02"),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes a pretty-printed dump of every collection.
func WriteJSON(w io.Writer, d Dump) error {
	d.Version = store.SchemaVersion
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encoding dump: %w", err)
	}
	return nil
}
