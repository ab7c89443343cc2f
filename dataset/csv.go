package dataset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// ErrUnresolved is returned when persisting a dataset that still has
// pending labels.
var ErrUnresolved = errors.New("dataset has unresolved labels")

// csvRow is the wire form. Every column is numeric, booleans as 1/0.
type csvRow struct {
	SelfScore     float64 `csv:"self_score"`
	OppScore      float64 `csv:"opp_score"`
	OppStands     float64 `csv:"opp_stands"`
	ResultCardVal float64 `csv:"result_card_val"`
	ResultStand   float64 `csv:"result_stand"`
	Score         float64 `csv:"score"`
}

// WriteFile persists the dataset as CSV, creating parent directories. It
// refuses to write while any label is pending.
func (d *Dataset) WriteFile(path string) error {
	if n := d.Unresolved(); n > 0 {
		return fmt.Errorf("%w: %d rows pending", ErrUnresolved, n)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	records := make([]*csvRow, 0, len(d.rows))
	for _, r := range d.rows {
		v, _ := r.Label.Value()
		records = append(records, &csvRow{
			SelfScore:     float64(r.SelfScore),
			OppScore:      float64(r.OppScore),
			OppStands:     boolColumn(r.OppStands),
			ResultCardVal: float64(r.PlayedCardValue),
			ResultStand:   boolColumn(r.Stood),
			Score:         v,
		})
	}
	return gocsv.Marshal(&records, f)
}

// ReadFile loads a dataset persisted by WriteFile. Every row comes back
// with a resolved label.
func ReadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []*csvRow
	if err := gocsv.UnmarshalFile(f, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	d := New()
	for _, rec := range records {
		d.Append(Row{
			SelfScore:       int(rec.SelfScore),
			OppScore:        int(rec.OppScore),
			OppStands:       rec.OppStands != 0,
			PlayedCardValue: int(rec.ResultCardVal),
			Stood:           rec.ResultStand != 0,
			Label:           Resolved(rec.Score),
		})
	}
	return d, nil
}

func boolColumn(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
