// Package dataset accumulates recorded decisions and persists them as the
// training CSV.
package dataset

// Label is the reward column of a row. It starts out pending and is filled
// in by reward shaping once the round's outcome is known.
type Label struct {
	value    float64
	resolved bool
}

// Resolved constructs a label that already carries its value.
func Resolved(v float64) Label {
	return Label{value: v, resolved: true}
}

// Value returns the label value; the second return is false while the label
// is still pending.
func (l Label) Value() (float64, bool) {
	return l.value, l.resolved
}

// Row is one recorded decision. PlayedCardValue is 0 when no side card was
// played. The zero Label is pending.
type Row struct {
	SelfScore       int
	OppScore        int
	OppStands       bool
	PlayedCardValue int
	Stood           bool
	Label           Label
}

// Dataset holds the rows of one synthesis run. The zero value is empty and
// ready to use. It is not safe for concurrent use.
type Dataset struct {
	rows []Row
}

func New() *Dataset {
	return &Dataset{}
}

func (d *Dataset) Append(r Row) {
	d.rows = append(d.rows, r)
}

func (d *Dataset) Len() int {
	return len(d.rows)
}

// Row returns the i'th row.
func (d *Dataset) Row(i int) Row {
	return d.rows[i]
}

// Rows returns a copy of all rows.
func (d *Dataset) Rows() []Row {
	out := make([]Row, len(d.rows))
	copy(out, d.rows)
	return out
}

// Unresolved counts rows whose labels are still pending.
func (d *Dataset) Unresolved() int {
	n := 0
	for _, r := range d.rows {
		if !r.Label.resolved {
			n++
		}
	}
	return n
}

// Resolve fills every pending label with fill, then overwrites the last
// pending row, the round's final decision, with final. Rows resolved by
// earlier rounds are not touched, and nothing is overwritten when no rows
// were pending. Returns the number of rows resolved.
func (d *Dataset) Resolve(fill, final float64) int {
	resolved := 0
	last := -1
	for i := range d.rows {
		if d.rows[i].Label.resolved {
			continue
		}
		d.rows[i].Label = Resolved(fill)
		last = i
		resolved++
	}
	if last >= 0 {
		d.rows[last].Label = Resolved(final)
	}
	return resolved
}
