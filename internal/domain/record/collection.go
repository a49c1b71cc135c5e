package record

import "strings"

// Collection is an ordered sequence of records. Order is source order, rows
// are never deduplicated.
type Collection []Record

// FromRows wraps already-parsed rows. The records alias the given maps, so
// mutations made during matching are visible to the caller's rows.
func FromRows(rows []map[string]string) Collection {
	out := make(Collection, len(rows))
	for i, row := range rows {
		out[i] = Record(row)
	}
	return out
}

// WhereEquals returns the records whose field equals value, compared
// case-insensitively and otherwise verbatim, preserving relative order.
// Records without the field are excluded. An empty result is not an error.
func (c Collection) WhereEquals(field, value string) Collection {
	target := strings.ToLower(value)
	var out Collection
	for _, rec := range c {
		v, ok := rec[field]
		if !ok {
			continue
		}
		if strings.ToLower(v) == target {
			out = append(out, rec)
		}
	}
	return out
}

// Distinct returns the distinct values of field in first-seen order,
// skipping records without the field.
func (c Collection) Distinct(field string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, rec := range c {
		v, ok := rec[field]
		if !ok || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// Rows exposes the collection as raw maps for the writer layer. The maps
// are the records themselves, not copies.
func (c Collection) Rows() []map[string]string {
	out := make([]map[string]string, len(c))
	for i, rec := range c {
		out[i] = rec
	}
	return out
}

// RequireColumns verifies the collection carries every named column, using
// the first record as the header sample. An empty collection passes.
func (c Collection) RequireColumns(columns ...string) error {
	if len(c) == 0 {
		return nil
	}
	first := c[0]
	for _, col := range columns {
		if _, ok := first[col]; !ok {
			return &FieldError{Column: col}
		}
	}
	return nil
}
