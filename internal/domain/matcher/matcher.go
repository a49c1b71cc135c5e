// Package matcher links inventory records to price-guide records.
//
// Matching is two-stage: both collections are first partitioned down to a
// single category (console), then every inventory record scans the
// reference partition for the first record whose normalized product name
// occurs inside the inventory record's normalized description. The first
// hit wins and scanning stops, so when several reference names would fit,
// only the earliest in reference order is attached. That policy is
// deliberate, not an accident of iteration order.
//
// Example usage:
//
//	m := matcher.New(matcher.DefaultConfig())
//	inv, ref := m.Partition(inventory, guide, "NES")
//	result, err := m.Match(inv, ref)
//	if err == nil {
//		fmt.Println(len(result.WithID), "matched,", len(result.WithoutID), "left over")
//	}
package matcher

import (
	"fmt"
	"strings"

	"github.com/scj643/pricing-csv/internal/domain/record"
)

// Matcher links one inventory partition against one reference partition.
type Matcher struct {
	config Config
}

// New creates a matcher with the given config.
func New(config Config) *Matcher {
	return &Matcher{config: config}
}

// Partition narrows both collections to a single category, comparing each
// side's configured category field case-insensitively. Either side may come
// back empty; that is a result, not an error.
func (m *Matcher) Partition(inventory, reference record.Collection, category string) (record.Collection, record.Collection) {
	inv := inventory.WhereEquals(m.config.InventoryCategoryField, category)
	ref := reference.WhereEquals(m.config.ReferenceCategoryField, category)
	return inv, ref
}

// Match scans the reference partition for every inventory record and
// attaches the id of the first reference whose normalized name is contained
// in the record's normalized description. Inventory records are mutated in
// place and split into the groups that did and did not gain an id. A record
// missing one of the configured columns surfaces as a FieldError.
func (m *Matcher) Match(inventory, reference record.Collection) (*Result, error) {
	result := &Result{}

	// Normalize reference names once up front; the scan itself is
	// unavoidably quadratic.
	refKeys := make([]string, len(reference))
	for i, ref := range reference {
		name, err := ref.Field(m.config.ReferenceNameField)
		if err != nil {
			return nil, fmt.Errorf("reference record %d: %w", i, err)
		}
		refKeys[i] = m.config.Strip.Normalize(name)
	}

	for i, inv := range inventory {
		desc, err := inv.Field(m.config.InventoryNameField)
		if err != nil {
			return nil, fmt.Errorf("inventory record %d: %w", i, err)
		}
		key := m.config.Strip.Normalize(desc)

		matched := false
		if key != "" {
			for j, refKey := range refKeys {
				// An empty name is contained in everything; it
				// must never count as a hit.
				if refKey == "" || !strings.Contains(key, refKey) {
					continue
				}
				id, err := reference[j].Field(m.config.ReferenceIDField)
				if err != nil {
					return nil, fmt.Errorf("reference record %d: %w", j, err)
				}
				inv.Set(record.ColumnID, id)
				result.Pairs = append(result.Pairs, Pair{Inventory: inv, Reference: reference[j]})
				matched = true
				break
			}
		}

		if matched {
			result.WithID = append(result.WithID, inv)
		} else {
			result.WithoutID = append(result.WithoutID, inv)
		}
	}

	return result, nil
}
