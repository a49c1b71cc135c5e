package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scj643/pricing-csv/internal/domain/normalizer"
	"github.com/scj643/pricing-csv/internal/domain/record"
)

func invRecord(sku, dept, desc string) record.Record {
	return record.Record{"sku": sku, "dept": dept, "desc": desc}
}

func guideRecord(id, console, name string) record.Record {
	return record.Record{"id": id, "console-name": console, "product-name": name}
}

func TestMatch_AttachesFirstMatchingReference(t *testing.T) {
	// Arrange
	m := New(DefaultConfig())
	inventory := record.Collection{
		invRecord("1", "NES", "Super Mario Bros. NES Cart"),
	}
	reference := record.Collection{
		guideRecord("10", "NES", "mario bros"),
		guideRecord("11", "NES", "super mario"),
	}

	// Act
	result, err := m.Match(inventory, reference)

	// Assert - both names fit the description; the earlier one wins
	require.NoError(t, err)
	require.Len(t, result.WithID, 1)
	assert.Equal(t, "10", result.WithID[0]["id"])
	assert.Empty(t, result.WithoutID)
}

func TestMatch_SplitCoversEveryRecordExactlyOnce(t *testing.T) {
	// Arrange
	m := New(DefaultConfig())
	inventory := record.Collection{
		invRecord("1", "NES", "Super Mario Bros. NES Cart"),
		invRecord("2", "NES", "Unlabeled cart, water damage"),
		invRecord("3", "NES", "Duck Hunt w/ manual"),
		invRecord("4", "NES", "Shelf riser (store fixture)"),
	}
	reference := record.Collection{
		guideRecord("10", "NES", "Super Mario Bros"),
		guideRecord("12", "NES", "Duck Hunt"),
	}

	// Act
	result, err := m.Match(inventory, reference)

	// Assert
	require.NoError(t, err)
	require.Len(t, result.WithID, 2)
	require.Len(t, result.WithoutID, 2)
	assert.Equal(t, "1", result.WithID[0]["sku"])
	assert.Equal(t, "3", result.WithID[1]["sku"])
	assert.Equal(t, "2", result.WithoutID[0]["sku"])
	assert.Equal(t, "4", result.WithoutID[1]["sku"])
}

func TestMatch_EmptyReferencePassesEverythingThrough(t *testing.T) {
	// Arrange
	m := New(DefaultConfig())
	inventory := record.Collection{
		invRecord("1", "NES", "Super Mario Bros. NES Cart"),
		invRecord("2", "NES", "Duck Hunt"),
	}

	// Act
	result, err := m.Match(inventory, nil)

	// Assert - nothing to match against, original order intact
	require.NoError(t, err)
	assert.Empty(t, result.WithID)
	require.Len(t, result.WithoutID, 2)
	assert.Equal(t, "1", result.WithoutID[0]["sku"])
	assert.Equal(t, "2", result.WithoutID[1]["sku"])
}

func TestMatch_EmptyNamesNeverMatch(t *testing.T) {
	// Arrange - one blank description, one reference whose name
	// normalizes away entirely. Naive substring logic would pair them.
	m := New(DefaultConfig())
	inventory := record.Collection{
		invRecord("1", "NES", ""),
		invRecord("2", "NES", "Duck Hunt"),
	}
	reference := record.Collection{
		guideRecord("10", "NES", "$ !."),
		guideRecord("12", "NES", "Duck Hunt"),
	}

	// Act
	result, err := m.Match(inventory, reference)

	// Assert
	require.NoError(t, err)
	require.Len(t, result.WithID, 1)
	assert.Equal(t, "2", result.WithID[0]["sku"])
	assert.Equal(t, "12", result.WithID[0]["id"])
	require.Len(t, result.WithoutID, 1)
	assert.Equal(t, "1", result.WithoutID[0]["sku"])
}

func TestMatch_NormalizationBridgesPunctuation(t *testing.T) {
	// Arrange
	m := New(DefaultConfig())
	inventory := record.Collection{
		invRecord("1", "NES", "SUPER MARIO BROS. (NES cart only)"),
	}
	reference := record.Collection{
		guideRecord("10", "NES", "super mario bros"),
	}

	// Act
	result, err := m.Match(inventory, reference)

	// Assert
	require.NoError(t, err)
	require.Len(t, result.WithID, 1)
	assert.Equal(t, "10", result.WithID[0]["id"])
}

func TestMatch_DialectChangesOutcome(t *testing.T) {
	// Arrange - the guide writes "spiderman", the shelf tag hyphenates
	inventory := record.Collection{
		invRecord("1", "PS1", "Spider-Man 2 disc only"),
	}
	reference := record.Collection{
		guideRecord("30", "PS1", "spiderman"),
	}

	folding := DefaultConfig()

	keeping := DefaultConfig()
	keepSet, err := normalizer.ForDialect(normalizer.DialectKeepHyphens)
	require.NoError(t, err)
	keeping.Strip = keepSet

	// Act
	foldResult, err := New(folding).Match(inventory, reference)
	require.NoError(t, err)

	// Reset the mutation before the second pass
	delete(inventory[0], "id")
	keepResult, err := New(keeping).Match(inventory, reference)
	require.NoError(t, err)

	// Assert - folding the hyphen finds the match, keeping it does not
	assert.Len(t, foldResult.WithID, 1)
	assert.Empty(t, keepResult.WithID)
}

func TestMatch_MutatesRecordsInPlace(t *testing.T) {
	// Arrange
	m := New(DefaultConfig())
	inv := invRecord("1", "NES", "Duck Hunt")
	inventory := record.Collection{inv}
	reference := record.Collection{guideRecord("12", "NES", "Duck Hunt")}

	// Act
	_, err := m.Match(inventory, reference)

	// Assert - the caller's record carries the id now
	require.NoError(t, err)
	assert.Equal(t, "12", inv["id"])
}

func TestMatch_RecordsAuditPairs(t *testing.T) {
	// Arrange
	m := New(DefaultConfig())
	inventory := record.Collection{invRecord("1", "NES", "Duck Hunt")}
	reference := record.Collection{guideRecord("12", "NES", "Duck Hunt")}

	// Act
	result, err := m.Match(inventory, reference)

	// Assert
	require.NoError(t, err)
	require.Len(t, result.Pairs, 1)
	assert.Equal(t, "1", result.Pairs[0].Inventory["sku"])
	assert.Equal(t, "12", result.Pairs[0].Reference["id"])
}

func TestMatch_MissingDescriptionColumn(t *testing.T) {
	// Arrange
	m := New(DefaultConfig())
	inventory := record.Collection{record.Record{"sku": "1", "dept": "NES"}}

	// Act
	_, err := m.Match(inventory, nil)

	// Assert
	var fieldErr *record.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "desc", fieldErr.Column)
}

func TestMatch_MissingReferenceID(t *testing.T) {
	// Arrange
	m := New(DefaultConfig())
	inventory := record.Collection{invRecord("1", "NES", "Duck Hunt")}
	reference := record.Collection{
		record.Record{"console-name": "NES", "product-name": "Duck Hunt"},
	}

	// Act
	_, err := m.Match(inventory, reference)

	// Assert
	var fieldErr *record.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "id", fieldErr.Column)
}

func TestPartition_CaseInsensitiveOnBothSides(t *testing.T) {
	// Arrange
	m := New(DefaultConfig())
	inventory := record.Collection{
		invRecord("1", "NES", "Super Mario Bros."),
		invRecord("2", "genesis", "Sonic 2"),
		invRecord("3", "nes", "Duck Hunt"),
	}
	reference := record.Collection{
		guideRecord("10", "Nes", "Super Mario Bros"),
		guideRecord("20", "Genesis", "Sonic The Hedgehog 2"),
	}

	// Act
	invPart, refPart := m.Partition(inventory, reference, "NES")

	// Assert
	require.Len(t, invPart, 2)
	assert.Equal(t, "1", invPart[0]["sku"])
	assert.Equal(t, "3", invPart[1]["sku"])
	require.Len(t, refPart, 1)
	assert.Equal(t, "10", refPart[0]["id"])

	// The target's case is irrelevant
	invLower, refLower := m.Partition(inventory, reference, "nes")
	assert.Equal(t, invPart, invLower)
	assert.Equal(t, refPart, refLower)
}
