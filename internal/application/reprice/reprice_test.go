package reprice

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scj643/pricing-csv/internal/adapters/feeds"
	"github.com/scj643/pricing-csv/internal/domain/record"
)

// recorderWriter captures writes instead of touching the filesystem
type recorderWriter struct {
	path    string
	columns []string
	records record.Collection
}

func (w *recorderWriter) Write(path string, columns []string, records record.Collection) error {
	w.path = path
	w.columns = columns
	w.records = records
	return nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func sheetRow(name, price string) map[string]string {
	return map[string]string{
		"product-name":         name,
		"gamestop-price":       price,
		"gamestop-trade-price": "2.00",
	}
}

func TestRun_AttachesAdjustedPrices(t *testing.T) {
	writer := &recorderWriter{}
	repricer := NewRepricer(nil, writer, quietLogger())

	result, err := repricer.Run(context.Background(), Options{
		Source: feeds.FromRows([]map[string]string{
			sheetRow("Super Mario 64", "$14.99"),
			sheetRow("Duck Hunt", "$5.49"),
			sheetRow("EarthBound", "$60.00"),
		}),
		OutputPath: "repriced.csv",
	})

	require.NoError(t, err)
	assert.Equal(t, 3, result.Rows)
	assert.Equal(t, 3, result.Adjusted)
	assert.Equal(t, 0, result.Skipped)

	require.Len(t, writer.records, 3)
	assert.Equal(t, "11.99", writer.records[0]["new-price"])
	assert.Equal(t, "5.49", writer.records[1]["new-price"], "prices under the ladder pass through")
	assert.Equal(t, "53.99", writer.records[2]["new-price"], "prices over the ladder take the 10% formula")
	assert.Equal(t, "repriced.csv", writer.path)
	assert.Equal(t, Columns(), writer.columns)
}

func TestRun_SkipsGapsAndUnreadablePrices(t *testing.T) {
	writer := &recorderWriter{}
	repricer := NewRepricer(nil, writer, quietLogger())

	result, err := repricer.Run(context.Background(), Options{
		Source: feeds.FromRows([]map[string]string{
			sheetRow("Boundary Cart", "$10.00"),
			sheetRow("Sticker Gone", "N/A"),
			sheetRow("Kirby's Adventure", "$22.00"),
		}),
		OutputPath: "repriced.csv",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Skipped)
	assert.Equal(t, 1, result.Adjusted)

	require.Len(t, writer.records, 3)
	assert.Empty(t, writer.records[0]["new-price"])
	assert.Empty(t, writer.records[1]["new-price"])
	assert.Equal(t, "21.99", writer.records[2]["new-price"])
}

func TestRun_DryRunSkipsWrite(t *testing.T) {
	writer := &recorderWriter{}
	repricer := NewRepricer(nil, writer, quietLogger())

	result, err := repricer.Run(context.Background(), Options{
		Source:     feeds.FromRows([]map[string]string{sheetRow("Pikmin", "$22.00")}),
		OutputPath: "repriced.csv",
		DryRun:     true,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Adjusted)
	assert.Empty(t, writer.path)
	assert.Nil(t, writer.records)
}

func TestRun_RejectsSheetsMissingColumns(t *testing.T) {
	repricer := NewRepricer(nil, &recorderWriter{}, quietLogger())

	_, err := repricer.Run(context.Background(), Options{
		Source: feeds.FromRows([]map[string]string{
			{"product-name": "Torn Sheet", "gamestop-price": "$4.00"},
		}),
		OutputPath: "repriced.csv",
	})

	require.Error(t, err)
	var fieldErr *record.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "gamestop-trade-price", fieldErr.Column)
}
