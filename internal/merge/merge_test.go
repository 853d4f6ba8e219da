package merge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealdesk/dealdesk/internal/entity"
	"github.com/dealdesk/dealdesk/internal/extract"
)

func TestDetectConflicts(t *testing.T) {
	mls := extract.Fields{
		extract.FieldPrice:        765000.0,
		extract.FieldBedrooms:     4,
		extract.FieldCity:         "anytown",
		extract.FieldPropertyType: "Condo",
	}
	doc := extract.Fields{
		extract.FieldPrice:       750000.0,
		extract.FieldBedrooms:    4,
		extract.FieldCity:        "Anytown",
		extract.FieldClosingDate: "01/15/2025",
	}

	got := DetectConflicts(mls, doc)
	require.Len(t, got, 1)
	assert.Equal(t, extract.FieldPrice, got[0].Field)
	assert.Equal(t, "Price", got[0].Label)
	assert.Equal(t, 765000.0, got[0].MLSValue)
	assert.Equal(t, 750000.0, got[0].DocumentValue)
}

func TestDetectConflictsOrdering(t *testing.T) {
	mls := extract.Fields{
		extract.FieldPrice:    1.0,
		extract.FieldCity:     "A",
		extract.FieldBedrooms: 2,
	}
	doc := extract.Fields{
		extract.FieldPrice:    2.0,
		extract.FieldCity:     "B",
		extract.FieldBedrooms: 3,
	}

	got := DetectConflicts(mls, doc)
	require.Len(t, got, 3)
	assert.Equal(t, extract.FieldBedrooms, got[0].Field)
	assert.Equal(t, extract.FieldCity, got[1].Field)
	assert.Equal(t, extract.FieldPrice, got[2].Field)
}

func TestDetectConflictsEmptySides(t *testing.T) {
	t.Run("missing on one side", func(t *testing.T) {
		got := DetectConflicts(extract.Fields{}, extract.Fields{extract.FieldCity: "Anytown"})
		assert.Empty(t, got)
	})

	t.Run("empty string on one side", func(t *testing.T) {
		got := DetectConflicts(
			extract.Fields{extract.FieldCity: ""},
			extract.Fields{extract.FieldCity: "Anytown"},
		)
		assert.Empty(t, got)
	})

	t.Run("unlabeled field falls back to its name", func(t *testing.T) {
		got := DetectConflicts(
			extract.Fields{"county": "Cook"},
			extract.Fields{"county": "Lake"},
		)
		require.Len(t, got, 1)
		assert.Equal(t, "county", got[0].Label)
	})
}

func TestFillEmpty(t *testing.T) {
	existing := 800000.0
	tx := &entity.Transaction{
		PropertyAddress: "123 Main St, Anytown, CA 90210",
		Price:           &existing,
	}
	data := extract.Fields{
		extract.FieldPropertyAddress: "999 Other Rd, Elsewhere, TX 75001",
		extract.FieldPrice:           750000.0,
		extract.FieldCity:            "Anytown",
		extract.FieldBedrooms:        4,
		extract.FieldBathrooms:       2.5,
		extract.FieldClosingDate:     "01/15/2025",
	}

	applied := FillEmpty(tx, data)

	// Existing values always win.
	assert.Equal(t, "123 Main St, Anytown, CA 90210", tx.PropertyAddress)
	assert.Equal(t, 800000.0, *tx.Price)

	assert.Equal(t, "Anytown", tx.City)
	require.NotNil(t, tx.Bedrooms)
	assert.Equal(t, 4, *tx.Bedrooms)
	require.NotNil(t, tx.Bathrooms)
	assert.Equal(t, 2.5, *tx.Bathrooms)
	require.NotNil(t, tx.ClosingDate)
	assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), *tx.ClosingDate)

	assert.Equal(t, []string{
		extract.FieldBathrooms,
		extract.FieldBedrooms,
		extract.FieldCity,
		extract.FieldClosingDate,
	}, applied)
}

func TestFillEmptyUnparseableDateSkipped(t *testing.T) {
	tx := &entity.Transaction{}
	applied := FillEmpty(tx, extract.Fields{extract.FieldContractDate: "the Ides of March"})
	assert.Empty(t, applied)
	assert.Nil(t, tx.ContractDate)
}

func TestFillEmptyNoData(t *testing.T) {
	tx := &entity.Transaction{}
	assert.Empty(t, FillEmpty(tx, extract.Fields{}))
}
