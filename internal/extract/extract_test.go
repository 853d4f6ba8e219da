package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPurchaseContract(t *testing.T) {
	text := "Property Address: 123 Main St, Anytown, CA 90210. " +
		"Purchase price: $750,000. Closing date: 01/15/2025. " +
		"MLS# A1234567. Commission: 3%."

	got := Extract(text)

	assert.Equal(t, "123 Main St, Anytown, CA 90210", got[FieldPropertyAddress])
	assert.Equal(t, "123 Main St", got[FieldAddress])
	assert.Equal(t, "Anytown", got[FieldCity])
	assert.Equal(t, "CA", got[FieldState])
	assert.Equal(t, "90210", got[FieldZipCode])
	assert.Equal(t, 750000.0, got[FieldPrice])
	assert.Equal(t, "01/15/2025", got[FieldClosingDate])
	assert.Equal(t, "A1234567", got[FieldMLSNumber])
	assert.Equal(t, 3.0, got[FieldCommissionPercent])
	assert.Equal(t, 9, got.Count())
}

func TestExtractNoMatches(t *testing.T) {
	text := "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do " +
		"eiusmod tempor incididunt ut labore et dolore magna aliqua. Ut enim " +
		"ad minim veniam, quis nostrud exercitation ullamco laboris."

	got := Extract(text)
	assert.Equal(t, 0, got.Count())
}

func TestExtractEmptyInput(t *testing.T) {
	assert.Equal(t, 0, Extract("").Count())
	assert.Equal(t, 0, Extract("   \n\t  ").Count())
}

func TestExtractPrice(t *testing.T) {
	tests := []struct {
		name string
		text string
		want any
	}{
		{
			name: "labeled price",
			text: "The agreed price: $1,250,000 shall be paid at closing.",
			want: 1250000.0,
		},
		{
			name: "consideration",
			text: "Total consideration: $425,000 paid in full.",
			want: 425000.0,
		},
		{
			name: "bare dollar amount skips implausible earlier match",
			text: "Earnest deposit of $12,500 received toward $725,000 due at settlement.",
			want: 725000.0,
		},
		{
			name: "labeled price wins over zip-looking amount",
			text: "Wire ref $90210 noted. Sale Price $725,000 as agreed.",
			want: 725000.0,
		},
		{
			name: "below lower bound rejected",
			text: "Filing fee of $350 applies.",
			want: nil,
		},
		{
			name: "above upper bound rejected",
			text: "Total price: $75,000,000 for the portfolio.",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text)
			if tt.want == nil {
				_, ok := got[FieldPrice]
				assert.False(t, ok)
				return
			}
			assert.Equal(t, tt.want, got[FieldPrice])
		})
	}
}

func TestExtractNames(t *testing.T) {
	text := "Buyer: John Smith, residing at 4 Elm St. " +
		"Seller: Jane Doe and Robert Doe, residing at 9 Oak Ave."

	got := Extract(text)
	assert.Equal(t, "John Smith", got[FieldClientName])
	assert.Equal(t, "Jane Doe", got[FieldSellerName])
}

func TestExtractNameFilters(t *testing.T) {
	t.Run("too short", func(t *testing.T) {
		got := Extract("Buyer: Al, residing at 4 Elm St.")
		_, ok := got[FieldClientName]
		assert.False(t, ok)
	})

	t.Run("secondary pattern", func(t *testing.T) {
		got := Extract("The premises were purchased by Mary Johnson, free of liens.")
		assert.Equal(t, "Mary Johnson", got[FieldClientName])
	})
}

func TestExtractNumericBounds(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		field string
		want  any
	}{
		{"bedrooms in range", "Charming home, 4 bed 3 bath.", FieldBedrooms, 4},
		{"bedrooms over bound dropped", "Hotel listing with 25 bedrooms.", FieldBedrooms, nil},
		{"bathrooms fractional", "2 bed 3.5 bath ranch.", FieldBathrooms, 3.5},
		{"square footage in range", "Approx. 1450 sq ft living area.", FieldSquareFootage, 1450},
		{"square footage over bound dropped", "60000 sq ft warehouse space.", FieldSquareFootage, nil},
		{"year built in range", "Year built: 1987.", FieldYearBuilt, 1987},
		{"year built before 1800 dropped", "Year built: 1750.", FieldYearBuilt, nil},
		{"commission percent", "Broker fee: 2.5% of the sale.", FieldCommissionPercent, 2.5},
		{"commission over bound dropped", "Commission: 95% payable.", FieldCommissionPercent, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text)
			if tt.want == nil {
				_, ok := got[tt.field]
				assert.False(t, ok, "field %q should be absent", tt.field)
				return
			}
			assert.Equal(t, tt.want, got[tt.field])
		})
	}
}

func TestExtractDatesVerbatim(t *testing.T) {
	text := "Agreement dated March 3, 2024. Closing date: 2025-01-15. Listed: 12/01/2024."

	got := Extract(text)
	assert.Equal(t, "March 3, 2024", got[FieldContractDate])
	assert.Equal(t, "2025-01-15", got[FieldClosingDate])
	assert.Equal(t, "12/01/2024", got[FieldListingDate])
}

func TestExtractPropertyType(t *testing.T) {
	t.Run("labeled", func(t *testing.T) {
		got := Extract("Property type: single family residence, two stories.")
		assert.Equal(t, "single family residence", got[FieldPropertyType])
	})

	t.Run("enumerated keyword", func(t *testing.T) {
		got := Extract("A well-maintained duplex close to downtown.")
		assert.Equal(t, "duplex", got[FieldPropertyType])
	})
}

func TestExtractLotSize(t *testing.T) {
	got := Extract("Lot size: 0.25 acres per county records.")
	assert.Equal(t, "0.25 acres", got[FieldLotSize])
}

func TestExtractAddressFallback(t *testing.T) {
	// No single pattern covers street through zip here; the street match
	// anchors a scan of the trailing text for the city fragment.
	text := "Subject parcel 742 Evergreen Way Unit #4 Springfield, MA 01103 per survey."

	got := Extract(text)
	require.Equal(t, "742 Evergreen Way", got[FieldAddress])
	assert.Equal(t, "Springfield", got[FieldCity])
	assert.Equal(t, "MA", got[FieldState])
	assert.Equal(t, "01103", got[FieldZipCode])
	assert.Equal(t, "742 Evergreen Way, Springfield, MA 01103", got[FieldPropertyAddress])
}

func TestExtractStreetOnly(t *testing.T) {
	got := Extract("Garage located behind 1500 Harbor Blvd as described.")
	assert.Equal(t, "1500 Harbor Blvd", got[FieldAddress])
	_, ok := got[FieldPropertyAddress]
	assert.False(t, ok)
	_, ok = got[FieldCity]
	assert.False(t, ok)
}

func TestValidateFields(t *testing.T) {
	got := Extract("Property Address: 123 Main St, Anytown, CA 90210. Purchase price: $750,000.")
	require.NotZero(t, got.Count())
	assert.NoError(t, ValidateFields(got))
}
