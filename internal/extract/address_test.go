package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitAddress(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want AddressComponents
	}{
		{
			name: "comma separated",
			in:   "123 Main St, Anytown, CA 90210",
			want: AddressComponents{Street: "123 Main St", City: "Anytown", State: "CA", ZipCode: "90210"},
		},
		{
			name: "zip plus four",
			in:   "55 Pine Rd, Lakeside, MN 55014-2201",
			want: AddressComponents{Street: "55 Pine Rd", City: "Lakeside", State: "MN", ZipCode: "55014-2201"},
		},
		{
			name: "ragged whitespace",
			in:   "  123   Main St,  Anytown,  CA 90210 ",
			want: AddressComponents{Street: "123 Main St", City: "Anytown", State: "CA", ZipCode: "90210"},
		},
		{
			name: "no commas with street suffix",
			in:   "456 Oak Avenue Springfield IL 62704",
			want: AddressComponents{Street: "456 Oak Avenue", City: "Springfield", State: "IL", ZipCode: "62704"},
		},
		{
			name: "no commas with multiword city",
			in:   "9 Meadow Ln Elk Grove CA 95624",
			want: AddressComponents{Street: "9 Meadow Ln", City: "Elk Grove", State: "CA", ZipCode: "95624"},
		},
		{
			name: "state zip tail after unspaced comma",
			in:   "12 Oak Ln,Fairview TX 75069",
			want: AddressComponents{Street: "12 Oak Ln", City: "Fairview", State: "TX", ZipCode: "75069"},
		},
		{
			name: "comma address without zip",
			in:   "123 Main St, Anytown, CA",
			want: AddressComponents{Street: "123 Main St", City: "Anytown", State: "CA"},
		},
		{
			name: "comma split without state",
			in:   "Unit B, Watertown",
			want: AddressComponents{Street: "Unit B", City: "Watertown"},
		},
		{
			name: "no structure at all",
			in:   "Rural Route Seven",
			want: AddressComponents{Street: "Rural Route Seven"},
		},
		{
			name: "empty",
			in:   "   ",
			want: AddressComponents{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitAddress(tt.in))
		})
	}
}

// Splitting a rejoined result must reproduce the same components; the
// canonical "street, city, ST zip" form is a fixed point of the splitter.
func TestSplitAddressRejoinStable(t *testing.T) {
	inputs := []string{
		"123 Main St, Anytown, CA 90210",
		"456 Oak Avenue Springfield IL 62704",
		"12 Oak Ln,Fairview TX 75069",
	}
	for _, in := range inputs {
		first := SplitAddress(in)
		rejoined := first.Street + ", " + first.City + ", " + first.State + " " + first.ZipCode
		assert.Equal(t, first, SplitAddress(rejoined), "input %q", in)
	}
}
