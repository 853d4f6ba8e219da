// Package merge reconciles extracted document fields with transaction
// records and with listing data fetched from the MLS API.
package merge

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dealdesk/dealdesk/internal/entity"
	"github.com/dealdesk/dealdesk/internal/extract"
)

// Conflict is one field where the document and the MLS listing disagree.
type Conflict struct {
	Field         string `json:"field"`
	Label         string `json:"label"`
	MLSValue      any    `json:"mlsValue"`
	DocumentValue any    `json:"documentValue"`
}

// fieldLabels maps field names to the labels shown to agents during
// conflict review.
var fieldLabels = map[string]string{
	extract.FieldPropertyAddress:   "Property Address",
	extract.FieldAddress:           "Street Address",
	extract.FieldCity:              "City",
	extract.FieldState:             "State",
	extract.FieldZipCode:           "Zip Code",
	extract.FieldPrice:             "Price",
	extract.FieldClientName:        "Buyer Name",
	extract.FieldSellerName:        "Seller Name",
	extract.FieldClosingDate:       "Closing Date",
	extract.FieldContractDate:      "Contract Date",
	extract.FieldListingDate:       "Listing Date",
	extract.FieldPropertyType:      "Property Type",
	extract.FieldMLSNumber:         "MLS Number",
	extract.FieldCommissionPercent: "Commission",
	extract.FieldBedrooms:          "Bedrooms",
	extract.FieldBathrooms:         "Bathrooms",
	extract.FieldSquareFootage:     "Square Footage",
	extract.FieldLotSize:           "Lot Size",
	extract.FieldYearBuilt:         "Year Built",
}

// DetectConflicts flags fields present in both sources with different
// values. Comparison is case-insensitive on the string forms, and a field
// missing or empty on either side is never a conflict. Results are in
// field-name order so responses are stable.
func DetectConflicts(mlsData, documentData extract.Fields) []Conflict {
	fields := make([]string, 0, len(documentData))
	for f := range documentData {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var conflicts []Conflict
	for _, field := range fields {
		docValue := documentData[field]
		mlsValue, ok := mlsData[field]
		if !ok || mlsValue == nil || docValue == nil {
			continue
		}
		ds, ms := fmt.Sprint(docValue), fmt.Sprint(mlsValue)
		if ds == "" || ms == "" || strings.EqualFold(ds, ms) {
			continue
		}
		label := fieldLabels[field]
		if label == "" {
			label = field
		}
		conflicts = append(conflicts, Conflict{
			Field:         field,
			Label:         label,
			MLSValue:      mlsValue,
			DocumentValue: docValue,
		})
	}
	return conflicts
}

// dateLayouts covers the date shapes the extraction patterns emit.
var dateLayouts = []string{
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"1-2-2006",
	"2006-01-02",
	"2006/01/02",
	"January 2, 2006",
	"January 2 2006",
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FillEmpty copies extracted fields onto a transaction, touching only
// fields the transaction does not already have a value for. Existing data
// always wins; the return lists the field names that were applied.
func FillEmpty(tx *entity.Transaction, data extract.Fields) []string {
	var applied []string
	apply := func(field string, ok bool) {
		if ok {
			applied = append(applied, field)
		}
	}

	apply(extract.FieldPropertyAddress, fillString(&tx.PropertyAddress, data.GetString(extract.FieldPropertyAddress)))
	apply(extract.FieldAddress, fillString(&tx.Address, data.GetString(extract.FieldAddress)))
	apply(extract.FieldCity, fillString(&tx.City, data.GetString(extract.FieldCity)))
	apply(extract.FieldState, fillString(&tx.State, data.GetString(extract.FieldState)))
	apply(extract.FieldZipCode, fillString(&tx.ZipCode, data.GetString(extract.FieldZipCode)))
	apply(extract.FieldClientName, fillString(&tx.ClientName, data.GetString(extract.FieldClientName)))
	apply(extract.FieldSellerName, fillString(&tx.SellerName, data.GetString(extract.FieldSellerName)))
	apply(extract.FieldPropertyType, fillString(&tx.PropertyType, data.GetString(extract.FieldPropertyType)))
	apply(extract.FieldMLSNumber, fillString(&tx.MLSNumber, data.GetString(extract.FieldMLSNumber)))
	apply(extract.FieldLotSize, fillString(&tx.LotSize, data.GetString(extract.FieldLotSize)))

	apply(extract.FieldPrice, fillFloat(&tx.Price, data, extract.FieldPrice))
	apply(extract.FieldCommissionPercent, fillFloat(&tx.CommissionPercent, data, extract.FieldCommissionPercent))
	apply(extract.FieldBathrooms, fillFloat(&tx.Bathrooms, data, extract.FieldBathrooms))
	apply(extract.FieldBedrooms, fillInt(&tx.Bedrooms, data, extract.FieldBedrooms))
	apply(extract.FieldSquareFootage, fillInt(&tx.SquareFootage, data, extract.FieldSquareFootage))
	apply(extract.FieldYearBuilt, fillInt(&tx.YearBuilt, data, extract.FieldYearBuilt))

	apply(extract.FieldClosingDate, fillDate(&tx.ClosingDate, data.GetString(extract.FieldClosingDate)))
	apply(extract.FieldContractDate, fillDate(&tx.ContractDate, data.GetString(extract.FieldContractDate)))
	apply(extract.FieldListingDate, fillDate(&tx.ListingDate, data.GetString(extract.FieldListingDate)))

	sort.Strings(applied)
	return applied
}

func fillString(dst *string, v string) bool {
	if v == "" || *dst != "" {
		return false
	}
	*dst = v
	return true
}

func fillFloat(dst **float64, data extract.Fields, field string) bool {
	v, ok := data[field].(float64)
	if !ok || *dst != nil {
		return false
	}
	*dst = &v
	return true
}

func fillInt(dst **int, data extract.Fields, field string) bool {
	v, ok := data[field].(int)
	if !ok || *dst != nil {
		return false
	}
	*dst = &v
	return true
}

func fillDate(dst **time.Time, v string) bool {
	if v == "" || *dst != nil {
		return false
	}
	t, ok := parseDate(v)
	if !ok {
		return false
	}
	*dst = &t
	return true
}
