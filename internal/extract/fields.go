package extract

// Field names used in extraction results. These are the wire names the
// CRM's clients consume, so they stay camelCase.
const (
	FieldPropertyAddress   = "propertyAddress"
	FieldAddress           = "address"
	FieldCity              = "city"
	FieldState             = "state"
	FieldZipCode           = "zipCode"
	FieldPrice             = "price"
	FieldClientName        = "clientName"
	FieldSellerName        = "sellerName"
	FieldClosingDate       = "closingDate"
	FieldContractDate      = "contractDate"
	FieldListingDate       = "listingDate"
	FieldPropertyType      = "propertyType"
	FieldMLSNumber         = "mlsNumber"
	FieldCommissionPercent = "commissionPercent"
	FieldBedrooms          = "bedrooms"
	FieldBathrooms         = "bathrooms"
	FieldSquareFootage     = "squareFootage"
	FieldLotSize           = "lotSize"
	FieldYearBuilt         = "yearBuilt"
)

// Fields is the engine's output: a sparse mapping from field name to
// value. Only fields that matched and passed their plausibility filter are
// present; absent fields are omitted, never null-filled.
//
// Value types: string for text and date fields, float64 for price,
// commissionPercent and bathrooms, int for bedrooms, squareFootage and
// yearBuilt.
type Fields map[string]any

// Count returns the number of populated fields. Zero is the engine's only
// externally observable failure mode; callers treat it as "nothing
// actionable", not as an error.
func (f Fields) Count() int {
	return len(f)
}

// GetString returns the named field as a string, or "" when absent or not
// a string.
func (f Fields) GetString(name string) string {
	if v, ok := f[name].(string); ok {
		return v
	}
	return ""
}
