package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Plausibility bounds. A match outside its bound is discarded and the scan
// continues with the next candidate; values are never clamped.
const (
	minPrice      = 50_000
	maxPrice      = 50_000_000
	maxCommission = 50
	maxBedrooms   = 20
	maxBathrooms  = 20
	minSquareFeet = 100
	maxSquareFeet = 50_000
	minYearBuilt  = 1800

	minNameLen = 3
	maxNameLen = 100
)

// reName is the character-class filter for buyer/seller names: letters,
// spaces, commas, periods and hyphens only. It rejects matches that
// accidentally captured a clause with digits or stray punctuation.
var reName = regexp.MustCompile(`^[a-zA-Z\s,.-]+$`)

// rule is one candidate pattern for a field plus its plausibility filter.
// When scanAll is set, later matches of the same pattern are tried after a
// rejected one (a document may contain many dollar amounts, only one of
// which is the actual price).
type rule struct {
	re      *regexp.Regexp
	scanAll bool
	accept  func(groups []string) (any, bool)
}

// fieldSpec is the ordered candidate list for one field, most specific
// pattern first.
type fieldSpec struct {
	name  string
	rules []rule
}

// trimArtifacts strips leading/trailing separator debris (commas,
// semicolons, surrounding space) left behind by label captures.
func trimArtifacts(s string) string {
	return strings.Trim(strings.TrimSpace(s), ",; \t")
}

func acceptPrice(groups []string) (any, bool) {
	raw := strings.ReplaceAll(groups[1], ",", "")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < minPrice || v > maxPrice {
		return nil, false
	}
	return v, true
}

func acceptName(groups []string) (any, bool) {
	name := trimArtifacts(groups[1])
	if len(name) < minNameLen || len(name) > maxNameLen || !reName.MatchString(name) {
		return nil, false
	}
	return name, true
}

func acceptString(groups []string) (any, bool) {
	s := trimArtifacts(groups[1])
	if s == "" {
		return nil, false
	}
	return s, true
}

func acceptCommission(groups []string) (any, bool) {
	raw := strings.ReplaceAll(groups[1], ",", "")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 || v > maxCommission {
		return nil, false
	}
	return v, true
}

func acceptMLS(groups []string) (any, bool) {
	id := groups[1]
	if len(id) < 4 {
		return nil, false
	}
	return id, true
}

func acceptBedrooms(groups []string) (any, bool) {
	v, err := strconv.Atoi(groups[1])
	if err != nil || v < 0 || v > maxBedrooms {
		return nil, false
	}
	return v, true
}

func acceptBathrooms(groups []string) (any, bool) {
	v, err := strconv.ParseFloat(groups[1], 64)
	if err != nil || v < 0 || v > maxBathrooms {
		return nil, false
	}
	return v, true
}

func acceptSquareFeet(groups []string) (any, bool) {
	v, err := strconv.Atoi(groups[1])
	if err != nil || v < minSquareFeet || v > maxSquareFeet {
		return nil, false
	}
	return v, true
}

func acceptLotSize(groups []string) (any, bool) {
	return groups[1] + " " + groups[2], true
}

func acceptYearBuilt(groups []string) (any, bool) {
	v, err := strconv.Atoi(groups[1])
	if err != nil || v < minYearBuilt || v > time.Now().Year() {
		return nil, false
	}
	return v, true
}

const (
	datePat     = `(\d{1,2}[/\-]\d{1,2}[/\-]\d{4}|\d{4}[/\-]\d{1,2}[/\-]\d{1,2}|(?:january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,2},?\s+\d{4})`
	numDatePat  = `(\d{1,2}[/\-]\d{1,2}[/\-]\d{4}|\d{4}[/\-]\d{1,2}[/\-]\d{1,2})`
	moneyAmount = `([\d,]+\.?\d*)`
)

// fieldSpecs is the full extraction table, evaluated per field in order.
// Address extraction is two-tiered and lives in extract.go; everything
// else is declarative.
var fieldSpecs = []fieldSpec{
	{
		name: FieldPrice,
		rules: []rule{
			{re: regexp.MustCompile(`(?i)(?:purchase\s+price|sale\s+price|selling\s+price|agreed\s+price|contract\s+price|price)[\s:]*\$?\s*` + moneyAmount), scanAll: true, accept: acceptPrice},
			{re: regexp.MustCompile(`(?i)(?:total\s+consideration|consideration)[\s:]*\$?\s*` + moneyAmount), scanAll: true, accept: acceptPrice},
			{re: regexp.MustCompile(`(?i)\$\s*` + moneyAmount + `(?:\s*(?:dollars?|usd))?`), scanAll: true, accept: acceptPrice},
		},
	},
	{
		name: FieldClientName,
		rules: []rule{
			{re: regexp.MustCompile(`(?i)(?:buyer|purchaser|grantee)[\s:,]*([a-zA-Z\s,]+?)(?:\s*(?:and|&)\s*[a-zA-Z\s,]+?)?(?:\n|$|,\s*(?:address|residing))`), accept: acceptName},
			{re: regexp.MustCompile(`(?i)(?:sold\s+to|purchased\s+by)[\s:]*([a-zA-Z\s,]+?)(?:\n|$|,)`), accept: acceptName},
		},
	},
	{
		name: FieldSellerName,
		rules: []rule{
			{re: regexp.MustCompile(`(?i)(?:seller|vendor|grantor)[\s:,]*([a-zA-Z\s,]+?)(?:\s*(?:and|&)\s*[a-zA-Z\s,]+?)?(?:\n|$|,\s*(?:address|residing))`), accept: acceptName},
			{re: regexp.MustCompile(`(?i)(?:sold\s+by|owned\s+by)[\s:]*([a-zA-Z\s,]+?)(?:\n|$|,)`), accept: acceptName},
		},
	},
	{
		name: FieldClosingDate,
		rules: []rule{
			{re: regexp.MustCompile(`(?i)(?:closing\s+date|settlement\s+date|completion\s+date|close\s+date)[\s:]*` + datePat), accept: acceptString},
			{re: regexp.MustCompile(`(?i)(?:to\s+close\s+on|shall\s+close\s+on)[\s:]*` + numDatePat), accept: acceptString},
		},
	},
	{
		name: FieldContractDate,
		rules: []rule{
			{re: regexp.MustCompile(`(?i)(?:contract\s+date|agreement\s+date|executed\s+on|signed\s+on|dated)[\s:]*` + datePat), accept: acceptString},
		},
	},
	{
		name: FieldPropertyType,
		rules: []rule{
			{re: regexp.MustCompile(`(?i)(?:property\s+type|dwelling\s+type|type\s+of\s+property)[\s:]*([a-zA-Z\s]+?)(?:\n|$|,)`), accept: acceptString},
			{re: regexp.MustCompile(`(?i)(single[- ]family|condominium|condo|townhome|townhouse|multi[- ]family|duplex|triplex|commercial|retail|office|industrial)`), accept: acceptString},
		},
	},
	{
		name: FieldMLSNumber,
		rules: []rule{
			{re: regexp.MustCompile(`(?i)(?:mls|listing)[\s#:]*([a-zA-Z0-9]+)`), accept: acceptMLS},
			{re: regexp.MustCompile(`(?i)mls[\s#]*(\d+)`), accept: acceptMLS},
		},
	},
	{
		name: FieldCommissionPercent,
		rules: []rule{
			{re: regexp.MustCompile(`(?i)(?:commission|broker\s+fee|agent\s+commission)[\s:]*(\d+\.?\d*)%`), scanAll: true, accept: acceptCommission},
			// Also matches flat-fee commissions; the field holds whichever
			// numeric form matched first.
			{re: regexp.MustCompile(`(?i)(?:commission|fee)[\s:]*\$?\s*` + moneyAmount), scanAll: true, accept: acceptCommission},
		},
	},
	{
		name: FieldBedrooms,
		rules: []rule{
			{re: regexp.MustCompile(`(?i)(\d+)\s*(?:bed|bedroom)`), accept: acceptBedrooms},
		},
	},
	{
		name: FieldBathrooms,
		rules: []rule{
			{re: regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:bath|bathroom)`), accept: acceptBathrooms},
		},
	},
	{
		name: FieldSquareFootage,
		rules: []rule{
			{re: regexp.MustCompile(`(?i)(\d{3,})\s*(?:sq\.?\s*ft\.?|square\s+feet)`), accept: acceptSquareFeet},
		},
	},
	{
		name: FieldLotSize,
		rules: []rule{
			{re: regexp.MustCompile(`(?i)lot\s+size[:\s]*(\d+(?:\.\d+)?)\s*(acres?|sq\.?\s*ft\.?|square\s+feet)`), accept: acceptLotSize},
		},
	},
	{
		name: FieldYearBuilt,
		rules: []rule{
			{re: regexp.MustCompile(`(?i)(?:year\s+built|built\s+in|construction\s+year)[:\s]*(\d{4})`), accept: acceptYearBuilt},
		},
	},
	{
		name: FieldListingDate,
		rules: []rule{
			{re: regexp.MustCompile(`(?i)(?:listed|listing\s+date|date\s+listed)[:\s]*(\d{1,2}[/\-]\d{1,2}[/\-]\d{4})`), accept: acceptString},
		},
	},
}
