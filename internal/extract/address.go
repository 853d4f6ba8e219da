package extract

import (
	"regexp"
	"strings"
)

// AddressComponents is the decomposition of a single full-address string.
// Unresolved components are empty strings; the splitter has no error path.
type AddressComponents struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
}

var (
	reCommaAddress = regexp.MustCompile(`(?i)^([^,]+),\s*([^,]+),\s*([A-Z]{2})\s+(\d{5}(?:-\d{4})?)?\s*$`)
	reSpaceAddress = regexp.MustCompile(`(?i)^(.+?)\s+([A-Za-z\s]+?)\s+([A-Z]{2})\s+(\d{5}(?:-\d{4})?)?\s*$`)
	reStateZipTail = regexp.MustCompile(`(?i)\b([A-Z]{2})\s+(\d{5}(?:-\d{4})?)\s*$`)
	reStateToken   = regexp.MustCompile(`(?i)([A-Z]{2})`)
)

// streetSuffixTokens is the closed set of street-type tokens used to find
// the street/city boundary in addresses without commas.
var streetSuffixTokens = map[string]struct{}{
	"st": {}, "street": {}, "ave": {}, "avenue": {}, "rd": {}, "road": {},
	"dr": {}, "drive": {}, "ln": {}, "lane": {}, "ct": {}, "court": {},
	"blvd": {}, "boulevard": {}, "way": {}, "place": {}, "pl": {},
	"circle": {}, "cir": {},
}

// SplitAddress decomposes a full address string into street, city, state
// and zip using an ordered set of structural patterns, each strictly more
// permissive than the last. The first tier to match wins and the splitter
// never backtracks, even when the committed result looks implausible; this
// is a deliberate precision/recall tradeoff for wildly inconsistent source
// documents (single-line MLS exports, tabular forms, prose contracts).
func SplitAddress(fullAddress string) AddressComponents {
	var comps AddressComponents
	address := Normalize(fullAddress)
	if address == "" {
		return comps
	}

	// Tier 1: "123 Main St, Anytown, ST 12345"
	if m := reCommaAddress.FindStringSubmatch(address); m != nil {
		comps.Street = strings.TrimSpace(m[1])
		comps.City = strings.TrimSpace(m[2])
		comps.State = strings.ToUpper(m[3])
		comps.ZipCode = m[4]
		return comps
	}

	// Tier 2: "123 Main St Anytown ST 12345" with no commas. The street/city
	// boundary is found by scanning backward for the last street-suffix
	// token; everything after it belongs to the city.
	if m := reSpaceAddress.FindStringSubmatch(address); m != nil {
		streetPart := strings.TrimSpace(m[1])
		cityPart := strings.TrimSpace(m[2])
		comps.State = strings.ToUpper(m[3])
		comps.ZipCode = m[4]

		words := strings.Fields(streetPart)
		words = append(words, strings.Fields(cityPart)...)

		suffixAt := -1
		for i := len(words) - 1; i >= 0; i-- {
			token := strings.ToLower(strings.ReplaceAll(words[i], ".", ""))
			if _, ok := streetSuffixTokens[token]; ok {
				suffixAt = i
				break
			}
		}

		if suffixAt >= 0 && suffixAt < len(words)-1 {
			comps.Street = strings.Join(words[:suffixAt+1], " ")
			comps.City = strings.Join(words[suffixAt+1:], " ")
		} else {
			comps.Street = streetPart
			comps.City = cityPart
		}
		return comps
	}

	// Tier 3: a trailing "ST 12345" anchor anywhere; strip it and split
	// the remainder on commas.
	if m := reStateZipTail.FindStringSubmatch(address); m != nil {
		comps.State = strings.ToUpper(m[1])
		comps.ZipCode = m[2]

		remaining := strings.TrimSpace(reStateZipTail.ReplaceAllString(address, ""))
		parts := splitNonEmpty(remaining, ",")
		switch {
		case len(parts) >= 2:
			comps.Street = parts[0]
			comps.City = strings.Join(parts[1:], ", ")
		case len(parts) == 1:
			comps.Street = parts[0]
		}
		return comps
	}

	// Tier 4: naive comma split. With no commas the whole string is
	// treated as street with empty city/state.
	parts := splitNonEmpty(address, ",")
	if len(parts) >= 1 {
		comps.Street = parts[0]
	}
	if len(parts) >= 2 {
		comps.City = parts[1]
	}
	if len(parts) >= 3 {
		if m := reStateToken.FindStringSubmatch(parts[2]); m != nil {
			comps.State = strings.ToUpper(m[1])
		}
	}
	return comps
}

func splitNonEmpty(s, sep string) []string {
	var out []string
	for _, p := range strings.Split(s, sep) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
