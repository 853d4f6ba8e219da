package extract

import (
	"regexp"
	"strings"
)

const streetSuffix = `(?:avenue|ave\.?|street|st\.?|road|rd\.?|drive|dr\.?|lane|ln\.?|court|ct\.?|boulevard|blvd\.?|way|place|pl\.?|circle|cir\.?)`

// Full-address candidates, strictest first: a complete one-line address,
// a labeled address fragment, then anything after an "address" label. The
// street-only pattern is not here; it anchors the second tier below,
// which handles MLS-style sheets where the address spans lines in the
// source document.
var addressPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+\s+[a-zA-Z\s]+` + streetSuffix + `[,\s]+[a-zA-Z\s]+[,\s]+[A-Z]{2}\s+\d{5}(?:-\d{4})?)`),
	regexp.MustCompile(`(?i)(?:property\s+address|subject\s+property|premises|property\s+location|address\s+of\s+property)[\s:,]*([^\n\r.;]+` + streetSuffix + `[^\n\r.;]*)`),
	regexp.MustCompile(`(?i)address[:\s]+([^\n\r]+)`),
}

var (
	reStreetOnly   = regexp.MustCompile(`(?i)(\d+\s+[a-zA-Z\s]+` + streetSuffix + `)`)
	reCityStateZip = regexp.MustCompile(`(?i)\s*([a-zA-Z\s]+),?\s+([A-Z]{2})\s+(\d{5}(?:-\d{4})?)`)
)

const (
	minAddressLen = 10
	maxAddressLen = 200
)

// Extract runs the full field battery against raw document text and
// returns the sparse field mapping. It never fails: unmatched fields are
// absent, and zero populated fields is a valid result.
func Extract(text string) Fields {
	data := Fields{}
	clean := Normalize(text)
	if clean == "" {
		return data
	}

	extractAddress(data, clean)

	for _, spec := range fieldSpecs {
		if v, ok := firstPlausible(clean, spec.rules); ok {
			data[spec.name] = v
		}
	}
	return data
}

// firstPlausible evaluates a field's candidate patterns in order and
// returns the first value passing the plausibility filter. Rules marked
// scanAll keep trying later matches of the same pattern after a rejection.
func firstPlausible(text string, rules []rule) (any, bool) {
	for _, r := range rules {
		if r.scanAll {
			for _, m := range r.re.FindAllStringSubmatch(text, -1) {
				if v, ok := r.accept(m); ok {
					return v, true
				}
			}
			continue
		}
		if m := r.re.FindStringSubmatch(text); m != nil {
			if v, ok := r.accept(m); ok {
				return v, true
			}
		}
	}
	return nil, false
}

// extractAddress is two-tiered: first a single-pattern full-address match,
// then a street-only match followed by a scan of the trailing text for a
// "city, ST ZIP" fragment.
func extractAddress(data Fields, text string) {
	for _, re := range addressPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		addr := trimArtifacts(m[1])
		if len(addr) <= minAddressLen || len(addr) >= maxAddressLen {
			continue
		}
		data[FieldPropertyAddress] = addr

		comps := SplitAddress(addr)
		if comps.Street != "" || comps.City != "" {
			if comps.Street != "" {
				data[FieldAddress] = comps.Street
			} else {
				data[FieldAddress] = addr
			}
			setNonEmpty(data, FieldCity, comps.City)
			setNonEmpty(data, FieldState, comps.State)
			setNonEmpty(data, FieldZipCode, comps.ZipCode)
		}
		return
	}

	// No complete address; look for a street and then a city/state/zip
	// fragment in the text that follows it.
	loc := reStreetOnly.FindStringSubmatchIndex(text)
	if loc == nil {
		return
	}
	street := trimArtifacts(text[loc[2]:loc[3]])
	data[FieldAddress] = street

	rest := text[loc[3]:]
	if m := reCityStateZip.FindStringSubmatch(rest); m != nil {
		city := trimArtifacts(m[1])
		state := strings.ToUpper(m[2])
		zip := m[3]
		data[FieldCity] = city
		data[FieldState] = state
		data[FieldZipCode] = zip
		data[FieldPropertyAddress] = street + ", " + city + ", " + state + " " + zip
	}
}

func setNonEmpty(data Fields, name, value string) {
	if value != "" {
		data[name] = value
	}
}
