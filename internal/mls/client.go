// Package mls fetches listing data from the Zillow RapidAPI gateway and
// flattens it into the field vocabulary used by document extraction, so
// listing and document data can be compared directly.
package mls

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/dealdesk/dealdesk/internal/common"
	"github.com/dealdesk/dealdesk/internal/extract"
)

// Listing is the flattened view of one property listing.
type Listing struct {
	ZPID            string  `json:"zpid"`
	MLSNumber       string  `json:"mlsNumber"`
	PropertyAddress string  `json:"propertyAddress"`
	City            string  `json:"city"`
	State           string  `json:"state"`
	ZipCode         string  `json:"zipCode"`
	Price           float64 `json:"price"`
	PropertyType    string  `json:"propertyType"`
	Bedrooms        int     `json:"bedrooms"`
	Bathrooms       float64 `json:"bathrooms"`
	SquareFootage   int     `json:"squareFootage"`
	LotSize         float64 `json:"lotSize"`
	YearBuilt       int     `json:"yearBuilt"`
	County          string  `json:"county"`

	// Raw is the unmodified property payload, persisted alongside the
	// flattened fields for audit.
	Raw json.RawMessage `json:"-"`
}

// Fields projects the listing onto the extraction field vocabulary.
// Zero values are omitted so absent listing data never masks or
// contradicts document data.
func (l *Listing) Fields() extract.Fields {
	f := extract.Fields{}
	put := func(name, v string) {
		if v != "" {
			f[name] = v
		}
	}
	put(extract.FieldPropertyAddress, l.PropertyAddress)
	put(extract.FieldCity, l.City)
	put(extract.FieldState, l.State)
	put(extract.FieldZipCode, l.ZipCode)
	put(extract.FieldPropertyType, l.PropertyType)
	put(extract.FieldMLSNumber, l.MLSNumber)
	if l.Price > 0 {
		f[extract.FieldPrice] = l.Price
	}
	if l.Bedrooms > 0 {
		f[extract.FieldBedrooms] = l.Bedrooms
	}
	if l.Bathrooms > 0 {
		f[extract.FieldBathrooms] = l.Bathrooms
	}
	if l.SquareFootage > 0 {
		f[extract.FieldSquareFootage] = l.SquareFootage
	}
	if l.YearBuilt > 0 {
		f[extract.FieldYearBuilt] = l.YearBuilt
	}
	return f
}

type Client struct {
	cfg     common.MLSConfig
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

func NewClient(cfg common.MLSConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:     cfg,
		baseURL: "https://" + cfg.APIHost,
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	u := c.baseURL + path + "?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-rapidapi-key", c.cfg.APIKey)
	req.Header.Set("x-rapidapi-host", c.cfg.APIHost)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("listing api request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("listing api read: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Error("listing api error", "path", path, "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("listing api status %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

// LookupByMLS returns the raw propertyByMls payload without flattening.
func (c *Client) LookupByMLS(ctx context.Context, mlsNumber string) (json.RawMessage, error) {
	return c.get(ctx, "/propertyByMls", url.Values{"mls": {mlsNumber}})
}

type propertyAddress struct {
	StreetAddress string `json:"streetAddress"`
	City          string `json:"city"`
	State         string `json:"state"`
	Zipcode       string `json:"zipcode"`
}

type propertyPayload struct {
	Zpid    json.Number     `json:"zpid"`
	Address propertyAddress `json:"address"`

	StreetAddress string `json:"streetAddress"`
	City          string `json:"city"`
	State         string `json:"state"`
	Zipcode       string `json:"zipcode"`

	Price         float64 `json:"price"`
	Zestimate     float64 `json:"zestimate"`
	RentZestimate float64 `json:"rentZestimate"`

	PropertyTypeDimension string `json:"propertyTypeDimension"`
	PropertyType          string `json:"propertyType"`
	HomeType              string `json:"homeType"`

	Bedrooms     float64 `json:"bedrooms"`
	Bathrooms    float64 `json:"bathrooms"`
	LivingArea   float64 `json:"livingArea"`
	LotAreaValue float64 `json:"lotAreaValue"`
	YearBuilt    int     `json:"yearBuilt"`
	County       string  `json:"county"`
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstPositive(vals ...float64) float64 {
	for _, v := range vals {
		if v > 0 {
			return v
		}
	}
	return 0
}

// PropertyByMLS resolves an MLS number in two steps: propertyByMls to
// obtain the zpid, then the property endpoint for full details. A listing
// with no zpid wraps common.ErrNotFound.
func (c *Client) PropertyByMLS(ctx context.Context, mlsNumber string) (*Listing, error) {
	body, err := c.LookupByMLS(ctx, mlsNumber)
	if err != nil {
		return nil, err
	}
	var head struct {
		Zpid json.Number `json:"zpid"`
	}
	if err := json.Unmarshal(body, &head); err != nil {
		return nil, fmt.Errorf("decode mls lookup: %w", err)
	}
	if head.Zpid.String() == "" {
		return nil, fmt.Errorf("mls %s: %w", mlsNumber, common.ErrNotFound)
	}

	raw, err := c.get(ctx, "/property", url.Values{"zpid": {head.Zpid.String()}})
	if err != nil {
		return nil, err
	}
	var p propertyPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode property: %w", err)
	}

	listing := &Listing{
		ZPID:      head.Zpid.String(),
		MLSNumber: mlsNumber,
		PropertyAddress: firstNonEmpty(
			p.Address.StreetAddress, p.StreetAddress, fmt.Sprintf("Property (MLS: %s)", mlsNumber)),
		City:          firstNonEmpty(p.Address.City, p.City),
		State:         firstNonEmpty(p.Address.State, p.State),
		ZipCode:       firstNonEmpty(p.Address.Zipcode, p.Zipcode),
		Price:         firstPositive(p.Price, p.Zestimate, p.RentZestimate),
		PropertyType:  firstNonEmpty(p.PropertyTypeDimension, p.PropertyType, p.HomeType, "Single Family - Detached"),
		Bedrooms:      int(p.Bedrooms),
		Bathrooms:     p.Bathrooms,
		SquareFootage: int(firstPositive(p.LivingArea, p.LotAreaValue)),
		LotSize:       p.LotAreaValue,
		YearBuilt:     p.YearBuilt,
		County:        p.County,
		Raw:           raw,
	}
	c.logger.Info("listing resolved",
		"mls", mlsNumber, "zpid", listing.ZPID, "address", listing.PropertyAddress)
	return listing, nil
}
