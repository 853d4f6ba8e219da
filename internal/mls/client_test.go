package mls

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealdesk/dealdesk/internal/common"
	"github.com/dealdesk/dealdesk/internal/extract"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(common.MLSConfig{
		APIKey:  "test-key",
		APIHost: "zillow-com1.p.rapidapi.com",
		Timeout: 5 * time.Second,
	}, nil)
	c.baseURL = srv.URL
	return c
}

func TestPropertyByMLS(t *testing.T) {
	var gotKey, gotHost string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-rapidapi-key")
		gotHost = r.Header.Get("x-rapidapi-host")
		switch r.URL.Path {
		case "/propertyByMls":
			assert.Equal(t, "A1234567", r.URL.Query().Get("mls"))
			w.Write([]byte(`{"zpid": 48749425}`))
		case "/property":
			assert.Equal(t, "48749425", r.URL.Query().Get("zpid"))
			w.Write([]byte(`{
				"zpid": 48749425,
				"address": {"streetAddress": "123 Main St", "city": "Anytown", "state": "CA", "zipcode": "90210"},
				"price": 750000,
				"bedrooms": 4,
				"bathrooms": 2.5,
				"livingArea": 1850,
				"yearBuilt": 1987,
				"homeType": "SINGLE_FAMILY"
			}`))
		default:
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
	}))

	listing, err := c.PropertyByMLS(context.Background(), "A1234567")
	require.NoError(t, err)

	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "zillow-com1.p.rapidapi.com", gotHost)
	assert.Equal(t, "48749425", listing.ZPID)
	assert.Equal(t, "123 Main St", listing.PropertyAddress)
	assert.Equal(t, "Anytown", listing.City)
	assert.Equal(t, "CA", listing.State)
	assert.Equal(t, "90210", listing.ZipCode)
	assert.Equal(t, 750000.0, listing.Price)
	assert.Equal(t, 4, listing.Bedrooms)
	assert.Equal(t, 2.5, listing.Bathrooms)
	assert.Equal(t, 1850, listing.SquareFootage)
	assert.Equal(t, 1987, listing.YearBuilt)
	assert.Equal(t, "SINGLE_FAMILY", listing.PropertyType)
	assert.NotEmpty(t, listing.Raw)
}

func TestPropertyByMLSFallbacks(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/propertyByMls":
			w.Write([]byte(`{"zpid": 990011}`))
		case "/property":
			w.Write([]byte(`{"zestimate": 412000}`))
		}
	}))

	listing, err := c.PropertyByMLS(context.Background(), "B777")
	require.NoError(t, err)
	assert.Equal(t, "Property (MLS: B777)", listing.PropertyAddress)
	assert.Equal(t, 412000.0, listing.Price)
	assert.Equal(t, "Single Family - Detached", listing.PropertyType)
}

func TestPropertyByMLSNotFound(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message": "no listing"}`))
	}))

	_, err := c.PropertyByMLS(context.Background(), "NOPE")
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestPropertyByMLSUpstreamError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))

	_, err := c.PropertyByMLS(context.Background(), "A1")
	assert.Error(t, err)
}

func TestListingFields(t *testing.T) {
	listing := &Listing{
		MLSNumber:       "A1234567",
		PropertyAddress: "123 Main St",
		City:            "Anytown",
		Price:           750000,
		Bedrooms:        4,
	}

	f := listing.Fields()
	assert.Equal(t, "123 Main St", f[extract.FieldPropertyAddress])
	assert.Equal(t, "Anytown", f[extract.FieldCity])
	assert.Equal(t, 750000.0, f[extract.FieldPrice])
	assert.Equal(t, 4, f[extract.FieldBedrooms])

	// Zero values stay absent so they never register as conflicts.
	_, ok := f[extract.FieldState]
	assert.False(t, ok)
	_, ok = f[extract.FieldYearBuilt]
	assert.False(t, ok)
}
