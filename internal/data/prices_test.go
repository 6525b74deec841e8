package data

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func utcHour(date string, hour int) int64 {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return t.Add(time.Duration(hour) * time.Hour).Unix()
}

func TestFetchRange(t *testing.T) {
	var gotZone string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/price", r.URL.Path)
		gotZone = r.URL.Query().Get("bzn")
		assert.NotEmpty(t, r.URL.Query().Get("start"))
		assert.NotEmpty(t, r.URL.Query().Get("end"))

		// Unordered with one duplicate timestamp; the client must sort and
		// deduplicate before grouping into days.
		resp := priceResponse{
			UnixSeconds: []int64{
				utcHour("2024-01-01", 1),
				utcHour("2024-01-01", 0),
				utcHour("2024-01-01", 0),
				utcHour("2024-01-02", 0),
			},
			Price: []float64{50, 100, 100, 80},
			Unit:  "EUR/MWh",
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewPriceClient(server.URL, 4) // 4 local per EUR
	start, _ := time.Parse("2006-01-02", "2024-01-01")
	end, _ := time.Parse("2006-01-02", "2024-01-03")

	days, err := client.FetchRange("DE-LU", start, end)
	require.NoError(t, err)

	assert.Equal(t, "DE-LU", gotZone)
	require.Len(t, days, 2)

	assert.Equal(t, "2024-01-01", days[0].Date)
	require.Len(t, days[0].PriceKWh, 2)
	// 100 EUR/MWh × 4 / 1000 = 0.4 per kWh, hour order restored by sorting.
	assert.InDelta(t, 0.4, days[0].PriceKWh[0], 1e-9)
	assert.InDelta(t, 0.2, days[0].PriceKWh[1], 1e-9)

	assert.Equal(t, "2024-01-02", days[1].Date)
	require.Len(t, days[1].PriceKWh, 1)
	assert.InDelta(t, 0.32, days[1].PriceKWh[0], 1e-9)
}

func TestFetchRangeValidation(t *testing.T) {
	client := NewPriceClient("http://localhost:0", 1)
	start, _ := time.Parse("2006-01-02", "2024-01-02")
	end, _ := time.Parse("2006-01-02", "2024-01-01")

	_, err := client.FetchRange("", start, end)
	assert.Error(t, err)

	_, err = client.FetchRange("PL", start, end)
	assert.Error(t, err, "start after end")

	_, err = client.FetchRange("PL", time.Time{}, end)
	assert.Error(t, err)
}

func TestFetchRangeAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewPriceClient(server.URL, 1)
	start, _ := time.Parse("2006-01-02", "2024-01-01")
	end, _ := time.Parse("2006-01-02", "2024-01-02")

	_, err := client.FetchRange("PL", start, end)
	require.Error(t, err)

	var apiErr *PriceAPIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "API_ERROR", apiErr.Code)
}

func TestFetchRangeMismatchedArrays(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := priceResponse{
			UnixSeconds: []int64{utcHour("2024-01-01", 0)},
			Price:       []float64{100, 50},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewPriceClient(server.URL, 1)
	start, _ := time.Parse("2006-01-02", "2024-01-01")
	end, _ := time.Parse("2006-01-02", "2024-01-02")

	_, err := client.FetchRange("PL", start, end)
	assert.Error(t, err)
}

func TestNewPriceClientDefaults(t *testing.T) {
	c := NewPriceClient("", 0)
	assert.Equal(t, "https://api.energy-charts.info", c.BaseURL)
	assert.InDelta(t, 1, c.FXRate, 1e-12)
	assert.NotNil(t, c.Client)
}

func TestKnownZone(t *testing.T) {
	assert.True(t, KnownZone("PL"))
	assert.True(t, KnownZone("DE-LU"))
	assert.False(t, KnownZone("XX"))
	assert.False(t, KnownZone(""))
	assert.NotEmpty(t, BiddingZones)
}

func TestGenerateCacheKey(t *testing.T) {
	start, _ := time.Parse("2006-01-02", "2024-01-01")
	end, _ := time.Parse("2006-01-02", "2024-02-01")

	a := GenerateCacheKey("PL", start, end)
	b := GenerateCacheKey("PL", start, end)
	c := GenerateCacheKey("DE-LU", start, end)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
