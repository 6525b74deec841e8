package data

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"sort"
	"time"
)

// PriceClient fetches day-ahead spot prices from the Energy-Charts API
// (https://api.energy-charts.info). Prices come back in EUR/MWh; FXRate
// converts them to the local currency before the MWh→kWh division, so the
// resulting PriceDay values are currency/kWh.
type PriceClient struct {
	BaseURL string
	FXRate  float64
	Client  *http.Client
}

// NewPriceClient creates a price API client. If baseURL is empty it
// defaults to the public Energy-Charts endpoint; if fxRate is zero it
// defaults to 1 (keep EUR).
func NewPriceClient(baseURL string, fxRate float64) *PriceClient {
	if baseURL == "" {
		baseURL = "https://api.energy-charts.info"
	}
	if fxRate == 0 {
		fxRate = 1
	}
	return &PriceClient{
		BaseURL: baseURL,
		FXRate:  fxRate,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// PriceDay is one calendar day of hourly prices in currency/kWh.
type PriceDay struct {
	Date     string    `json:"date"`
	PriceKWh []float64 `json:"price_kwh"`
}

// PriceAPIError represents an error from the price API.
type PriceAPIError struct {
	StatusCode int
	Code       string
	Message    string
	RetryAfter string // for rate limit errors
}

func (e *PriceAPIError) Error() string {
	return e.Message
}

// priceResponse matches the Energy-Charts /price JSON shape.
type priceResponse struct {
	UnixSeconds []int64   `json:"unix_seconds"`
	Price       []float64 `json:"price"`
	Unit        string    `json:"unit"`
}

// FetchRange downloads hourly prices for a bidding zone between start and
// end (inclusive/exclusive, UTC dates) and groups them into calendar days.
// Requests are chunked monthly to stay within API limits.
func (c *PriceClient) FetchRange(zone string, start, end time.Time) ([]PriceDay, error) {
	if zone == "" {
		return nil, fmt.Errorf("zone is required")
	}
	if start.IsZero() || end.IsZero() {
		return nil, fmt.Errorf("start and end are required")
	}
	if start.After(end) {
		return nil, fmt.Errorf("start must be before end")
	}

	if cache := GetCache(); cache != nil {
		key := GenerateCacheKey(zone, start, end)
		if cached, found := cache.Get(key); found {
			log.Printf("[PriceAPI] Cache hit: %d days (zone=%s, start=%s, end=%s)",
				len(cached), zone, start.Format("2006-01-02"), end.Format("2006-01-02"))
			return cached, nil
		}
	}

	type record struct {
		ts    int64
		price float64
	}
	var records []record

	chunkStart := start
	for chunkStart.Before(end) {
		chunkEnd := chunkStart.AddDate(0, 1, 0)
		if chunkEnd.After(end) {
			chunkEnd = end
		}

		resp, err := c.fetchChunk(zone, chunkStart, chunkEnd)
		if err != nil {
			return nil, fmt.Errorf("fetching %s to %s: %w",
				chunkStart.Format("2006-01-02"), chunkEnd.Format("2006-01-02"), err)
		}

		for i, ts := range resp.UnixSeconds {
			records = append(records, record{
				ts:    ts,
				price: resp.Price[i] * c.FXRate / 1000.0,
			})
		}

		chunkStart = chunkEnd
	}

	// Sort by timestamp and deduplicate (chunk edges overlap).
	sort.Slice(records, func(i, j int) bool { return records[i].ts < records[j].ts })
	deduped := records[:0]
	for i, r := range records {
		if i > 0 && r.ts == records[i-1].ts {
			continue
		}
		deduped = append(deduped, r)
	}
	records = deduped

	// Group into calendar days (UTC).
	var days []PriceDay
	for _, r := range records {
		date := time.Unix(r.ts, 0).UTC().Format("2006-01-02")
		if len(days) == 0 || days[len(days)-1].Date != date {
			days = append(days, PriceDay{Date: date})
		}
		last := &days[len(days)-1]
		last.PriceKWh = append(last.PriceKWh, r.price)
	}

	log.Printf("[PriceAPI] Success: %d days (zone=%s, start=%s, end=%s)",
		len(days), zone, start.Format("2006-01-02"), end.Format("2006-01-02"))

	if cache := GetCache(); cache != nil {
		cache.Set(GenerateCacheKey(zone, start, end), days)
	}

	return days, nil
}

// fetchChunk performs one API request with bounded retries on rate limits.
func (c *PriceClient) fetchChunk(zone string, start, end time.Time) (*priceResponse, error) {
	u, err := url.Parse(c.BaseURL + "/price")
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	q := u.Query()
	q.Set("bzn", zone)
	q.Set("start", start.Format("2006-01-02T15:04Z"))
	q.Set("end", end.Format("2006-01-02T15:04Z"))
	u.RawQuery = q.Encode()

	const maxRetries = 5
	for attempt := 0; attempt < maxRetries; attempt++ {
		log.Printf("[PriceAPI] Request: GET %s (zone=%s, start=%s, end=%s)",
			u.Path, zone, start.Format("2006-01-02"), end.Format("2006-01-02"))

		resp, err := c.Client.Get(u.String())
		if err != nil {
			return nil, fmt.Errorf("executing request: %w", err)
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("reading body: %w", err)
		}

		switch resp.StatusCode {
		case http.StatusOK:
			var data priceResponse
			if err := json.Unmarshal(body, &data); err != nil {
				return nil, fmt.Errorf("parsing JSON: %w", err)
			}
			if len(data.UnixSeconds) != len(data.Price) {
				return nil, fmt.Errorf("mismatched arrays: %d timestamps, %d prices",
					len(data.UnixSeconds), len(data.Price))
			}
			return &data, nil
		case http.StatusTooManyRequests:
			retryAfter := resp.Header.Get("Retry-After")
			wait := time.Duration(attempt+1) * 5 * time.Second
			log.Printf("[PriceAPI] Rate limited, waiting %s (attempt %d/%d)", wait, attempt+1, maxRetries)
			if attempt+1 == maxRetries {
				return nil, &PriceAPIError{
					StatusCode: resp.StatusCode,
					Code:       "RATE_LIMIT_EXCEEDED",
					Message:    fmt.Sprintf("rate limit exceeded after %d attempts", maxRetries),
					RetryAfter: retryAfter,
				}
			}
			time.Sleep(wait)
		default:
			log.Printf("[PriceAPI] Error: %d %s (zone=%s)", resp.StatusCode, resp.Status, zone)
			return nil, &PriceAPIError{
				StatusCode: resp.StatusCode,
				Code:       "API_ERROR",
				Message:    fmt.Sprintf("API returned status %d: %s", resp.StatusCode, body),
			}
		}
	}
	return nil, fmt.Errorf("exhausted %d retries", maxRetries)
}
