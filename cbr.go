package moneykeeper

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
)

// cbrDailyURL serves the official daily exchange rates of the Russian central
// bank as JSON, rates quoted in RUB.
const cbrDailyURL = "https://www.cbr-xml-daily.ru/daily_json.js"

// CBRSource fetches daily RUB exchange rates from cbr-xml-daily.ru. The zero
// value uses the public endpoint; URL overrides it for tests.
type CBRSource struct {
	URL string
}

// Fetch downloads and parses the daily rates. The payload quotes each
// currency as Value units of RUB per Nominal units of the currency; the rate
// to base is Value/Nominal. RUB itself is appended with rate 1.
func (s CBRSource) Fetch(ctx context.Context) (map[string]decimal.Decimal, error) {
	addr := s.URL
	if addr == "" {
		addr = cbrDailyURL
	}

	// payload subset; the endpoint carries more fields we don't need.
	var payload struct {
		Valute map[string]struct {
			CharCode string  `json:"CharCode"`
			Nominal  float64 `json:"Nominal"`
			Value    float64 `json:"Value"`
		} `json:"Valute"`
	}
	if err := jwget(ctx, daily(), addr, &payload); err != nil {
		return nil, fmt.Errorf("fetching rates from %q: %w", addr, err)
	}
	if len(payload.Valute) == 0 {
		return nil, fmt.Errorf("no rates in response from %q", addr)
	}

	rates := make(map[string]decimal.Decimal, len(payload.Valute)+1)
	for _, v := range payload.Valute {
		if v.Nominal <= 0 || v.Value <= 0 {
			log.Printf("skipping %q: nominal %v value %v", v.CharCode, v.Nominal, v.Value)
			continue
		}
		rates[v.CharCode] = decimal.NewFromFloat(v.Value).Div(decimal.NewFromFloat(v.Nominal))
	}
	rates["RUB"] = decimal.NewFromInt(1)
	return rates, nil
}

// diskCache implements a simple disk cache for HTTP responses.
type diskCache struct {
	base http.RoundTripper
}

func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	// the cache key includes today's date, so entries expire daily.
	key := fmt.Sprintf("%s %s %s", Today(), req.Method, req.URL.String())
	key = fmt.Sprintf("%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v/%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}
	if err := c.put(key, resp); err != nil {
		log.Printf("cache write err (ignored): %v", err)
	}
	return resp, nil
}

// get retrieves a cached response from disk.
func (c *diskCache) get(key string, req *http.Request) (*http.Response, error) {
	file := filepath.Join(os.TempDir(), key)
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to the disk cache.
func (c *diskCache) put(key string, resp *http.Response) error {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(os.TempDir(), key), content, 0644)
}

// daily returns a client whose responses are cached on disk until midnight.
func daily() *http.Client {
	client := new(http.Client)
	client.Transport = &diskCache{http.DefaultTransport}
	return client
}

// jwget performs an HTTP GET request and unmarshals the JSON response into
// the provided data structure.
func jwget(ctx context.Context, client *http.Client, addr string, data interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}
