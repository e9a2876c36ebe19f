package moneykeeper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
)

const cbrFixture = `{
  "Date": "2024-07-15T11:30:00+03:00",
  "Valute": {
    "USD": {"CharCode": "USD", "Nominal": 1, "Value": 75.5},
    "JPY": {"CharCode": "JPY", "Nominal": 100, "Value": 55.0},
    "XXX": {"CharCode": "XXX", "Nominal": 0, "Value": 10.0}
  }
}`

func TestCBRSource_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(cbrFixture))
	}))
	defer srv.Close()

	rates, err := CBRSource{URL: srv.URL}.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if got := rates["USD"]; !got.Equal(decimal.NewFromFloat(75.5)) {
		t.Errorf("USD rate = %v, want 75.5", got)
	}
	// nominal 100: the per-unit rate is Value/Nominal
	if got := rates["JPY"]; !got.Equal(decimal.NewFromFloat(0.55)) {
		t.Errorf("JPY rate = %v, want 0.55", got)
	}
	if got := rates["RUB"]; !got.Equal(decimal.NewFromInt(1)) {
		t.Errorf("RUB rate = %v, want 1", got)
	}
	if _, ok := rates["XXX"]; ok {
		t.Error("zero-nominal quote should be skipped")
	}
}

func TestCBRSource_FetchErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		code int
	}{
		{"http error", "", http.StatusInternalServerError},
		{"not json", "<html>down</html>", http.StatusOK},
		{"empty valute", `{"Valute": {}}`, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.code)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			if _, err := (CBRSource{URL: srv.URL}).Fetch(context.Background()); err == nil {
				t.Error("Fetch() expected an error")
			}
		})
	}
}

func TestJSONSource_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"base": "RUB", "rates": {"USD": 75.0, "EUR": 90.0, "BAD": "x"}}`))
	}))
	defer srv.Close()

	rates, err := JSONSource{URL: srv.URL, Path: "$.rates"}.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if got := rates["USD"]; !got.Equal(decimal.NewFromInt(75)) {
		t.Errorf("USD rate = %v, want 75", got)
	}
	if got := rates["EUR"]; !got.Equal(decimal.NewFromInt(90)) {
		t.Errorf("EUR rate = %v, want 90", got)
	}
	// non-numeric values are skipped, not fatal
	if _, ok := rates["BAD"]; ok {
		t.Error("non-numeric rate should be skipped")
	}

	if _, err := (JSONSource{URL: srv.URL, Path: "$.base"}).Fetch(context.Background()); err == nil {
		t.Error("Fetch() on a non-object path expected an error")
	}
}
