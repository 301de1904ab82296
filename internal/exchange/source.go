package exchange

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-pos/internal/config"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) " +
	"Chrome/124.0.0.0 Safari/537.36"

// selectors are tried in order; the first node with text wins.
var selectors = []string{
	`div#dolar strong`,
	`#dolar strong`,
	`div#dolar span`,
	`#dolar`,
	`div[id*="dolar" i] strong`,
	`div[id*="dolar" i] span`,
	`div[id*="dolar" i]`,
}

var (
	pagePattern   = regexp.MustCompile(`(\d{1,3}(?:\.\d{3})*,\d+|\d+,\d+|\d+\.\d+)`)
	numberPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)
	unitReplacer  = strings.NewReplacer("Bs.", "", "Bs", "", "VES", "", "\u00a0", "", " ", "")
)

// FetchError is any network or parse failure of a rate fetch.
type FetchError struct {
	Cause string
	Err   error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("rate fetch: %s: %v", e.Cause, e.Err)
	}
	return "rate fetch: " + e.Cause
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Fetcher yields a fresh rate or a *FetchError.
type Fetcher interface {
	Fetch(ctx context.Context) (Rate, error)
}

// BCVSource scrapes the official rate from the central bank's home page.
type BCVSource struct {
	url    string
	client *http.Client
	now    func() time.Time
}

func NewBCVSource(cfg config.RateConfig) *BCVSource {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	// the source serves an incomplete certificate chain
	transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify} //nolint:gosec

	return &BCVSource{
		url: cfg.SourceURL,
		client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		now: time.Now,
	}
}

func (s *BCVSource) Fetch(ctx context.Context) (Rate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return Rate{}, &FetchError{Cause: "build request", Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return Rate{}, &FetchError{Cause: "connection failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Rate{}, &FetchError{Cause: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}

	value, err := Extract(resp.Body)
	if err != nil {
		return Rate{}, err
	}

	return Rate{
		Value:     value,
		Source:    s.url,
		FetchedAt: s.now().UTC(),
	}, nil
}

// Extract finds the dollar rate in an HTML page.
func Extract(r io.Reader) (decimal.Decimal, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return decimal.Zero, &FetchError{Cause: "invalid html", Err: err}
	}

	var raw string
	for _, sel := range selectors {
		node := doc.Find(sel).First()
		if node.Length() == 0 {
			continue
		}
		if text := nodeText(node); text != "" {
			raw = text
			break
		}
	}

	if raw == "" {
		raw = pagePattern.FindString(nodeText(doc.Selection))
	}
	if raw == "" {
		return decimal.Zero, &FetchError{Cause: "dollar rate not found in page"}
	}

	return Normalize(raw)
}

func nodeText(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}

// Normalize parses a locale-formatted amount such as "Bs. 1.234,56".
func Normalize(raw string) (decimal.Decimal, error) {
	clean := strings.TrimSpace(unitReplacer.Replace(raw))

	if strings.Contains(clean, ",") && strings.Contains(clean, ".") {
		clean = strings.ReplaceAll(clean, ".", "")
	}
	clean = strings.ReplaceAll(clean, ",", ".")

	num := numberPattern.FindString(clean)
	if num == "" {
		return decimal.Zero, &FetchError{Cause: fmt.Sprintf("invalid rate format %q", raw)}
	}

	v, err := decimal.NewFromString(num)
	if err != nil {
		return decimal.Zero, &FetchError{Cause: fmt.Sprintf("invalid rate format %q", raw), Err: err}
	}
	if !v.IsPositive() {
		return decimal.Zero, &FetchError{Cause: fmt.Sprintf("non-positive rate %q", raw)}
	}
	return v, nil
}
