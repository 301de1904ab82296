package exchange

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-pos/internal/config"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"36,5012", "36.5012"},
		{"Bs. 1.234,56", "1234.56"},
		{"USD 36,50", "36.50"},
		{"36.50", "36.50"},
		{"  216,3700 VES", "216.3700"},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := Normalize(tc.raw)
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tc.want).Equal(got), got.String())
		})
	}
}

func TestNormalize_Rejects(t *testing.T) {
	for _, raw := range []string{"sin datos", "0,00"} {
		_, err := Normalize(raw)

		var fe *FetchError
		assert.True(t, errors.As(err, &fe), raw)
	}
}

func TestExtract_SelectorPriority(t *testing.T) {
	page := `<html><body>
		<div id="euro"><strong> 40,10 </strong></div>
		<div id="dolar"><div><span>USD</span><strong> 36,59140000 </strong></div></div>
	</body></html>`

	got, err := Extract(strings.NewReader(page))
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("36.5914").Equal(got))
}

func TestExtract_FallsBackToPagePattern(t *testing.T) {
	page := `<html><body><p>Tipo de cambio oficial: 1.036,25 Bs por dólar</p></body></html>`

	got, err := Extract(strings.NewReader(page))
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("1036.25").Equal(got))
}

func TestExtract_NoRate(t *testing.T) {
	_, err := Extract(strings.NewReader(`<html><body>Mantenimiento</body></html>`))

	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, fe.Error(), "not found")
}

func testSource(url string, timeout time.Duration) *BCVSource {
	return NewBCVSource(config.RateConfig{
		SourceURL:          url,
		Timeout:            timeout,
		InsecureSkipVerify: true,
	})
}

func TestBCVSource_FetchOverSelfSignedTLS(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("User-Agent"), "Mozilla/5.0")
		_, _ = w.Write([]byte(`<div id="dolar"><strong>36,50</strong></div>`))
	}))
	defer srv.Close()

	rate, err := testSource(srv.URL, time.Second).Fetch(context.Background())
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("36.5").Equal(rate.Value))
	assert.Equal(t, srv.URL, rate.Source)
	assert.False(t, rate.FetchedAt.IsZero())
}

func TestBCVSource_HTTPFailure(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := testSource(srv.URL, time.Second).Fetch(context.Background())

	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, fe.Cause, "502")
}

func TestBCVSource_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	_, err := testSource(srv.URL, 50*time.Millisecond).Fetch(context.Background())

	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "connection failed", fe.Cause)
}
