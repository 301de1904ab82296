package payment

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-pos/internal/httperr"
)

var (
	shopCurrencies = NewCurrencies("usd", "ves")
	rate36         = NewRate(decimal.RequireFromString("36.50"))
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestParseMethod(t *testing.T) {
	m, err := ParseMethod(" zelle ")
	require.NoError(t, err)
	assert.Equal(t, MethodZelle, m)

	_, err = ParseMethod("Bitcoin")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidMethod))
}

func TestMethod_NaturalCurrency(t *testing.T) {
	assert.Equal(t, Currency("USD"), MethodCashBase.NaturalCurrency(shopCurrencies))
	assert.Equal(t, Currency("USD"), MethodZelle.NaturalCurrency(shopCurrencies))
	assert.Equal(t, Currency("VES"), MethodCashLocal.NaturalCurrency(shopCurrencies))
	assert.Equal(t, Currency("VES"), MethodMobileTransfer.NaturalCurrency(shopCurrencies))
	assert.Equal(t, Currency("VES"), MethodCard.NaturalCurrency(shopCurrencies))
}

func TestCurrencies_Parse(t *testing.T) {
	c, err := shopCurrencies.Parse("local")
	require.NoError(t, err)
	assert.Equal(t, shopCurrencies.Local, c)

	c, err = shopCurrencies.Parse("usd")
	require.NoError(t, err)
	assert.Equal(t, shopCurrencies.Base, c)

	c, err = shopCurrencies.Parse("")
	require.NoError(t, err)
	assert.Empty(t, c)

	_, err = shopCurrencies.Parse("EUR")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidCurrency))
}

func TestSettle_SingleCashBaseWithChange(t *testing.T) {
	r := NewReconciler(shopCurrencies)

	s, err := r.Settle(dec("15"), MethodCashBase, []Tender{{Method: MethodCashBase, Amount: dec("20")}}, NoRate)
	require.NoError(t, err)

	assert.True(t, s.Change().Equal(dec("5")))
	assert.True(t, s.Tendered.Equal(dec("20")))
	assert.Empty(t, s.Reference)
	assert.False(t, s.DueLocal.Valid)
}

func TestSettle_WithinTolerance(t *testing.T) {
	r := NewReconciler(shopCurrencies)

	_, err := r.Settle(dec("15"), MethodCashBase, []Tender{{Method: MethodCashBase, Amount: dec("14.99")}}, NoRate)
	assert.NoError(t, err)

	_, err = r.Settle(dec("15"), MethodCashBase, []Tender{{Method: MethodCashBase, Amount: dec("14.98")}}, NoRate)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInsufficientPayment))
}

func TestSettle_LocalNeedsRate(t *testing.T) {
	r := NewReconciler(shopCurrencies)
	tenders := []Tender{{Method: MethodCashLocal, Amount: dec("547.50")}}

	_, err := r.Settle(dec("15"), MethodCashLocal, tenders, NoRate)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeRateUnavailable))

	_, err = r.Settle(dec("15"), MethodCashLocal, tenders, NewRate(decimal.Zero))
	assert.True(t, httperr.IsBusiness(err, httperr.CodeRateUnavailable))

	s, err := r.Settle(dec("15"), MethodCashLocal, tenders, rate36)
	require.NoError(t, err)
	assert.True(t, s.Tendered.Equal(dec("15")))
	require.True(t, s.DueLocal.Valid)
	assert.True(t, s.DueLocal.Decimal.Equal(dec("547.5")))
}

func TestSettle_ReferenceRequired(t *testing.T) {
	r := NewReconciler(shopCurrencies)

	for _, m := range []Method{MethodZelle, MethodMobileTransfer, MethodCard} {
		t.Run(string(m), func(t *testing.T) {
			_, err := r.Settle(dec("15"), m, []Tender{{Method: m, Amount: dec("600"), Reference: "  "}}, rate36)
			assert.True(t, httperr.IsBusiness(err, httperr.CodeMissingReference))
		})
	}

	s, err := r.Settle(dec("15"), MethodZelle, []Tender{{Method: MethodZelle, Amount: dec("15"), Reference: " ZL-1 "}}, NoRate)
	require.NoError(t, err)
	assert.Equal(t, "ZL-1", s.Reference)
}

func TestSettle_RejectsNonPositiveAmount(t *testing.T) {
	r := NewReconciler(shopCurrencies)

	_, err := r.Settle(dec("15"), MethodCashBase, []Tender{{Method: MethodCashBase, Amount: dec("0")}}, NoRate)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidAmount))
}

func TestSettle_MethodMismatch(t *testing.T) {
	r := NewReconciler(shopCurrencies)

	_, err := r.Settle(dec("15"), MethodCashBase, []Tender{{Method: MethodZelle, Amount: dec("15"), Reference: "x"}}, NoRate)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidMethod))
}

func TestSettle_Mixed(t *testing.T) {
	r := NewReconciler(shopCurrencies)
	tenders := []Tender{
		{Method: MethodCashBase, Amount: dec("10")},
		{Method: MethodMobileTransfer, Amount: dec("182.50"), Reference: "PM-77"},
	}

	s, err := r.Settle(dec("15"), MethodMixed, tenders, rate36)
	require.NoError(t, err)

	assert.Equal(t, MethodMixed, s.Method)
	assert.True(t, s.Tendered.Equal(dec("15")))
	assert.Equal(t, "MIXED: [Cash-USD 10.00 USD NoRef] + [Mobile-Transfer 182.50 VES Ref:PM-77]", s.Reference)
}

func TestSettle_MixedShortfall(t *testing.T) {
	r := NewReconciler(shopCurrencies)
	tenders := []Tender{
		{Method: MethodCashBase, Amount: dec("5")},
		{Method: MethodCashBase, Amount: dec("5")},
	}

	_, err := r.Settle(dec("15"), MethodMixed, tenders, NoRate)

	var insufficient *httperr.InsufficientPaymentError
	require.ErrorAs(t, err, &insufficient)
	assert.True(t, insufficient.Shortfall.Equal(dec("5")))
}

func TestSettle_MixedRejectsEmptyAndNested(t *testing.T) {
	r := NewReconciler(shopCurrencies)

	_, err := r.Settle(dec("15"), MethodMixed, nil, NoRate)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeEmptyMixedPayment))

	_, err = r.Settle(dec("15"), MethodMixed, []Tender{{Method: MethodMixed, Amount: dec("15")}}, NoRate)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidMethod))
}

func TestEvaluate_ShortfallWithoutReferences(t *testing.T) {
	r := NewReconciler(shopCurrencies)

	b, err := r.Evaluate(dec("15"), []Tender{{Method: MethodCard, Amount: dec("365")}}, rate36)
	require.NoError(t, err)

	assert.False(t, b.Sufficient)
	assert.True(t, b.Shortfall().Equal(dec("5")))
	assert.True(t, b.Change().IsZero())
	require.True(t, b.DiffLocal.Valid)
	assert.True(t, b.DiffLocal.Decimal.Equal(dec("-182.5")))
}

func TestEvaluate_RejectsMixedTender(t *testing.T) {
	r := NewReconciler(shopCurrencies)

	_, err := r.Evaluate(dec("15"), []Tender{{Method: MethodMixed, Amount: dec("20")}}, NoRate)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidMethod))
}
