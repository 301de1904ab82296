package payment

import (
	"strings"

	"github.com/BruksfildServices01/barber-pos/internal/httperr"
)

type Method string

const (
	MethodCashBase       Method = "Cash-USD"
	MethodCashLocal      Method = "Cash-Local"
	MethodMobileTransfer Method = "Mobile-Transfer"
	MethodZelle          Method = "Zelle"
	MethodCard           Method = "Card"
	MethodMixed          Method = "Mixed"
)

var methods = []Method{
	MethodCashBase,
	MethodCashLocal,
	MethodMobileTransfer,
	MethodZelle,
	MethodCard,
	MethodMixed,
}

func ParseMethod(s string) (Method, error) {
	s = strings.TrimSpace(s)
	for _, m := range methods {
		if strings.EqualFold(s, string(m)) {
			return m, nil
		}
	}
	return "", httperr.ErrBusiness(httperr.CodeInvalidMethod)
}

func (m Method) IsCash() bool {
	return m == MethodCashBase || m == MethodCashLocal
}

// RequiresReference is true for every non-cash tender method.
func (m Method) RequiresReference() bool {
	return !m.IsCash() && m != MethodMixed
}

// NaturalCurrency is the currency a tender is assumed to be in when none is declared.
func (m Method) NaturalCurrency(cur Currencies) Currency {
	switch m {
	case MethodCashLocal, MethodMobileTransfer, MethodCard:
		return cur.Local
	default:
		return cur.Base
	}
}
