package validators

import (
	"strings"
	"unicode"

	"github.com/nyaruka/phonenumbers"
)

// NormalizePhone formats a phone as E.164 using region for local numbers.
// Numbers that cannot be parsed are kept as typed, trimmed.
func NormalizePhone(phone, region string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}

	parsed, err := phonenumbers.Parse(phone, region)
	if err != nil || !phonenumbers.IsPossibleNumber(parsed) {
		return phone
	}
	return phonenumbers.Format(parsed, phonenumbers.E164)
}

// PhoneSearchDigits turns a typed search into the digits to look for inside
// stored E.164 phones. Complete local numbers are normalized first; partial
// ones lose their national 0 prefix. Queries with letters return "".
func PhoneSearchDigits(query, region string) string {
	query = strings.TrimSpace(query)
	if query == "" || strings.IndexFunc(query, unicode.IsLetter) >= 0 {
		return ""
	}

	if normalized := NormalizePhone(query, region); strings.HasPrefix(normalized, "+") {
		return strings.TrimPrefix(normalized, "+")
	}

	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, query)
	return strings.TrimLeft(digits, "0")
}
