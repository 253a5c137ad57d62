package builder

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultCurrency is used for countries missing from the currency table.
const DefaultCurrency = "USD"

// currencies maps lower-case country names, in Spanish and English, to ISO
// 4217 currency codes.
var currencies = map[string]string{
	"españa":    "EUR",
	"spain":     "EUR",
	"méxico":    "MXN",
	"mexico":    "MXN",
	"argentina": "ARS",
	"perú":      "PEN",
	"peru":      "PEN",
	"colombia":  "COP",
	"chile":     "CLP",
}

// CurrencyForCountry returns the currency code used for country.
// Matching ignores case and surrounding spaces.
func CurrencyForCountry(country string) string {
	key := cases.Lower(language.Und).String(strings.TrimSpace(country))
	if code, ok := currencies[key]; ok {
		return code
	}
	return DefaultCurrency
}
