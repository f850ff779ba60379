// Package format implements the pt-BR input normalization used across the
// app: keystroke-driven currency fields, CEP masking, digit stripping and
// the upper-cased free-text convention. Every function is total; malformed
// input degrades to an empty/zero value instead of failing.
package format

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// Normalize upper-cases a free-text field. Idempotent.
func Normalize(s string) string {
	return strings.ToUpper(s)
}

// DigitsOnly strips every non-digit character; it is the storage form of
// cep and telefone.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CEP masks a postal code as NNNNN-NNN. The hyphen is only inserted once a
// 6th digit exists, so partial input stays a valid prefix; anything past 9
// characters is truncated.
func CEP(raw string) string {
	d := DigitsOnly(raw)
	if len(d) <= 5 {
		return d
	}
	masked := d[:5] + "-" + d[5:]
	if len(masked) > 9 {
		masked = masked[:9]
	}
	return masked
}

// Currency re-derives the full display string from the accumulated digit
// stream: digits are read as an integer number of centavos, divided by 100
// and rendered with pt-BR grouping ("1.234,56"). Empty or non-numeric
// input renders as "0,00".
func Currency(raw string) string {
	digits := DigitsOnly(raw)
	if digits == "" {
		return "0,00"
	}
	cents, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return "0,00"
	}
	return Amount(cents / 100)
}

// Amount renders a numeric value in the pt-BR display convention with two
// decimal places.
func Amount(v float64) string {
	return ptBR.Sprintf("%.2f", v)
}

// ParseCurrency is the inverse of Currency: thousands separators dropped,
// decimal comma converted to a point. Malformed input yields 0; it never
// fails for anything Currency could have produced.
func ParseCurrency(formatted string) float64 {
	f, _ := parseDecimal(formatted).Float64()
	return f
}

// LineAmount is the contribution of one line item: qtd parsed base-10 (a
// failed parse counts as 0) times the parsed unit price. Exposed as a
// decimal so totals can be summed without float drift.
func LineAmount(qtd, un string) decimal.Decimal {
	q, err := strconv.Atoi(strings.TrimSpace(qtd))
	if err != nil {
		return decimal.Zero
	}
	return parseDecimal(un).Mul(decimal.NewFromInt(int64(q)))
}

// Date renders a timestamp as DD/MM/YYYY, the display and search form of
// dataCriacao.
func Date(t time.Time) string {
	return t.Format("02/01/2006")
}

func parseDecimal(formatted string) decimal.Decimal {
	s := strings.TrimSpace(formatted)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
