package format

import (
	"math"
	"strconv"
	"testing"
	"time"
)

func TestNormalize(t *testing.T) {
	t.Run("upper cases", func(t *testing.T) {
		if got := Normalize("troca de oleo"); got != "TROCA DE OLEO" {
			t.Fatalf("unexpected result: %q", got)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		once := Normalize("Fiat Uno 1.0")
		if got := Normalize(once); got != once {
			t.Fatalf("expected %q, got %q", once, got)
		}
	})
}

func TestDigitsOnly(t *testing.T) {
	cases := []struct {
		in, out string
	}{
		{"01310-100", "01310100"},
		{"(11) 98765-4321", "11987654321"},
		{"abc", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := DigitsOnly(tc.in); got != tc.out {
			t.Fatalf("DigitsOnly(%q) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestCEP(t *testing.T) {
	cases := []struct {
		in, out string
	}{
		{"01310100", "01310-100"},
		{"0131", "0131"},
		{"01310", "01310"},
		{"013101", "01310-1"},
		{"013101009999", "01310-100"},
		{"01310-100", "01310-100"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := CEP(tc.in); got != tc.out {
			t.Fatalf("CEP(%q) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestCurrency(t *testing.T) {
	cases := []struct {
		in, out string
	}{
		{"", "0,00"},
		{"abc", "0,00"},
		{"5", "0,05"},
		{"50", "0,50"},
		{"2500", "25,00"},
		{"10050", "100,50"},
		{"123456", "1.234,56"},
		{"1.234,56", "1.234,56"},
	}
	for _, tc := range cases {
		if got := Currency(tc.in); got != tc.out {
			t.Fatalf("Currency(%q) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestParseCurrency(t *testing.T) {
	cases := []struct {
		in  string
		out float64
	}{
		{"0,00", 0},
		{"25,00", 25},
		{"100,50", 100.5},
		{"1.234,56", 1234.56},
		{"", 0},
		{"abc", 0},
	}
	for _, tc := range cases {
		if got := ParseCurrency(tc.in); math.Abs(got-tc.out) > 1e-9 {
			t.Fatalf("ParseCurrency(%q) = %v, want %v", tc.in, got, tc.out)
		}
	}
}

func TestCurrencyRoundTrip(t *testing.T) {
	for cents := 0; cents <= 200000; cents += 37 {
		formatted := Currency(strconv.Itoa(cents))
		got := ParseCurrency(formatted)
		want := float64(cents) / 100
		if math.Abs(got-want) > 1e-9 {
			t.Fatalf("round trip for %d centavos: formatted %q, parsed %v, want %v", cents, formatted, got, want)
		}
	}
}

func TestLineAmount(t *testing.T) {
	cases := []struct {
		name string
		qtd  string
		un   string
		want float64
	}{
		{name: "two parts", qtd: "2", un: "25,00", want: 50},
		{name: "one service", qtd: "1", un: "100,50", want: 100.5},
		{name: "grouped unit price", qtd: "2", un: "1.234,56", want: 2469.12},
		{name: "zero qtd", qtd: "0", un: "99,99", want: 0},
		{name: "empty un", qtd: "3", un: "", want: 0},
		{name: "malformed un", qtd: "3", un: "abc", want: 0},
		{name: "malformed qtd", qtd: "x", un: "25,00", want: 0},
		{name: "padded qtd", qtd: " 2 ", un: "10,00", want: 20},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, _ := LineAmount(tc.qtd, tc.un).Float64()
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("LineAmount(%q, %q) = %v, want %v", tc.qtd, tc.un, got, tc.want)
			}
		})
	}
}

func TestAmount(t *testing.T) {
	cases := []struct {
		in  float64
		out string
	}{
		{0, "0,00"},
		{150.5, "150,50"},
		{1234.56, "1.234,56"},
	}
	for _, tc := range cases {
		if got := Amount(tc.in); got != tc.out {
			t.Fatalf("Amount(%v) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestDate(t *testing.T) {
	ts := time.Date(2024, time.March, 7, 15, 4, 5, 0, time.UTC)
	if got := Date(ts); got != "07/03/2024" {
		t.Fatalf("unexpected date: %q", got)
	}
}
