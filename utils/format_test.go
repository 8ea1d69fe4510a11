package utils

import (
	"testing"
	"time"
)

func TestFormatBRL(t *testing.T) {
	cases := map[float64]string{
		0:       "R$ 0.00",
		15:      "R$ 15.00",
		26.6666: "R$ 26.67",
	}
	for in, want := range cases {
		if got := FormatBRL(in); got != want {
			t.Errorf("FormatBRL(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(60); got != "60.0%" {
		t.Errorf("FormatPercent(60) = %q", got)
	}
	if got := FormatPercent(33.333); got != "33.3%" {
		t.Errorf("FormatPercent(33.333) = %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC)
	if got := FormatDate(d); got != "07/03/2026" {
		t.Errorf("FormatDate = %q", got)
	}
}

func TestFormatDateString(t *testing.T) {
	if got := FormatDateString("2026-12-31"); got != "31/12/2026" {
		t.Errorf("FormatDateString = %q", got)
	}
	if got := FormatDateString("não é data"); got != "não é data" {
		t.Errorf("unparseable input should pass through, got %q", got)
	}
}

func TestFormatQuantity(t *testing.T) {
	if got := FormatQuantity(3); got != "3" {
		t.Errorf("FormatQuantity(3) = %q", got)
	}
	if got := FormatQuantity(0.5); got != "0.5" {
		t.Errorf("FormatQuantity(0.5) = %q", got)
	}
}

func TestSlug(t *testing.T) {
	cases := map[string]string{
		"João Silva":       "joão-silva",
		"  Festa   Junina": "festa-junina",
		"MAIÚSCULAS":       "maiúsculas",
	}
	for in, want := range cases {
		if got := Slug(in); got != want {
			t.Errorf("Slug(%q) = %q, want %q", in, got, want)
		}
	}
}
