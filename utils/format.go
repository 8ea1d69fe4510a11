package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	lowerPTBR  = cases.Lower(language.BrazilianPortuguese)
	whitespace = regexp.MustCompile(`\s+`)
)

// FormatBRL renders a monetary value as a fixed two-decimal string
// with the literal R$ prefix. Display-only; the models keep full
// precision.
func FormatBRL(v float64) string {
	return fmt.Sprintf("R$ %.2f", v)
}

// FormatPercent renders a percentage with one decimal place.
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// FormatDate renders a date in day/month/year order.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatDateString re-renders an ISO date (as sent by the shell's date
// input) in day/month/year order. Unparseable input passes through.
func FormatDateString(s string) string {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s
	}
	return FormatDate(t)
}

// FormatQuantity drops trailing zeros for whole quantities.
func FormatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

// Slug derives a filename fragment from an entity's identifying name:
// lower-cased (pt-BR rules) with whitespace runs replaced by hyphens.
func Slug(name string) string {
	lowered := lowerPTBR.String(strings.TrimSpace(name))
	return whitespace.ReplaceAllString(lowered, "-")
}
