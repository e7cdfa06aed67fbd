package utils

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount renders n with thousands separators, e.g. 1,250,000.
func FormatAmount(n int64) string {
	return amountPrinter.Sprintf("%d", n)
}

// NormalizeDate accepts YYYY-MM-DD or an RFC 3339 timestamp and returns the
// calendar date in YYYY-MM-DD form.
func NormalizeDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(DateLayout, raw); err == nil {
		return t.Format(DateLayout), nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return "", err
	}
	return t.UTC().Format(DateLayout), nil
}
