package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"art-auction-backend/internal/baserow"
)

// parseAmount parses a string-encoded decimal with lenient semantics: an
// empty or unparseable string yields 0, never an error. Prices and bid
// values arrive from the table store as strings.
func parseAmount(s string) float64 {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	f, _ := d.Float64()
	return f
}

// parseCount parses a string-encoded integer, defaulting to 0.
func parseCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// formatAmount renders a bid value the way the store expects it: a plain
// decimal string without a trailing zero fraction.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseDate accepts the date formats the store produces (full ISO-8601
// timestamps and bare dates). ok is false when nothing matches.
func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// firstImageURL returns the first attachment's URL, or nil when the field
// is empty.
func firstImageURL(images []baserow.Image) *string {
	if len(images) == 0 {
		return nil
	}
	url := images[0].URL
	return &url
}

// imageURLs flattens attachments to their URLs; always non-nil so the field
// serializes as [].
func imageURLs(images []baserow.Image) []string {
	urls := make([]string, 0, len(images))
	for _, img := range images {
		urls = append(urls, img.URL)
	}
	return urls
}

func containsRef(refs []baserow.Reference, id int) bool {
	for _, ref := range refs {
		if ref.ID == id {
			return true
		}
	}
	return false
}
