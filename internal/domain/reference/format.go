package reference

import (
	"fmt"
	"strings"
	"time"
)

const DefaultPrefix = "QUO"

// ResolvePrefix returns the company short code, or DefaultPrefix when the
// code is empty or blank.
func ResolvePrefix(companyShortCode string) string {
	if code := strings.TrimSpace(companyShortCode); code != "" {
		return code
	}
	return DefaultPrefix
}

// FormatFromCounter builds PREFIX-YYYYMMDD-NNNN. Values above 9999 keep all
// their digits.
func FormatFromCounter(prefix string, issuedAt time.Time, value int64) string {
	return fmt.Sprintf("%s-%s-%04d", prefix, issuedAt.Format("20060102"), value)
}

// FormatFallback builds PREFIX-<epoch millis>-RRR. The shape differs from the
// counter format so a degraded reference is recognisable. The disambiguator
// is reduced into 0..999.
func FormatFallback(prefix string, issuedAt time.Time, disambiguator int) string {
	rrr := (disambiguator%1000 + 1000) % 1000
	return fmt.Sprintf("%s-%d-%03d", prefix, issuedAt.UnixMilli(), rrr)
}
