package redfin

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePrice converts Redfin price text into a numeric value.
// Examples:
//
//	"$450K"    → 450000
//	"$875,250" → 875250
//	"$1.2K"    → 1200
//
// Anything that does not survive the strip steps as a positive number is
// ErrUnparsablePrice.
func ParsePrice(text string) (float64, error) {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.ReplaceAll(cleaned, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")

	multiplier := 1.0
	if strings.HasSuffix(strings.ToUpper(cleaned), "K") {
		cleaned = cleaned[:len(cleaned)-1]
		multiplier = 1000
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnparsablePrice, text)
	}

	price := value * multiplier
	if price <= 0 {
		return 0, fmt.Errorf("%w: non-positive price %q", ErrUnparsablePrice, text)
	}
	return price, nil
}
