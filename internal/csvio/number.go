package csvio

import "github.com/shopspring/decimal"

// ParseOptionalNumber parses a numeric cell. Empty or unparseable input
// yields nil; callers decide what the absence of a value means.
func ParseOptionalNumber(s string) *float64 {
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	f, _ := d.Float64()
	return &f
}

// formatNumber renders a float without binary-representation artifacts,
// so 0.1+0.2 comes out as "0.3" and integers carry no trailing ".0".
// Six decimal places is far beyond any price entered in the app.
func formatNumber(f float64) string {
	return decimal.NewFromFloat(f).Round(6).String()
}
