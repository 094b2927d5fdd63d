// internal/pkg/currency/idr.go
package currency

import "strconv"

// ToIDR formats a whole-rupiah amount with a "." thousands separator every
// three digits: ToIDR(1234567) == "Rp. 1.234.567". Amounts are integer-only;
// there is no fractional part.
func ToIDR(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	grouped := make([]byte, 0, len(digits)+len(digits)/3)
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, '.')
		}
		grouped = append(grouped, d)
	}

	return "Rp. " + sign + string(grouped)
}
