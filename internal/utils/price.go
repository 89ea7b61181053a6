package utils

import (
	"fmt"
	"math"
	"strconv"
)

// FormatPrice renders an amount in South African rand the way the storefront
// displays it: no cents, thousands separated by spaces (en-ZA), e.g. "R 12 999".
func FormatPrice(price float64) string {
	negative := price < 0
	rounded := int64(math.Round(math.Abs(price)))

	digits := strconv.FormatInt(rounded, 10)
	var grouped []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, ' ')
		}
		grouped = append(grouped, d)
	}

	if negative {
		return fmt.Sprintf("-R %s", grouped)
	}
	return fmt.Sprintf("R %s", grouped)
}
