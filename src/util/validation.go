package util

import (
	"math"
	"time"
)

func ValidateAmount(amount float64) bool {
	return amount > 0 && !math.IsInf(amount, 1) && !math.IsNaN(amount)
}

func ValidateDate(date time.Time) bool {
	return !date.IsZero()
}

func ValidateYear(year int) bool {
	return year >= 1970 && year <= 9999
}
