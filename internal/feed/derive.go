package feed

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	orderPattern    = regexp.MustCompile(`(\d+)円以上`)
	discountPattern = regexp.MustCompile(`(\d+)円OFF`)
)

// ParseYenText extracts the order threshold and discount amount from text
// such as "4279円以上で443円OFF". Missing parts are zero.
func ParseYenText(s string) (orderPrice, discountPrice int) {
	s = strings.ReplaceAll(s, ",", "")
	if m := orderPattern.FindStringSubmatch(s); m != nil {
		orderPrice, _ = strconv.Atoi(m[1])
	}
	if m := discountPattern.FindStringSubmatch(s); m != nil {
		discountPrice, _ = strconv.Atoi(m[1])
	}
	return orderPrice, discountPrice
}

// DateKey returns the YYYYMMDD key offset days after day.
func DateKey(day time.Time, offset int) string {
	return day.AddDate(0, 0, offset).Format("20060102")
}

// ExecutionTime formats the run time as H:MM.
func ExecutionTime(t time.Time) string {
	return strconv.Itoa(t.Hour()) + ":" + t.Format("04")
}

// ParseRate reads a discount rate cell: either a ratio ("0.10344") or a
// percentage ("10.34%").
func ParseRate(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	percent := strings.HasSuffix(s, "%")
	f, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, "%")), 64)
	if err != nil {
		return 0, false
	}
	if percent {
		f /= 100
	}
	return f, true
}
