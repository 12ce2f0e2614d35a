// Package duration computes the elapsed period label of a career history entry.
package duration

import (
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/skillsheet-go/pkg/skillsheet/models"
)

// Compute returns the elapsed time between start and end as "{y}年{m}ヶ月".
// end may be models.CurrentPeriod, meaning today.
func Compute(start, end string) string {
	return ComputeAt(start, end, time.Now())
}

// ComputeAt is Compute with an explicit current date.
// Unparseable dates and a start after the end yield "".
func ComputeAt(start, end string, now time.Time) string {
	startDate, err := time.Parse(models.DateLayout, strings.TrimSpace(start))
	if err != nil {
		return ""
	}

	var endDate time.Time
	if strings.TrimSpace(end) == models.CurrentPeriod {
		endDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	} else {
		endDate, err = time.Parse(models.DateLayout, strings.TrimSpace(end))
		if err != nil {
			return ""
		}
	}

	if startDate.After(endDate) {
		return ""
	}

	return Format(Months(startDate, endDate))
}

// Months counts calendar months from start to end.
// A span inside a single month counts as one month.
func Months(start, end time.Time) int {
	total := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if total < 1 {
		return 1
	}
	return total
}

// Format renders a month count. The year part is omitted below twelve months.
func Format(months int) string {
	if months <= 0 {
		return ""
	}

	var b strings.Builder
	if years := months / 12; years > 0 {
		b.WriteString(strconv.Itoa(years))
		b.WriteString("年")
	}
	b.WriteString(strconv.Itoa(months % 12))
	b.WriteString("ヶ月")
	return b.String()
}
