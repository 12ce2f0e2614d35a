package writer

import (
	"strconv"
	"strings"

	"github.com/ukaji3/skillsheet-go/pkg/skillsheet/layout"
	"github.com/ukaji3/skillsheet-go/pkg/skillsheet/models"
)

// PeriodText formats the period cell of a career entry:
// "{start} 〜 {end}", with "\n({label})" appended when label is not empty.
func PeriodText(entry models.CareerHistoryEntry, label string) string {
	end := layout.PresentLabel
	if !entry.IsCurrent() {
		end = shortDate(entry.EndDate)
	}

	text := shortDate(entry.StartDate) + layout.PeriodSep + end
	if label != "" {
		text += "\n(" + label + ")"
	}
	return text
}

// shortDate turns a first-of-month date into YYYY-MM.
func shortDate(s string) string {
	s = strings.TrimSpace(s)
	if len(s) == len(models.DateLayout) && strings.HasSuffix(s, "-01") && models.ValidDate(s) {
		return s[:len("2006-01")]
	}
	return s
}

func withSuffix(v *int, suffix string) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v) + suffix
}

func maxLines(texts ...string) int {
	lines := 1
	for _, t := range texts {
		if n := layout.LineCount(t); n > lines {
			lines = n
		}
	}
	return lines
}
