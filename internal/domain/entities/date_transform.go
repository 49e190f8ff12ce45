package entities

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dateTokenPattern matches "$(date:FORMAT)" placeholders.
var dateTokenPattern = regexp.MustCompile(`\$\(date:([^)]*)\)`)

// dateFormatTokens is ordered longest first so "YYYY" wins over "YY".
//
//nolint:gochecknoglobals // fixed token table
var dateFormatTokens = []string{
	"YYYY", "MMMM", "dddd", "MMM", "ddd", "YY", "MM", "DD", "Do", "HH", "hh", "mm", "ss",
	"M", "D", "H", "h", "m", "s", "a", "A",
}

// TransformDates replaces every "$(date:FORMAT)" in value with now formatted by FORMAT.
// FORMAT uses the moment.js token vocabulary, e.g. "$(date:YYYY)" or "$(date:DD.MM.YYYY)".
func TransformDates(value string, now time.Time) string {
	if !strings.Contains(value, "$(date:") {
		return value
	}

	return dateTokenPattern.ReplaceAllStringFunc(value, func(match string) string {
		return FormatDate(now, dateTokenPattern.FindStringSubmatch(match)[1])
	})
}

// FormatDate renders now with a moment.js style format string. Text inside
// square brackets is copied literally and unknown characters pass through.
func FormatDate(now time.Time, format string) string {
	var builder strings.Builder

	for i := 0; i < len(format); {
		if format[i] == '[' {
			end := strings.IndexByte(format[i:], ']')
			if end > 0 {
				builder.WriteString(format[i+1 : i+end])
				i += end + 1
				continue
			}
		}

		token := matchDateToken(format[i:])
		if token == "" {
			builder.WriteByte(format[i])
			i++
			continue
		}

		builder.WriteString(renderDateToken(now, token))
		i += len(token)
	}

	return builder.String()
}

func matchDateToken(rest string) string {
	for _, token := range dateFormatTokens {
		if strings.HasPrefix(rest, token) {
			return token
		}
	}
	return ""
}

//nolint:cyclop,mnd // flat token switch
func renderDateToken(now time.Time, token string) string {
	switch token {
	case "YYYY":
		return strconv.Itoa(now.Year())
	case "YY":
		return now.Format("06")
	case "MMMM":
		return now.Format("January")
	case "MMM":
		return now.Format("Jan")
	case "MM":
		return now.Format("01")
	case "M":
		return strconv.Itoa(int(now.Month()))
	case "DD":
		return now.Format("02")
	case "D":
		return strconv.Itoa(now.Day())
	case "Do":
		return strconv.Itoa(now.Day()) + ordinalSuffix(now.Day())
	case "dddd":
		return now.Format("Monday")
	case "ddd":
		return now.Format("Mon")
	case "HH":
		return now.Format("15")
	case "H":
		return strconv.Itoa(now.Hour())
	case "hh":
		return now.Format("03")
	case "h":
		return now.Format("3")
	case "mm":
		return now.Format("04")
	case "m":
		return strconv.Itoa(now.Minute())
	case "ss":
		return now.Format("05")
	case "s":
		return strconv.Itoa(now.Second())
	case "a":
		return strings.ToLower(now.Format("PM"))
	case "A":
		return now.Format("PM")
	default:
		return token
	}
}

func ordinalSuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
