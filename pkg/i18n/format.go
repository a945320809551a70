package i18n

import (
	"fmt"
	"time"
)

// LocaleFormat formats dates and times for one locale.
// It is immutable and safe for concurrent use.
type LocaleFormat struct {
	dateLayout     string
	timeLayout     string
	dateTimeLayout string
	monthNames     [12]string
	dayFirst       bool
}

var localeFormats = map[string]LocaleFormat{
	"fr": {
		dateLayout:     "02/01/2006",
		timeLayout:     "15:04",
		dateTimeLayout: "02/01/2006 15:04",
		dayFirst:       true,
		monthNames: [12]string{
			"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre",
		},
	},
	"en": {
		dateLayout:     "01/02/2006",
		timeLayout:     "3:04 PM",
		dateTimeLayout: "01/02/2006 3:04 PM",
		monthNames: [12]string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
	},
}

// FormatFor returns the formatting rules of a locale.
// Unknown locales fall back to French, the site's primary language.
func FormatFor(locale string) LocaleFormat {
	if f, ok := localeFormats[locale]; ok {
		return f
	}
	return localeFormats[DefaultLocale]
}

// Date formats a short numeric date.
func (f LocaleFormat) Date(t time.Time) string {
	return t.Format(f.dateLayout)
}

// Time formats a time of day.
func (f LocaleFormat) Time(t time.Time) string {
	return t.Format(f.timeLayout)
}

// DateTime formats a full timestamp.
func (f LocaleFormat) DateTime(t time.Time) string {
	return t.Format(f.dateTimeLayout)
}

// LongDate formats a date with its written month name, the way post dates
// are displayed ("2 janvier 2006" / "January 2, 2006").
func (f LocaleFormat) LongDate(t time.Time) string {
	month := f.monthNames[t.Month()-1]
	if f.dayFirst {
		return fmt.Sprintf("%d %s %d", t.Day(), month, t.Year())
	}
	return fmt.Sprintf("%s %d, %d", month, t.Day(), t.Year())
}
