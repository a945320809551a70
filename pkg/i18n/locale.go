package i18n

import "golang.org/x/text/language"

// MatchLocale negotiates the best locale for an Accept-Language header
// against the supported list. The first supported locale wins when the
// header is empty or matches nothing.
func MatchLocale(acceptLanguage string, supported []string) string {
	if len(supported) == 0 {
		return ""
	}
	if acceptLanguage == "" {
		return supported[0]
	}

	tags := make([]language.Tag, 0, len(supported))
	for _, loc := range supported {
		tag, err := language.Parse(loc)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		return supported[0]
	}

	wanted, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(wanted) == 0 {
		return supported[0]
	}

	_, index, conf := language.NewMatcher(tags).Match(wanted...)
	if conf == language.No {
		return supported[0]
	}
	return supported[index]
}
