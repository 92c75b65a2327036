// ABOUTME: Localized string lookup for user-facing text.
// ABOUTME: Pure key-to-string mapping; unknown keys fall back to the key itself.
package i18n

var messages = map[string]string{
	// Days
	"sunday":    "Sunday",
	"monday":    "Monday",
	"tuesday":   "Tuesday",
	"wednesday": "Wednesday",
	"thursday":  "Thursday",
	"friday":    "Friday",
	"saturday":  "Saturday",

	"sunday_short":    "Sun",
	"monday_short":    "Mon",
	"tuesday_short":   "Tue",
	"wednesday_short": "Wed",
	"thursday_short":  "Thu",
	"friday_short":    "Fri",
	"saturday_short":  "Sat",

	// Common
	"trackers_title":          "Trackers",
	"search_placeholder":      "Search",
	"no_trackers_placeholder": "Nothing to track yet",
	"nothing_found":           "Nothing found",
	"every_day":               "Every day",
	"future_date_error":       "cannot mark completion for a future date",
}

// Localize returns the display string for key, or the key itself when no
// translation is registered.
func Localize(key string) string {
	if s, ok := messages[key]; ok {
		return s
	}
	return key
}
