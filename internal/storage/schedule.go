// ABOUTME: Versioned serialization of weekday schedules at the storage boundary.
// ABOUTME: Encoding v1 is "v1:" followed by sorted comma-separated weekday codes.
package storage

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ekaterinarb/tracker/internal/models"
)

const scheduleVersion = "v1"

// EncodeSchedule serializes a weekday set. The set is deduplicated and
// sorted by code first so the encoding round-trips the exact set regardless
// of input order. An empty set encodes as "v1:".
func EncodeSchedule(days []models.Weekday) string {
	norm := models.NormalizeSchedule(days)
	codes := make([]string, len(norm))
	for i, d := range norm {
		codes[i] = strconv.Itoa(int(d))
	}
	return scheduleVersion + ":" + strings.Join(codes, ",")
}

// DecodeSchedule parses an encoded weekday set.
func DecodeSchedule(s string) ([]models.Weekday, error) {
	version, body, ok := strings.Cut(s, ":")
	if !ok {
		return nil, fmt.Errorf("decode schedule: missing version prefix in %q", s)
	}
	if version != scheduleVersion {
		return nil, fmt.Errorf("decode schedule: unsupported version %q", version)
	}
	if body == "" {
		return []models.Weekday{}, nil
	}

	parts := strings.Split(body, ",")
	days := make([]models.Weekday, 0, len(parts))
	for _, p := range parts {
		code, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("decode schedule: bad weekday code %q", p)
		}
		d := models.Weekday(code)
		if !d.Valid() {
			return nil, fmt.Errorf("decode schedule: weekday code %d out of range", code)
		}
		days = append(days, d)
	}
	return models.NormalizeSchedule(days), nil
}
