package ingest

import (
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/retailatlas/store-locator/api/internal/domain"
)

// ParseWeeklyHours parses the feed's free-text weekly-hours column into
// open-hour triples. The expected shape is a comma-separated list of
// segments like "Monday 7:20 AM - 10:40 PM"; times become HHMM integers
// with 1200 added for PM. Malformed segments fail with
// ErrMalformedSourceData so the caller can abort the batch.
func ParseWeeklyHours(raw string) ([]domain.OpenHour, error) {
	hours := make([]domain.OpenHour, 0, 7)
	for _, segment := range strings.Split(raw, ",") {
		segment = strings.ToLower(strings.TrimSpace(segment))
		if segment == "" {
			continue
		}

		parts := strings.Split(segment, " ")
		if len(parts) != 6 || parts[3] != "-" {
			return nil, eris.Wrapf(domain.ErrMalformedSourceData, "hours: segment %q", segment)
		}

		day := parts[0]
		if !domain.IsDay(day) {
			return nil, eris.Wrapf(domain.ErrMalformedSourceData, "hours: unknown day %q", day)
		}

		start, err := parseClock(parts[1], parts[2])
		if err != nil {
			return nil, eris.Wrapf(err, "hours: segment %q", segment)
		}
		end, err := parseClock(parts[4], parts[5])
		if err != nil {
			return nil, eris.Wrapf(err, "hours: segment %q", segment)
		}

		// Start may exceed end: noon opens become 2400 under the +1200
		// rule and overnight spans end before they start. Both are stored
		// as given.
		hours = append(hours, domain.OpenHour{Day: day, Start: start, End: end})
	}
	return hours, nil
}

// parseClock turns "7:20" + "am"/"pm" into an HHMM integer (720 / 1920).
func parseClock(clock, meridiem string) (int, error) {
	value, err := strconv.Atoi(strings.Replace(clock, ":", "", 1))
	if err != nil {
		return 0, eris.Wrapf(domain.ErrMalformedSourceData, "clock %q", clock)
	}
	if strings.Contains(meridiem, "pm") {
		value += 1200
	}
	return value, nil
}
