package domain

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

var (
	plainSecondsPattern = regexp.MustCompile(`^-?\d+$`)
	clockTimePattern    = regexp.MustCompile(`^(?:(\d+)h)?(?:(\d+)m)?(?:(\d+)s)?$`)
)

// ParseTimecode parses a YouTube-style time parameter into whole seconds.
//
// Accepted forms are plain integer seconds ("90", "-5"), and unit suffixed
// forms such as "70s", "1m35s" or "1h2m3s". Each unit may be omitted but at
// least one must be present.
func ParseTimecode(value string) (int, error) {
	if value == "" {
		return 0, fmt.Errorf("empty timecode")
	}

	if plainSecondsPattern.MatchString(value) {
		seconds, err := strconv.ParseInt(value, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("timecode %q out of range", value)
		}
		return int(seconds), nil
	}

	groups := clockTimePattern.FindStringSubmatch(value)
	if groups == nil || (groups[1] == "" && groups[2] == "" && groups[3] == "") {
		return 0, fmt.Errorf("unrecognized timecode %q", value)
	}

	var total int64
	for i, unit := range []int64{3600, 60, 1} {
		part := groups[i+1]
		if part == "" {
			continue
		}
		n, err := strconv.ParseInt(part, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("timecode %q out of range", value)
		}
		total += n * unit
		if total > math.MaxInt32 {
			return 0, fmt.Errorf("timecode %q out of range", value)
		}
	}
	return int(total), nil
}
