package options

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseDays expands day arguments such as "3", "10-15" or "1,4,9-12" into a
// day list. Ranges may run backwards. Days above 31 are rejected here;
// bounds against the month are checked later by the widget.
func ParseDays(args []string) ([]int, error) {
	var days []int
	for _, arg := range args {
		for _, part := range strings.Split(arg, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			from, to, err := parseRange(part)
			if err != nil {
				return nil, err
			}
			step := 1
			if to < from {
				step = -1
			}
			for d := from; d != to+step; d += step {
				days = append(days, d)
			}
		}
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("no days given")
	}
	return days, nil
}

const maxDay = 31

func parseRange(part string) (int, int, error) {
	lo, hi := part, part
	if i := strings.Index(part, "-"); i > 0 {
		lo, hi = part[:i], part[i+1:]
	}
	from, err := strconv.Atoi(lo)
	if err != nil || from < 1 || from > maxDay {
		return 0, 0, fmt.Errorf("invalid day %q", part)
	}
	to, err := strconv.Atoi(hi)
	if err != nil || to < 1 || to > maxDay {
		return 0, 0, fmt.Errorf("invalid day %q", part)
	}
	return from, to, nil
}
