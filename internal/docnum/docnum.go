package docnum

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Format is "{PREFIX}-{YYMM}-{NNNN}", e.g. "INV-2506-0001". The sequence
// resets implicitly each month because the year-month is part of the match.
// Uniqueness holds per prefix under serialized generation.

// Generate returns the next document number for prefix at time now, scanning
// existing numbers for the current year-month and incrementing the max
// sequence.
func Generate(prefix string, existing []string, now time.Time) string {
	ym := now.Format("0601")
	re := regexp.MustCompile(fmt.Sprintf(`^%s-%s-(\d+)$`, regexp.QuoteMeta(prefix), ym))

	maxSeq := 0
	for _, number := range existing {
		m := re.FindStringSubmatch(number)
		if m == nil {
			continue
		}
		seq, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return fmt.Sprintf("%s-%s-%04d", prefix, ym, maxSeq+1)
}

var numberRe = regexp.MustCompile(`^([A-Z]+)-(\d{4})-(\d+)$`)

// Parse splits a document number into prefix, year-month, and sequence.
func Parse(number string) (prefix, yearMonth string, seq int, err error) {
	m := numberRe.FindStringSubmatch(number)
	if m == nil {
		return "", "", 0, fmt.Errorf("invalid document number: %q", number)
	}
	seq, err = strconv.Atoi(m[3])
	if err != nil {
		return "", "", 0, fmt.Errorf("invalid sequence in %q: %w", number, err)
	}
	return m[1], m[2], seq, nil
}
