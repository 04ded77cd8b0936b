package stream

import (
	"fmt"
	"media-share/internal/core/domain"
	"strconv"
	"strings"
)

const rangeUnit = "bytes="

// ParseRange parses a single-range Range header against a file of the given size.
//
// Supported forms are "bytes=start-end", "bytes=start-" and the suffix form "bytes=-n".
// An end past EOF is clamped to size-1 and a suffix longer than the file selects the
// whole file (RFC 7233 section 2.1). Multi-range headers, other units, malformed values
// and ranges starting at or after EOF return domain.ErrRangeUnsatisfiable.
func ParseRange(header string, size int64) (domain.ByteRange, error) {
	header = strings.TrimSpace(header)
	if len(header) < len(rangeUnit) || !strings.EqualFold(header[:len(rangeUnit)], rangeUnit) {
		return domain.ByteRange{}, fmt.Errorf("%w: unsupported unit in %q", domain.ErrRangeUnsatisfiable, header)
	}

	rangeSet := strings.TrimSpace(header[len(rangeUnit):])
	if strings.Contains(rangeSet, ",") {
		return domain.ByteRange{}, fmt.Errorf("%w: multiple ranges", domain.ErrRangeUnsatisfiable)
	}

	startStr, endStr, ok := strings.Cut(rangeSet, "-")
	if !ok {
		return domain.ByteRange{}, fmt.Errorf("%w: missing dash in %q", domain.ErrRangeUnsatisfiable, rangeSet)
	}
	startStr = strings.TrimSpace(startStr)
	endStr = strings.TrimSpace(endStr)

	if size <= 0 {
		return domain.ByteRange{}, fmt.Errorf("%w: empty file", domain.ErrRangeUnsatisfiable)
	}

	if startStr == "" {
		suffix, err := parsePosition(endStr)
		if err != nil {
			return domain.ByteRange{}, err
		}
		if suffix == 0 {
			return domain.ByteRange{}, fmt.Errorf("%w: zero length suffix", domain.ErrRangeUnsatisfiable)
		}
		if suffix > size {
			suffix = size
		}
		return domain.ByteRange{Start: size - suffix, End: size - 1}, nil
	}

	start, err := parsePosition(startStr)
	if err != nil {
		return domain.ByteRange{}, err
	}

	end := size - 1
	if endStr != "" {
		end, err = parsePosition(endStr)
		if err != nil {
			return domain.ByteRange{}, err
		}
		if start > end {
			return domain.ByteRange{}, fmt.Errorf("%w: start %d after end %d", domain.ErrRangeUnsatisfiable, start, end)
		}
	}

	if start >= size {
		return domain.ByteRange{}, fmt.Errorf("%w: start %d beyond size %d", domain.ErrRangeUnsatisfiable, start, size)
	}
	if end > size-1 {
		end = size - 1
	}

	return domain.ByteRange{Start: start, End: end}, nil
}

// parsePosition accepts ASCII digits only, so signs and spaces are rejected
func parsePosition(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty position", domain.ErrRangeUnsatisfiable)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("%w: invalid position %q", domain.ErrRangeUnsatisfiable, s)
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrRangeUnsatisfiable, err)
	}
	return n, nil
}
