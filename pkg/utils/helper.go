package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseID parses a positive numeric identifier typed at the prompt.
func ParseID(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty id")
	}

	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse id %q: %w", value, err)
	}

	if id < 1 {
		return 0, fmt.Errorf("id %d must be positive", id)
	}

	return id, nil
}

// SplitList splits comma-separated input, dropping blank entries.
func SplitList(raw string) []string {
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}
