package database

import "strings"

// listSeparator joins string-list columns into a single TEXT value. A
// record separator keeps the encoding safe for phrases containing commas
// and works identically on both dialects.
const listSeparator = "\x1e"

func joinList(values []string) string {
	return strings.Join(values, listSeparator)
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	return strings.Split(value, listSeparator)
}
