package booking

import "strings"

func isValidID(id int64) bool {
	return id > 0
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
