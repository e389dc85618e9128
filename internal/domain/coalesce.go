package domain

import "strings"

// CoalesceStr returns the first value that is not blank.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// CoalesceDash is CoalesceStr with a "-" placeholder for all-blank input.
func CoalesceDash(vals ...string) string {
	if v := CoalesceStr(vals...); v != "" {
		return v
	}
	return "-"
}
