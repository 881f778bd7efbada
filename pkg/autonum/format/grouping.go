package format

import (
	"strings"

	"github.com/msto63/autonum/pkg/autonum/options"
)

// groupSizes yields the width of each digit group counted from the right
func groupSizes(spacing options.GroupSpacing) func(i int) int {
	switch spacing {
	case options.GroupFour:
		return func(int) int { return 4 }
	case options.GroupTwo:
		// Indian numbering: 12,34,56,789
		return func(i int) int {
			if i == 0 {
				return 3
			}
			return 2
		}
	case options.GroupTwoScaled:
		// 3-2-2 repeating: 1,23,45,678,90,12,345
		return func(i int) int {
			if i%3 == 0 {
				return 3
			}
			return 2
		}
	}
	return func(int) int { return 3 }
}

// groupDigits inserts sep between the digit groups of an unsigned integer
func groupDigits(digits, sep string, spacing options.GroupSpacing) string {
	if sep == "" {
		return digits
	}
	size := groupSizes(spacing)

	var groups []string
	end := len(digits)
	for i := 0; end > 0; i++ {
		start := end - size(i)
		if start < 0 {
			start = 0
		}
		groups = append(groups, digits[start:end])
		end = start
	}

	for i, j := 0, len(groups)-1; i < j; i, j = i+1, j-1 {
		groups[i], groups[j] = groups[j], groups[i]
	}
	return strings.Join(groups, sep)
}
