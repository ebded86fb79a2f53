package validation

import (
	"regexp"
	"strings"
)

var signatureRe = regexp.MustCompile(`^def\s+(\w+)\s*\(`)

// EntryPointName extracts the function name from a signature such as
// "def twoSum(nums, target):". Falls back to "solution" when the signature
// does not parse.
func EntryPointName(signature string) string {
	match := signatureRe.FindStringSubmatch(strings.TrimSpace(signature))
	if match == nil {
		return "solution"
	}
	return match[1]
}
