// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package family

import (
	"strconv"
	"strings"
)

// Family is the contract every device-bridge address family type satisfies:
// it formats itself into the exact wire string the device bridge expects and
// it names the literal tag of its grammar. Parsing is the job of the
// per-family ParseXxx functions (and of [ParseAddress] for the union), as
// parsing constructs values rather than operating on them.
type Family interface {
	// String returns the canonical wire representation. Formatting is total
	// and never fails; the only value formatting to an empty string is the
	// empty Tcp sentinel.
	String() string
	// Tag returns the literal family tag, such as "tcp" or "localabstract",
	// without the separating colon.
	Tag() string
}

// cutTag strips the family tag together with its separating colon off an
// input and reports whether the input actually started with that prefix.
func cutTag(s string, tag string) (string, bool) {
	return strings.CutPrefix(s, tag+":")
}

// parseUint32 decodes an unsigned decimal 32 bit wire field. Signs, stray
// characters, empty fields, and overflow all fail; the strconv reason then
// travels along as the ParseError cause.
func parseUint32(field string, input string, target string) (uint32, error) {
	v, err := strconv.ParseUint(field, 10, 32)
	if err != nil {
		return 0, newParseError(input, target, err)
	}
	return uint32(v), nil
}

// formatUint32 is the formatting counterpart to parseUint32.
func formatUint32(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}
