package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

// Each heuristic used by the extractors is a named pure function so it can
// be unit-tested on its own.

var (
	numberRe         = regexp.MustCompile(`\d+(?:\.\d+)?`)
	trailingNumberRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*$`)
	leadingEnumRe    = regexp.MustCompile(`^\d+[.\-]?\s*`)
	parenPosRe       = regexp.MustCompile(`\(([A-Z/]+)\)`)
	teamCodeRe       = regexp.MustCompile(`^[A-Z]{2,4}$`)
	urlRe            = regexp.MustCompile(`(?i)^https?://`)
	chromeRe         = regexp.MustCompile(`(?i)https?://\S+|ADP Data|Season|Updated|\bBL(END)?\b`)
)

// FirstNumber extracts the first integer or decimal substring found
// anywhere in s. Handles cells with trailing annotations like "3.5 *".
func FirstNumber(s string) (float64, bool) {
	m := numberRe.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// TrailingNumber requires an integer or decimal token at the very end of
// line. On success it returns the value and the line with the token
// stripped.
func TrailingNumber(line string) (float64, string, bool) {
	m := trailingNumberRe.FindStringSubmatch(line)
	if m == nil {
		return 0, line, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, line, false
	}
	body := strings.TrimSpace(trailingNumberRe.ReplaceAllString(line, ""))
	return v, body, true
}

// StripEnumeration removes a leading index like "12." or "12-" from body.
func StripEnumeration(body string) string {
	return strings.TrimSpace(leadingEnumRe.ReplaceAllString(body, ""))
}

// ParenPosition finds a parenthesized group of uppercase letters and
// slashes, e.g. "(PG/SG)". It returns the group's contents and the body
// with the group removed; pos is empty when no group exists.
func ParenPosition(body string) (pos, rest string) {
	loc := parenPosRe.FindStringSubmatchIndex(body)
	if loc == nil {
		return "", body
	}
	pos = body[loc[2]:loc[3]]
	rest = Clean(body[:loc[0]] + " " + body[loc[1]:])
	return pos, rest
}

// IsTeamCode reports whether tok looks like a team abbreviation: 2 to 4
// uppercase letters.
func IsTeamCode(tok string) bool {
	return teamCodeRe.MatchString(tok)
}

// LooksLikeURL reports whether s starts with an http(s) scheme.
func LooksLikeURL(s string) bool {
	return urlRe.MatchString(s)
}

// IsChrome reports whether a text line is document chrome rather than a
// player row: URLs, header/footer vocabulary, or a standalone BL/BLEND
// token.
func IsChrome(line string) bool {
	return chromeRe.MatchString(line)
}
