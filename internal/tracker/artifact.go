package tracker

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const suffixLen = 6

// ArtifactName derives a project name unique per run: slug(name)-<base36 time>-<run id prefix>.
// The run id part keeps runs started in the same millisecond, or sharing a business name, apart.
func ArtifactName(name string, at time.Time, runID string) string {
	ts := strconv.FormatInt(at.UnixMilli(), 36)
	if len(ts) > suffixLen {
		ts = ts[len(ts)-suffixLen:]
	}
	out := Slug(name) + "-" + ts
	if id := runToken(runID); id != "" {
		out += "-" + id
	}
	return out
}

func runToken(id string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(id) {
		if b.Len() == suffixLen {
			break
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Slug lowercases s, strips accents and joins runs of ASCII letters and digits with single dashes.
// Letters with no ASCII base form ("ß", "ø", CJK) act as separators.
func Slug(s string) string {
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(fold, s); err == nil {
		s = folded
	}
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	if b.Len() == 0 {
		return "site"
	}
	return b.String()
}
