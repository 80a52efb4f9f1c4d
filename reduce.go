package docxtext

import (
	"iter"
	"regexp"
	"strings"
)

// markupPattern matches, in order of precedence:
//  1. a paragraph start tag with attributes, or a <w:br/> line break
//  2. a <w:t> text run, capturing a leading xml:space="preserve" and the payload
var markupPattern = regexp.MustCompile(
	`(?i)(?:(<w:p\s.*?>|<w:br/>)|<w:t(?:(?:\sxml:space="(preserve)")|\s.*?|)>(.*?)</w:t>)`)

// tokens scans markup left to right and yields one token per match.
func tokens(markup string) iter.Seq[token] {
	return func(yield func(token) bool) {
		for _, m := range markupPattern.FindAllStringSubmatchIndex(markup, -1) {
			var t token
			if m[2] >= 0 {
				t = token{kind: tokenBoundary}
			} else {
				t = token{kind: tokenRun, text: markup[m[6]:m[7]], preserve: m[4] >= 0}
			}
			if !yield(t) {
				return
			}
		}
	}
}

// reduceToText folds the document markup into plain text. Blank markup is
// returned as is.
func reduceToText(markup string) string {
	if isBlank(markup) {
		return markup
	}
	var sb strings.Builder
	for t := range tokens(markup) {
		switch t.kind {
		case tokenBoundary:
			sb.WriteByte(' ')
		case tokenRun:
			if t.preserve {
				sb.WriteString(t.text)
			} else {
				sb.WriteString(strings.TrimSpace(t.text))
			}
		}
	}
	return strings.TrimSpace(sb.String())
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
