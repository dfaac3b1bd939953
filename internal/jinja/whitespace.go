package jinja

import (
	"regexp"
	"strings"
)

const (
	blockStart   = "{%"
	blockEnd     = "%}"
	commentStart = "{#"
	commentEnd   = "#}"
)

var (
	rawBeginRe = regexp.MustCompile(`^\{%[-+]?\s*raw\s*[-+]?%\}`)
	rawEndRe   = regexp.MustCompile(`\{%[-+]?\s*endraw\s*[-+]?%\}`)
)

// stripBlocks applies Jinja's block whitespace control to template source.
// With trim, the first newline after a block or comment tag is removed. With
// lstrip, spaces and tabs between the start of a line and a block or comment
// tag are removed. Variable tags are left alone, and the body of a raw block
// is copied unchanged except for the indentation of its endraw tag.
func stripBlocks(src string, trim, lstrip bool) string {
	if !trim && !lstrip {
		return src
	}

	var b strings.Builder
	b.Grow(len(src))

	writeText := func(from, to int) {
		if lstrip {
			to = indentStart(src, from, to)
		}
		b.WriteString(src[from:to])
	}
	skipNewline := func(pos int) int {
		if !trim {
			return pos
		}
		switch {
		case strings.HasPrefix(src[pos:], "\r\n"):
			return pos + 2
		case strings.HasPrefix(src[pos:], "\n"):
			return pos + 1
		}
		return pos
	}

	pos := 0
	for pos < len(src) {
		tagStart, end := nextTag(src, pos)
		if tagStart < 0 {
			b.WriteString(src[pos:])
			break
		}
		writeText(pos, tagStart)

		if loc := rawBeginRe.FindStringIndex(src[tagStart:]); loc != nil {
			bodyStart := tagStart + loc[1]
			b.WriteString(src[tagStart:bodyStart])

			endLoc := rawEndRe.FindStringIndex(src[bodyStart:])
			if endLoc == nil {
				b.WriteString(src[bodyStart:])
				break
			}
			endStart, endStop := bodyStart+endLoc[0], bodyStart+endLoc[1]
			writeText(bodyStart, endStart)
			b.WriteString(src[endStart:endStop])
			pos = skipNewline(endStop)
			continue
		}

		relEnd := strings.Index(src[tagStart+len(end):], end)
		if relEnd < 0 {
			b.WriteString(src[tagStart:])
			break
		}
		tagEnd := tagStart + len(end) + relEnd + len(end)
		b.WriteString(src[tagStart:tagEnd])
		pos = skipNewline(tagEnd)
	}

	return b.String()
}

// nextTag finds the next block or comment tag at or after pos and returns its
// offset with the matching closing delimiter, or -1.
func nextTag(src string, pos int) (int, string) {
	block := strings.Index(src[pos:], blockStart)
	comment := strings.Index(src[pos:], commentStart)
	switch {
	case block < 0 && comment < 0:
		return -1, ""
	case comment < 0 || (block >= 0 && block < comment):
		return pos + block, blockEnd
	default:
		return pos + comment, commentEnd
	}
}

// indentStart returns where trailing spaces and tabs of src[from:to] begin when
// they open their line, otherwise to.
func indentStart(src string, from, to int) int {
	k := to
	for k > from && (src[k-1] == ' ' || src[k-1] == '\t') {
		k--
	}
	if k == 0 || src[k-1] == '\n' {
		return k
	}
	return to
}
