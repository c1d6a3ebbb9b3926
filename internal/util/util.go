// internal/util/util.go
// Package util holds small rune-aware text helpers shared by the tool
// transforms and the terminal renderer.
package util

import (
	"strings"
	"unicode/utf8"
)

// PrefixRunes returns at most the first maxRunes characters of text.
func PrefixRunes(text string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	if utf8.RuneCountInString(text) <= maxRunes {
		return text
	}
	return string([]rune(text)[:maxRunes])
}

// WrapToWidth wraps the given text to a specified width, breaking long words.
// Leading indentation of each line is preserved so wrapped JSON stays readable.
func WrapToWidth(text string, width int) string {
	if width <= 0 {
		return text
	}
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if utf8.RuneCountInString(line) <= width {
			out = append(out, line)
			continue
		}
		indent := line[:len(line)-len(strings.TrimLeft(line, " "))]
		if utf8.RuneCountInString(indent) >= width {
			indent = ""
		}
		avail := width - len(indent)

		var cur strings.Builder
		runeCount := 0
		flush := func() {
			if runeCount > 0 {
				out = append(out, indent+cur.String())
				cur.Reset()
				runeCount = 0
			}
		}
		for _, w := range strings.Fields(line) {
			wLen := utf8.RuneCountInString(w)
			space := 0
			if runeCount > 0 {
				space = 1
			}
			if runeCount+space+wLen <= avail {
				if space == 1 {
					cur.WriteByte(' ')
				}
				cur.WriteString(w)
				runeCount += space + wLen
				continue
			}
			flush()
			if wLen <= avail {
				cur.WriteString(w)
				runeCount = wLen
				continue
			}
			r := []rune(w)
			for start := 0; start < len(r); start += avail {
				end := min(start+avail, len(r))
				if end-start == avail {
					out = append(out, indent+string(r[start:end]))
					continue
				}
				cur.WriteString(string(r[start:end]))
				runeCount = end - start
			}
		}
		flush()
	}
	return strings.Join(out, "\n")
}
