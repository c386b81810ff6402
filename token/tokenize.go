package token

import (
	"strings"

	"github.com/signadot/yamled-format/go-yamled/ir"
)

// Tokenize splits d on line terminators and classifies each line.
// Classification priority: blank, comment, sequence item, mapping
// start, block scalar header, key/value, and finally the defensive
// comment fallback.
func Tokenize(d []byte) []*ir.Node {
	if len(d) == 0 {
		return nil
	}
	s := strings.TrimSuffix(string(d), "\n")
	lines := strings.Split(s, "\n")
	res := make([]*ir.Node, 0, len(lines))
	i := 0
	for i < len(lines) {
		node, consumed := tokenizeAt(lines, i)
		res = append(res, node)
		i += consumed
	}
	return res
}

func tokenizeAt(lines []string, i int) (*ir.Node, int) {
	ln := lines[i]
	indent := Indent(ln)
	trimmed := strings.TrimSpace(ln)
	switch {
	case trimmed == "":
		return &ir.Node{Kind: ir.BlankLine, Raw: ln}, 1
	case strings.HasPrefix(trimmed, "#"):
		return &ir.Node{Kind: ir.Comment, Indent: indent, Raw: ln}, 1
	case trimmed == "-" || strings.HasPrefix(trimmed, "- "):
		content := strings.TrimSpace(strings.TrimPrefix(trimmed, "-"))
		return &ir.Node{
			Kind:   ir.SequenceItem,
			Indent: indent,
			Value:  ParseScalar(content),
			Raw:    ln,
		}, 1
	}
	key, rest, ok := splitKey(trimmed)
	if !ok {
		// unparseable line; keep it verbatim rather than fail
		return &ir.Node{Kind: ir.Comment, Indent: indent, Raw: ln}, 1
	}
	switch rest {
	case "":
		return &ir.Node{Kind: ir.MappingStart, Key: key, Indent: indent, Raw: ln}, 1
	case "|":
		return consumeBlock(lines, i, ir.LiteralBlock, key, indent)
	case ">":
		return consumeBlock(lines, i, ir.FoldedBlock, key, indent)
	}
	return &ir.Node{
		Kind:   ir.KeyValue,
		Key:    key,
		Indent: indent,
		Value:  ParseScalar(rest),
		Raw:    ln,
	}, 1
}

// splitKey splits a trimmed line into key and remainder. The colon
// must be followed by whitespace or end of line; anything else (URLs,
// prose with colons) is not a mapping entry.
func splitKey(s string) (key, rest string, ok bool) {
	i := strings.Index(s, ":")
	if i <= 0 {
		return "", "", false
	}
	key = strings.TrimSpace(s[:i])
	rest = s[i+1:]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return "", "", false
	}
	return key, strings.TrimSpace(rest), true
}

// consumeBlock scans the content lines of a `key: |` or `key: >`
// header. The base indentation is that of the first non-blank line
// following the header; lines at or beyond it are content. A blank
// line is interior content only if a later line still qualifies,
// otherwise scanning stops and the blank is re-tokenized normally.
//
// The node keeps two renditions: Value holds the dedented content
// with a single trailing newline, Raw the verbatim source lines. The
// aligner needs the former, the encoder the latter.
func consumeBlock(lines []string, i int, kind ir.Kind, key string, indent int) (*ir.Node, int) {
	raw := []string{lines[i]}
	var content []string
	base := -1
	j := i + 1
	for j < len(lines) {
		ln := lines[j]
		if strings.TrimSpace(ln) == "" {
			k := j
			for k < len(lines) && strings.TrimSpace(lines[k]) == "" {
				k++
			}
			if k == len(lines) {
				break
			}
			next := Indent(lines[k])
			if base < 0 {
				if next <= indent {
					break
				}
			} else if next < base {
				break
			}
			for ; j < k; j++ {
				raw = append(raw, lines[j])
				content = append(content, "")
			}
			continue
		}
		li := Indent(ln)
		if base < 0 {
			if li <= indent {
				break
			}
			base = li
		} else if li < base {
			break
		}
		raw = append(raw, ln)
		content = append(content, dedent(ln, base))
		j++
	}
	value := ""
	if len(content) != 0 {
		value = strings.Join(content, "\n") + "\n"
	}
	return &ir.Node{
		Kind:   kind,
		Key:    key,
		Indent: indent,
		Value:  ir.FromString(value),
		Raw:    strings.Join(raw, "\n"),
	}, j - i
}

// Indent counts leading whitespace. Tabs are not YAML-legal but are
// tolerated, counting as one unit for level arithmetic.
func Indent(ln string) int {
	n := 0
	for _, r := range ln {
		if r != ' ' && r != '\t' {
			break
		}
		n++
	}
	return n
}

func dedent(ln string, base int) string {
	i := 0
	for i < len(ln) && i < base && (ln[i] == ' ' || ln[i] == '\t') {
		i++
	}
	return ln[i:]
}
