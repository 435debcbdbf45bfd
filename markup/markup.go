// Package markup prepares highlighted snippet markup for the clipboard.
//
// Format injects presentation styles into the root block and optionally
// numbers the lines of the nested code block. It works on the raw markup
// bytes: everything outside the root opening tag and the code block content
// is passed through unchanged.
package markup

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

const (
	DefaultFontSize   = 14
	DefaultLineHeight = 1.5

	// FontFamily is the monospace stack written into the root block.
	FontFamily = "'Courier New', monospace"
)

var (
	ErrNoRootBlock = errors.New("markup: no root block")
	ErrNoCodeBlock = errors.New("markup: no code block inside root block")
)

// Options controls Format.
type Options struct {
	// FontSize in pixels. Zero means DefaultFontSize.
	FontSize int
	// LineHeight multiplier. Zero means DefaultLineHeight.
	LineHeight float64
	// LineNumbers prefixes code lines with "N. ".
	LineNumbers bool
}

func (o Options) normalized() Options {
	if o.FontSize <= 0 {
		o.FontSize = DefaultFontSize
	}
	if o.LineHeight <= 0 {
		o.LineHeight = DefaultLineHeight
	}
	return o
}

// Declarations returns the style declarations Format injects, in order.
func (o Options) Declarations() []Declaration {
	o = o.normalized()
	return []Declaration{
		{Property: "font-family", Value: FontFamily},
		{Property: "font-size", Value: strconv.Itoa(o.FontSize) + "px"},
		{Property: "line-height", Value: strconv.FormatFloat(o.LineHeight, 'f', -1, 64)},
	}
}

// Format styles the root block of highlighted and, when requested, numbers
// the first N lines of its code block where N is the line count of code.
// Content lines past N are left as they are.
func Format(highlighted, code string, opt Options) (string, error) {
	doc, err := scan(highlighted)
	if err != nil {
		return "", err
	}

	content := highlighted[doc.contentStart:doc.contentEnd]
	if opt.LineNumbers {
		content = NumberLines(content, strings.Count(code, "\n")+1)
	}

	var sb strings.Builder
	sb.Grow(len(highlighted) + len(content) - (doc.contentEnd - doc.contentStart) + 96)
	sb.WriteString(highlighted[:doc.rootStart])
	sb.WriteString(rootTag(doc.rootName, doc.rootAttrs, opt.Declarations()))
	sb.WriteString(highlighted[doc.rootEnd:doc.contentStart])
	sb.WriteString(content)
	sb.WriteString(highlighted[doc.contentEnd:])
	return sb.String(), nil
}

// NumberLines prefixes the first n '\n'-separated lines of content with
// their 1-based number followed by ". ".
func NumberLines(content string, n int) string {
	lines := strings.Split(content, "\n")
	for i := range lines {
		if i >= n {
			break
		}
		lines[i] = strconv.Itoa(i+1) + ". " + lines[i]
	}
	return strings.Join(lines, "\n")
}

type document struct {
	rootName  string
	rootAttrs []html.Attribute

	// Byte offsets into the source markup.
	rootStart, rootEnd       int
	contentStart, contentEnd int
}

// scan locates the root opening tag and the content of the first code block
// nested in it.
func scan(src string) (document, error) {
	var doc document
	z := html.NewTokenizer(strings.NewReader(src))

	const (
		wantRoot = iota
		wantCode
		inCode
	)
	state := wantRoot
	depth, rootDepth := 0, 0
	off := 0
	for {
		tt := z.Next()
		start := off
		off += len(z.Raw())

		if tt == html.ErrorToken {
			if err := z.Err(); err != nil && !errors.Is(err, io.EOF) {
				return document{}, fmt.Errorf("markup: tokenize: %w", err)
			}
			break
		}
		if tt != html.StartTagToken && tt != html.EndTagToken {
			continue
		}

		name, hasAttr := z.TagName()
		tag := string(name)
		switch state {
		case wantRoot:
			if tt != html.StartTagToken {
				continue
			}
			doc.rootName = tag
			doc.rootStart, doc.rootEnd = start, off
			for hasAttr {
				var k, v []byte
				k, v, hasAttr = z.TagAttr()
				doc.rootAttrs = append(doc.rootAttrs, html.Attribute{Key: string(k), Val: string(v)})
			}
			rootDepth = 1
			state = wantCode
		case wantCode:
			if tag == doc.rootName {
				if tt == html.StartTagToken {
					rootDepth++
				} else if rootDepth--; rootDepth == 0 {
					return document{}, ErrNoCodeBlock
				}
				continue
			}
			if tt == html.StartTagToken && tag == "code" {
				doc.contentStart = off
				depth = 1
				state = inCode
			}
		case inCode:
			if tag != "code" {
				continue
			}
			if tt == html.StartTagToken {
				depth++
				continue
			}
			depth--
			if depth == 0 {
				doc.contentEnd = start
				return doc, nil
			}
		}
	}

	switch state {
	case wantRoot:
		return document{}, ErrNoRootBlock
	case wantCode:
		return document{}, ErrNoCodeBlock
	default:
		// Unterminated code block: the content runs to the end of input.
		doc.contentEnd = len(src)
		return doc, nil
	}
}

// attrEscaper escapes double-quoted attribute values. Single quotes stay
// literal so font stacks read naturally.
var attrEscaper = strings.NewReplacer(`&`, "&amp;", `"`, "&quot;")

func rootTag(name string, attrs []html.Attribute, decls []Declaration) string {
	var sb strings.Builder
	sb.WriteString("<" + name)
	styled := false
	for _, a := range attrs {
		val := a.Val
		if a.Key == "style" {
			if styled {
				// Browsers honor only the first style attribute.
				continue
			}
			styled = true
			val = MergeStyle(val, decls)
		}
		key := a.Key
		if a.Namespace != "" {
			key = a.Namespace + ":" + key
		}
		sb.WriteString(" " + key + `="` + attrEscaper.Replace(val) + `"`)
	}
	if !styled {
		sb.WriteString(` style="` + attrEscaper.Replace(MergeStyle("", decls)) + `"`)
	}
	sb.WriteString(">")
	return sb.String()
}

// Declaration is one CSS property: value pair.
type Declaration struct {
	Property string
	Value    string
}

// ParseStyle splits an inline style attribute value into declarations.
// Empty and malformed entries are dropped.
func ParseStyle(s string) []Declaration {
	var out []Declaration
	for _, part := range strings.Split(s, ";") {
		prop, val, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		val = strings.TrimSpace(val)
		if prop == "" {
			continue
		}
		out = append(out, Declaration{Property: prop, Value: val})
	}
	return out
}

// MergeStyle appends decls to an existing inline style, replacing any prior
// declaration of the same properties.
func MergeStyle(existing string, decls []Declaration) string {
	override := make(map[string]bool, len(decls))
	for _, d := range decls {
		override[d.Property] = true
	}

	kept := ParseStyle(existing)
	out := make([]string, 0, len(kept)+len(decls))
	for _, d := range kept {
		if override[d.Property] {
			continue
		}
		out = append(out, d.Property+": "+d.Value)
	}
	for _, d := range decls {
		out = append(out, d.Property+": "+d.Value)
	}
	return strings.Join(out, "; ") + ";"
}
