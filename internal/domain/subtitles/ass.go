// Package subtitles models an ASS subtitle document as produced by the
// external VTT converter and restyles its style-definition lines for Burmese
// rendering. Everything that is not a style line (headers, Format lines,
// Dialogue events) is carried byte-for-byte.
package subtitles

import (
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/thuralin/hardsub/internal/domain/styles"
)

const styleMarker = "Style: "

// V4+ style lines are fixed-arity comma records:
// Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour,
// OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX,
// ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL,
// MarginR, MarginV, Encoding
const styleFieldCount = 23

const (
	fieldFontname      = 1
	fieldFontsize      = 2
	fieldPrimaryColour = 3
	fieldOutlineColour = 5
	fieldBackColour    = 6
	fieldBorderStyle   = 15
	fieldOutline       = 16
	fieldShadow        = 17
	fieldEncoding      = 22
)

// Document is an ordered sequence of raw lines. It is born from the
// converter's output and dies once handed to the renderer; nothing is cached
// between jobs.
type Document struct {
	lines []string
}

// Parse builds a Document from converter output. A UTF-8 BOM, if the
// converter emitted one, is stripped so the document always serializes as
// plain UTF-8.
func Parse(content string) Document {
	if s, _, err := transform.String(unicode.UTF8BOM.NewDecoder(), content); err == nil {
		content = s
	}
	return Document{lines: strings.Split(content, "\n")}
}

// String serializes the document. The result is always plain UTF-8; cue text
// for Burmese requires it even though cues are never touched field-by-field.
func (d Document) String() string {
	return strings.Join(d.lines, "\n")
}

// StyleLineCount reports how many well-formed style-definition lines the
// document carries. Zero is a valid empty-presentation document.
func (d Document) StyleLineCount() int {
	n := 0
	for _, line := range d.lines {
		if isStyleLine(line) && len(strings.Split(line, ",")) >= styleFieldCount {
			n++
		}
	}
	return n
}

// ApplyStyle rewrites every style-definition line to carry fontName,
// fontSize, and the colour/box policy of rec, leaving all other fields and
// all non-style lines untouched. The Encoding field is always forced to the
// full-Unicode marker regardless of rec. Style lines with fewer than the
// required field count pass through byte-identical; a partial overwrite would
// shift field positions and the renderer may misparse the whole line.
func ApplyStyle(d Document, fontName string, fontSize int, rec styles.Record) Document {
	out := make([]string, len(d.lines))
	for i, line := range d.lines {
		out[i] = restyleLine(line, fontName, fontSize, rec)
	}
	return Document{lines: out}
}

func restyleLine(line, fontName string, fontSize int, rec styles.Record) string {
	if !isStyleLine(line) {
		return line
	}
	parts := strings.Split(line, ",")
	if len(parts) < styleFieldCount {
		return line
	}
	parts[fieldFontname] = fontName
	parts[fieldFontsize] = strconv.Itoa(fontSize)
	parts[fieldPrimaryColour] = rec.PrimaryColour
	parts[fieldOutlineColour] = rec.OutlineColour
	parts[fieldBackColour] = rec.BackColour
	parts[fieldBorderStyle] = strconv.Itoa(int(rec.Border))
	parts[fieldOutline] = strconv.Itoa(rec.Outline)
	parts[fieldShadow] = strconv.Itoa(rec.Shadow)
	parts[fieldEncoding] = styles.EncodingUTF8
	return strings.Join(parts, ",")
}

func isStyleLine(line string) bool {
	return strings.HasPrefix(line, styleMarker) && strings.Contains(line, ",")
}
