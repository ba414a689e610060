// Package styles maps the selectable presentation styles to concrete ASS
// style records.
package styles

import (
	"sort"

	"github.com/thuralin/hardsub/internal/types"
)

// Name identifies one selectable presentation style.
type Name string

const (
	// OpaqueBlack draws white text on a fully opaque black box, masking any
	// subtitles already burned into the source video.
	OpaqueBlack Name = "opaque_black"
	// Transparent draws white text with a black outline and no box.
	Transparent Name = "transparent"
)

// BorderStyle is the ASS BorderStyle field value.
type BorderStyle int

const (
	BorderOutline   BorderStyle = 1 // outline + drop shadow
	BorderOpaqueBox BorderStyle = 3
)

// EncodingUTF8 is the ASS Encoding field value that enables full-Unicode text
// shaping in libass. Every record carries it unconditionally: without it,
// Burmese clusters render as disconnected glyphs while Latin text still looks
// fine, so nothing downstream catches the omission.
const EncodingUTF8 = "1"

// Record is one presentation policy. Colours are in the renderer's native
// &HAABBGGRR channel order and must round-trip byte-exact.
type Record struct {
	PrimaryColour string
	OutlineColour string
	BackColour    string
	Border        BorderStyle
	Outline       int
	Shadow        int
	Encoding      string
}

var table = map[Name]Record{
	OpaqueBlack: {
		PrimaryColour: "&H00FFFFFF",
		OutlineColour: "&H00000000",
		BackColour:    "&HFF000000",
		Border:        BorderOpaqueBox,
		Outline:       1, // thin outline keeps text readable at box edges
		Shadow:        0,
		Encoding:      EncodingUTF8,
	},
	Transparent: {
		PrimaryColour: "&H00FFFFFF",
		OutlineColour: "&H00000000",
		BackColour:    "&H00000000",
		Border:        BorderOutline,
		Outline:       2,
		Shadow:        1,
		Encoding:      EncodingUTF8,
	},
}

// Resolve returns the record for name. Unknown names fail with a
// ValidationError listing the valid options; there is deliberately no default
// because a silent fallback hides misconfiguration until someone watches the
// rendered video.
func Resolve(name string) (Record, error) {
	rec, ok := table[Name(name)]
	if !ok {
		return Record{}, &types.ValidationError{
			Field: "subtitle_style",
			Value: name,
			Valid: ValidNames(),
		}
	}
	return rec, nil
}

// ValidNames returns the selectable style names, sorted.
func ValidNames() []string {
	out := make([]string, 0, len(table))
	for n := range table {
		out = append(out, string(n))
	}
	sort.Strings(out)
	return out
}
