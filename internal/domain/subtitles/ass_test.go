package subtitles

import (
	"strings"
	"testing"

	"github.com/thuralin/hardsub/internal/domain/styles"
)

// converterDoc mirrors what ffmpeg produces from a WebVTT input.
const converterDoc = `[Script Info]
; Script generated by FFmpeg/Lavc
ScriptType: v4.00+
PlayResX: 384
PlayResY: 288

[V4+ Styles]
Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding
Style: Default,Arial,20,&Hffffff,&Hffffff,&H0,&H0,0,0,0,0,100,100,0,0,1,1,0,2,10,10,10,0

[Events]
Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text
Dialogue: 0,0:00:01.00,0:00:03.50,Default,,0,0,0,,မင်္ဂလာပါ ခင်ဗျာ
Dialogue: 0,0:00:04.00,0:00:06.00,Default,,0,0,0,,နောက်တစ်ကြောင်း`

func opaqueBlack(t *testing.T) styles.Record {
	t.Helper()
	rec, err := styles.Resolve("opaque_black")
	if err != nil {
		t.Fatal(err)
	}
	return rec
}

func styleLines(doc string) []string {
	var out []string
	for _, line := range strings.Split(doc, "\n") {
		if strings.HasPrefix(line, "Style: ") {
			out = append(out, line)
		}
	}
	return out
}

func TestApplyStyle_OverwritesTargetFields(t *testing.T) {
	got := ApplyStyle(Parse(converterDoc), "Noto Sans Myanmar", 24, opaqueBlack(t)).String()

	lines := styleLines(got)
	if len(lines) != 1 {
		t.Fatalf("expected 1 style line, got %d", len(lines))
	}
	fields := strings.Split(lines[0], ",")
	if len(fields) != 23 {
		t.Fatalf("expected 23 fields after transform, got %d", len(fields))
	}

	want := map[int]string{
		fieldFontname:      "Noto Sans Myanmar",
		fieldFontsize:      "24",
		fieldPrimaryColour: "&H00FFFFFF",
		fieldOutlineColour: "&H00000000",
		fieldBackColour:    "&HFF000000",
		fieldBorderStyle:   "3",
		fieldOutline:       "1",
		fieldShadow:        "0",
		fieldEncoding:      "1",
	}
	for idx, w := range want {
		if fields[idx] != w {
			t.Errorf("field[%d] = %q, want %q", idx, fields[idx], w)
		}
	}

	// Untouched fields keep their source values.
	orig := strings.Split(styleLines(converterDoc)[0], ",")
	for _, idx := range []int{0, 4, 7, 8, 9, 10, 11, 12, 13, 14, 18, 19, 20, 21} {
		if fields[idx] != orig[idx] {
			t.Errorf("field[%d] = %q, want untouched %q", idx, fields[idx], orig[idx])
		}
	}
}

func TestApplyStyle_NonStyleLinesUntouched(t *testing.T) {
	got := ApplyStyle(Parse(converterDoc), "Noto Sans Myanmar", 24, opaqueBlack(t)).String()

	gotLines := strings.Split(got, "\n")
	origLines := strings.Split(converterDoc, "\n")
	if len(gotLines) != len(origLines) {
		t.Fatalf("line count changed: %d -> %d", len(origLines), len(gotLines))
	}
	for i := range origLines {
		if strings.HasPrefix(origLines[i], "Style: ") {
			continue
		}
		if gotLines[i] != origLines[i] {
			t.Fatalf("line %d mutated:\n got: %q\nwant: %q", i, gotLines[i], origLines[i])
		}
	}
}

func TestApplyStyle_Idempotent(t *testing.T) {
	rec := opaqueBlack(t)
	once := ApplyStyle(Parse(converterDoc), "Noto Sans Myanmar", 24, rec)
	twice := ApplyStyle(Parse(once.String()), "Noto Sans Myanmar", 24, rec)
	if once.String() != twice.String() {
		t.Fatalf("transform is not idempotent:\nonce:\n%s\ntwice:\n%s", once, twice)
	}
}

func TestApplyStyle_ShortStyleLinePassesThrough(t *testing.T) {
	// 21 fields: the legacy converter shape. A partial overwrite here would
	// leave a line the renderer misparses, so it must come back byte-identical.
	short := "Style: Default,Arial,16,&Hffffff,&Hffffff,&H0,&H0,0,0,0,0,100,100,0,0,1,1,0,2,10,10"
	got := ApplyStyle(Parse(short), "Noto Sans Myanmar", 24, opaqueBlack(t)).String()
	if got != short {
		t.Fatalf("short style line mutated:\n got: %q\nwant: %q", got, short)
	}
}

func TestApplyStyle_NoStyleLinesIsValid(t *testing.T) {
	doc := "[Events]\nFormat: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\nDialogue: 0,0:00:01.00,0:00:02.00,Default,,0,0,0,,hola"
	parsed := Parse(doc)
	if parsed.StyleLineCount() != 0 {
		t.Fatalf("expected 0 style lines, got %d", parsed.StyleLineCount())
	}
	got := ApplyStyle(parsed, "Noto Sans Myanmar", 24, opaqueBlack(t)).String()
	if got != doc {
		t.Fatalf("cue-only document mutated:\n got: %q\nwant: %q", got, doc)
	}
}

func TestApplyStyle_TransparentStyle(t *testing.T) {
	rec, err := styles.Resolve("transparent")
	if err != nil {
		t.Fatal(err)
	}
	got := ApplyStyle(Parse(converterDoc), "Noto Sans Myanmar", 24, rec).String()
	fields := strings.Split(styleLines(got)[0], ",")
	if fields[fieldBackColour] != "&H00000000" {
		t.Fatalf("back colour = %q, want transparent", fields[fieldBackColour])
	}
	if fields[fieldBorderStyle] != "1" || fields[fieldOutline] != "2" || fields[fieldShadow] != "1" {
		t.Fatalf("border/outline/shadow = %s/%s/%s, want 1/2/1",
			fields[fieldBorderStyle], fields[fieldOutline], fields[fieldShadow])
	}
	if fields[fieldEncoding] != "1" {
		t.Fatalf("encoding = %q, want 1", fields[fieldEncoding])
	}
}

func TestParse_StripsBOM(t *testing.T) {
	doc := Parse("\ufeff[Script Info]\nScriptType: v4.00+")
	if strings.HasPrefix(doc.String(), "\ufeff") {
		t.Fatalf("BOM survived parsing: %q", doc.String()[:8])
	}
	if !strings.HasPrefix(doc.String(), "[Script Info]") {
		t.Fatalf("unexpected document head: %q", doc.String())
	}
}

func TestStyleLineCount(t *testing.T) {
	if n := Parse(converterDoc).StyleLineCount(); n != 1 {
		t.Fatalf("StyleLineCount = %d, want 1", n)
	}
}
