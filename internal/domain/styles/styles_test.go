package styles

import (
	"errors"
	"strings"
	"testing"

	"github.com/thuralin/hardsub/internal/types"
)

func TestResolve_AllValidNamesCarryUTF8Encoding(t *testing.T) {
	for _, name := range ValidNames() {
		t.Run(name, func(t *testing.T) {
			rec, err := Resolve(name)
			if err != nil {
				t.Fatalf("resolve %q: %v", name, err)
			}
			if rec.Encoding != EncodingUTF8 {
				t.Fatalf("encoding marker = %q, want %q", rec.Encoding, EncodingUTF8)
			}
		})
	}
}

func TestResolve_OpaqueBlack(t *testing.T) {
	rec, err := Resolve("opaque_black")
	if err != nil {
		t.Fatal(err)
	}
	if rec.BackColour != "&HFF000000" {
		t.Fatalf("back colour = %q, want fully opaque black", rec.BackColour)
	}
	if rec.Border != BorderOpaqueBox {
		t.Fatalf("border style = %d, want %d", rec.Border, BorderOpaqueBox)
	}
	if rec.Shadow != 0 {
		t.Fatalf("shadow = %d, want 0 with an opaque box", rec.Shadow)
	}
}

func TestResolve_Transparent(t *testing.T) {
	rec, err := Resolve("transparent")
	if err != nil {
		t.Fatal(err)
	}
	if rec.BackColour != "&H00000000" {
		t.Fatalf("back colour = %q, want transparent", rec.BackColour)
	}
	if rec.Border != BorderOutline {
		t.Fatalf("border style = %d, want %d", rec.Border, BorderOutline)
	}
}

func TestResolve_UnknownNameNeverDefaults(t *testing.T) {
	rec, err := Resolve("neon_pink")
	if err == nil {
		t.Fatalf("expected error, got record %+v", rec)
	}
	if rec != (Record{}) {
		t.Fatalf("expected zero record on error, got %+v", rec)
	}
	var verr *types.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
	if verr.Value != "neon_pink" {
		t.Fatalf("rejected value = %q", verr.Value)
	}
	for _, want := range []string{"opaque_black", "transparent"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error does not list %q: %s", want, err)
		}
	}
}

func TestValidNames_Sorted(t *testing.T) {
	names := ValidNames()
	if len(names) != 2 || names[0] != "opaque_black" || names[1] != "transparent" {
		t.Fatalf("unexpected valid names: %v", names)
	}
}
