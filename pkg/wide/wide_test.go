package wide

import "testing"

func TestFromUTF8_RoundTrip(t *testing.T) {
	cases := []string{
		"",
		"Open File",
		"Imágenes",
		"日本語のタイトル",
		"emoji 🎉 outside the BMP",
	}

	for _, in := range cases {
		w := FromUTF8(in)
		if got := w.ToUTF8(); got != in {
			t.Errorf("round trip of %q = %q", in, got)
		}
	}
}

func TestFromUTF8_SurrogatePairs(t *testing.T) {
	// U+1F389 needs a surrogate pair, so the wide length exceeds the rune count.
	w := FromUTF8("🎉")
	if w.Len() != 2 {
		t.Errorf("Len = %d, want 2 (surrogate pair)", w.Len())
	}
}

func TestFromUTF8_InvalidBytes(t *testing.T) {
	w := FromUTF8(string([]byte{0xff, 0xfe}))
	if got := w.ToUTF8(); got != "��" {
		t.Errorf("invalid bytes decoded to %q, want replacement runes", got)
	}
}
