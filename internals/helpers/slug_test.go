package helper

import "testing"

func TestGenerateSlug(t *testing.T) {
	cases := map[string]string{
		"Kelas 7A":           "kelas-7a",
		"  IPA   Terpadu  ":  "ipa-terpadu",
		"Fisika (Lanjutan)!": "fisika-lanjutan",
		"---":                "",
	}
	for in, want := range cases {
		if got := GenerateSlug(in); got != want {
			t.Fatalf("GenerateSlug(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCutToLen(t *testing.T) {
	if got := cutToLen("kelas-7a", 5); got != "kelas" {
		t.Fatalf("got %q", got)
	}
	if got := cutToLen("kelas", 0); got != "kelas" {
		t.Fatalf("got %q", got)
	}
}
