package slug

import (
	"regexp"
	"strings"
	"testing"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestMake(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Poliklinik Gigi & Mulut", "poliklinik-gigi-mulut"},
		{"Layanan USG 4D", "layanan-usg-4d"},
		{"  spasi   berlebih  ", "spasi-berlebih"},
		{"---sudah--slug---", "sudah-slug"},
		{"UPPER case Title", "upper-case-title"},
		{"dr. Andi, Sp.PD", "dr-andi-sp-pd"},
		{"", ""},
		{"!!!", ""},
	}

	for _, c := range cases {
		got := Make(c.in)
		if got != c.want {
			t.Errorf("Make(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestMake_OutputAlphabet(t *testing.T) {
	inputs := []string{
		"Info & Berita Terkini!",
		"Tips Sehat: Pola Makan (2025)",
		"jadwal dokter — update",
		"100% aman",
	}

	for _, in := range inputs {
		got := Make(in)
		if got == "" {
			continue
		}
		if !slugPattern.MatchString(got) {
			t.Errorf("Make(%q) = %q, contains characters outside [a-z0-9-] or doubled hyphens", in, got)
		}
	}
}

func TestWithSuffix(t *testing.T) {
	got := WithSuffix("promo-kesehatan")
	if !strings.HasPrefix(got, "promo-kesehatan-") {
		t.Fatalf("WithSuffix = %q, want prefix %q", got, "promo-kesehatan-")
	}
	if !slugPattern.MatchString(got) {
		t.Errorf("WithSuffix = %q, not a valid slug", got)
	}
}
