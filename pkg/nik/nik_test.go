package nik

import (
	"errors"
	"testing"
	"time"
)

// Fixed reference time so the 2-digit year window is stable.
var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestParse_Male(t *testing.T) {
	// Day digits 15 -> male, born 15-08-1990.
	id, err := parseAt("3201011508900001", testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.Gender != GenderMale {
		t.Errorf("gender = %q, want %q", id.Gender, GenderMale)
	}
	if got, want := id.BirthDate.Format("2006-01-02"), "1990-08-15"; got != want {
		t.Errorf("birth date = %s, want %s", got, want)
	}
}

func TestParse_Female(t *testing.T) {
	// Day digits 55 -> female, actual day 15.
	id, err := parseAt("3201015508900002", testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.Gender != GenderFemale {
		t.Errorf("gender = %q, want %q", id.Gender, GenderFemale)
	}
	if got, want := id.BirthDate.Format("2006-01-02"), "1990-08-15"; got != want {
		t.Errorf("birth date = %s, want %s", got, want)
	}
}

func TestParse_YearWindow(t *testing.T) {
	cases := []struct {
		name string
		nik  string
		want string
	}{
		// Year 26 > 25 (current) -> 1926.
		{"past century", "3201010101260001", "1926-01-01"},
		// Year 24 <= 25 -> 2024.
		{"current century", "3201010101240001", "2024-01-01"},
		// Year equal to current -> 2025.
		{"boundary year", "3201010101250001", "2025-01-01"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			id, err := parseAt(c.nik, testNow)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := id.BirthDate.Format("2006-01-02"); got != c.want {
				t.Errorf("birth date = %s, want %s", got, c.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	cases := []string{
		"",
		"12345",
		"32010115089000011",  // 17 digits
		"32O1011508900001",   // letter O
		"3201019913900001",   // day 99 -> 59 after female offset, still invalid
		"3201011500900001",   // month 00
	}

	for _, nik := range cases {
		if _, err := parseAt(nik, testNow); !errors.Is(err, ErrInvalidNIK) {
			t.Errorf("parseAt(%q) error = %v, want ErrInvalidNIK", nik, err)
		}
	}
}

func TestAge(t *testing.T) {
	cases := []struct {
		birth string
		want  int
	}{
		{"1990-08-15", 34}, // birthday not yet reached in 2025-06-01
		{"1990-05-15", 35}, // birthday passed
		{"1990-06-01", 35}, // birthday today
		{"2025-06-01", 0},
	}

	for _, c := range cases {
		birth, _ := time.Parse("2006-01-02", c.birth)
		if got := Age(birth, testNow); got != c.want {
			t.Errorf("Age(%s) = %d, want %d", c.birth, got, c.want)
		}
	}
}
