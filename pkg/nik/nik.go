// Package nik decodes Indonesian national identity numbers (NIK).
//
// A NIK is 16 digits; digits 6-11 encode the holder's birth date as DDMMYY,
// where 40 is added to the day for women.
package nik

import (
	"errors"
	"fmt"
	"time"
)

const (
	// GenderMale and GenderFemale follow the SIMRS jk column convention.
	GenderMale   = "L"
	GenderFemale = "P"
)

var ErrInvalidNIK = errors.New("NIK must be 16 digits")

// Identity holds the fields derivable from a NIK.
type Identity struct {
	BirthDate time.Time
	Gender    string
}

// Parse decodes the birth date and gender encoded in a NIK.
// Input that is not exactly 16 ASCII digits is rejected.
func Parse(value string) (*Identity, error) {
	return parseAt(value, time.Now())
}

func parseAt(value string, now time.Time) (*Identity, error) {
	if len(value) != 16 {
		return nil, ErrInvalidNIK
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return nil, ErrInvalidNIK
		}
	}

	day := digits2(value[6:8])
	month := digits2(value[8:10])
	year := digits2(value[10:12])

	gender := GenderMale
	if day > 40 {
		gender = GenderFemale
		day -= 40
	}

	// Sliding 100-year window anchored at the current year: a 2-digit year
	// greater than today's belongs to the 1900s.
	century := 2000
	if year > now.Year()%100 {
		century = 1900
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return nil, fmt.Errorf("%w: invalid birth date digits", ErrInvalidNIK)
	}

	birth := time.Date(century+year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return &Identity{BirthDate: birth, Gender: gender}, nil
}

func digits2(s string) int {
	return int(s[0]-'0')*10 + int(s[1]-'0')
}

// Age returns whole years elapsed from birth to now.
func Age(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}
