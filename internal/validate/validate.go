// Package validate implements the field-level checks applied to user input
// at registration and record-entry time. Each validator answers a simple
// yes/no question; callers decide how to report failures.
package validate

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pennyflow/pennyflow/internal/model"
)

var (
	nameRe   = regexp.MustCompile(`^[a-zA-Z]+$`)
	phoneRe  = regexp.MustCompile(`^09[0-9]{9}$`)
	emailRe  = regexp.MustCompile(`^[a-zA-Z0-9]+@(gmail|yahoo)\.com$`)
	lowerRe  = regexp.MustCompile(`[a-z]`)
	upperRe  = regexp.MustCompile(`[A-Z]`)
	digitRe  = regexp.MustCompile(`[0-9]`)
	symbolRe = regexp.MustCompile(`[!@#$%^&*()_+]`)
	cityList = []string{
		"Tehran", "Mashhad", "Isfahan", "Karaj", "Tabriz",
		"Shiraz", "Qom", "Ahvaz", "Kermanshah", "Urmia",
	}
)

// Name accepts English letters only.
func Name(s string) bool {
	return nameRe.MatchString(s)
}

// Phone accepts 11-digit numbers starting with 09.
func Phone(s string) bool {
	return phoneRe.MatchString(s)
}

// Password requires at least 6 characters with a lowercase letter, an
// uppercase letter, a digit and a symbol.
func Password(s string) bool {
	if len(s) < 6 {
		return false
	}
	return lowerRe.MatchString(s) && upperRe.MatchString(s) &&
		digitRe.MatchString(s) && symbolRe.MatchString(s)
}

// Email accepts alphanumeric addresses at gmail.com or yahoo.com.
func Email(s string) bool {
	return emailRe.MatchString(s)
}

// Birthdate accepts ISO dates with a year between 1920 and 2005.
func Birthdate(s string) bool {
	t, err := time.Parse(model.DateLayout, s)
	if err != nil {
		return false
	}
	return t.Year() >= 1920 && t.Year() <= 2005
}

// Amount accepts strings that parse as a number greater than zero. This is
// the entry-time rule; filter range bounds accept zero and are checked by
// the query normalizer instead.
func Amount(s string) bool {
	f, err := strconv.ParseFloat(s, 64)
	return err == nil && f > 0
}

// Date accepts ISO YYYY-MM-DD calendar dates.
func Date(s string) bool {
	_, err := time.Parse(model.DateLayout, s)
	return err == nil
}

// City accepts cities from the fixed list.
func City(s string) bool {
	for _, c := range cityList {
		if c == s {
			return true
		}
	}
	return false
}

// Cities returns the accepted city names.
func Cities() []string {
	out := make([]string, len(cityList))
	copy(out, cityList)
	return out
}

// Field dispatches to the validator for the named field. Unknown field
// names fail closed.
func Field(field, value string) bool {
	switch strings.ToLower(field) {
	case "first_name", "last_name", "name":
		return Name(value)
	case "phone":
		return Phone(value)
	case "password":
		return Password(value)
	case "email":
		return Email(value)
	case "birthdate":
		return Birthdate(value)
	case "amount":
		return Amount(value)
	case "date":
		return Date(value)
	case "city":
		return City(value)
	}
	return false
}
