// Package validation holds the pure form predicates used by signup, profile
// and checkout forms. Each predicate is total over all string inputs and has
// no side effects; required-field checks are layered on top by the callers.
package validation

import (
	"regexp"

	"funky-fusion/internal/domain"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nameRegex  = regexp.MustCompile(`^[^0-9]*$`)
	phoneRegex = regexp.MustCompile(`^\d+$`)
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 8

// Email reports whether the string looks like name@host.tld. No deeper RFC
// compliance is attempted.
func Email(email string) bool {
	return emailRegex.MatchString(email)
}

// Name reports whether the string contains no decimal digits. The empty
// string passes; emptiness is a required-field concern, not a format one.
func Name(name string) bool {
	return nameRegex.MatchString(name)
}

// Phone reports whether the string is one or more decimal digits and nothing
// else.
func Phone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// Password reports whether the password is at least MinPasswordLength long.
func Password(password string) bool {
	return len(password) >= MinPasswordLength
}

// PasswordMatch reports whether the two strings are exactly equal.
func PasswordMatch(password, confirm string) bool {
	return password == confirm
}

// ShippingDetailsErrors validates a checkout form and returns per-field
// messages keyed by field name. Format checks run first and required checks
// second, so a field that is both empty and malformed surfaces its required
// message. An empty map means the form is valid.
func ShippingDetailsErrors(form domain.ShippingDetails) map[string]string {
	errs := map[string]string{}

	if !Name(form.FullName) {
		errs["fullName"] = "Name should not contain numbers"
	}
	if !Email(form.Email) {
		errs["email"] = "Please enter a valid email address"
	}
	if !Phone(form.Phone) {
		errs["phone"] = "Phone number should only contain numbers"
	}

	if form.FullName == "" {
		errs["fullName"] = "Full name is required"
	}
	if form.Email == "" {
		errs["email"] = "Email is required"
	}
	if form.Phone == "" {
		errs["phone"] = "Phone number is required"
	}
	if form.Address == "" {
		errs["address"] = "Address is required"
	}
	if form.City == "" {
		errs["city"] = "City is required"
	}
	if form.State == "" {
		errs["state"] = "State is required"
	}
	if form.ZipCode == "" {
		errs["zipCode"] = "ZIP code is required"
	}

	return errs
}
