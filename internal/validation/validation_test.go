package validation

import (
	"testing"

	"funky-fusion/internal/domain"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"a@b.com", true},
		{"jane.doe@example.org", true},
		{"a@b", false}, // no domain dot
		{"@b.com", false},
		{"a@.", false},
		{"a b@c.com", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Email(tt.email), "Email(%q)", tt.email)
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Jane Doe", true},
		{"Jane2", false},
		{"", true}, // emptiness is a required-field concern
		{"O'Brien-Smith", true},
		{"42", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Name(tt.name), "Name(%q)", tt.name)
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"03001234567", true},
		{"+92300", false}, // plus sign is not a digit
		{"", false},
		{"300 123", false},
		{"1", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Phone(tt.phone), "Phone(%q)", tt.phone)
	}
}

func TestPassword(t *testing.T) {
	assert.False(t, Password("seven77"))
	assert.True(t, Password("eight888"))
	assert.True(t, Password("much longer password"))
	assert.False(t, Password(""))
}

func TestPasswordMatch(t *testing.T) {
	assert.True(t, PasswordMatch("secret123", "secret123"))
	assert.False(t, PasswordMatch("secret123", "secret124"))
}

func validForm() domain.ShippingDetails {
	return domain.ShippingDetails{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "03001234567",
		Address:  "12 Garden Road",
		City:     "Lahore",
		State:    "Punjab",
		ZipCode:  "54000",
	}
}

func TestShippingDetailsErrors(t *testing.T) {
	t.Run("valid form has no errors", func(t *testing.T) {
		assert.Empty(t, ShippingDetailsErrors(validForm()))
	})

	t.Run("format errors are reported per field", func(t *testing.T) {
		form := validForm()
		form.FullName = "Jane2"
		form.Phone = "+92300"

		errs := ShippingDetailsErrors(form)
		assert.Equal(t, "Name should not contain numbers", errs["fullName"])
		assert.Equal(t, "Phone number should only contain numbers", errs["phone"])
		assert.Len(t, errs, 2)
	})

	t.Run("required message wins over format message", func(t *testing.T) {
		form := validForm()
		form.Email = "" // fails the format check too

		errs := ShippingDetailsErrors(form)
		assert.Equal(t, "Email is required", errs["email"])
	})

	t.Run("all required fields are checked", func(t *testing.T) {
		errs := ShippingDetailsErrors(domain.ShippingDetails{})
		for _, field := range []string{"fullName", "email", "phone", "address", "city", "state", "zipCode"} {
			assert.Contains(t, errs, field)
		}
	})
}

func TestProperty_PredicatesAreTotal(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("every predicate returns without panicking on any input", prop.ForAll(
		func(input string) bool {
			Email(input)
			Name(input)
			Phone(input)
			Password(input)
			PasswordMatch(input, input)
			return true
		},
		gen.AnyString(),
	))

	properties.Property("a digit anywhere in a name rejects it", prop.ForAll(
		func(prefix string, digit int, suffix string) bool {
			name := prefix + string(rune('0'+digit)) + suffix
			return !Name(name)
		},
		gen.AlphaString(),
		gen.IntRange(0, 9),
		gen.AlphaString(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
