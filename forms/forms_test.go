package forms

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/q3rmos/imperial-gems/validators"
)

func TestOrderFormValid(t *testing.T) {
	f := OrderForm{
		FullName:   "Anna Petrova",
		Email:      "anna@example.com",
		Phone:      "79991234567",
		Country:    "Russia",
		Region:     "Московская область",
		City:       "Moscow",
		PostalCode: "101000",
		Address:    "Tverskaya st. 1",
	}
	require.Empty(t, f.Validate())
}

func TestOrderFormCollectsFieldErrors(t *testing.T) {
	f := OrderForm{
		FullName:   "Anna42",
		Email:      "nope",
		Phone:      "123",
		Country:    "Russia",
		Region:     "Moscow",
		City:       "",
		PostalCode: "12",
		Address:    "Tverskaya st. 1",
	}
	errs := f.Validate()
	require.Equal(t, validators.ErrText.Error(), errs["full_name"])
	require.Equal(t, validators.ErrEmail.Error(), errs["email"])
	require.Equal(t, validators.ErrPhone.Error(), errs["phone"])
	require.Equal(t, validators.ErrRequired.Error(), errs["city"])
	require.Equal(t, validators.ErrPostalCode.Error(), errs["postal_code"])
	require.NotContains(t, errs, "country")
	require.NotContains(t, errs, "address")
}

func TestContactFormMessageLength(t *testing.T) {
	f := ContactForm{Name: "Anna", Email: "anna@example.com", Message: "short"}
	errs := f.Validate()
	require.Equal(t, "Message must be at least 10 characters long.", errs["message"])

	f.Message = strings.Repeat("x", 1001)
	errs = f.Validate()
	require.Equal(t, "Message must be at most 1000 characters long.", errs["message"])

	f.Message = "A perfectly reasonable message."
	require.Empty(t, f.Validate())
}

func TestOrderFieldsConfig(t *testing.T) {
	names := make([]string, 0, len(OrderFields))
	for _, f := range OrderFields {
		names = append(names, f.Name)
	}
	require.Equal(t, []string{
		"full_name", "email", "phone", "country",
		"region", "city", "postal_code", "address",
	}, names)

	// Every constrained field ships a client-side pattern and help text.
	for _, f := range OrderFields {
		if f.Name == "address" {
			continue
		}
		require.NotEmpty(t, f.Pattern, f.Name)
		require.NotEmpty(t, f.Title, f.Name)
	}
}
