package validators

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUsername(t *testing.T) {
	cases := []struct {
		value string
		ok    bool
	}{
		{"anna", true},
		{"anna42", true},
		{"ANNA42", true}, // input is lowercased first
		{"  anna  ", true},
		{"anna petrova", false},
		{"anna_petrova", false},
		{"", false},
	}
	for _, tc := range cases {
		err := Username(tc.value)
		if tc.ok {
			require.NoError(t, err, tc.value)
		} else {
			require.ErrorIs(t, err, ErrUsername, tc.value)
		}
	}
}

func TestText(t *testing.T) {
	cases := []struct {
		value string
		ok    bool
	}{
		{"Anna Petrova", true},
		{"Москва", true},
		{"Ёлкино", true},
		{"New York", true},
		{"Anna42", false},
		{"O'Brien", false},
		{"", false},
	}
	for _, tc := range cases {
		err := Text(tc.value)
		if tc.ok {
			require.NoError(t, err, tc.value)
		} else {
			require.ErrorIs(t, err, ErrText, tc.value)
		}
	}
}

func TestEmail(t *testing.T) {
	require.NoError(t, Email("example@mail.com"))
	require.NoError(t, Email("  user.name+tag@sub.example.org  "))
	require.ErrorIs(t, Email("not-an-email"), ErrEmail)
	require.ErrorIs(t, Email("user@"), ErrEmail)
	require.ErrorIs(t, Email(""), ErrEmail)
}

func TestPhone(t *testing.T) {
	require.NoError(t, Phone("7999123456"))      // 10 digits
	require.NoError(t, Phone("799912345678901")) // 15 digits
	require.ErrorIs(t, Phone("799912345"), ErrPhone)         // 9 digits
	require.ErrorIs(t, Phone("7999123456789012"), ErrPhone)  // 16 digits
	require.ErrorIs(t, Phone("abc"), ErrPhone)
	require.ErrorIs(t, Phone("+79991234567"), ErrPhone) // digits only
}

func TestPostalCode(t *testing.T) {
	require.NoError(t, PostalCode("10100"))
	require.NoError(t, PostalCode("101000"))
	require.ErrorIs(t, PostalCode("1010"), ErrPostalCode)
	require.ErrorIs(t, PostalCode("1010000"), ErrPostalCode)
	require.ErrorIs(t, PostalCode("1010a0"), ErrPostalCode)
}

func TestPassword(t *testing.T) {
	require.NoError(t, Password("Secret123"))
	require.ErrorIs(t, Password("secret123"), ErrPasswordUpper)
	require.ErrorIs(t, Password("SECRET123"), ErrPasswordLower)
	require.ErrorIs(t, Password("SecretPass"), ErrPasswordDigit)

	require.NoError(t, PasswordLength("Secret123"))
	require.ErrorIs(t, PasswordLength("Ab1"), ErrPasswordShort)
}

func TestFieldErrors(t *testing.T) {
	fe := FieldErrors{}
	fe.Require("full_name", "  ")
	fe.Check("full_name", "  ", Text) // already failed, must not overwrite
	fe.Check("phone", "abc", Phone)
	fe.Check("email", "example@mail.com", Email)

	require.Len(t, fe, 2)
	require.Equal(t, ErrRequired.Error(), fe["full_name"])
	require.Equal(t, ErrPhone.Error(), fe["phone"])
	require.Equal(t, "full_name: This field is required.; phone: Phone number must contain 10-15 digits.", fe.Error())
}
