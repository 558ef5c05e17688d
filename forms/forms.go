// Package forms declares the storefront's form contracts: the field
// configuration served to clients for rendering, and server-side
// validation producing per-field messages.
package forms

import (
	"strings"

	"github.com/q3rmos/imperial-gems/validators"
)

// Client-side patterns, mirrored by the server-side predicates.
const (
	UsernamePattern = `^[a-z0-9]+$`
	TextPattern     = `^[A-Za-zА-Яа-яЁё\s]+$`
	EmailPattern    = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	PhonePattern    = `^\d{10,15}$`
	PostalPattern   = `^\d{5,6}$`
)

// Field is one entry of the declarative form configuration: pattern,
// placeholder and help text for a single input, consumed uniformly by
// whatever renders the form.
type Field struct {
	Name        string `json:"name"`
	Pattern     string `json:"pattern,omitempty"`
	Placeholder string `json:"placeholder"`
	Title       string `json:"title,omitempty"`
}

// OrderFields configures the checkout form, in render order.
var OrderFields = []Field{
	{Name: "full_name", Pattern: TextPattern, Placeholder: "Full Name", Title: validators.ErrText.Error()},
	{Name: "email", Pattern: EmailPattern, Placeholder: "Email", Title: validators.ErrEmail.Error()},
	{Name: "phone", Pattern: PhonePattern, Placeholder: "Phone", Title: validators.ErrPhone.Error()},
	{Name: "country", Pattern: TextPattern, Placeholder: "Country", Title: validators.ErrText.Error()},
	{Name: "region", Pattern: TextPattern, Placeholder: "Region/State", Title: validators.ErrText.Error()},
	{Name: "city", Pattern: TextPattern, Placeholder: "City", Title: validators.ErrText.Error()},
	{Name: "postal_code", Pattern: PostalPattern, Placeholder: "Postal Code", Title: validators.ErrPostalCode.Error()},
	{Name: "address", Placeholder: "Shipping Address"},
}

// ContactFields configures the contact form.
var ContactFields = []Field{
	{Name: "name", Pattern: TextPattern, Placeholder: "Enter your name", Title: "Name can only contain letters and spaces."},
	{Name: "email", Pattern: EmailPattern, Placeholder: "Enter your email", Title: validators.ErrEmail.Error()},
	{Name: "message", Placeholder: "Enter your message"},
}

// OrderForm carries the contact and shipping data submitted at checkout.
type OrderForm struct {
	FullName   string `form:"full_name" json:"full_name"`
	Email      string `form:"email" json:"email"`
	Phone      string `form:"phone" json:"phone"`
	Country    string `form:"country" json:"country"`
	Region     string `form:"region" json:"region"`
	City       string `form:"city" json:"city"`
	PostalCode string `form:"postal_code" json:"postal_code"`
	Address    string `form:"address" json:"address"`
}

// Validate checks every field and returns the collected per-field
// messages; an empty map means the form is valid.
func (f *OrderForm) Validate() validators.FieldErrors {
	errs := validators.FieldErrors{}

	errs.Require("full_name", f.FullName)
	errs.Require("email", f.Email)
	errs.Require("phone", f.Phone)
	errs.Require("country", f.Country)
	errs.Require("region", f.Region)
	errs.Require("city", f.City)
	errs.Require("postal_code", f.PostalCode)
	errs.Require("address", f.Address)

	errs.Check("full_name", f.FullName, validators.Text)
	errs.Check("email", f.Email, validators.Email)
	errs.Check("phone", f.Phone, validators.Phone)
	errs.Check("country", f.Country, validators.Text)
	errs.Check("region", f.Region, validators.Text)
	errs.Check("city", f.City, validators.Text)
	errs.Check("postal_code", f.PostalCode, validators.PostalCode)

	return errs
}

// ContactForm carries a visitor message. Nothing is persisted.
type ContactForm struct {
	Name    string `form:"name" json:"name"`
	Email   string `form:"email" json:"email"`
	Message string `form:"message" json:"message"`
}

func (f *ContactForm) Validate() validators.FieldErrors {
	errs := validators.FieldErrors{}

	errs.Require("name", f.Name)
	errs.Require("email", f.Email)
	errs.Check("name", f.Name, validators.Text)
	errs.Check("email", f.Email, validators.Email)

	msg := strings.TrimSpace(f.Message)
	switch {
	case len(msg) < 10:
		errs["message"] = "Message must be at least 10 characters long."
	case len(msg) > 1000:
		errs["message"] = "Message must be at most 1000 characters long."
	}

	return errs
}
