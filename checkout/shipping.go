package checkout

import (
	"github.com/go-playground/validator/v10"

	"github.com/premstore/storefront-api/models"
)

// DefaultCountry is stamped onto every shipping address at placement; the form
// does not collect a country.
const DefaultCountry = "India"

// ShippingInput is the raw checkout form payload.
type ShippingInput struct {
	FullName string `json:"fullName" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,min=10,digits"`
	Address  string `json:"address" validate:"required,min=10"`
	City     string `json:"city" validate:"required,min=2"`
	State    string `json:"state" validate:"required,min=2"`
	ZipCode  string `json:"zipCode" validate:"required,min=5"`
}

var shippingMessages = map[string]string{
	"FullName": "Full name is required",
	"Email":    "Valid email address is required",
	"Phone":    "Valid phone number is required",
	"Address":  "Complete address is required",
	"City":     "City is required",
	"State":    "State is required",
	"ZipCode":  "ZIP code is required",
}

var shippingFieldNames = map[string]string{
	"FullName": "fullName",
	"Email":    "email",
	"Phone":    "phone",
	"Address":  "address",
	"City":     "city",
	"State":    "state",
	"ZipCode":  "zipCode",
}

var validate = newShippingValidator()

func newShippingValidator() *validator.Validate {
	v := validator.New()
	// "digits" rejects anything but 0-9; validator's numeric tag would accept
	// signs and decimal points.
	_ = v.RegisterValidation("digits", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return false
		}
		for _, r := range value {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	})
	return v
}

// ValidateShipping checks the whole form and returns a field→message map for
// every offending field. An empty map means the input is valid.
func ValidateShipping(in ShippingInput) map[string]string {
	errs := make(map[string]string)

	err := validate.Struct(in)
	if err == nil {
		return errs
	}

	invalid, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["form"] = err.Error()
		return errs
	}

	for _, fieldErr := range invalid {
		name := shippingFieldNames[fieldErr.StructField()]
		if _, seen := errs[name]; seen {
			continue
		}
		if fieldErr.StructField() == "Phone" && fieldErr.Tag() == "digits" {
			errs[name] = "Phone number must contain only digits"
			continue
		}
		errs[name] = shippingMessages[fieldErr.StructField()]
	}
	return errs
}

// ValidateShippingField validates a single form field, supporting per-change
// feedback. The returned string is empty when the value passes.
func ValidateShippingField(field, value string) string {
	in := ShippingInput{
		FullName: "placeholder",
		Email:    "placeholder@example.com",
		Phone:    "9999999999",
		Address:  "placeholder address line",
		City:     "placeholder",
		State:    "placeholder",
		ZipCode:  "99999",
	}
	switch field {
	case "fullName":
		in.FullName = value
	case "email":
		in.Email = value
	case "phone":
		in.Phone = value
	case "address":
		in.Address = value
	case "city":
		in.City = value
	case "state":
		in.State = value
	case "zipCode":
		in.ZipCode = value
	default:
		return ""
	}
	return ValidateShipping(in)[field]
}

// ToAddress converts a validated input into the model attached to orders.
func (in ShippingInput) ToAddress() models.ShippingAddress {
	return models.ShippingAddress{
		FullName: in.FullName,
		Email:    in.Email,
		Phone:    in.Phone,
		Address:  in.Address,
		City:     in.City,
		State:    in.State,
		ZipCode:  in.ZipCode,
		Country:  DefaultCountry,
	}
}
