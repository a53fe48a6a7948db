package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validShipping() ShippingInput {
	return ShippingInput{
		FullName: "Priya Sharma",
		Email:    "priya@example.com",
		Phone:    "9876543210",
		Address:  "221B Residency Road, Flat 4",
		City:     "Bengaluru",
		State:    "Karnataka",
		ZipCode:  "560025",
	}
}

func TestValidateShippingAcceptsCompleteInput(t *testing.T) {
	errs := ValidateShipping(validShipping())
	assert.Empty(t, errs)
}

func TestValidateShippingFlagsEveryMissingField(t *testing.T) {
	errs := ValidateShipping(ShippingInput{})
	require.Len(t, errs, 7)
	assert.Equal(t, "Full name is required", errs["fullName"])
	assert.Equal(t, "Valid email address is required", errs["email"])
	assert.Equal(t, "Valid phone number is required", errs["phone"])
	assert.Equal(t, "Complete address is required", errs["address"])
	assert.Equal(t, "City is required", errs["city"])
	assert.Equal(t, "State is required", errs["state"])
	assert.Equal(t, "ZIP code is required", errs["zipCode"])
}

func TestValidateShippingFlagsOnlyOffendingFields(t *testing.T) {
	in := validShipping()
	in.ZipCode = "12"
	in.City = "X"

	errs := ValidateShipping(in)
	require.Len(t, errs, 2)
	assert.Equal(t, "ZIP code is required", errs["zipCode"])
	assert.Equal(t, "City is required", errs["city"])
}

func TestValidateShippingPhoneRules(t *testing.T) {
	in := validShipping()

	in.Phone = "12345"
	errs := ValidateShipping(in)
	assert.Equal(t, "Valid phone number is required", errs["phone"])

	in.Phone = "12345abcde"
	errs = ValidateShipping(in)
	assert.Equal(t, "Phone number must contain only digits", errs["phone"])

	in.Phone = "+919876543210"
	errs = ValidateShipping(in)
	assert.Equal(t, "Phone number must contain only digits", errs["phone"])
}

func TestValidateShippingRejectsBadEmail(t *testing.T) {
	in := validShipping()
	in.Email = "not-an-email"

	errs := ValidateShipping(in)
	require.Len(t, errs, 1)
	assert.Equal(t, "Valid email address is required", errs["email"])
}

func TestValidateShippingField(t *testing.T) {
	assert.Empty(t, ValidateShippingField("email", "priya@example.com"))
	assert.Equal(t, "Valid email address is required", ValidateShippingField("email", "nope"))
	assert.Equal(t, "Phone number must contain only digits", ValidateShippingField("phone", "98765x4321"))
	assert.Empty(t, ValidateShippingField("unknownField", "anything"))
}

func TestToAddressDefaultsCountry(t *testing.T) {
	addr := validShipping().ToAddress()
	assert.Equal(t, "India", addr.Country)
	assert.Equal(t, "Priya Sharma", addr.FullName)
	assert.Equal(t, "560025", addr.ZipCode)
}
