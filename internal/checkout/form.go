package checkout

import (
	"net/mail"
	"regexp"
	"strings"
)

var phonePattern = regexp.MustCompile(`^[\d\+\-\s]+$`)

// Form holds the shipper's checkout fields. PaymentProof is the name of the
// uploaded transfer receipt; the relay receives it as a plain field.
type Form struct {
	Email             string `json:"email"`
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	StreetAddress     string `json:"streetAddress"`
	Building          string `json:"building"`
	City              string `json:"city"`
	Country           string `json:"country"`
	PhoneNumber       string `json:"phoneNumber"`
	PaymentProof      string `json:"paymentProof"`
	CompletedTransfer bool   `json:"completedTransfer"`
}

// Validate mirrors the storefront's required-field and pattern checks.
func (f Form) Validate() error {
	fields := map[string]string{}

	if strings.TrimSpace(f.Email) == "" {
		fields["email"] = "Email is required"
	} else if _, err := mail.ParseAddress(f.Email); err != nil {
		fields["email"] = "Please enter a valid email address"
	}
	if strings.TrimSpace(f.FirstName) == "" {
		fields["firstName"] = "First Name is required"
	}
	if strings.TrimSpace(f.LastName) == "" {
		fields["lastName"] = "Last Name is required"
	}
	if strings.TrimSpace(f.StreetAddress) == "" {
		fields["streetAddress"] = "Street Address is required"
	}
	if strings.TrimSpace(f.Building) == "" {
		fields["building"] = "Building name/no is required"
	}
	if strings.TrimSpace(f.City) == "" {
		fields["city"] = "City is required"
	}
	if strings.TrimSpace(f.Country) == "" {
		fields["country"] = "Country is required"
	}
	if strings.TrimSpace(f.PhoneNumber) == "" {
		fields["phoneNumber"] = "Phone Number is required"
	} else if !phonePattern.MatchString(f.PhoneNumber) {
		fields["phoneNumber"] = "Please enter a valid phone number"
	}
	if strings.TrimSpace(f.PaymentProof) == "" {
		fields["paymentProof"] = "Payment Proof is required"
	}
	if !f.CompletedTransfer {
		fields["completedTransfer"] = "Please confirm the transfer is completed"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// RelayFields flattens the form for the relay payload.
func (f Form) RelayFields() map[string]string {
	return map[string]string{
		"email":             f.Email,
		"firstName":         f.FirstName,
		"lastName":          f.LastName,
		"streetAddress":     f.StreetAddress,
		"building":          f.Building,
		"city":              f.City,
		"country":           f.Country,
		"phoneNumber":       f.PhoneNumber,
		"paymentProof":      f.PaymentProof,
		"completedTransfer": "true",
	}
}
