package request

import (
	"regexp"
	"strings"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

// OTPRequest is the inbound payload of the send-otp route.
type OTPRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	Message     string `json:"message"`
}

func (r OTPRequest) Validate() error {
	phone := strings.TrimSpace(r.PhoneNumber)
	if phone == "" {
		return invalid("phoneNumber is required")
	}
	if !phonePattern.MatchString(phone) {
		return invalid("phoneNumber must be 10-15 digits with an optional leading +")
	}
	return nil
}

// Phone returns the trimmed phone number.
func (r OTPRequest) Phone() string {
	return strings.TrimSpace(r.PhoneNumber)
}
