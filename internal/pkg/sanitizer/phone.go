package sanitizer

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// NormalizePhone formats phone as E.164 using region for numbers written
// without a country code. Input that cannot be parsed as a valid number is
// returned trimmed.
func NormalizePhone(phone, region string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}

	parsed, err := phonenumbers.Parse(phone, strings.ToUpper(region))
	if err != nil || !phonenumbers.IsValidNumber(parsed) {
		return phone
	}
	return phonenumbers.Format(parsed, phonenumbers.E164)
}
