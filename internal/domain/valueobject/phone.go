package valueobject

import (
	"gsale/internal/errors"
)

// validAreaCodes is the fixed whitelist of Brazilian two-digit area codes.
var validAreaCodes = map[string]struct{}{
	// São Paulo
	"11": {}, "12": {}, "13": {}, "14": {}, "15": {}, "16": {}, "17": {}, "18": {}, "19": {},
	// Rio de Janeiro
	"21": {}, "22": {}, "24": {},
	// Espírito Santo
	"27": {}, "28": {},
	// Minas Gerais
	"31": {}, "32": {}, "33": {}, "34": {}, "35": {}, "37": {}, "38": {},
	// Paraná
	"41": {}, "42": {}, "43": {}, "44": {}, "45": {}, "46": {},
	// Santa Catarina
	"47": {}, "48": {}, "49": {},
	// Rio Grande do Sul
	"51": {}, "53": {}, "54": {}, "55": {},
	// Distrito Federal
	"61": {},
	// Goiás
	"62": {}, "64": {},
	// Tocantins
	"63": {},
	// Mato Grosso
	"65": {}, "66": {},
	// Mato Grosso do Sul
	"67": {},
	// Acre
	"68": {},
	// Rondônia
	"69": {},
	// Bahia
	"71": {}, "73": {}, "74": {}, "75": {}, "77": {},
	// Sergipe
	"79": {},
	// Pernambuco
	"81": {}, "87": {},
	// Alagoas
	"82": {},
	// Paraíba
	"83": {},
	// Rio Grande do Norte
	"84": {},
	// Ceará
	"85": {}, "88": {},
	// Piauí
	"86": {}, "89": {},
	// Pará
	"91": {}, "93": {}, "94": {},
	// Amazonas
	"92": {}, "97": {},
	// Roraima
	"95": {},
	// Amapá
	"96": {},
	// Maranhão
	"98": {}, "99": {},
}

const (
	landlineLength = 10
	mobileLength   = 11
)

// Phone is a validated Brazilian phone number in canonical digit form.
// Mobile numbers carry 11 digits with '9' as the third digit; landlines
// carry 10.
type Phone struct {
	digits string
}

// NewPhone strips formatting characters from the raw input and validates
// length, area code and the mobile marker.
func NewPhone(raw string) (Phone, error) {
	digits := stripNonDigits(raw)
	if !isValidPhone(digits) {
		return Phone{}, errors.Wrapf(ErrInvalidFormat, "phone %q", raw)
	}

	return Phone{digits: digits}, nil
}

func isValidPhone(phone string) bool {
	if len(phone) != landlineLength && len(phone) != mobileLength {
		return false
	}

	if _, ok := validAreaCodes[phone[:2]]; !ok {
		return false
	}

	// Mobile numbers must carry the '9' marker right after the area code.
	if len(phone) == mobileLength && phone[2] != '9' {
		return false
	}

	return true
}

// String returns the canonical unformatted digit string.
func (p Phone) String() string {
	return p.digits
}

// AreaCode returns the two-digit area code.
func (p Phone) AreaCode() string {
	return p.digits[:2]
}

// IsMobile reports whether the number is an 11-digit mobile number.
func (p Phone) IsMobile() bool {
	return len(p.digits) == mobileLength
}

// Formatted returns (XX) 9XXXX-XXXX for mobiles and (XX) XXXX-XXXX for
// landlines.
func (p Phone) Formatted() string {
	if p.IsMobile() {
		return "(" + p.digits[:2] + ") " + p.digits[2:7] + "-" + p.digits[7:]
	}

	return "(" + p.digits[:2] + ") " + p.digits[2:6] + "-" + p.digits[6:]
}

// WhatsAppLink returns the wa.me deep link with the Brazilian country code.
func (p Phone) WhatsAppLink() string {
	return "https://wa.me/55" + p.digits
}

// Equal reports whether two phones hold the same canonical value.
func (p Phone) Equal(other Phone) bool {
	return p.digits == other.digits
}

// IsZero reports whether the Phone is the unset zero value.
func (p Phone) IsZero() bool {
	return p.digits == ""
}
