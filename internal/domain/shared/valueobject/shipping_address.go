package valueobject

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
)

// ShippingAddress is a value object representing an order's shipping
// destination. It is immutable - construct a new instance to change it.
type ShippingAddress struct {
	name       string
	line1      string
	city       string
	postalCode string
	phone      string
	email      string
}

// ShippingAddressOption is a functional option for configuring ShippingAddress
type ShippingAddressOption func(*ShippingAddress)

// WithEmail sets the optional contact email
func WithEmail(email string) ShippingAddressOption {
	return func(a *ShippingAddress) {
		a.email = strings.TrimSpace(email)
	}
}

// NewShippingAddress creates a new ShippingAddress with the required fields.
// Name, line1, city, postal code and phone are all required.
func NewShippingAddress(name, line1, city, postalCode, phone string, opts ...ShippingAddressOption) (ShippingAddress, error) {
	name = strings.TrimSpace(name)
	line1 = strings.TrimSpace(line1)
	city = strings.TrimSpace(city)
	postalCode = strings.TrimSpace(postalCode)
	phone = strings.TrimSpace(phone)

	if name == "" || len(name) > 120 {
		return ShippingAddress{}, fmt.Errorf("invalid recipient name")
	}
	if line1 == "" || len(line1) > 200 {
		return ShippingAddress{}, fmt.Errorf("invalid address line")
	}
	if city == "" || len(city) > 100 {
		return ShippingAddress{}, fmt.Errorf("invalid city")
	}
	if err := validatePostalCode(postalCode); err != nil {
		return ShippingAddress{}, err
	}
	if phone == "" || len(phone) > 30 {
		return ShippingAddress{}, fmt.Errorf("invalid phone number")
	}

	addr := ShippingAddress{
		name:       name,
		line1:      line1,
		city:       city,
		postalCode: postalCode,
		phone:      phone,
	}
	for _, opt := range opts {
		opt(&addr)
	}
	return addr, nil
}

func validatePostalCode(postalCode string) error {
	if len(postalCode) < 2 || len(postalCode) > 10 {
		return fmt.Errorf("invalid postal code")
	}
	for _, r := range postalCode[:2] {
		if !unicode.IsDigit(r) {
			return fmt.Errorf("postal code must start with digits")
		}
	}
	return nil
}

// Name returns the recipient name
func (a ShippingAddress) Name() string { return a.name }

// Line1 returns the street address line
func (a ShippingAddress) Line1() string { return a.line1 }

// City returns the city
func (a ShippingAddress) City() string { return a.city }

// PostalCode returns the postal code
func (a ShippingAddress) PostalCode() string { return a.postalCode }

// Phone returns the contact phone number
func (a ShippingAddress) Phone() string { return a.phone }

// Email returns the optional contact email
func (a ShippingAddress) Email() string { return a.email }

// IsZero returns true when the address has not been populated
func (a ShippingAddress) IsZero() bool {
	return a == ShippingAddress{}
}

// String returns a single-line representation for logs and labels
func (a ShippingAddress) String() string {
	return fmt.Sprintf("%s, %s, %s %s", a.name, a.line1, a.postalCode, a.city)
}

// shippingAddressJSON is the serialized form used for JSON and storage
type shippingAddressJSON struct {
	Name       string `json:"name"`
	Line1      string `json:"line1"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Phone      string `json:"phone"`
	Email      string `json:"email,omitempty"`
}

// MarshalJSON implements json.Marshaler
func (a ShippingAddress) MarshalJSON() ([]byte, error) {
	return json.Marshal(shippingAddressJSON{
		Name:       a.name,
		Line1:      a.line1,
		City:       a.city,
		PostalCode: a.postalCode,
		Phone:      a.phone,
		Email:      a.email,
	})
}

// UnmarshalJSON implements json.Unmarshaler
func (a *ShippingAddress) UnmarshalJSON(data []byte) error {
	var v shippingAddressJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	a.name = v.Name
	a.line1 = v.Line1
	a.city = v.City
	a.postalCode = v.PostalCode
	a.phone = v.Phone
	a.email = v.Email
	return nil
}

// Value implements driver.Valuer - stored as a JSON column
func (a ShippingAddress) Value() (driver.Value, error) {
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (a *ShippingAddress) Scan(value any) error {
	if value == nil {
		*a = ShippingAddress{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("cannot scan %T into ShippingAddress", value)
	}
	return a.UnmarshalJSON(data)
}
