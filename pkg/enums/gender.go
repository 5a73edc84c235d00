package enums

import "fmt"

// Gender classifies customers and product lines.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderUnisex Gender = "UNISEX"
)

var validGenders = []Gender{
	GenderMale,
	GenderFemale,
	GenderUnisex,
}

// String implements fmt.Stringer.
func (g Gender) String() string {
	return string(g)
}

// IsValid reports whether the gender is recognized.
func (g Gender) IsValid() bool {
	for _, candidate := range validGenders {
		if candidate == g {
			return true
		}
	}
	return false
}

// Genders returns every recognized gender.
func Genders() []Gender {
	out := make([]Gender, len(validGenders))
	copy(out, validGenders)
	return out
}

// ParseGender converts a raw string into a Gender.
func ParseGender(value string) (Gender, error) {
	for _, candidate := range validGenders {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid gender %q", value)
}
