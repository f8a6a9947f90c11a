package models

type UserType string

const (
	UserTypeFarmer UserType = "farmer"
	UserTypeBuyer  UserType = "buyer"
)

// IsValid reports whether t is one of the two account types.
func (t UserType) IsValid() bool {
	return t == UserTypeFarmer || t == UserTypeBuyer
}
