package models

type User struct {
	BaseModel
	Name         string   `gorm:"not null"`
	Place        string   `gorm:"not null"`
	DOB          string   `gorm:"not null"` // doubles as the password-reset secret
	MobileNumber string   `gorm:"uniqueIndex;not null"`
	PasswordHash string   `gorm:"not null"`
	UserType     UserType `gorm:"type:varchar(20);not null"`
	Latitude     *float64
	Longitude    *float64

	// Relations
	Listings []Listing `gorm:"foreignKey:FarmerID"`
}

// HasLocation reports whether both coordinates are set to non-zero values.
// Zero is treated the same as unset, matching how the add-listing gate has
// always behaved.
func (u *User) HasLocation() bool {
	return u.Latitude != nil && *u.Latitude != 0 && u.Longitude != nil && *u.Longitude != 0
}
