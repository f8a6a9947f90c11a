package models

type Listing struct {
	BaseModel
	FarmerID      uint    `gorm:"not null;index"`
	VegetableName string  `gorm:"not null"`
	QuantityKg    float64 `gorm:"not null"`
	RatePerKg     float64 `gorm:"not null"`
	IsSold        bool    `gorm:"default:false"`

	// Relations
	Farmer *User `gorm:"foreignKey:FarmerID"`
}

// StockValue is the potential revenue of this listing at the asking rate.
func (l *Listing) StockValue() float64 {
	return l.QuantityKg * l.RatePerKg
}
