package domain

// Supplier is a vendor the household buys from.
type Supplier struct {
	Audit
	Name      string `gorm:"size:255;not null"`
	Category  string `gorm:"size:255"`
	CountryID uint   `gorm:"not null"`
	Country   *Country
}
