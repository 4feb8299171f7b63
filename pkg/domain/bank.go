package domain

// Bank is a financial institution accounts belong to.
type Bank struct {
	Audit
	Name      string `gorm:"size:255;not null"`
	Bic       string `gorm:"size:11"`
	CountryID uint   `gorm:"not null"`
	Country   *Country
}

// Country is a reference record for banks and suppliers.
type Country struct {
	Audit
	Name    string `gorm:"size:255;not null"`
	IsoCode string `gorm:"size:2;uniqueIndex"`
}
