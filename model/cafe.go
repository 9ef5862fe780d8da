package model

type Cafe struct {
	ID          string  `json:"id" gorm:"type:char(36);primaryKey"`
	Name        string  `json:"name" gorm:"size:100;not null"`
	Description *string `json:"description" gorm:"size:256"`
	LogoURL     *string `json:"logo_url" gorm:"size:512"`
	Location    string  `json:"location" gorm:"size:100;not null;index"`
}

// TableName pins the table to "cafes"; gorm's pluralizer would
// otherwise derive "caves", which the raw SQL in repository/ does
// not use.
func (Cafe) TableName() string {
	return "cafes"
}
