package model

type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
)

type Employee struct {
	ID           string `json:"id" gorm:"type:char(9);primaryKey"`
	Name         string `json:"name" gorm:"size:100;not null"`
	EmailAddress string `json:"email_address" gorm:"size:320;not null;uniqueIndex"`
	PhoneNumber  string `json:"phone_number" gorm:"size:20;not null"`
	Gender       Gender `json:"gender" gorm:"size:10;not null"`
}
