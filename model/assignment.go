package model

import "time"

// EmployeeCafe links an employee to the cafe they currently work at.
// The employee id is the primary key, so an employee can never hold
// two assignments at once.
type EmployeeCafe struct {
	EmployeeID string    `json:"employee_id" gorm:"type:char(9);primaryKey"`
	CafeID     string    `json:"cafe_id" gorm:"type:char(36);not null;index"`
	StartDate  time.Time `json:"start_date" gorm:"type:date;not null"`
	Employee   *Employee `json:"-" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	Cafe       *Cafe     `json:"-" gorm:"foreignKey:CafeID;constraint:OnDelete:CASCADE"`
}

func (EmployeeCafe) TableName() string {
	return "employee_cafe"
}
