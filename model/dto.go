package model

type CafeCreateRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	LogoURL     *string `json:"logo_url"`
	Location    string  `json:"location" binding:"required"`
}

type CafeUpdateRequest struct {
	ID          string  `json:"id" binding:"required,uuid"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	LogoURL     *string `json:"logo_url"`
	Location    *string `json:"location"`
}

type EmployeeCreateRequest struct {
	Name         string  `json:"name" binding:"required"`
	EmailAddress string  `json:"email_address" binding:"required,email"`
	PhoneNumber  string  `json:"phone_number" binding:"required,sgphone"`
	Gender       Gender  `json:"gender" binding:"required,oneof=Male Female"`
	CafeID       *string `json:"cafe_id" binding:"omitempty,uuid"`
	StartDate    *Date   `json:"start_date"`
}

type EmployeeUpdateRequest struct {
	ID           string           `json:"id" binding:"required,employeeid"`
	Name         *string          `json:"name"`
	EmailAddress *string          `json:"email_address" binding:"omitempty,email"`
	PhoneNumber  *string          `json:"phone_number" binding:"omitempty,sgphone"`
	Gender       *Gender          `json:"gender" binding:"omitempty,oneof=Male Female"`
	CafeID       Optional[string] `json:"cafe_id"`
	StartDate    Optional[Date]   `json:"start_date"`
}

// CafeView is the cafe list projection, including the live employee count.
type CafeView struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	LogoURL     *string `json:"logo_url"`
	Location    string  `json:"location"`
	Employees   int     `json:"employees"`
}

// EmployeeView is the employee list projection. Cafe is nil and DaysWorked
// is zero when the employee is unassigned.
type EmployeeView struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	EmailAddress string  `json:"email_address"`
	PhoneNumber  string  `json:"phone_number"`
	Gender       Gender  `json:"gender"`
	DaysWorked   int     `json:"days_worked"`
	Cafe         *string `json:"cafe"`
}
