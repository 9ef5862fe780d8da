package repository

import (
	"errors"
	"sort"
	"time"

	"cafe-manager/model"

	"gorm.io/gorm"
)

type EmployeeRepo struct {
	db *gorm.DB
}

func NewEmployeeRepo(db *gorm.DB) *EmployeeRepo {
	return &EmployeeRepo{db: db}
}

type employeeRow struct {
	ID           string
	Name         string
	EmailAddress string
	PhoneNumber  string
	Gender       model.Gender
	StartDate    *time.Time
	CafeName     *string
}

// ListWithTenure returns every employee joined with their assignment, if
// any, carrying the days worked up to now and the assigned cafe's name.
// Results are sorted by days worked descending; unassigned employees report
// zero days and a nil cafe. Passing a cafe id narrows the list to that cafe.
func (r *EmployeeRepo) ListWithTenure(cafeID string, now time.Time) ([]model.EmployeeView, error) {
	var rows []employeeRow

	query := r.db.Model(&model.Employee{}).
		Select("employees.id, employees.name, employees.email_address, employees.phone_number, employees.gender, employee_cafe.start_date, cafes.name AS cafe_name").
		Joins("LEFT JOIN employee_cafe ON employee_cafe.employee_id = employees.id").
		Joins("LEFT JOIN cafes ON cafes.id = employee_cafe.cafe_id")
	if cafeID != "" {
		query = query.Where("employee_cafe.cafe_id = ?", cafeID)
	}

	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	views := make([]model.EmployeeView, 0, len(rows))
	for _, row := range rows {
		view := model.EmployeeView{
			ID:           row.ID,
			Name:         row.Name,
			EmailAddress: row.EmailAddress,
			PhoneNumber:  row.PhoneNumber,
			Gender:       row.Gender,
			Cafe:         row.CafeName,
		}
		if row.StartDate != nil {
			view.DaysWorked = model.DaysBetween(*row.StartDate, now)
		}
		views = append(views, view)
	}

	sort.SliceStable(views, func(i, j int) bool {
		return views[i].DaysWorked > views[j].DaysWorked
	})
	return views, nil
}

func (r *EmployeeRepo) Get(id string) (*model.Employee, error) {
	var emp model.Employee
	if err := r.db.First(&emp, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *EmployeeRepo) Create(emp *model.Employee) error {
	return r.db.Create(emp).Error
}

// UpdateFields merges the non-null contact fields of the request into the
// employee and saves it. Assignment changes go through UpsertAssignment.
func (r *EmployeeRepo) UpdateFields(emp *model.Employee, in *model.EmployeeUpdateRequest) error {
	if in.Name != nil {
		emp.Name = *in.Name
	}
	if in.EmailAddress != nil {
		emp.EmailAddress = *in.EmailAddress
	}
	if in.PhoneNumber != nil {
		emp.PhoneNumber = *in.PhoneNumber
	}
	if in.Gender != nil {
		emp.Gender = *in.Gender
	}
	return r.db.Save(emp).Error
}

func (r *EmployeeRepo) Delete(emp *model.Employee) error {
	return r.db.Delete(emp).Error
}

// UpsertAssignment is the only path that mutates the employee-cafe link.
// A nil cafe id removes any existing assignment (no-op when there is none).
// An existing assignment is updated in place, so a second row can never
// appear. A nil start date defaults to today. Calling it twice with the
// same arguments leaves identical state.
func (r *EmployeeRepo) UpsertAssignment(employeeID string, cafeID *string, startDate *time.Time) error {
	var current model.EmployeeCafe
	err := r.db.First(&current, "employee_id = ?", employeeID).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	exists := err == nil

	if cafeID == nil {
		if !exists {
			return nil
		}
		return r.db.Delete(&current).Error
	}

	if exists {
		current.CafeID = *cafeID
		if startDate != nil {
			current.StartDate = model.DateOf(*startDate)
		}
		return r.db.Save(&current).Error
	}

	link := model.EmployeeCafe{
		EmployeeID: employeeID,
		CafeID:     *cafeID,
		StartDate:  model.DateOf(time.Now()),
	}
	if startDate != nil {
		link.StartDate = model.DateOf(*startDate)
	}
	return r.db.Create(&link).Error
}

// DeleteAssignment removes the employee's link row, if any.
func (r *EmployeeRepo) DeleteAssignment(employeeID string) error {
	return r.db.Where("employee_id = ?", employeeID).Delete(&model.EmployeeCafe{}).Error
}

// ListAssignmentsByCafe returns the link rows for one cafe, used when a
// cafe deletion cascades to its staff.
func (r *EmployeeRepo) ListAssignmentsByCafe(cafeID string) ([]model.EmployeeCafe, error) {
	var links []model.EmployeeCafe
	if err := r.db.Where("cafe_id = ?", cafeID).Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}
