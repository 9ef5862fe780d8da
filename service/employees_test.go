package service

import (
	"regexp"
	"testing"
	"time"

	"cafe-manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var employeeIDShape = regexp.MustCompile(`^UI[0-9]{7}$`)

func TestEmployeeCreateGeneratesWellFormedID(t *testing.T) {
	db := newTestDB(t)
	employees := NewEmployeeService(db, 10)

	id := createEmployee(t, employees, "Alice", "alice@example.com", nil)
	assert.Regexp(t, employeeIDShape, id)

	views, err := employees.List("")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, id, views[0].ID)
	assert.Nil(t, views[0].Cafe)
	assert.Equal(t, 0, views[0].DaysWorked)
}

func TestEmployeeCreateRetriesOnIDCollision(t *testing.T) {
	db := newTestDB(t)
	employees := NewEmployeeService(db, 10)

	taken := createEmployee(t, employees, "Alice", "alice@example.com", nil)

	// First draw collides with the existing id, second draw is free.
	draws := 0
	employees.randInt = func(n int) int {
		draws++
		if draws == 1 {
			v := 0
			for _, c := range taken[2:] {
				v = v*10 + int(c-'0')
			}
			return v
		}
		return 7654321
	}

	id := createEmployee(t, employees, "Bob", "bob@example.com", nil)
	assert.Equal(t, "UI7654321", id)
	assert.Equal(t, 2, draws)
}

func TestEmployeeCreateExhaustsIDAttempts(t *testing.T) {
	db := newTestDB(t)
	employees := NewEmployeeService(db, 3)

	createEmployee(t, employees, "Alice", "alice@example.com", nil)
	var existing model.Employee
	require.NoError(t, db.First(&existing).Error)

	collide := 0
	for _, c := range existing.ID[2:] {
		collide = collide*10 + int(c-'0')
	}
	draws := 0
	employees.randInt = func(n int) int {
		draws++
		return collide
	}

	_, err := employees.Create(&model.EmployeeCreateRequest{
		Name:         "Bob",
		EmailAddress: "bob@example.com",
		PhoneNumber:  "81234567",
		Gender:       model.Male,
	})
	require.ErrorIs(t, err, ErrIDGenerationExhausted)
	assert.Equal(t, 3, draws)

	// The failed create left nothing behind.
	var count int64
	require.NoError(t, db.Model(&model.Employee{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestEmployeeCreateWithCafeAssignsAndComputesTenure(t *testing.T) {
	db := newTestDB(t)
	cafes := NewCafeService(db, true)
	employees := NewEmployeeService(db, 10)

	cafeID := createCafe(t, cafes, "Busy Beans", "Orchard Road")
	start := model.Date{Time: time.Now().AddDate(0, 0, -10)}
	id, err := employees.Create(&model.EmployeeCreateRequest{
		Name:         "Alice",
		EmailAddress: "alice@example.com",
		PhoneNumber:  "91234567",
		Gender:       model.Female,
		CafeID:       &cafeID,
		StartDate:    &start,
	})
	require.NoError(t, err)

	views, err := employees.List(cafeID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, id, views[0].ID)
	assert.Equal(t, 10, views[0].DaysWorked)
	require.NotNil(t, views[0].Cafe)
	assert.Equal(t, "Busy Beans", *views[0].Cafe)
}

func TestEmployeeListOrdersByDaysWorked(t *testing.T) {
	db := newTestDB(t)
	cafes := NewCafeService(db, true)
	employees := NewEmployeeService(db, 10)

	cafeID := createCafe(t, cafes, "Busy Beans", "Orchard Road")
	for i, days := range []int{3, 30, 0} {
		start := model.Date{Time: time.Now().AddDate(0, 0, -days)}
		_, err := employees.Create(&model.EmployeeCreateRequest{
			Name:         "Worker" + string(rune('A'+i)),
			EmailAddress: "worker" + string(rune('a'+i)) + "@example.com",
			PhoneNumber:  "91234567",
			Gender:       model.Male,
			CafeID:       &cafeID,
			StartDate:    &start,
		})
		require.NoError(t, err)
	}

	views, err := employees.List("")
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, 30, views[0].DaysWorked)
	assert.Equal(t, 3, views[1].DaysWorked)
	assert.Equal(t, 0, views[2].DaysWorked)
}

func TestEmployeeUpdateMergesContactFields(t *testing.T) {
	db := newTestDB(t)
	employees := NewEmployeeService(db, 10)

	id := createEmployee(t, employees, "Alice", "alice@example.com", nil)
	err := employees.Update(&model.EmployeeUpdateRequest{
		ID:          id,
		PhoneNumber: ptr("98765432"),
	})
	require.NoError(t, err)

	var emp model.Employee
	require.NoError(t, db.First(&emp, "id = ?", id).Error)
	assert.Equal(t, "98765432", emp.PhoneNumber)
	assert.Equal(t, "Alice", emp.Name)
	assert.Equal(t, "alice@example.com", emp.EmailAddress)
}

func TestEmployeeUpdateWithoutAssignmentFieldsLeavesLinkAlone(t *testing.T) {
	db := newTestDB(t)
	cafes := NewCafeService(db, true)
	employees := NewEmployeeService(db, 10)

	cafeID := createCafe(t, cafes, "Busy Beans", "Orchard Road")
	id := createEmployee(t, employees, "Alice", "alice@example.com", &cafeID)

	err := employees.Update(&model.EmployeeUpdateRequest{ID: id, Name: ptr("Alicia")})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.EmployeeCafe{}).Where("employee_id = ?", id).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestEmployeeUpdateWithNullCafeUnassigns(t *testing.T) {
	db := newTestDB(t)
	cafes := NewCafeService(db, true)
	employees := NewEmployeeService(db, 10)

	cafeID := createCafe(t, cafes, "Busy Beans", "Orchard Road")
	id := createEmployee(t, employees, "Alice", "alice@example.com", &cafeID)

	err := employees.Update(&model.EmployeeUpdateRequest{
		ID:     id,
		CafeID: model.Optional[string]{Set: true, Value: nil},
	})
	require.NoError(t, err)

	views, err := employees.List("")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Nil(t, views[0].Cafe)
	assert.Equal(t, 0, views[0].DaysWorked)
}

func TestEmployeeUpdateReassignsToAnotherCafe(t *testing.T) {
	db := newTestDB(t)
	cafes := NewCafeService(db, true)
	employees := NewEmployeeService(db, 10)

	first := createCafe(t, cafes, "Busy Beans", "Orchard Road")
	second := createCafe(t, cafes, "Quiet Corner", "Bedok")
	id := createEmployee(t, employees, "Alice", "alice@example.com", &first)

	err := employees.Update(&model.EmployeeUpdateRequest{
		ID:     id,
		CafeID: model.Optional[string]{Set: true, Value: &second},
	})
	require.NoError(t, err)

	views, err := employees.List(second)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, id, views[0].ID)

	var count int64
	require.NoError(t, db.Model(&model.EmployeeCafe{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestEmployeeUpdateUnknownIDIsNotFound(t *testing.T) {
	db := newTestDB(t)
	employees := NewEmployeeService(db, 10)

	err := employees.Update(&model.EmployeeUpdateRequest{ID: "UI9999999", Name: ptr("Ghost")})
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestEmployeeDeleteRemovesAssignmentFirst(t *testing.T) {
	db := newTestDB(t)
	cafes := NewCafeService(db, true)
	employees := NewEmployeeService(db, 10)

	cafeID := createCafe(t, cafes, "Busy Beans", "Orchard Road")
	id := createEmployee(t, employees, "Alice", "alice@example.com", &cafeID)
	other := createEmployee(t, employees, "Bob", "bob@example.com", &cafeID)

	require.NoError(t, employees.Delete(id))

	var empCount, linkCount int64
	require.NoError(t, db.Model(&model.Employee{}).Count(&empCount).Error)
	require.NoError(t, db.Model(&model.EmployeeCafe{}).Count(&linkCount).Error)
	assert.EqualValues(t, 1, empCount)
	assert.EqualValues(t, 1, linkCount)

	var link model.EmployeeCafe
	require.NoError(t, db.First(&link).Error)
	assert.Equal(t, other, link.EmployeeID)
}

func TestEmployeeDeleteUnknownIDIsNotFound(t *testing.T) {
	db := newTestDB(t)
	employees := NewEmployeeService(db, 10)

	err := employees.Delete("UI9999999")
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestDuplicateEmailSurfacesAsConflict(t *testing.T) {
	db := newTestDB(t)
	employees := NewEmployeeService(db, 10)

	createEmployee(t, employees, "Alice", "alice@example.com", nil)
	_, err := employees.Create(&model.EmployeeCreateRequest{
		Name:         "Other Alice",
		EmailAddress: "alice@example.com",
		PhoneNumber:  "81234567",
		Gender:       model.Female,
	})
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
