package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"cafe-manager/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.AutoMigrate(&model.Cafe{}, &model.Employee{}, &model.EmployeeCafe{}))
	return db
}

func seedCafe(t *testing.T, db *gorm.DB, name, location string) model.Cafe {
	t.Helper()
	cafe := model.Cafe{ID: uuid.NewString(), Name: name, Location: location}
	require.NoError(t, db.Create(&cafe).Error)
	return cafe
}

func seedEmployee(t *testing.T, db *gorm.DB, id, name string) model.Employee {
	t.Helper()
	emp := model.Employee{
		ID:           id,
		Name:         name,
		EmailAddress: strings.ToLower(name) + "@example.com",
		PhoneNumber:  "91234567",
		Gender:       model.Female,
	}
	require.NoError(t, db.Create(&emp).Error)
	return emp
}

func seedAssignment(t *testing.T, db *gorm.DB, employeeID, cafeID string, start time.Time) {
	t.Helper()
	link := model.EmployeeCafe{EmployeeID: employeeID, CafeID: cafeID, StartDate: model.DateOf(start)}
	require.NoError(t, db.Create(&link).Error)
}

func assignmentCount(t *testing.T, db *gorm.DB, employeeID string) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&model.EmployeeCafe{}).Where("employee_id = ?", employeeID).Count(&count).Error)
	return count
}
