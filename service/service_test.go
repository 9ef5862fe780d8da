package service

import (
	"fmt"
	"strings"
	"testing"

	"cafe-manager/model"

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

func ptr[T any](v T) *T {
	return &v
}

func createCafe(t *testing.T, svc *CafeService, name, location string) string {
	t.Helper()
	id, err := svc.Create(&model.CafeCreateRequest{Name: name, Location: location})
	require.NoError(t, err)
	return id
}

func createEmployee(t *testing.T, svc *EmployeeService, name, email string, cafeID *string) string {
	t.Helper()
	id, err := svc.Create(&model.EmployeeCreateRequest{
		Name:         name,
		EmailAddress: email,
		PhoneNumber:  "91234567",
		Gender:       model.Female,
		CafeID:       cafeID,
	})
	require.NoError(t, err)
	return id
}
