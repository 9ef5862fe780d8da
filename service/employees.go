package service

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"cafe-manager/model"
	"cafe-manager/repository"

	"gorm.io/gorm"
)

type EmployeeService struct {
	db         *gorm.DB
	idAttempts int
	now        func() time.Time
	randInt    func(n int) int
}

func NewEmployeeService(db *gorm.DB, idAttempts int) *EmployeeService {
	if idAttempts <= 0 {
		idAttempts = 10
	}
	return &EmployeeService{
		db:         db,
		idAttempts: idAttempts,
		now:        time.Now,
		randInt:    rand.Intn,
	}
}

// List returns every employee with days worked and assigned cafe name,
// longest-serving first, optionally filtered to one cafe.
func (s *EmployeeService) List(cafeID string) ([]model.EmployeeView, error) {
	var views []model.EmployeeView
	err := repository.Run(s.db, func(uow *repository.UnitOfWork) error {
		var err error
		views, err = uow.Employees.ListWithTenure(cafeID, s.now())
		return err
	})
	return views, err
}

// Create inserts a new employee under a generated UI-prefixed id and, when a
// cafe id is supplied, assigns them to that cafe in the same transaction.
func (s *EmployeeService) Create(in *model.EmployeeCreateRequest) (string, error) {
	var id string
	err := repository.Run(s.db, func(uow *repository.UnitOfWork) error {
		var err error
		id, err = s.generateID(uow)
		if err != nil {
			return err
		}

		emp := model.Employee{
			ID:           id,
			Name:         in.Name,
			EmailAddress: in.EmailAddress,
			PhoneNumber:  in.PhoneNumber,
			Gender:       in.Gender,
		}
		if err := uow.Employees.Create(&emp); err != nil {
			return err
		}
		return uow.Employees.UpsertAssignment(id, in.CafeID, startDateOf(in.StartDate))
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// Update merges the provided contact fields into an existing employee. The
// assignment is touched only when cafe_id or start_date appears in the
// payload; an explicit null cafe_id unassigns the employee.
func (s *EmployeeService) Update(in *model.EmployeeUpdateRequest) error {
	return repository.Run(s.db, func(uow *repository.UnitOfWork) error {
		emp, err := uow.Employees.Get(in.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEmployeeNotFound
			}
			return err
		}
		if err := uow.Employees.UpdateFields(emp, in); err != nil {
			return err
		}

		if in.CafeID.Set || in.StartDate.Set {
			return uow.Employees.UpsertAssignment(emp.ID, in.CafeID.Value, startDateOf(in.StartDate.Value))
		}
		return nil
	})
}

// Delete removes the employee's assignment, if any, then the employee.
func (s *EmployeeService) Delete(id string) error {
	return repository.Run(s.db, func(uow *repository.UnitOfWork) error {
		emp, err := uow.Employees.Get(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEmployeeNotFound
			}
			return err
		}
		if err := uow.Employees.DeleteAssignment(emp.ID); err != nil {
			return err
		}
		return uow.Employees.Delete(emp)
	})
}

// generateID draws random UI-prefixed ids until one is free, giving up
// after the configured number of attempts.
func (s *EmployeeService) generateID(uow *repository.UnitOfWork) (string, error) {
	for i := 0; i < s.idAttempts; i++ {
		candidate := fmt.Sprintf("UI%07d", s.randInt(10_000_000))
		_, err := uow.Employees.Get(candidate)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", ErrIDGenerationExhausted
}

func startDateOf(d *model.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := model.DateOf(d.Time)
	return &t
}
