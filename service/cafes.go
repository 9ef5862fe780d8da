package service

import (
	"errors"

	"cafe-manager/model"
	"cafe-manager/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CafeService struct {
	db *gorm.DB
	// deleteStaff controls whether deleting a cafe also deletes its
	// assigned employees, rather than just unassigning them.
	deleteStaff bool
}

func NewCafeService(db *gorm.DB, deleteStaff bool) *CafeService {
	return &CafeService{db: db, deleteStaff: deleteStaff}
}

// List returns every cafe with its employee count, most-staffed first,
// optionally filtered to one exact location.
func (s *CafeService) List(location string) ([]model.CafeView, error) {
	var views []model.CafeView
	err := repository.Run(s.db, func(uow *repository.UnitOfWork) error {
		var err error
		views, err = uow.Cafes.ListWithCounts(location)
		return err
	})
	return views, err
}

// Create inserts a new cafe and returns its generated id.
func (s *CafeService) Create(in *model.CafeCreateRequest) (string, error) {
	cafe := model.Cafe{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		LogoURL:     in.LogoURL,
		Location:    in.Location,
	}
	err := repository.Run(s.db, func(uow *repository.UnitOfWork) error {
		return uow.Cafes.Create(&cafe)
	})
	if err != nil {
		return "", err
	}
	return cafe.ID, nil
}

// Update merges the provided fields into an existing cafe.
func (s *CafeService) Update(in *model.CafeUpdateRequest) error {
	return repository.Run(s.db, func(uow *repository.UnitOfWork) error {
		cafe, err := uow.Cafes.Get(in.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCafeNotFound
			}
			return err
		}
		return uow.Cafes.UpdateFields(cafe, in)
	})
}

// Delete removes a cafe. Under the default policy every employee assigned
// to it is deleted along with their assignment; otherwise the staff are
// merely unassigned.
func (s *CafeService) Delete(id string) error {
	return repository.Run(s.db, func(uow *repository.UnitOfWork) error {
		cafe, err := uow.Cafes.Get(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCafeNotFound
			}
			return err
		}

		links, err := uow.Employees.ListAssignmentsByCafe(cafe.ID)
		if err != nil {
			return err
		}
		for _, link := range links {
			if err := uow.Employees.DeleteAssignment(link.EmployeeID); err != nil {
				return err
			}
			if !s.deleteStaff {
				continue
			}
			emp, err := uow.Employees.Get(link.EmployeeID)
			if err != nil {
				return err
			}
			if err := uow.Employees.Delete(emp); err != nil {
				return err
			}
		}

		return uow.Cafes.Delete(cafe)
	})
}
