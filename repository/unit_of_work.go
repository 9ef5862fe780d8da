package repository

import (
	"fmt"

	"gorm.io/gorm"
)

// UnitOfWork groups the repositories bound to one open transaction.
type UnitOfWork struct {
	Cafes     *CafeRepo
	Employees *EmployeeRepo

	tx *gorm.DB
}

// Run executes fn inside a single transaction. The transaction commits when
// fn returns nil, rolls back when fn returns an error or panics, and the
// underlying connection is released on every exit path. Nesting is not
// supported; each facade operation gets exactly one Run.
func Run(db *gorm.DB, fn func(uow *UnitOfWork) error) error {
	tx := db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("beginning transaction: %w", tx.Error)
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	uow := &UnitOfWork{
		Cafes:     NewCafeRepo(tx),
		Employees: NewEmployeeRepo(tx),
		tx:        tx,
	}

	if err := fn(uow); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
