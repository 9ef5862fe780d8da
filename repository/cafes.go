package repository

import (
	"cafe-manager/model"

	"gorm.io/gorm"
)

type CafeRepo struct {
	db *gorm.DB
}

func NewCafeRepo(db *gorm.DB) *CafeRepo {
	return &CafeRepo{db: db}
}

// ListWithCounts returns every cafe joined with its live employee count,
// most-staffed first. Cafes with no employees appear with a count of zero.
// An unknown location simply yields an empty slice.
func (r *CafeRepo) ListWithCounts(location string) ([]model.CafeView, error) {
	views := make([]model.CafeView, 0)

	query := r.db.Model(&model.Cafe{}).
		Select("cafes.id, cafes.name, cafes.description, cafes.logo_url, cafes.location, COUNT(employee_cafe.employee_id) AS employees").
		Joins("LEFT JOIN employee_cafe ON employee_cafe.cafe_id = cafes.id").
		Group("cafes.id").
		Order("employees DESC")
	if location != "" {
		query = query.Where("cafes.location = ?", location)
	}

	if err := query.Scan(&views).Error; err != nil {
		return nil, err
	}
	return views, nil
}

func (r *CafeRepo) Get(id string) (*model.Cafe, error) {
	var cafe model.Cafe
	if err := r.db.First(&cafe, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &cafe, nil
}

func (r *CafeRepo) Create(cafe *model.Cafe) error {
	return r.db.Create(cafe).Error
}

// UpdateFields merges the non-null fields of the request into the cafe and
// saves it. Absent fields keep their stored values.
func (r *CafeRepo) UpdateFields(cafe *model.Cafe, in *model.CafeUpdateRequest) error {
	if in.Name != nil {
		cafe.Name = *in.Name
	}
	if in.Description != nil {
		cafe.Description = in.Description
	}
	if in.LogoURL != nil {
		cafe.LogoURL = in.LogoURL
	}
	if in.Location != nil {
		cafe.Location = *in.Location
	}
	return r.db.Save(cafe).Error
}

func (r *CafeRepo) Delete(cafe *model.Cafe) error {
	return r.db.Delete(cafe).Error
}
