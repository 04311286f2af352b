package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FixtureRepository struct {
	db *gorm.DB
}

func NewFixtureRepository(db *gorm.DB) *FixtureRepository {
	return &FixtureRepository{db: db}
}

func (r *FixtureRepository) SaveAll(ctx context.Context, fixtures []Fixture) error {
	if len(fixtures) == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&fixtures)

	return result.Error
}

func (r *FixtureRepository) List(ctx context.Context) ([]Fixture, error) {
	var fixtures []Fixture

	result := r.db.WithContext(ctx).Order("starts_at asc").Find(&fixtures)
	if result.Error != nil {
		return nil, result.Error
	}

	return fixtures, nil
}
