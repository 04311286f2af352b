package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PlayerRepository struct {
	db *gorm.DB
}

func NewPlayerRepository(db *gorm.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) SaveAll(ctx context.Context, players []Player) error {
	if len(players) == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&players)

	return result.Error
}

func (r *PlayerRepository) List(ctx context.Context) ([]Player, error) {
	var players []Player

	result := r.db.WithContext(ctx).Order("number asc").Find(&players)
	if result.Error != nil {
		return nil, result.Error
	}

	return players, nil
}
