package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/sarilacivert/matchcenter-service/errs"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MatchSummaryRepository struct {
	db *gorm.DB
}

func NewMatchSummaryRepository(db *gorm.DB) *MatchSummaryRepository {
	return &MatchSummaryRepository{db: db}
}

// Save upserts the summary of a match by its id.
func (r *MatchSummaryRepository) Save(ctx context.Context, matchSummary MatchSummary) (*MatchSummary, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "match_id"}},
			UpdateAll: true,
		}).
		Create(&matchSummary)

	if result.Error != nil {
		return nil, result.Error
	}

	return &matchSummary, nil
}

func (r *MatchSummaryRepository) One(ctx context.Context, matchID string) (*MatchSummary, error) {
	var matchSummary MatchSummary

	result := r.db.WithContext(ctx).Where(&MatchSummary{MatchID: matchID}).First(&matchSummary)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, errs.SummaryNotReadyError{Message: fmt.Sprintf("summary of match %s is not stored", matchID)}
	}

	if result.Error != nil {
		return nil, result.Error
	}

	return &matchSummary, nil
}
