package repository

import (
	"errors"

	"github.com/takumi-ao/project-tracker-api/internal/models"
	"github.com/takumi-ao/project-tracker-api/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTokenRepository is a GORM implementation of TokenRepository
type GormTokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new TokenRepository
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &GormTokenRepository{db: db}
}

// GetOrCreate returns the user's token, creating one if absent. The insert
// backs off on the user_id uniqueness constraint, so a concurrent creator
// wins and both callers read back the same row.
func (r *GormTokenRepository) GetOrCreate(userID uint64) (*models.AuthToken, error) {
	var token models.AuthToken
	err := r.db.Where("user_id = ?", userID).First(&token).Error
	if err == nil {
		return &token, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	key, err := utils.GenerateTokenKey()
	if err != nil {
		return nil, err
	}

	token = models.AuthToken{
		UserID: userID,
		Key:    key,
	}
	err = r.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).
		Create(&token).Error
	if err != nil {
		return nil, err
	}

	// Re-fetch to cover the lost-race case where DoNothing skipped the insert.
	if err := r.db.Where("user_id = ?", userID).First(&token).Error; err != nil {
		return nil, err
	}

	return &token, nil
}

// FindByKey finds a token by its opaque key
func (r *GormTokenRepository) FindByKey(key string) (*models.AuthToken, error) {
	var token models.AuthToken
	if err := r.db.Where("token_key = ?", key).First(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}
