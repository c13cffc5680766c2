package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/resumeai/backend/internal/models"
	"github.com/resumeai/backend/internal/utils"
)

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.Profile, error)
	UpsertScalar(ctx context.Context, p *models.Profile) error
	Ensure(ctx context.Context, p *models.Profile) error
	InsertChild(ctx context.Context, child any) error
}

type profileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) ProfileRepository {
	return &profileRepo{db: db}
}

// GetByUserID loads the scalar row plus every child collection, each ordered
// by insertion (id). A missing profile row is utils.ErrNotFound even when a
// present profile has no children.
func (r *profileRepo) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	byID := func(db *gorm.DB) *gorm.DB { return db.Order("id") }

	var p models.Profile
	err := r.db.WithContext(ctx).
		Preload("Skills", byID).
		Preload("Projects", byID).
		Preload("Experiences", byID).
		Preload("Education", byID).
		Preload("Links", byID).
		Where("user_id = ?", userID).
		Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &p, err
}

// UpsertScalar creates the profile row or overwrites its scalar fields in
// place. Children are never written here.
func (r *profileRepo) UpsertScalar(ctx context.Context, p *models.Profile) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "email", "phone", "updated_at"}),
		}).
		Create(p).Error
}

// Ensure creates the profile row if absent and leaves an existing one
// untouched, so manual child entry never blanks extracted scalar fields.
func (r *profileRepo) Ensure(ctx context.Context, p *models.Profile) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).
		Create(p).Error
}

// InsertChild inserts one skill/project/experience/education/link row,
// treating a uniqueness violation as "already present".
func (r *profileRepo) InsertChild(ctx context.Context, child any) error {
	return insertIgnoreDuplicate(r.db.WithContext(ctx), child)
}
