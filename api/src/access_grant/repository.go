package accessgrant

import (
	"time"

	"ecertify/api/src/model"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(grant *model.AccessGrant) error
	ListGrants(certificateId int) ([]model.AccessGrant, error)
	ActiveGrant(certificateId int, viewerAddress string, now time.Time) (*model.AccessGrant, error)
	LogAccess(entry *model.AccessLog) error
	ListAccessLogs(certificateId int) ([]model.AccessLog, error)
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepositoryWithDB(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) WithTx(tx *gorm.DB) Repository {
	return &gormRepository{db: tx}
}

func (r *gormRepository) Create(grant *model.AccessGrant) error {
	return r.db.Create(grant).Error
}

func (r *gormRepository) ListGrants(certificateId int) ([]model.AccessGrant, error) {
	var grants []model.AccessGrant
	err := r.db.Where("certificate_id = ?", certificateId).
		Order("created_at DESC, id DESC").
		Find(&grants).Error
	return grants, err
}

// ActiveGrant returns the longest-running grant for the viewer that is active at now, or nil.
// Expiry is compared in Go so the result does not depend on how the driver stores timestamps.
func (r *gormRepository) ActiveGrant(certificateId int, viewerAddress string, now time.Time) (*model.AccessGrant, error) {
	var grants []model.AccessGrant
	err := r.db.Where("certificate_id = ? AND viewer_address = ?", certificateId, viewerAddress).
		Find(&grants).Error
	if err != nil {
		return nil, err
	}

	var active *model.AccessGrant
	for i := range grants {
		if grants[i].ActiveAt(now) && (active == nil || grants[i].ExpiresAt.After(active.ExpiresAt)) {
			active = &grants[i]
		}
	}
	return active, nil
}

func (r *gormRepository) LogAccess(entry *model.AccessLog) error {
	return r.db.Create(entry).Error
}

func (r *gormRepository) ListAccessLogs(certificateId int) ([]model.AccessLog, error) {
	var logs []model.AccessLog
	err := r.db.Where("certificate_id = ?", certificateId).
		Order("viewed_at DESC, id DESC").
		Find(&logs).Error
	return logs, err
}
