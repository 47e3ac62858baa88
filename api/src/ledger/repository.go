package ledger

import (
	"ecertify/api/src/database"
	"ecertify/api/src/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AnchorRepository interface {
	Save(anchor *model.LedgerAnchor) error
	Exists(certificateId int, kind string) (bool, error)
	ListForCertificate(certificateId int) ([]model.LedgerAnchor, error)
	ApprovedWithoutAnchor(kind string, limit int) ([]model.Certificate, error)
}

type anchorRepository struct {
	db *gorm.DB
}

func NewAnchorRepository() AnchorRepository {
	return &anchorRepository{db: database.GetDatabaseConnection()}
}

func NewAnchorRepositoryWithDB(db *gorm.DB) AnchorRepository {
	return &anchorRepository{db: db}
}

// Save keeps the first anchor of a (certificate, kind) pair.
func (r *anchorRepository) Save(anchor *model.LedgerAnchor) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(anchor).Error
}

func (r *anchorRepository) Exists(certificateId int, kind string) (bool, error) {
	var count int64
	err := r.db.Model(&model.LedgerAnchor{}).
		Where("certificate_id = ? AND kind = ?", certificateId, kind).
		Count(&count).Error
	return count > 0, err
}

func (r *anchorRepository) ListForCertificate(certificateId int) ([]model.LedgerAnchor, error) {
	var anchors []model.LedgerAnchor
	err := r.db.Where("certificate_id = ?", certificateId).Order("id ASC").Find(&anchors).Error
	return anchors, err
}

func (r *anchorRepository) ApprovedWithoutAnchor(kind string, limit int) ([]model.Certificate, error) {
	anchored := r.db.Model(&model.LedgerAnchor{}).Select("certificate_id").Where("kind = ?", kind)

	var certificates []model.Certificate
	err := r.db.Where("approved = ? AND id NOT IN (?)", true, anchored).
		Order("id ASC").
		Limit(limit).
		Find(&certificates).Error
	return certificates, err
}
