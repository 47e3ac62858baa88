package certificate

import (
	"ecertify/api/src/database"
	"ecertify/api/src/model"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Issue(certificate *model.Certificate) error
	Approve(certificateId int) (*model.Certificate, error)
	Get(certificateId int) (*model.Certificate, error)
	ListForStudent(studentId int) ([]model.Certificate, error)
	ListPendingForInstitute(instituteId int) ([]model.Certificate, error)
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

// Issue always stores the certificate as not approved.
func (r *gormRepository) Issue(certificate *model.Certificate) error {
	certificate.Approved = false
	return r.db.Create(certificate).Error
}

// Approve sets approved once. Approving an approved certificate is a no-op.
func (r *gormRepository) Approve(certificateId int) (*model.Certificate, error) {
	err := r.db.Model(&model.Certificate{}).
		Where("id = ? AND approved = ?", certificateId, false).
		Update("approved", true).Error
	if err != nil {
		return nil, err
	}
	return r.Get(certificateId)
}

func (r *gormRepository) Get(certificateId int) (*model.Certificate, error) {
	var certificate model.Certificate
	if err := r.db.First(&certificate, certificateId).Error; err != nil {
		return nil, database.TranslateNotFound(err, "certificate %d not found", certificateId)
	}
	return &certificate, nil
}

func (r *gormRepository) ListForStudent(studentId int) ([]model.Certificate, error) {
	var certificates []model.Certificate
	err := r.db.Where("student_id = ?", studentId).
		Order("issued_at DESC, id DESC").
		Find(&certificates).Error
	return certificates, err
}

func (r *gormRepository) ListPendingForInstitute(instituteId int) ([]model.Certificate, error) {
	var certificates []model.Certificate
	err := r.db.Where("institute_id = ? AND approved = ?", instituteId, false).
		Order("issued_at DESC, id DESC").
		Find(&certificates).Error
	return certificates, err
}
