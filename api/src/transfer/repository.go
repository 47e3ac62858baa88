package transfer

import (
	"errors"

	"ecertify/api/src/database"
	"ecertify/api/src/model"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(request *model.TransferRequest) error
	Get(requestId int) (*model.TransferRequest, error)
	FindPendingForStudent(studentId int) (*model.TransferRequest, error)
	ListPendingForInstitute(instituteId int) ([]model.TransferRequest, error)
	Resolve(requestId int, status model.TransferStatus) (bool, error)
	SetStudentPending(studentId int, pendingInstituteId *int) error
	MoveStudent(studentId, toInstituteId int) error
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

func (r *gormRepository) Create(request *model.TransferRequest) error {
	return r.db.Create(request).Error
}

func (r *gormRepository) Get(requestId int) (*model.TransferRequest, error) {
	var request model.TransferRequest
	if err := r.db.First(&request, requestId).Error; err != nil {
		return nil, database.TranslateNotFound(err, "transfer request %d not found", requestId)
	}
	return &request, nil
}

func (r *gormRepository) FindPendingForStudent(studentId int) (*model.TransferRequest, error) {
	var request model.TransferRequest
	err := r.db.Where("student_id = ? AND status = ?", studentId, model.TransferPending).First(&request).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *gormRepository) ListPendingForInstitute(instituteId int) ([]model.TransferRequest, error) {
	var requests []model.TransferRequest
	err := r.db.Where("to_institute_id = ? AND status = ?", instituteId, model.TransferPending).
		Order("created_at ASC, id ASC").
		Find(&requests).Error
	return requests, err
}

// Resolve moves a pending request to status. It reports false when the request was no longer pending.
func (r *gormRepository) Resolve(requestId int, status model.TransferStatus) (bool, error) {
	result := r.db.Model(&model.TransferRequest{}).
		Where("id = ? AND status = ?", requestId, model.TransferPending).
		Update("status", status)
	return result.RowsAffected == 1, result.Error
}

func (r *gormRepository) SetStudentPending(studentId int, pendingInstituteId *int) error {
	return r.db.Model(&model.Student{}).
		Where("id = ?", studentId).
		Update("pending_institute_id", pendingInstituteId).Error
}

func (r *gormRepository) MoveStudent(studentId, toInstituteId int) error {
	return r.db.Model(&model.Student{}).
		Where("id = ?", studentId).
		Updates(map[string]any{
			"current_institute_id": toInstituteId,
			"pending_institute_id": nil,
		}).Error
}
