package directory

import (
	"errors"

	"ecertify/api/src/database"
	"ecertify/api/src/model"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindInstituteByAddress(address string) (*model.Institute, error)
	FindStudentByAddress(address string) (*model.Student, error)
	GetInstitute(id int) (*model.Institute, error)
	GetStudent(id int) (*model.Student, error)
	SaveInstitute(institute *model.Institute) error
	CreateStudent(student *model.Student) error
	UpdateStudentProfile(studentId int, name, email string) error
	AttachStudent(studentId, instituteId int) (bool, error)
	ListStudentsForInstitute(instituteId int) ([]model.Student, error)
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

// FindInstituteByAddress returns nil without error when no institute uses the address.
func (r *gormRepository) FindInstituteByAddress(address string) (*model.Institute, error) {
	var institute model.Institute
	err := r.db.Where("wallet_address = ?", address).First(&institute).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &institute, nil
}

func (r *gormRepository) FindStudentByAddress(address string) (*model.Student, error) {
	var student model.Student
	err := r.db.Where("wallet_address = ?", address).First(&student).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *gormRepository) GetInstitute(id int) (*model.Institute, error) {
	var institute model.Institute
	if err := r.db.First(&institute, id).Error; err != nil {
		return nil, database.TranslateNotFound(err, "institute %d not found", id)
	}
	return &institute, nil
}

func (r *gormRepository) GetStudent(id int) (*model.Student, error) {
	var student model.Student
	if err := r.db.First(&student, id).Error; err != nil {
		return nil, database.TranslateNotFound(err, "student %d not found", id)
	}
	return &student, nil
}

func (r *gormRepository) SaveInstitute(institute *model.Institute) error {
	return r.db.Save(institute).Error
}

func (r *gormRepository) CreateStudent(student *model.Student) error {
	return r.db.Create(student).Error
}

// UpdateStudentProfile leaves the affiliation columns alone; transfers own those.
func (r *gormRepository) UpdateStudentProfile(studentId int, name, email string) error {
	return r.db.Model(&model.Student{}).
		Where("id = ?", studentId).
		Updates(map[string]interface{}{"display_name": name, "contact_email": email}).Error
}

// AttachStudent affiliates a student that has neither an institute nor a pending transfer.
// It reports false when the student no longer qualifies.
func (r *gormRepository) AttachStudent(studentId, instituteId int) (bool, error) {
	result := r.db.Model(&model.Student{}).
		Where("id = ? AND current_institute_id IS NULL AND pending_institute_id IS NULL", studentId).
		Update("current_institute_id", instituteId)
	return result.RowsAffected == 1, result.Error
}

func (r *gormRepository) ListStudentsForInstitute(instituteId int) ([]model.Student, error) {
	var students []model.Student
	err := r.db.Where("current_institute_id = ?", instituteId).Order("display_name ASC").Find(&students).Error
	return students, err
}
