package directory

import (
	"context"
	"fmt"

	"ecertify/api/src/database"
	"ecertify/api/src/middleware"
	"ecertify/api/src/model"
	reasoncodes "ecertify/pkg/reason_codes"

	"gorm.io/gorm"
)

type Service struct {
	Repo   Repository
	Runner *database.TxRunner
}

func NewService(runner *database.TxRunner) *Service {
	return &Service{
		Repo:   NewRepositoryWithDB(runner.DB()),
		Runner: runner,
	}
}

func validateProfile(address, name string) error {
	if address == "" {
		return reasoncodes.New(reasoncodes.ErrInvalidInput, "wallet address is required")
	}
	if name == "" {
		return reasoncodes.New(reasoncodes.ErrInvalidInput, "display name is required")
	}
	return nil
}

// UpsertInstitute registers an institute or updates its display name and contact email.
func (s *Service) UpsertInstitute(ctx context.Context, address, name, email string) (*model.Institute, error) {
	address = middleware.NormalizeAddress(address)
	if err := validateProfile(address, name); err != nil {
		return nil, err
	}

	var institute *model.Institute
	err := s.Runner.InTx(ctx, "upsert institute", func(tx *gorm.DB) error {
		repo := s.Repo.WithTx(tx)

		existing, err := repo.FindInstituteByAddress(address)
		if err != nil {
			return err
		}
		if existing == nil {
			existing = &model.Institute{WalletAddress: address}
		}
		existing.DisplayName = name
		existing.ContactEmail = email

		institute = existing
		return repo.SaveInstitute(existing)
	})
	return institute, err
}

// UpsertStudent registers a student or updates the profile. An institute may only be attached to a
// student with no affiliation and no pending transfer; moves between institutes go through transfers.
func (s *Service) UpsertStudent(ctx context.Context, address, name, email string, instituteId *int) (*model.Student, error) {
	address = middleware.NormalizeAddress(address)
	if err := validateProfile(address, name); err != nil {
		return nil, err
	}

	var student *model.Student
	err := s.Runner.InTx(ctx, "upsert student", func(tx *gorm.DB) error {
		repo := s.Repo.WithTx(tx)

		if instituteId != nil {
			if _, err := repo.GetInstitute(*instituteId); err != nil {
				return err
			}
		}

		existing, err := repo.FindStudentByAddress(address)
		if err != nil {
			return err
		}
		if existing == nil {
			student = &model.Student{
				WalletAddress:      address,
				DisplayName:        name,
				ContactEmail:       email,
				CurrentInstituteId: instituteId,
			}
			return repo.CreateStudent(student)
		}

		if instituteId != nil && !existing.AffiliatedWith(*instituteId) {
			if existing.CurrentInstituteId != nil {
				return reasoncodes.New(reasoncodes.ErrInvalidState,
					"student %s is affiliated with institute %d, request a transfer instead", address, *existing.CurrentInstituteId)
			}
			if existing.HasPendingTransfer() {
				return reasoncodes.New(reasoncodes.ErrInvalidState,
					"student %s has a pending transfer", address)
			}
			attached, err := repo.AttachStudent(existing.Id, *instituteId)
			if err != nil {
				return err
			}
			if !attached {
				return reasoncodes.New(reasoncodes.ErrInvalidState,
					"student %s was affiliated or started a transfer meanwhile", address)
			}
		}
		if err := repo.UpdateStudentProfile(existing.Id, name, email); err != nil {
			return err
		}

		student, err = repo.GetStudent(existing.Id)
		return err
	})
	return student, err
}

// ProvisionPlaceholderInstitute returns the institute using address, creating one with placeholder
// details when none exists.
func (s *Service) ProvisionPlaceholderInstitute(ctx context.Context, address string) (*model.Institute, error) {
	address = middleware.NormalizeAddress(address)
	if address == "" {
		return nil, reasoncodes.New(reasoncodes.ErrInvalidInput, "wallet address is required")
	}

	var institute *model.Institute
	err := s.Runner.InTx(ctx, "provision institute", func(tx *gorm.DB) error {
		repo := s.Repo.WithTx(tx)

		existing, err := repo.FindInstituteByAddress(address)
		if err != nil || existing != nil {
			institute = existing
			return err
		}

		short := address
		if len(short) > 6 {
			short = short[:6]
		}
		institute = &model.Institute{
			WalletAddress: address,
			DisplayName:   fmt.Sprintf("Institute (%s...)", short),
			ContactEmail:  fmt.Sprintf("institute-%s@placeholder.local", short),
		}
		return repo.SaveInstitute(institute)
	})
	return institute, err
}

// FindInstituteId returns nil when no institute uses the address.
func (s *Service) FindInstituteId(ctx context.Context, address string) (*int, error) {
	var id *int
	err := s.Runner.Do(ctx, "find institute", func(db *gorm.DB) error {
		institute, err := s.Repo.WithTx(db).FindInstituteByAddress(middleware.NormalizeAddress(address))
		if institute != nil {
			id = &institute.Id
		}
		return err
	})
	return id, err
}

// FindStudentId returns nil when no student uses the address.
func (s *Service) FindStudentId(ctx context.Context, address string) (*int, error) {
	var id *int
	err := s.Runner.Do(ctx, "find student", func(db *gorm.DB) error {
		student, err := s.Repo.WithTx(db).FindStudentByAddress(middleware.NormalizeAddress(address))
		if student != nil {
			id = &student.Id
		}
		return err
	})
	return id, err
}

func (s *Service) GetInstitute(ctx context.Context, id int) (*model.Institute, error) {
	var institute *model.Institute
	err := s.Runner.Do(ctx, "get institute", func(db *gorm.DB) (err error) {
		institute, err = s.Repo.WithTx(db).GetInstitute(id)
		return err
	})
	return institute, err
}

func (s *Service) GetStudent(ctx context.Context, id int) (*model.Student, error) {
	var student *model.Student
	err := s.Runner.Do(ctx, "get student", func(db *gorm.DB) (err error) {
		student, err = s.Repo.WithTx(db).GetStudent(id)
		return err
	})
	return student, err
}

func (s *Service) GetInstituteByAddress(ctx context.Context, address string) (*model.Institute, error) {
	address = middleware.NormalizeAddress(address)
	var institute *model.Institute
	err := s.Runner.Do(ctx, "get institute", func(db *gorm.DB) (err error) {
		institute, err = s.Repo.WithTx(db).FindInstituteByAddress(address)
		if err == nil && institute == nil {
			err = reasoncodes.New(reasoncodes.ErrNotFound, "institute %s not found", address)
		}
		return err
	})
	return institute, err
}

func (s *Service) GetStudentByAddress(ctx context.Context, address string) (*model.Student, error) {
	address = middleware.NormalizeAddress(address)
	var student *model.Student
	err := s.Runner.Do(ctx, "get student", func(db *gorm.DB) (err error) {
		student, err = s.Repo.WithTx(db).FindStudentByAddress(address)
		if err == nil && student == nil {
			err = reasoncodes.New(reasoncodes.ErrNotFound, "student %s not found", address)
		}
		return err
	})
	return student, err
}

func (s *Service) ListStudentsForInstitute(ctx context.Context, instituteId int) ([]model.Student, error) {
	var students []model.Student
	err := s.Runner.Do(ctx, "list students", func(db *gorm.DB) (err error) {
		students, err = s.Repo.WithTx(db).ListStudentsForInstitute(instituteId)
		return err
	})
	return students, err
}

// ActorInstitute resolves the calling wallet to a registered institute.
func (s *Service) ActorInstitute(ctx context.Context, address string) (*model.Institute, error) {
	institute, err := s.GetInstituteByAddress(ctx, address)
	if reasoncodes.Is(err, reasoncodes.ErrNotFound) {
		return nil, reasoncodes.New(reasoncodes.ErrUnauthorized, "caller %s is not a registered institute", address)
	}
	return institute, err
}

// ActorStudent resolves the calling wallet to a registered student.
func (s *Service) ActorStudent(ctx context.Context, address string) (*model.Student, error) {
	student, err := s.GetStudentByAddress(ctx, address)
	if reasoncodes.Is(err, reasoncodes.ErrNotFound) {
		return nil, reasoncodes.New(reasoncodes.ErrUnauthorized, "caller %s is not a registered student", address)
	}
	return student, err
}
