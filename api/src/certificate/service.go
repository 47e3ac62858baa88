package certificate

import (
	"context"
	"time"

	"ecertify/api/src/content"
	"ecertify/api/src/database"
	"ecertify/api/src/directory"
	"ecertify/api/src/model"
	"ecertify/api/src/outbox"
	"ecertify/api/src/realtime"
	"ecertify/pkg/logger"
	reasoncodes "ecertify/pkg/reason_codes"

	"gorm.io/gorm"
)

type Service struct {
	Repo      Repository
	Directory directory.Repository
	Outbox    outbox.OutboxRepository
	Content   content.Store
	Events    realtime.Publisher
	Runner    *database.TxRunner
}

func NewService(runner *database.TxRunner, store content.Store, events realtime.Publisher) *Service {
	return &Service{
		Repo:      NewRepositoryWithDB(runner.DB()),
		Directory: directory.NewRepositoryWithDB(runner.DB()),
		Outbox:    outbox.NewRepoWithDB(runner.DB()),
		Content:   store,
		Events:    events,
		Runner:    runner,
	}
}

// checkIssuer fails when the student or institute is missing, or when the student belongs to
// another institute.
func checkIssuer(dir directory.Repository, studentId, instituteId int) error {
	student, err := dir.GetStudent(studentId)
	if err != nil {
		return err
	}
	if _, err := dir.GetInstitute(instituteId); err != nil {
		return err
	}
	if student.CurrentInstituteId != nil && !student.AffiliatedWith(instituteId) {
		return reasoncodes.New(reasoncodes.ErrUnauthorized,
			"institute %d cannot issue for student %d affiliated with institute %d", instituteId, studentId, *student.CurrentInstituteId)
	}
	return nil
}

// Issue records a new, unapproved certificate for the student.
func (s *Service) Issue(ctx context.Context, studentId, instituteId int, contentId string) (*model.Certificate, error) {
	if contentId == "" {
		return nil, reasoncodes.New(reasoncodes.ErrInvalidInput, "content id is required")
	}

	var (
		certificate *model.Certificate
		event       realtime.Event
	)
	err := s.Runner.InTx(ctx, "issue certificate", func(tx *gorm.DB) error {
		if err := checkIssuer(s.Directory.WithTx(tx), studentId, instituteId); err != nil {
			return err
		}

		certificate = &model.Certificate{
			StudentId:   studentId,
			InstituteId: instituteId,
			ContentId:   contentId,
			IssuedAt:    time.Now().UTC(),
		}
		if err := s.Repo.WithTx(tx).Issue(certificate); err != nil {
			return err
		}

		event = realtime.NewEvent(model.CertificatesTable, realtime.OpInsert, *certificate)
		_, err := s.Outbox.WithTx(tx).RecordChange(event)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.Events.Publish(event)
	logger.Default().Infof("Certificate %d issued by institute %d for student %d", certificate.Id, instituteId, studentId)
	return certificate, nil
}

// Upload stores the file in the content store and issues a certificate pointing at it.
func (s *Service) Upload(ctx context.Context, instituteId, studentId int, data []byte) (*model.Certificate, error) {
	if len(data) == 0 {
		return nil, reasoncodes.New(reasoncodes.ErrInvalidInput, "certificate file is empty")
	}

	err := s.Runner.Do(ctx, "check issuer", func(db *gorm.DB) error {
		return checkIssuer(s.Directory.WithTx(db), studentId, instituteId)
	})
	if err != nil {
		return nil, err
	}

	contentId, err := s.Content.Put(ctx, data)
	if err != nil {
		return nil, err
	}
	return s.Issue(ctx, studentId, instituteId, contentId)
}

// Approve marks the certificate approved. Only the issuing institute may approve, and
// approving twice returns the approved certificate without a second change event.
func (s *Service) Approve(ctx context.Context, certificateId, approverInstituteId int) (*model.Certificate, error) {
	var (
		certificate *model.Certificate
		event       *realtime.Event
	)
	err := s.Runner.InTx(ctx, "approve certificate", func(tx *gorm.DB) error {
		event = nil
		repo := s.Repo.WithTx(tx)

		current, err := repo.Get(certificateId)
		if err != nil {
			return err
		}
		if current.InstituteId != approverInstituteId {
			return reasoncodes.New(reasoncodes.ErrUnauthorized,
				"institute %d did not issue certificate %d", approverInstituteId, certificateId)
		}
		if current.Approved {
			certificate = current
			return nil
		}

		if certificate, err = repo.Approve(certificateId); err != nil {
			return err
		}
		e := realtime.NewEvent(model.CertificatesTable, realtime.OpUpdate, *certificate)
		event = &e
		_, err = s.Outbox.WithTx(tx).RecordChange(e)
		return err
	})
	if err != nil {
		return nil, err
	}

	if event != nil {
		s.Events.Publish(*event)
		logger.Default().Infof("Certificate %d approved by institute %d", certificateId, approverInstituteId)
	}
	return certificate, nil
}

func (s *Service) Get(ctx context.Context, certificateId int) (*model.Certificate, error) {
	var certificate *model.Certificate
	err := s.Runner.Do(ctx, "get certificate", func(db *gorm.DB) (err error) {
		certificate, err = s.Repo.WithTx(db).Get(certificateId)
		return err
	})
	return certificate, err
}

func (s *Service) ListForStudent(ctx context.Context, studentId int) ([]model.Certificate, error) {
	var certificates []model.Certificate
	err := s.Runner.Do(ctx, "list student certificates", func(db *gorm.DB) (err error) {
		certificates, err = s.Repo.WithTx(db).ListForStudent(studentId)
		return err
	})
	return certificates, err
}

func (s *Service) ListPendingForInstitute(ctx context.Context, instituteId int) ([]model.Certificate, error) {
	var certificates []model.Certificate
	err := s.Runner.Do(ctx, "list pending certificates", func(db *gorm.DB) (err error) {
		certificates, err = s.Repo.WithTx(db).ListPendingForInstitute(instituteId)
		return err
	})
	return certificates, err
}
