package transfer

import (
	"context"

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
	Events    realtime.Publisher
	Runner    *database.TxRunner
}

func NewService(runner *database.TxRunner, events realtime.Publisher) *Service {
	return &Service{
		Repo:      NewRepositoryWithDB(runner.DB()),
		Directory: directory.NewRepositoryWithDB(runner.DB()),
		Outbox:    outbox.NewRepoWithDB(runner.DB()),
		Events:    events,
		Runner:    runner,
	}
}

func sameInstitute(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func describe(id *int) any {
	if id == nil {
		return "none"
	}
	return *id
}

// Request opens a transfer of the student from their current institute to toInstituteId.
// fromInstituteId must match the current institute, nil meaning unaffiliated.
func (s *Service) Request(ctx context.Context, studentId int, fromInstituteId *int, toInstituteId int) (*model.TransferRequest, error) {
	var (
		request *model.TransferRequest
		event   realtime.Event
	)
	err := s.Runner.InTx(ctx, "request transfer", func(tx *gorm.DB) error {
		dir := s.Directory.WithTx(tx)
		repo := s.Repo.WithTx(tx)

		student, err := dir.GetStudent(studentId)
		if err != nil {
			return err
		}
		if _, err := dir.GetInstitute(toInstituteId); err != nil {
			return err
		}

		if !sameInstitute(fromInstituteId, student.CurrentInstituteId) {
			return reasoncodes.New(reasoncodes.ErrInvalidState,
				"student %d is at institute %v, not %v", studentId, describe(student.CurrentInstituteId), describe(fromInstituteId))
		}
		if student.AffiliatedWith(toInstituteId) {
			return reasoncodes.New(reasoncodes.ErrInvalidState,
				"student %d is already at institute %d", studentId, toInstituteId)
		}

		pending, err := repo.FindPendingForStudent(studentId)
		if err != nil {
			return err
		}
		if pending != nil || student.HasPendingTransfer() {
			return reasoncodes.New(reasoncodes.ErrInvalidState,
				"student %d already has a pending transfer", studentId)
		}

		request = &model.TransferRequest{
			StudentId:       studentId,
			FromInstituteId: student.CurrentInstituteId,
			ToInstituteId:   toInstituteId,
			Status:          model.TransferPending,
		}
		if err := repo.Create(request); err != nil {
			return err
		}
		if err := repo.SetStudentPending(studentId, &toInstituteId); err != nil {
			return err
		}

		event = realtime.NewEvent(model.TransferRequestsTable, realtime.OpInsert, *request)
		_, err = s.Outbox.WithTx(tx).RecordChange(event)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.Events.Publish(event)
	logger.Default().Infof("Transfer %d requested for student %d to institute %d", request.Id, studentId, toInstituteId)
	return request, nil
}

// Approve completes a pending transfer. The student's affiliation moves to the target institute
// in the same transaction as the status change.
func (s *Service) Approve(ctx context.Context, requestId, studentId, approvingInstituteId int) (*model.TransferRequest, error) {
	return s.resolve(ctx, requestId, &studentId, approvingInstituteId, model.TransferApproved)
}

// Decline rejects a pending transfer and leaves the student's affiliation unchanged.
func (s *Service) Decline(ctx context.Context, requestId, decliningInstituteId int) (*model.TransferRequest, error) {
	return s.resolve(ctx, requestId, nil, decliningInstituteId, model.TransferDeclined)
}

func (s *Service) resolve(ctx context.Context, requestId int, studentId *int, instituteId int, status model.TransferStatus) (*model.TransferRequest, error) {
	var (
		request *model.TransferRequest
		event   realtime.Event
	)
	err := s.Runner.InTx(ctx, string(status)+" transfer", func(tx *gorm.DB) error {
		repo := s.Repo.WithTx(tx)

		var err error
		if request, err = repo.Get(requestId); err != nil {
			return err
		}
		if !request.IsPending() {
			return reasoncodes.New(reasoncodes.ErrInvalidState, "transfer request %d is %s", requestId, request.Status)
		}
		if studentId != nil && request.StudentId != *studentId {
			return reasoncodes.New(reasoncodes.ErrInvalidState,
				"transfer request %d does not belong to student %d", requestId, *studentId)
		}
		if request.ToInstituteId != instituteId {
			return reasoncodes.New(reasoncodes.ErrUnauthorized,
				"institute %d is not the target of transfer request %d", instituteId, requestId)
		}

		resolved, err := repo.Resolve(requestId, status)
		if err != nil {
			return err
		}
		if !resolved {
			return reasoncodes.New(reasoncodes.ErrInvalidState, "transfer request %d was resolved concurrently", requestId)
		}

		if status == model.TransferApproved {
			err = repo.MoveStudent(request.StudentId, request.ToInstituteId)
		} else {
			err = repo.SetStudentPending(request.StudentId, nil)
		}
		if err != nil {
			return err
		}

		if request, err = repo.Get(requestId); err != nil {
			return err
		}
		event = realtime.NewEvent(model.TransferRequestsTable, realtime.OpUpdate, *request)
		_, err = s.Outbox.WithTx(tx).RecordChange(event)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.Events.Publish(event)
	logger.Default().Infof("Transfer %d %s by institute %d", requestId, status, instituteId)
	return request, nil
}

func (s *Service) Get(ctx context.Context, requestId int) (*model.TransferRequest, error) {
	var request *model.TransferRequest
	err := s.Runner.Do(ctx, "get transfer", func(db *gorm.DB) (err error) {
		request, err = s.Repo.WithTx(db).Get(requestId)
		return err
	})
	return request, err
}

func (s *Service) ListPendingForInstitute(ctx context.Context, instituteId int) ([]model.TransferRequest, error) {
	var requests []model.TransferRequest
	err := s.Runner.Do(ctx, "list pending transfers", func(db *gorm.DB) (err error) {
		requests, err = s.Repo.WithTx(db).ListPendingForInstitute(instituteId)
		return err
	})
	return requests, err
}
