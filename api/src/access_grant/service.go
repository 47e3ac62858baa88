package accessgrant

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"ecertify/api/src/certificate"
	"ecertify/api/src/content"
	"ecertify/api/src/database"
	"ecertify/api/src/directory"
	"ecertify/api/src/middleware"
	"ecertify/api/src/model"
	"ecertify/api/src/outbox"
	"ecertify/api/src/realtime"
	"ecertify/pkg/logger"
	reasoncodes "ecertify/pkg/reason_codes"

	"github.com/skip2/go-qrcode"
	"gorm.io/gorm"
)

const shareCodeSize = 256

// MaxGrantHours caps a grant at ten years.
const MaxGrantHours = 10 * 365 * 24

type Service struct {
	Repo         Repository
	Certificates certificate.Repository
	Directory    directory.Repository
	Outbox       outbox.OutboxRepository
	Content      content.Store
	Events       realtime.Publisher
	Runner       *database.TxRunner
	Conf         Config
	Now          func() time.Time
}

func NewService(runner *database.TxRunner, store content.Store, events realtime.Publisher, conf Config) *Service {
	return &Service{
		Repo:         NewRepositoryWithDB(runner.DB()),
		Certificates: certificate.NewRepositoryWithDB(runner.DB()),
		Directory:    directory.NewRepositoryWithDB(runner.DB()),
		Outbox:       outbox.NewRepoWithDB(runner.DB()),
		Content:      store,
		Events:       events,
		Runner:       runner,
		Conf:         conf,
		Now:          func() time.Time { return time.Now().UTC() },
	}
}

// Grant lets viewerAddress see the certificate for durationHours. Only the owning student may grant.
func (s *Service) Grant(ctx context.Context, certificateId int, viewerAddress string, grantedByStudentId, durationHours int) (*model.AccessGrant, error) {
	viewerAddress = middleware.NormalizeAddress(viewerAddress)
	if viewerAddress == "" {
		return nil, reasoncodes.New(reasoncodes.ErrInvalidInput, "viewer address is required")
	}
	if durationHours <= 0 {
		return nil, reasoncodes.New(reasoncodes.ErrInvalidInput, "duration must be a positive number of hours, got %d", durationHours)
	}
	if durationHours > MaxGrantHours {
		return nil, reasoncodes.New(reasoncodes.ErrInvalidInput, "duration may not exceed %d hours, got %d", MaxGrantHours, durationHours)
	}

	var (
		grant *model.AccessGrant
		event realtime.Event
	)
	err := s.Runner.InTx(ctx, "grant access", func(tx *gorm.DB) error {
		cert, err := s.Certificates.WithTx(tx).Get(certificateId)
		if err != nil {
			return err
		}
		if cert.StudentId != grantedByStudentId {
			return reasoncodes.New(reasoncodes.ErrUnauthorized,
				"student %d does not own certificate %d", grantedByStudentId, certificateId)
		}

		now := s.Now()
		grant = &model.AccessGrant{
			CertificateId:      certificateId,
			ViewerAddress:      viewerAddress,
			GrantedByStudentId: grantedByStudentId,
			ExpiresAt:          now.Add(time.Duration(durationHours) * time.Hour),
			CreatedAt:          now,
		}
		if err := s.Repo.WithTx(tx).Create(grant); err != nil {
			return err
		}

		event = realtime.NewEvent(model.AccessGrantsTable, realtime.OpInsert, *grant)
		_, err = s.Outbox.WithTx(tx).RecordChange(event)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.Events.Publish(event)
	logger.Default().Infof("Student %d granted %s access to certificate %d for %dh", grantedByStudentId, viewerAddress, certificateId, durationHours)
	return grant, nil
}

func (s *Service) ListGrants(ctx context.Context, certificateId int) ([]model.AccessGrant, error) {
	var grants []model.AccessGrant
	err := s.Runner.Do(ctx, "list grants", func(db *gorm.DB) error {
		if _, err := s.Certificates.WithTx(db).Get(certificateId); err != nil {
			return err
		}
		var err error
		grants, err = s.Repo.WithTx(db).ListGrants(certificateId)
		return err
	})
	return grants, err
}

// ActiveGrant returns nil when the viewer holds no grant active at now.
func (s *Service) ActiveGrant(ctx context.Context, certificateId int, viewerAddress string, now time.Time) (*model.AccessGrant, error) {
	var grant *model.AccessGrant
	err := s.Runner.Do(ctx, "active grant", func(db *gorm.DB) (err error) {
		grant, err = s.Repo.WithTx(db).ActiveGrant(certificateId, middleware.NormalizeAddress(viewerAddress), now)
		return err
	})
	return grant, err
}

// authorizeViewer allows the owner and the issuer. Other viewers need an active grant when
// grants are enforced.
func (s *Service) authorizeViewer(db *gorm.DB, cert *model.Certificate, viewer string) error {
	dir := s.Directory.WithTx(db)

	owner, err := dir.GetStudent(cert.StudentId)
	if err != nil {
		return err
	}
	if owner.WalletAddress == viewer {
		return nil
	}
	issuer, err := dir.GetInstitute(cert.InstituteId)
	if err != nil {
		return err
	}
	if issuer.WalletAddress == viewer || !s.Conf.EnforceGrants {
		return nil
	}

	grant, err := s.Repo.WithTx(db).ActiveGrant(cert.Id, viewer, s.Now())
	if err != nil {
		return err
	}
	if grant == nil {
		return reasoncodes.New(reasoncodes.ErrUnauthorized, "%s has no active grant for certificate %d", viewer, cert.Id)
	}
	return nil
}

// FetchContent returns the certificate file for viewerAddress and records the access.
func (s *Service) FetchContent(ctx context.Context, certificateId int, viewerAddress string) ([]byte, error) {
	viewer := middleware.NormalizeAddress(viewerAddress)
	if viewer == "" {
		return nil, reasoncodes.New(reasoncodes.ErrUnauthorized, "viewer address is required")
	}

	var cert *model.Certificate
	err := s.Runner.Do(ctx, "authorize viewer", func(db *gorm.DB) (err error) {
		if cert, err = s.Certificates.WithTx(db).Get(certificateId); err != nil {
			return err
		}
		return s.authorizeViewer(db, cert, viewer)
	})
	if err != nil {
		return nil, err
	}

	data, err := s.Content.Get(ctx, cert.ContentId)
	if err != nil {
		return nil, err
	}

	err = s.Runner.Do(ctx, "log access", func(db *gorm.DB) error {
		return s.Repo.WithTx(db).LogAccess(&model.AccessLog{
			CertificateId: certificateId,
			ViewerAddress: viewer,
			ViewedAt:      s.Now(),
		})
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *Service) ListAccessLogs(ctx context.Context, certificateId int) ([]model.AccessLog, error) {
	var logs []model.AccessLog
	err := s.Runner.Do(ctx, "list access logs", func(db *gorm.DB) error {
		if _, err := s.Certificates.WithTx(db).Get(certificateId); err != nil {
			return err
		}
		var err error
		logs, err = s.Repo.WithTx(db).ListAccessLogs(certificateId)
		return err
	})
	return logs, err
}

func (s *Service) ShareLink(certificateId int, viewerAddress string) string {
	return fmt.Sprintf("%s/%d?viewer=%s", s.Conf.ShareBaseUrl, certificateId,
		url.QueryEscape(middleware.NormalizeAddress(viewerAddress)))
}

// ShareCode renders the share link of the certificate for viewerAddress as a PNG QR code.
func (s *Service) ShareCode(ctx context.Context, certificateId int, viewerAddress string) ([]byte, error) {
	if middleware.NormalizeAddress(viewerAddress) == "" {
		return nil, reasoncodes.New(reasoncodes.ErrInvalidInput, "viewer address is required")
	}

	err := s.Runner.Do(ctx, "share code", func(db *gorm.DB) error {
		_, err := s.Certificates.WithTx(db).Get(certificateId)
		return err
	})
	if err != nil {
		return nil, err
	}

	png, err := qrcode.Encode(s.ShareLink(certificateId, viewerAddress), qrcode.Medium, shareCodeSize)
	if err != nil {
		return nil, fmt.Errorf("share code: %w", err)
	}
	return png, nil
}
