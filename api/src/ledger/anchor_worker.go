package ledger

import (
	"context"
	"time"

	"ecertify/api/src/model"
	"ecertify/api/src/realtime"
	"ecertify/pkg/logger"
	"ecertify/pkg/rabbitmq"
)

const (
	anchorWorkerName = "LedgerAnchorWorker"
	backfillBatch    = 100
)

// AnchorWorker writes a ledger receipt for every approved certificate.
type AnchorWorker struct {
	hub    *realtime.Hub
	client Client
	repo   AnchorRepository
	logger *logger.Logger
}

func NewAnchorWorker(hub *realtime.Hub, client Client, repo AnchorRepository) rabbitmq.WorkerService {
	return &AnchorWorker{
		hub:    hub,
		client: client,
		repo:   repo,
		logger: logger.Default(),
	}
}

func (w *AnchorWorker) GetServiceName() string {
	return anchorWorkerName
}

// StartService anchors approvals published on the hub until ctx ends. Approvals made while the
// worker was down are picked up once at start.
func (w *AnchorWorker) StartService(ctx context.Context) error {
	sub := w.hub.Subscribe(realtime.Filter{Table: model.CertificatesTable})
	defer sub.Unsubscribe()

	w.backfill(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case e, ok := <-sub.C():
			if !ok {
				return nil
			}
			if cert, approved := approvedCertificate(e); approved {
				w.anchor(ctx, cert)
			}
		}
	}
}

func approvedCertificate(e realtime.Event) (model.Certificate, bool) {
	if e.Operation != realtime.OpUpdate {
		return model.Certificate{}, false
	}
	switch row := e.NewRow.(type) {
	case model.Certificate:
		return row, row.Approved
	case *model.Certificate:
		return *row, row.Approved
	}
	return model.Certificate{}, false
}

func (w *AnchorWorker) backfill(ctx context.Context) {
	pending, err := w.repo.ApprovedWithoutAnchor(KindCertificateApproved, backfillBatch)
	if err != nil {
		w.logger.Error(err, "Could not read unanchored certificates")
		return
	}
	for _, cert := range pending {
		w.anchor(ctx, cert)
	}
}

func (w *AnchorWorker) anchor(ctx context.Context, cert model.Certificate) {
	exists, err := w.repo.Exists(cert.Id, KindCertificateApproved)
	if err != nil {
		w.logger.Errorf(err, "Could not check anchors of certificate %d", cert.Id)
		return
	}
	if exists {
		return
	}

	ref, err := w.client.Anchor(ctx, Record{
		Kind:          KindCertificateApproved,
		CertificateId: cert.Id,
		StudentId:     cert.StudentId,
		InstituteId:   cert.InstituteId,
		ContentId:     cert.ContentId,
		At:            time.Now().UTC(),
	})
	if err != nil {
		w.logger.Errorf(err, "Could not anchor certificate %d", cert.Id)
		return
	}

	err = w.repo.Save(&model.LedgerAnchor{
		CertificateId: cert.Id,
		Kind:          KindCertificateApproved,
		TxRef:         ref,
	})
	if err != nil {
		w.logger.Errorf(err, "Could not store anchor %s of certificate %d", ref, cert.Id)
		return
	}
	w.logger.Debugf("Certificate %d anchored as %s", cert.Id, ref)
}
