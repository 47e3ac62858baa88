package ledger

import (
	"context"
	"encoding/json"
	"time"
)

const KindCertificateApproved = "certificate_approved"

// Record is the receipt written to the ledger. It never gates a workflow.
type Record struct {
	Kind          string    `json:"kind"`
	CertificateId int       `json:"certificate_id"`
	StudentId     int       `json:"student_id"`
	InstituteId   int       `json:"institute_id"`
	ContentId     string    `json:"content_id"`
	At            time.Time `json:"at"`
}

func (r Record) Serialize() ([]byte, error) {
	return json.Marshal(r)
}

// Client anchors records and returns a reference to the ledger write.
type Client interface {
	Anchor(ctx context.Context, record Record) (string, error)
}
