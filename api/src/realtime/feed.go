package realtime

import (
	"sync"
	"time"

	"ecertify/api/src/model"
)

type Role string

const (
	RoleInstitute Role = "institute"
	RoleStudent   Role = "student"
)

const maxNotices = 50

type Notice struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Table       string    `json:"table"`
	EntityId    int       `json:"entity_id"`
	At          time.Time `json:"at"`
}

func InstituteFeedFilters(instituteId int) []Filter {
	return []Filter{
		{Table: model.CertificatesTable, Column: "institute_id", Value: instituteId},
		{Table: model.TransferRequestsTable, Column: "to_institute_id", Value: instituteId},
	}
}

func StudentFeedFilters(studentId int) []Filter {
	return []Filter{
		{Table: model.CertificatesTable, Column: "student_id", Value: studentId},
		{Table: model.TransferRequestsTable, Column: "student_id", Value: studentId},
		{Table: model.AccessGrantsTable, Column: "granted_by_student_id", Value: studentId},
	}
}

// Feed folds the events of one session into a refresh flag and the notices shown to the user.
type Feed struct {
	mu           sync.Mutex
	role         Role
	needsRefresh bool
	notices      []Notice
}

func NewFeed(role Role) *Feed {
	return &Feed{role: role}
}

// Apply reduces e into the feed and returns the notice it produced, if any.
func (f *Feed) Apply(e Event) (Notice, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	title, description, refresh := f.describe(e)
	if refresh {
		f.needsRefresh = true
	}
	if title == "" {
		return Notice{}, false
	}

	notice := Notice{
		Title:       title,
		Description: description,
		Table:       e.Table,
		EntityId:    e.EntityId(),
		At:          e.OccurredAt,
	}
	f.notices = append(f.notices, notice)
	if len(f.notices) > maxNotices {
		f.notices = f.notices[len(f.notices)-maxNotices:]
	}
	return notice, true
}

func (f *Feed) NeedsRefresh() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.needsRefresh
}

func (f *Feed) Notices() []Notice {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Notice(nil), f.notices...)
}

func (f *Feed) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.needsRefresh = false
}

func (f *Feed) describe(e Event) (title, description string, refresh bool) {
	switch row := e.NewRow.(type) {
	case model.Certificate:
		return f.describeCertificate(e.Operation, row)
	case *model.Certificate:
		return f.describeCertificate(e.Operation, *row)
	case model.TransferRequest:
		return f.describeTransfer(e.Operation, row)
	case *model.TransferRequest:
		return f.describeTransfer(e.Operation, *row)
	case model.AccessGrant, *model.AccessGrant:
		if f.role == RoleStudent && e.Operation == OpInsert {
			return "Access Granted", "You've granted access to one of your certificates", false
		}
	}
	return "", "", false
}

func (f *Feed) describeCertificate(op Operation, c model.Certificate) (string, string, bool) {
	switch {
	case op == OpInsert && f.role == RoleInstitute:
		return "New Certificate Upload", "A new certificate has been uploaded for your review", true
	case op == OpInsert:
		return "Certificate Added", "A new certificate has been issued to you", true
	case op == OpUpdate && c.Approved && f.role == RoleInstitute:
		return "Certificate Approved", "You have approved a certificate", true
	case op == OpUpdate && c.Approved:
		return "Certificate Approved", "Your certificate has been approved by the institute", true
	}
	return "", "", true
}

func (f *Feed) describeTransfer(op Operation, r model.TransferRequest) (string, string, bool) {
	switch {
	case op == OpInsert && f.role == RoleInstitute:
		return "New Institute Change Request", "A student has requested to join your institute", true
	case op == OpUpdate && f.role == RoleStudent && r.Status == model.TransferApproved:
		return "Institute Change Approved", "Your institute change request has been approved", true
	case op == OpUpdate && f.role == RoleStudent && r.Status == model.TransferDeclined:
		return "Institute Change Declined", "Your institute change request has been declined", true
	}
	return "", "", true
}
