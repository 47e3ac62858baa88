package transfer_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"ecertify/api/src/certificate"
	"ecertify/api/src/content"
	"ecertify/api/src/database"
	"ecertify/api/src/directory"
	"ecertify/api/src/model"
	"ecertify/api/src/realtime"
	"ecertify/api/src/transfer"
	reasoncodes "ecertify/pkg/reason_codes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	ctx       context.Context
	dir       *directory.Service
	transfers *transfer.Service
	certs     *certificate.Service
	hub       *realtime.Hub
	first     *model.Institute
	second    *model.Institute
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	runner := database.SetupTestTxRunner(t)
	hub := realtime.NewHub(16)
	t.Cleanup(hub.Close)

	dir := directory.NewService(runner)
	first, err := dir.UpsertInstitute(ctx, "0xfirst", "First", "")
	require.NoError(t, err)
	second, err := dir.UpsertInstitute(ctx, "0xsecond", "Second", "")
	require.NoError(t, err)

	return &fixture{
		ctx:       ctx,
		dir:       dir,
		transfers: transfer.NewService(runner, hub),
		certs:     certificate.NewService(runner, content.NewMemoryStore(), hub),
		hub:       hub,
		first:     first,
		second:    second,
	}
}

func (f *fixture) student(t *testing.T, address string, instituteId *int) *model.Student {
	t.Helper()
	student, err := f.dir.UpsertStudent(f.ctx, address, "Student", "", instituteId)
	require.NoError(t, err)
	return student
}

func (f *fixture) reload(t *testing.T, studentId int) *model.Student {
	t.Helper()
	student, err := f.dir.GetStudent(f.ctx, studentId)
	require.NoError(t, err)
	return student
}

func TestUnaffiliatedStudentJoinsInstitute(t *testing.T) {
	f := newFixture(t)
	student := f.student(t, "0xs", nil)
	sub := f.hub.Subscribe(realtime.StudentFeedFilters(student.Id)...)
	defer sub.Unsubscribe()
	feed := realtime.NewFeed(realtime.RoleStudent)

	request, err := f.transfers.Request(f.ctx, student.Id, nil, f.first.Id)
	require.NoError(t, err)
	assert.Equal(t, model.TransferPending, request.Status)
	assert.Nil(t, request.FromInstituteId)

	stored := f.reload(t, student.Id)
	require.NotNil(t, stored.PendingInstituteId)
	assert.Equal(t, f.first.Id, *stored.PendingInstituteId)
	assert.Nil(t, stored.CurrentInstituteId)

	approved, err := f.transfers.Approve(f.ctx, request.Id, student.Id, f.first.Id)
	require.NoError(t, err)
	assert.Equal(t, model.TransferApproved, approved.Status)

	stored = f.reload(t, student.Id)
	require.NotNil(t, stored.CurrentInstituteId)
	assert.Equal(t, f.first.Id, *stored.CurrentInstituteId)
	assert.Nil(t, stored.PendingInstituteId)

	var titles []string
	for i := 0; i < 2; i++ {
		select {
		case e := <-sub.C():
			if notice, ok := feed.Apply(e); ok {
				titles = append(titles, notice.Title)
			}
		case <-time.After(time.Second):
			t.Fatal("missing transfer event")
		}
	}
	assert.Equal(t, []string{"Institute Change Approved"}, titles)

	_, err = f.transfers.Approve(f.ctx, request.Id, student.Id, f.first.Id)
	assert.True(t, reasoncodes.Is(err, reasoncodes.ErrInvalidState))
}

func TestOldInstituteCannotIssueAfterTransfer(t *testing.T) {
	f := newFixture(t)
	student := f.student(t, "0xs", &f.first.Id)

	request, err := f.transfers.Request(f.ctx, student.Id, &f.first.Id, f.second.Id)
	require.NoError(t, err)
	assert.Equal(t, f.first.Id, *request.FromInstituteId)

	_, err = f.transfers.Approve(f.ctx, request.Id, student.Id, f.second.Id)
	require.NoError(t, err)

	stored := f.reload(t, student.Id)
	assert.Equal(t, f.second.Id, *stored.CurrentInstituteId)
	assert.Nil(t, stored.PendingInstituteId)

	_, err = f.certs.Issue(f.ctx, student.Id, f.first.Id, "QmLate")
	assert.True(t, reasoncodes.Is(err, reasoncodes.ErrUnauthorized))
	pending, err := f.certs.ListPendingForInstitute(f.ctx, f.first.Id)
	require.NoError(t, err)
	assert.Empty(t, pending)

	_, err = f.certs.Issue(f.ctx, student.Id, f.second.Id, "QmNew")
	assert.NoError(t, err)
}

func TestDeclineKeepsAffiliation(t *testing.T) {
	f := newFixture(t)
	student := f.student(t, "0xs", &f.first.Id)

	request, err := f.transfers.Request(f.ctx, student.Id, &f.first.Id, f.second.Id)
	require.NoError(t, err)

	_, err = f.transfers.Decline(f.ctx, request.Id, f.first.Id)
	assert.True(t, reasoncodes.Is(err, reasoncodes.ErrUnauthorized))

	declined, err := f.transfers.Decline(f.ctx, request.Id, f.second.Id)
	require.NoError(t, err)
	assert.Equal(t, model.TransferDeclined, declined.Status)

	stored, err := f.transfers.Get(f.ctx, request.Id)
	require.NoError(t, err)
	assert.Equal(t, model.TransferDeclined, stored.Status)

	reloaded := f.reload(t, student.Id)
	assert.Equal(t, f.first.Id, *reloaded.CurrentInstituteId)
	assert.Nil(t, reloaded.PendingInstituteId)

	_, err = f.transfers.Approve(f.ctx, request.Id, student.Id, f.second.Id)
	assert.True(t, reasoncodes.Is(err, reasoncodes.ErrInvalidState))

	_, err = f.transfers.Request(f.ctx, student.Id, &f.first.Id, f.second.Id)
	assert.NoError(t, err, "a declined transfer can be requested again")
}

func TestRequestPreconditions(t *testing.T) {
	f := newFixture(t)
	affiliated := f.student(t, "0xs1", &f.first.Id)
	waiting := f.student(t, "0xs2", nil)
	_, err := f.transfers.Request(f.ctx, waiting.Id, nil, f.first.Id)
	require.NoError(t, err)

	tests := []struct {
		name      string
		studentId int
		from      *int
		to        int
		code      reasoncodes.ReasonCode
	}{
		{"unknown student", 999, nil, f.first.Id, reasoncodes.ErrNotFound},
		{"unknown target", affiliated.Id, &f.first.Id, 999, reasoncodes.ErrNotFound},
		{"from does not match current", affiliated.Id, &f.second.Id, f.second.Id, reasoncodes.ErrInvalidState},
		{"nil from for affiliated student", affiliated.Id, nil, f.second.Id, reasoncodes.ErrInvalidState},
		{"target is current institute", affiliated.Id, &f.first.Id, f.first.Id, reasoncodes.ErrInvalidState},
		{"already pending", waiting.Id, nil, f.second.Id, reasoncodes.ErrInvalidState},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.transfers.Request(f.ctx, tt.studentId, tt.from, tt.to)
			assert.True(t, reasoncodes.Is(err, tt.code), "got %v", err)
		})
	}

	pending, err := f.transfers.ListPendingForInstitute(f.ctx, f.first.Id)
	require.NoError(t, err)
	assert.Len(t, pending, 1)
	pending, err = f.transfers.ListPendingForInstitute(f.ctx, f.second.Id)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestApprovePreconditions(t *testing.T) {
	f := newFixture(t)
	student := f.student(t, "0xs", nil)
	other := f.student(t, "0xo", nil)
	request, err := f.transfers.Request(f.ctx, student.Id, nil, f.first.Id)
	require.NoError(t, err)

	_, err = f.transfers.Approve(f.ctx, 999, student.Id, f.first.Id)
	assert.True(t, reasoncodes.Is(err, reasoncodes.ErrNotFound))

	_, err = f.transfers.Approve(f.ctx, request.Id, other.Id, f.first.Id)
	assert.True(t, reasoncodes.Is(err, reasoncodes.ErrInvalidState))

	_, err = f.transfers.Approve(f.ctx, request.Id, student.Id, f.second.Id)
	assert.True(t, reasoncodes.Is(err, reasoncodes.ErrUnauthorized))

	stored, err := f.transfers.Get(f.ctx, request.Id)
	require.NoError(t, err)
	assert.True(t, stored.IsPending())
}

func TestConcurrentResolutionHasOneWinner(t *testing.T) {
	f := newFixture(t)
	student := f.student(t, "0xs", nil)
	request, err := f.transfers.Request(f.ctx, student.Id, nil, f.first.Id)
	require.NoError(t, err)

	var (
		wg   sync.WaitGroup
		errs = make([]error, 2)
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, errs[0] = f.transfers.Approve(f.ctx, request.Id, student.Id, f.first.Id)
	}()
	go func() {
		defer wg.Done()
		_, errs[1] = f.transfers.Decline(f.ctx, request.Id, f.first.Id)
	}()
	wg.Wait()

	failures := 0
	for _, err := range errs {
		if err != nil {
			assert.True(t, reasoncodes.Is(err, reasoncodes.ErrInvalidState), "got %v", err)
			failures++
		}
	}
	assert.Equal(t, 1, failures)

	stored, err := f.transfers.Get(f.ctx, request.Id)
	require.NoError(t, err)
	assert.False(t, stored.IsPending())
}
