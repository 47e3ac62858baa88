package certificate_test

import (
	"context"
	"testing"
	"time"

	"ecertify/api/src/certificate"
	"ecertify/api/src/content"
	"ecertify/api/src/database"
	"ecertify/api/src/directory"
	"ecertify/api/src/model"
	"ecertify/api/src/outbox"
	"ecertify/api/src/realtime"
	reasoncodes "ecertify/pkg/reason_codes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	ctx    context.Context
	dir    *directory.Service
	certs  *certificate.Service
	hub    *realtime.Hub
	store  *content.MemoryStore
	outbox outbox.OutboxRepository
}

func newEnv(t *testing.T) *testEnv {
	t.Helper()
	runner := database.SetupTestTxRunner(t)
	hub := realtime.NewHub(16)
	t.Cleanup(hub.Close)
	store := content.NewMemoryStore()

	return &testEnv{
		ctx:    context.Background(),
		dir:    directory.NewService(runner),
		certs:  certificate.NewService(runner, store, hub),
		hub:    hub,
		store:  store,
		outbox: outbox.NewRepoWithDB(runner.DB()),
	}
}

func (e *testEnv) institute(t *testing.T, address string) *model.Institute {
	t.Helper()
	institute, err := e.dir.UpsertInstitute(e.ctx, address, "Institute "+address, "")
	require.NoError(t, err)
	return institute
}

func (e *testEnv) student(t *testing.T, address string, instituteId *int) *model.Student {
	t.Helper()
	student, err := e.dir.UpsertStudent(e.ctx, address, "Student "+address, "", instituteId)
	require.NoError(t, err)
	return student
}

func nextEvent(t *testing.T, sub *realtime.Subscription) realtime.Event {
	t.Helper()
	select {
	case e := <-sub.C():
		return e
	case <-time.After(time.Second):
		t.Fatal("expected a change event")
		return realtime.Event{}
	}
}

func TestIssueThenPendingContainsCertificate(t *testing.T) {
	env := newEnv(t)
	institute := env.institute(t, "0xi")
	student := env.student(t, "0xs", &institute.Id)
	sub := env.hub.Subscribe(realtime.InstituteFeedFilters(institute.Id)...)
	defer sub.Unsubscribe()

	issued, err := env.certs.Issue(env.ctx, student.Id, institute.Id, "QmFile")
	require.NoError(t, err)
	assert.False(t, issued.Approved)

	pending, err := env.certs.ListPendingForInstitute(env.ctx, institute.Id)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, issued.Id, pending[0].Id)
	assert.False(t, pending[0].Approved)

	e := nextEvent(t, sub)
	assert.Equal(t, realtime.OpInsert, e.Operation)
	assert.Equal(t, issued.Id, e.EntityId())

	events, err := env.outbox.GetUnprocessedEvents(10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, model.CertificatesTable, events[0].SourceTable)
}

func TestIssueValidation(t *testing.T) {
	env := newEnv(t)
	first := env.institute(t, "0xi1")
	second := env.institute(t, "0xi2")
	affiliated := env.student(t, "0xs1", &first.Id)
	unaffiliated := env.student(t, "0xs2", nil)

	tests := []struct {
		name        string
		studentId   int
		instituteId int
		contentId   string
		code        reasoncodes.ReasonCode
	}{
		{"empty content id", affiliated.Id, first.Id, "", reasoncodes.ErrInvalidInput},
		{"unknown student", 999, first.Id, "QmFile", reasoncodes.ErrNotFound},
		{"unknown institute", affiliated.Id, 999, "QmFile", reasoncodes.ErrNotFound},
		{"student of another institute", affiliated.Id, second.Id, "QmFile", reasoncodes.ErrUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.certs.Issue(env.ctx, tt.studentId, tt.instituteId, tt.contentId)
			assert.True(t, reasoncodes.Is(err, tt.code), "got %v", err)
		})
	}

	_, err := env.certs.Issue(env.ctx, unaffiliated.Id, second.Id, "QmFile")
	assert.NoError(t, err)

	pending, err := env.certs.ListPendingForInstitute(env.ctx, second.Id)
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}

func TestApproveIsIdempotent(t *testing.T) {
	env := newEnv(t)
	institute := env.institute(t, "0xi")
	student := env.student(t, "0xs", &institute.Id)
	issued, err := env.certs.Issue(env.ctx, student.Id, institute.Id, "QmFile")
	require.NoError(t, err)

	sub := env.hub.Subscribe(realtime.StudentFeedFilters(student.Id)...)
	defer sub.Unsubscribe()

	first, err := env.certs.Approve(env.ctx, issued.Id, institute.Id)
	require.NoError(t, err)
	second, err := env.certs.Approve(env.ctx, issued.Id, institute.Id)
	require.NoError(t, err)

	assert.True(t, first.Approved)
	assert.Equal(t, first, second)

	e := nextEvent(t, sub)
	assert.Equal(t, realtime.OpUpdate, e.Operation)
	select {
	case extra := <-sub.C():
		t.Fatalf("second approval emitted %+v", extra)
	default:
	}

	events, err := env.outbox.GetUnprocessedEvents(10)
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestApproveRequiresIssuer(t *testing.T) {
	env := newEnv(t)
	issuer := env.institute(t, "0xi1")
	other := env.institute(t, "0xi2")
	student := env.student(t, "0xs", &issuer.Id)
	issued, err := env.certs.Issue(env.ctx, student.Id, issuer.Id, "QmFile")
	require.NoError(t, err)

	_, err = env.certs.Approve(env.ctx, issued.Id, other.Id)
	assert.True(t, reasoncodes.Is(err, reasoncodes.ErrUnauthorized))

	_, err = env.certs.Approve(env.ctx, 12345, issuer.Id)
	assert.True(t, reasoncodes.Is(err, reasoncodes.ErrNotFound))

	stored, err := env.certs.Get(env.ctx, issued.Id)
	require.NoError(t, err)
	assert.False(t, stored.Approved)
}

func TestApprovalMovesCertificateOutOfPending(t *testing.T) {
	env := newEnv(t)
	institute := env.institute(t, "0xi")
	student := env.student(t, "0xs", &institute.Id)
	issued, err := env.certs.Issue(env.ctx, student.Id, institute.Id, "QmFile")
	require.NoError(t, err)

	_, err = env.certs.Approve(env.ctx, issued.Id, institute.Id)
	require.NoError(t, err)

	pending, err := env.certs.ListPendingForInstitute(env.ctx, institute.Id)
	require.NoError(t, err)
	assert.Empty(t, pending)

	owned, err := env.certs.ListForStudent(env.ctx, student.Id)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.True(t, owned[0].Approved)
}

func TestListForStudentNewestFirst(t *testing.T) {
	env := newEnv(t)
	institute := env.institute(t, "0xi")
	student := env.student(t, "0xs", &institute.Id)

	var ids []int
	for _, cid := range []string{"QmA", "QmB", "QmC"} {
		c, err := env.certs.Issue(env.ctx, student.Id, institute.Id, cid)
		require.NoError(t, err)
		ids = append(ids, c.Id)
	}

	owned, err := env.certs.ListForStudent(env.ctx, student.Id)
	require.NoError(t, err)
	require.Len(t, owned, 3)
	assert.Equal(t, []int{ids[2], ids[1], ids[0]}, []int{owned[0].Id, owned[1].Id, owned[2].Id})
}

func TestUploadStoresContent(t *testing.T) {
	env := newEnv(t)
	institute := env.institute(t, "0xi")
	student := env.student(t, "0xs", &institute.Id)

	issued, err := env.certs.Upload(env.ctx, institute.Id, student.Id, []byte("diploma bytes"))
	require.NoError(t, err)
	assert.Equal(t, content.ComputeContentId([]byte("diploma bytes")), issued.ContentId)

	data, err := env.store.Get(env.ctx, issued.ContentId)
	require.NoError(t, err)
	assert.Equal(t, []byte("diploma bytes"), data)

	_, err = env.certs.Upload(env.ctx, institute.Id, student.Id, nil)
	assert.True(t, reasoncodes.Is(err, reasoncodes.ErrInvalidInput))

	_, err = env.certs.Upload(env.ctx, institute.Id, 999, []byte("orphan"))
	assert.True(t, reasoncodes.Is(err, reasoncodes.ErrNotFound))
	_, err = env.store.Get(env.ctx, content.ComputeContentId([]byte("orphan")))
	assert.Error(t, err)
}
