package directory_test

import (
	"context"
	"testing"

	"ecertify/api/src/database"
	"ecertify/api/src/directory"
	"ecertify/api/src/model"
	reasoncodes "ecertify/pkg/reason_codes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newService(t *testing.T) *directory.Service {
	t.Helper()
	return directory.NewService(database.SetupTestTxRunner(t))
}

func intPtr(v int) *int {
	return &v
}

func TestUpsertInstituteThenFindIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	institute, err := svc.UpsertInstitute(ctx, " 0xABCdef01 ", "Northfield College", "office@northfield.edu")
	require.NoError(t, err)
	assert.Equal(t, "0xabcdef01", institute.WalletAddress)

	for _, address := range []string{"0xabcdef01", "0XABCDEF01", "0xAbCdEf01"} {
		id, err := svc.FindInstituteId(ctx, address)
		require.NoError(t, err)
		require.NotNil(t, id, address)
		assert.Equal(t, institute.Id, *id)
	}

	missing, err := svc.FindInstituteId(ctx, "0xunknown")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUpsertInstituteKeepsIdentity(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	first, err := svc.UpsertInstitute(ctx, "0xaa", "Old Name", "old@example.org")
	require.NoError(t, err)
	second, err := svc.UpsertInstitute(ctx, "0xAA", "New Name", "new@example.org")
	require.NoError(t, err)

	assert.Equal(t, first.Id, second.Id)
	stored, err := svc.GetInstitute(ctx, first.Id)
	require.NoError(t, err)
	assert.Equal(t, "New Name", stored.DisplayName)
	assert.Equal(t, "new@example.org", stored.ContactEmail)
	assert.Equal(t, "0xaa", stored.WalletAddress)
}

func TestUpsertRejectsMissingFields(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	_, err := svc.UpsertInstitute(ctx, "", "Name", "")
	assert.True(t, reasoncodes.Is(err, reasoncodes.ErrInvalidInput))

	_, err = svc.UpsertStudent(ctx, "0xbb", "", "", nil)
	assert.True(t, reasoncodes.Is(err, reasoncodes.ErrInvalidInput))
}

func TestUpsertStudentInstituteRules(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	first, err := svc.UpsertInstitute(ctx, "0xi1", "First", "")
	require.NoError(t, err)
	second, err := svc.UpsertInstitute(ctx, "0xi2", "Second", "")
	require.NoError(t, err)

	t.Run("unknown institute", func(t *testing.T) {
		_, err := svc.UpsertStudent(ctx, "0xs0", "Nobody", "", intPtr(999))
		assert.True(t, reasoncodes.Is(err, reasoncodes.ErrNotFound))

		id, err := svc.FindStudentId(ctx, "0xs0")
		require.NoError(t, err)
		assert.Nil(t, id)
	})

	t.Run("unaffiliated student may join", func(t *testing.T) {
		student, err := svc.UpsertStudent(ctx, "0xs1", "Ada", "", nil)
		require.NoError(t, err)
		assert.Nil(t, student.CurrentInstituteId)

		student, err = svc.UpsertStudent(ctx, "0xs1", "Ada", "ada@example.org", intPtr(first.Id))
		require.NoError(t, err)
		require.NotNil(t, student.CurrentInstituteId)
		assert.Equal(t, first.Id, *student.CurrentInstituteId)
	})

	t.Run("same institute is a profile update", func(t *testing.T) {
		student, err := svc.UpsertStudent(ctx, "0xS1", "Ada L.", "", intPtr(first.Id))
		require.NoError(t, err)
		assert.Equal(t, "Ada L.", student.DisplayName)
	})

	t.Run("different institute needs a transfer", func(t *testing.T) {
		_, err := svc.UpsertStudent(ctx, "0xs1", "Ada", "", intPtr(second.Id))
		assert.True(t, reasoncodes.Is(err, reasoncodes.ErrInvalidState))

		id, err := svc.FindStudentId(ctx, "0xs1")
		require.NoError(t, err)
		student, err := svc.GetStudent(ctx, *id)
		require.NoError(t, err)
		assert.Equal(t, first.Id, *student.CurrentInstituteId)
	})

	t.Run("profile update without institute keeps affiliation", func(t *testing.T) {
		student, err := svc.UpsertStudent(ctx, "0xs1", "Ada", "", nil)
		require.NoError(t, err)
		require.NotNil(t, student.CurrentInstituteId)
		assert.Equal(t, first.Id, *student.CurrentInstituteId)
	})

	students, err := svc.ListStudentsForInstitute(ctx, first.Id)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "0xs1", students[0].WalletAddress)
}

func TestProvisionPlaceholderInstitute(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	institute, err := svc.ProvisionPlaceholderInstitute(ctx, "0xABCD1234")
	require.NoError(t, err)
	assert.Equal(t, "Institute (0xabcd...)", institute.DisplayName)
	assert.Equal(t, "institute-0xabcd@placeholder.local", institute.ContactEmail)

	again, err := svc.ProvisionPlaceholderInstitute(ctx, "0xabcd1234")
	require.NoError(t, err)
	assert.Equal(t, institute.Id, again.Id)

	registered, err := svc.UpsertInstitute(ctx, "0xfeed", "Real Name", "")
	require.NoError(t, err)
	kept, err := svc.ProvisionPlaceholderInstitute(ctx, "0xfeed")
	require.NoError(t, err)
	assert.Equal(t, registered.Id, kept.Id)
	assert.Equal(t, "Real Name", kept.DisplayName)
}

func TestGetByAddressNotFound(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	_, err := svc.GetInstituteByAddress(ctx, "0xnone")
	assert.True(t, reasoncodes.Is(err, reasoncodes.ErrNotFound))
	_, err = svc.GetStudentByAddress(ctx, "0xnone")
	assert.True(t, reasoncodes.Is(err, reasoncodes.ErrNotFound))
	_, err = svc.GetStudent(ctx, 42)
	assert.True(t, reasoncodes.Is(err, reasoncodes.ErrNotFound))
}

func TestActorResolution(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	_, err := svc.UpsertInstitute(ctx, "0xinst", "Institute", "")
	require.NoError(t, err)
	_, err = svc.UpsertStudent(ctx, "0xstud", "Student", "", nil)
	require.NoError(t, err)

	institute, err := svc.ActorInstitute(ctx, "0xINST")
	require.NoError(t, err)
	assert.Equal(t, "0xinst", institute.WalletAddress)

	_, err = svc.ActorInstitute(ctx, "0xstud")
	assert.True(t, reasoncodes.Is(err, reasoncodes.ErrUnauthorized))

	student, err := svc.ActorStudent(ctx, "0xstud")
	require.NoError(t, err)
	assert.Equal(t, "Student", student.DisplayName)

	_, err = svc.ActorStudent(ctx, "0xinst")
	assert.True(t, reasoncodes.Is(err, reasoncodes.ErrUnauthorized))
}

// staleRepository answers student lookups with a snapshot taken before a concurrent transfer.
type staleRepository struct {
	directory.Repository
	snapshot model.Student
}

func (r *staleRepository) WithTx(tx *gorm.DB) directory.Repository {
	return &staleRepository{Repository: r.Repository.WithTx(tx), snapshot: r.snapshot}
}

func (r *staleRepository) FindStudentByAddress(string) (*model.Student, error) {
	s := r.snapshot
	return &s, nil
}

func TestUpsertStudentKeepsConcurrentTransferColumns(t *testing.T) {
	ctx := context.Background()
	runner := database.SetupTestTxRunner(t)
	svc := directory.NewService(runner)

	first, err := svc.UpsertInstitute(ctx, "0xi1", "First", "")
	require.NoError(t, err)
	second, err := svc.UpsertInstitute(ctx, "0xi2", "Second", "")
	require.NoError(t, err)

	t.Run("profile update", func(t *testing.T) {
		student, err := svc.UpsertStudent(ctx, "0xs1", "Ada", "", intPtr(first.Id))
		require.NoError(t, err)
		svc.Repo = &staleRepository{Repository: directory.NewRepositoryWithDB(runner.DB()), snapshot: *student}
		t.Cleanup(func() { svc.Repo = directory.NewRepositoryWithDB(runner.DB()) })

		require.NoError(t, runner.DB().Model(&model.Student{}).
			Where("id = ?", student.Id).
			Update("pending_institute_id", second.Id).Error)

		updated, err := svc.UpsertStudent(ctx, "0xs1", "Ada L.", "ada@example.org", nil)
		require.NoError(t, err)
		assert.Equal(t, "Ada L.", updated.DisplayName)
		assert.Equal(t, "ada@example.org", updated.ContactEmail)
		require.NotNil(t, updated.PendingInstituteId)
		assert.Equal(t, second.Id, *updated.PendingInstituteId)
		require.NotNil(t, updated.CurrentInstituteId)
		assert.Equal(t, first.Id, *updated.CurrentInstituteId)
	})

	t.Run("attach after a transfer started", func(t *testing.T) {
		student, err := svc.UpsertStudent(ctx, "0xs2", "Grace", "", nil)
		require.NoError(t, err)
		svc.Repo = &staleRepository{Repository: directory.NewRepositoryWithDB(runner.DB()), snapshot: *student}
		t.Cleanup(func() { svc.Repo = directory.NewRepositoryWithDB(runner.DB()) })

		require.NoError(t, runner.DB().Model(&model.Student{}).
			Where("id = ?", student.Id).
			Update("pending_institute_id", second.Id).Error)

		_, err = svc.UpsertStudent(ctx, "0xs2", "Grace", "", intPtr(first.Id))
		assert.True(t, reasoncodes.Is(err, reasoncodes.ErrInvalidState), "got %v", err)

		stored, err := svc.GetStudent(ctx, student.Id)
		require.NoError(t, err)
		assert.Nil(t, stored.CurrentInstituteId)
		require.NotNil(t, stored.PendingInstituteId)
		assert.Equal(t, second.Id, *stored.PendingInstituteId)
	})
}
