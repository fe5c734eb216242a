package postgres

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"famhealth/internal/domain/entity"
	domainerrors "famhealth/internal/domain/errors"
	"famhealth/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var deviceColumns = []string{"device_id", "account_id", "last_seen_at", "metadata", "created_at", "updated_at"}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

func TestDeviceRepository_FindDevicesByAccount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDeviceRepository(db)
	seen := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "device_registrations" WHERE account_id = \$1 ORDER BY last_seen_at DESC`).
		WithArgs("acct-1").
		WillReturnRows(sqlmock.NewRows(deviceColumns).
			AddRow("dev-1", "acct-1", seen, []byte(`{"osName":"iOS","browserName":"Safari"}`), seen, seen).
			AddRow("dev-2", "acct-1", seen.Add(-time.Hour), []byte(`{}`), seen, seen))

	devices, err := repo.FindDevicesByAccount(context.Background(), "acct-1")

	require.NoError(t, err)
	require.Len(t, devices, 2)
	assert.Equal(t, "dev-1", devices[0].DeviceID)
	require.NotNil(t, devices[0].Metadata)
	assert.Equal(t, "iOS", devices[0].Metadata.OSName)
	assert.Equal(t, "Safari", devices[0].Metadata.BrowserName)
	assert.Nil(t, devices[1].Metadata)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeviceRepository_FindDevicesByAccount_StoreFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDeviceRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "device_registrations"`).
		WillReturnError(errors.New("connection refused"))

	devices, err := repo.FindDevicesByAccount(context.Background(), "acct-1")

	require.Error(t, err)
	assert.Nil(t, devices)
	assert.True(t, domainerrors.IsStoreError(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeviceRepository_FindDeviceByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDeviceRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "device_registrations" WHERE device_id = \$1`).
		WillReturnRows(sqlmock.NewRows(deviceColumns))

	device, err := repo.FindDeviceByID(context.Background(), "missing")

	assert.Nil(t, device)
	assert.ErrorIs(t, err, repository.ErrDeviceNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeviceRepository_UpsertDevice_MergesOnConflict(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDeviceRepository(db)

	mock.ExpectExec(`INSERT INTO "device_registrations" .* ON CONFLICT \("device_id"\) DO UPDATE SET .*GREATEST\(device_registrations.last_seen_at, EXCLUDED.last_seen_at\).*device_registrations.metadata \|\| EXCLUDED.metadata.* WHERE device_registrations.account_id = EXCLUDED.account_id`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	device := &entity.DeviceRegistration{
		DeviceID:   "dev-1",
		AccountID:  "acct-1",
		LastSeenAt: time.Now(),
		Metadata:   &entity.DeviceMetadata{OSName: "Android"},
	}

	err := repo.UpsertDevice(context.Background(), device)

	require.NoError(t, err)
	assert.False(t, device.CreatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeviceRepository_UpsertDevice_ForeignOwnerIsUntouched(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDeviceRepository(db)

	// The guarded conflict update matches no row when another account holds the device.
	mock.ExpectExec(`INSERT INTO "device_registrations" .* ON CONFLICT \("device_id"\) DO UPDATE SET .* WHERE device_registrations.account_id = EXCLUDED.account_id`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpsertDevice(context.Background(), &entity.DeviceRegistration{
		DeviceID:   "dev-1",
		AccountID:  "acct-2",
		LastSeenAt: time.Now(),
	})

	assert.ErrorIs(t, err, repository.ErrDeviceOwnedByAnotherAccount)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeviceRepository_RefreshDevice(t *testing.T) {
	tests := []struct {
		name      string
		result    driver.Result
		execErr   error
		wantErr   error
		wantStore bool
	}{
		{name: "row still exists", result: sqlmock.NewResult(0, 1)},
		{name: "row vanished", result: sqlmock.NewResult(0, 0), wantErr: repository.ErrDeviceNotFound},
		{name: "store down", execErr: errors.New("timeout"), wantStore: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewDeviceRepository(db)

			exec := mock.ExpectExec(`UPDATE "device_registrations" SET "last_seen_at"=GREATEST\(last_seen_at, \$1\),"updated_at"=\$2 WHERE device_id = \$3 AND account_id = \$4`)
			if tt.execErr != nil {
				exec.WillReturnError(tt.execErr)
			} else {
				exec.WillReturnResult(tt.result)
			}

			err := repo.RefreshDevice(context.Background(), "dev-1", "acct-1", time.Now(), nil)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantStore:
				assert.True(t, domainerrors.IsStoreError(err))
			default:
				assert.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDeviceRepository_RefreshDevice_MergesMetadata(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDeviceRepository(db)

	mock.ExpectExec(`UPDATE "device_registrations" SET "last_seen_at"=GREATEST\(last_seen_at, \$1\),"metadata"=metadata \|\| \$2::jsonb,"updated_at"=\$3 WHERE device_id = \$4 AND account_id = \$5`).
		WithArgs(sqlmock.AnyArg(), `{"browserVersion":"125.0"}`, sqlmock.AnyArg(), "dev-1", "acct-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.RefreshDevice(context.Background(), "dev-1", "acct-1", time.Now(), &entity.DeviceMetadata{BrowserVersion: "125.0"})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeviceRepository_DeleteDevice_IsIdempotent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDeviceRepository(db)

	mock.ExpectExec(`DELETE FROM "device_registrations" WHERE device_id = \$1 AND account_id = \$2`).
		WithArgs("gone", "acct-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteDevice(context.Background(), "gone", "acct-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestShareRepository_FindAcceptedShare(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewShareRepository(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "profile_shares" WHERE profile_id = \$1 AND LOWER\(invitee_email\) = \$2 AND status = \$3`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "profile_id", "owner_account_id", "owner_email", "invitee_email",
			"invitee_account_id", "role", "status", "created_at", "updated_at",
		}).AddRow(
			"0190c5e8-7a3b-7c1d-8e9f-0a1b2c3d4e5f", "profile-p", "acct-owner", "owner@example.com", "v@example.com",
			nil, "viewer", "accepted", now, now,
		))

	grant, err := repo.FindAcceptedShare(context.Background(), "profile-p", "V@Example.com")

	require.NoError(t, err)
	assert.Equal(t, entity.ShareRoleViewer, grant.Role)
	assert.Equal(t, entity.ShareStatusAccepted, grant.Status)
	assert.Nil(t, grant.InviteeAccountID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_FindProfileOwner_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileRepository(db)

	mock.ExpectQuery(`SELECT "id","owner_account_id" FROM "profiles" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_account_id"}))

	profile, err := repo.FindProfileOwner(context.Background(), "nope")

	assert.Nil(t, profile)
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscriptionRepository_FindSnapshotsByAccount_FiltersStatuses(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSubscriptionRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "subscription_snapshots" WHERE account_id = \$1 AND status IN \(\$2,\$3\) ORDER BY created_at DESC`).
		WithArgs("acct-1", "active", "trialing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "account_id", "status", "created_at"}).
			AddRow("0190c5e8-7a3b-7c1d-8e9f-0a1b2c3d4e5f", "acct-1", "trialing", time.Now()))

	snapshots, err := repo.FindSnapshotsByAccount(context.Background(), "acct-1",
		[]entity.SubscriptionStatus{entity.SubscriptionStatusActive, entity.SubscriptionStatusTrialing})

	require.NoError(t, err)
	require.Len(t, snapshots, 1)
	assert.Equal(t, entity.SubscriptionStatusTrialing, snapshots[0].Status)
	require.NoError(t, mock.ExpectationsWereMet())
}
