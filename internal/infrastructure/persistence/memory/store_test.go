package memory

import (
	"context"
	"testing"
	"time"

	"github.com/roadwatch/backend/internal/domain/monitoring"
	"github.com/roadwatch/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())

	t.Run("assigns serial ids", func(t *testing.T) {
		first, err := monitoring.NewUser("alice", "hash", "Alice Smith", "", monitoring.UserRoleViewer)
		require.NoError(t, err)
		second, err := monitoring.NewUser("bob", "hash", "Bob Jones", "", monitoring.UserRoleViewer)
		require.NoError(t, err)

		require.NoError(t, repo.Save(ctx, first))
		require.NoError(t, repo.Save(ctx, second))

		assert.Equal(t, int64(1), first.ID)
		assert.Equal(t, int64(2), second.ID)
	})

	t.Run("finds by username", func(t *testing.T) {
		found, err := repo.FindByUsername(ctx, "bob")
		require.NoError(t, err)
		assert.Equal(t, int64(2), found.ID)

		_, err = repo.FindByUsername(ctx, "nobody")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("lists in id order", func(t *testing.T) {
		users, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "alice", users[0].Username)
		assert.Equal(t, "bob", users[1].Username)
	})
}

func TestCameraRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewCameraRepository(NewStore())

	camera, err := monitoring.NewCamera("Highway 12 North", "Mile 44", "fixed", nil)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, camera))

	updated, err := repo.UpdateStatus(ctx, camera.ID, monitoring.CameraStatusWarning)
	require.NoError(t, err)
	assert.Equal(t, monitoring.CameraStatusWarning, updated.Status)

	found, err := repo.FindByID(ctx, camera.ID)
	require.NoError(t, err)
	assert.Equal(t, monitoring.CameraStatusWarning, found.Status)

	_, err = repo.UpdateStatus(ctx, 999, monitoring.CameraStatusOffline)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestIncidentRepository_Ordering(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := NewIncidentRepository(store)

	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	for i, offset := range []time.Duration{0, 2 * time.Hour, time.Hour} {
		cameraID := int64(1)
		if i == 2 {
			cameraID = 2
		}
		incident, err := monitoring.NewIncident(cameraID, base.Add(offset), "collision", monitoring.SeverityHigh, "Mile 44", nil)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, incident))
	}

	t.Run("newest first", func(t *testing.T) {
		incidents, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, incidents, 3)
		assert.Equal(t, base.Add(2*time.Hour), incidents[0].Timestamp)
		assert.Equal(t, base.Add(time.Hour), incidents[1].Timestamp)
		assert.Equal(t, base, incidents[2].Timestamp)
	})

	t.Run("filters by camera", func(t *testing.T) {
		incidents, err := repo.FindByCameraID(ctx, 2)
		require.NoError(t, err)
		require.Len(t, incidents, 1)
		assert.Equal(t, int64(2), incidents[0].CameraID)
	})

	t.Run("mark reviewed persists", func(t *testing.T) {
		updated, err := repo.MarkReviewed(ctx, 1)
		require.NoError(t, err)
		assert.True(t, updated.Reviewed)

		found, err := repo.FindByID(ctx, 1)
		require.NoError(t, err)
		assert.True(t, found.Reviewed)
	})

	t.Run("detections are not aliased", func(t *testing.T) {
		incident, err := monitoring.NewIncident(1, base, "debris", monitoring.SeverityLow, "Mile 2", []monitoring.Detection{
			{Label: "object", Confidence: 0.5},
		})
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, incident))

		found, err := repo.FindByID(ctx, incident.ID)
		require.NoError(t, err)
		found.Detections[0].Label = "mutated"

		again, err := repo.FindByID(ctx, incident.ID)
		require.NoError(t, err)
		assert.Equal(t, "object", again.Detections[0].Label)
	})
}

func TestSystemStatRepository_FindLatest(t *testing.T) {
	ctx := context.Background()
	repo := NewSystemStatRepository(NewStore())

	_, err := repo.FindLatest(ctx)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	older, err := monitoring.NewSystemStat(base, 10, 20, monitoring.StorageSummary{}, "", nil)
	require.NoError(t, err)
	newer, err := monitoring.NewSystemStat(base.Add(time.Minute), 30, 40, monitoring.StorageSummary{}, "", nil)
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, older))
	require.NoError(t, repo.Save(ctx, newer))

	latest, err := repo.FindLatest(ctx)
	require.NoError(t, err)
	assert.Equal(t, newer.ID, latest.ID)
	assert.Equal(t, 30.0, latest.CPU)
}

func TestNotificationRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewNotificationRepository(NewStore())

	for _, incidentID := range []int64{7, 7, 8} {
		notification, err := monitoring.NewNotification(incidentID, "dispatch@example.com", "email")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, notification))
	}

	notifications, err := repo.FindByIncidentID(ctx, 7)
	require.NoError(t, err)
	require.Len(t, notifications, 2)
	assert.Less(t, notifications[0].ID, notifications[1].ID)

	empty, err := repo.FindByIncidentID(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
