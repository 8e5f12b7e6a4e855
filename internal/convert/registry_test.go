package convert

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_CreateAndGet(t *testing.T) {
	registry := NewRegistry()

	created := registry.Create("img1", "data/uploads/img1.png", CategoryMechanics, "block on incline", "")

	require.NotEmpty(t, created.ID)
	assert.Equal(t, StatusProcessing, created.Status)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := registry.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "img1", got.ImageID)
	assert.Equal(t, "data/uploads/img1.png", got.ImagePath)
	assert.Equal(t, CategoryMechanics, got.Category)
	assert.Equal(t, "block on incline", got.Description)
	assert.Equal(t, 1, registry.Len())
}

func TestRegistry_Get_NotFound(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.Get("nope")
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestRegistry_Get_ReturnsSnapshot(t *testing.T) {
	registry := NewRegistry()
	job := registry.Create("img1", "p", CategoryGeneral, "", "")

	got, err := registry.Get(job.ID)
	require.NoError(t, err)

	// Mutating the snapshot must not touch registry state.
	got.Status = StatusFailed
	got.TikZCode = "scribbles"

	fresh, err := registry.Get(job.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusProcessing, fresh.Status)
	assert.Empty(t, fresh.TikZCode)
}

func TestRegistry_Complete(t *testing.T) {
	registry := NewRegistry()
	job := registry.Create("img1", "p", CategoryGeneral, "", "")

	err := registry.Complete(job.ID, `\begin{tikzpicture}\end{tikzpicture}`, "/api/outputs/render.png")
	require.NoError(t, err)

	got, err := registry.Get(job.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, got.Status)
	assert.Equal(t, `\begin{tikzpicture}\end{tikzpicture}`, got.TikZCode)
	assert.Equal(t, "/api/outputs/render.png", got.PreviewURL)
	assert.False(t, got.CompletedAt.IsZero())

	// Repeated reads return the same result.
	again, err := registry.Get(job.ID)
	require.NoError(t, err)
	assert.Equal(t, got.TikZCode, again.TikZCode)
}

func TestRegistry_TerminalStatesAreImmutable(t *testing.T) {
	tests := []struct {
		name  string
		first func(r *Registry, id string) error
		then  func(r *Registry, id string) error
		want  Status
	}{
		{
			name:  "complete then fail",
			first: func(r *Registry, id string) error { return r.Complete(id, "code", "") },
			then:  func(r *Registry, id string) error { return r.Fail(id, "late failure") },
			want:  StatusCompleted,
		},
		{
			name:  "fail then complete",
			first: func(r *Registry, id string) error { return r.Fail(id, "boom") },
			then:  func(r *Registry, id string) error { return r.Complete(id, "code", "") },
			want:  StatusFailed,
		},
		{
			name:  "expire then complete",
			first: func(r *Registry, id string) error { return r.Expire(id, "too slow") },
			then:  func(r *Registry, id string) error { return r.Complete(id, "code", "") },
			want:  StatusTimeout,
		},
		{
			name:  "double complete",
			first: func(r *Registry, id string) error { return r.Complete(id, "code", "") },
			then:  func(r *Registry, id string) error { return r.Complete(id, "other", "") },
			want:  StatusCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewRegistry()
			job := registry.Create("img1", "p", CategoryGeneral, "", "")

			require.NoError(t, tt.first(registry, job.ID))
			assert.ErrorIs(t, tt.then(registry, job.ID), ErrJobTerminal)

			got, err := registry.Get(job.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Status)
		})
	}
}

func TestRegistry_TransitionsOnUnknownJob(t *testing.T) {
	registry := NewRegistry()

	assert.ErrorIs(t, registry.Complete("nope", "code", ""), ErrJobNotFound)
	assert.ErrorIs(t, registry.Fail("nope", "msg"), ErrJobNotFound)
	assert.ErrorIs(t, registry.Expire("nope", "msg"), ErrJobNotFound)

	_, err := registry.Claim("nope")
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestRegistry_Claim(t *testing.T) {
	registry := NewRegistry()
	job := registry.Create("img1", "p", CategoryGeneral, "", "")

	claimed, err := registry.Claim(job.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusProcessing, claimed.Status)
	assert.False(t, claimed.StartedAt.IsZero())

	require.NoError(t, registry.Complete(job.ID, "code", ""))

	_, err = registry.Claim(job.ID)
	assert.ErrorIs(t, err, ErrJobTerminal)
}

func TestRegistry_Remove(t *testing.T) {
	registry := NewRegistry()
	job := registry.Create("img1", "p", CategoryGeneral, "", "")

	registry.Remove(job.ID)

	_, err := registry.Get(job.ID)
	assert.ErrorIs(t, err, ErrJobNotFound)
	assert.Equal(t, 0, registry.Len())
}

func TestRegistry_ExpireStale(t *testing.T) {
	registry := NewRegistry()

	stale := registry.Create("img1", "p", CategoryGeneral, "", "")
	finished := registry.Create("img2", "p", CategoryGeneral, "", "")
	require.NoError(t, registry.Complete(finished.ID, "code", ""))

	time.Sleep(5 * time.Millisecond)

	expired := registry.ExpireStale(time.Millisecond)

	require.Len(t, expired, 1)
	assert.Equal(t, stale.ID, expired[0])

	got, err := registry.Get(stale.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusTimeout, got.Status)
	assert.Contains(t, got.ErrorMessage, "timed out")

	// Terminal jobs are left alone.
	done, err := registry.Get(finished.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, done.Status)

	// Nothing left to expire.
	assert.Empty(t, registry.ExpireStale(time.Millisecond))
}

func TestValidCategory(t *testing.T) {
	for _, cat := range Categories {
		assert.True(t, ValidCategory(cat), cat)
	}
	assert.False(t, ValidCategory("astrology"))
	assert.False(t, ValidCategory(""))
	assert.False(t, ValidCategory("Mechanics"))
}

func TestStatus_Terminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusProcessing.Terminal())
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusFailed.Terminal())
	assert.True(t, StatusTimeout.Terminal())
}
