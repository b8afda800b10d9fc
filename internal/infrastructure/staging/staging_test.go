package staging_test

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/francepatrick/s3-image-uploader/internal/entity"
	"github.com/francepatrick/s3-image-uploader/internal/infrastructure/staging"
)

var fixedNow = time.Date(2024, time.March, 7, 15, 4, 5, 0, time.UTC)

func newArea(t *testing.T) (*staging.Area, string) {
	t.Helper()

	base := t.TempDir()
	a, err := staging.New(base, staging.Clock(func() time.Time { return fixedNow }))
	require.NoError(t, err)

	return a, base
}

func TestEnsureDailyCreatesLayout(t *testing.T) {
	a, base := newArea(t)

	dir, err := a.EnsureDaily(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "03-07-2024", dir.Date)
	assert.Equal(t, filepath.Join(base, "uploads", "temp", "03-07-2024"), dir.Root)

	for _, r := range entity.Roles {
		info, err := os.Stat(dir.Path(r))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestEnsureDailyIdempotent(t *testing.T) {
	a, _ := newArea(t)

	first, err := a.EnsureDaily(context.Background())
	require.NoError(t, err)

	// directory already on disk from an earlier process
	other, err := staging.New(filepath.Dir(filepath.Dir(filepath.Dir(first.Root))),
		staging.Clock(func() time.Time { return fixedNow }))
	require.NoError(t, err)

	second, err := other.EnsureDaily(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEnsureDailyConcurrent(t *testing.T) {
	a, _ := newArea(t)

	const n = 64
	dirs := make([]entity.StagingDir, n)
	errs := make([]error, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			dirs[i], errs[i] = a.EnsureDaily(context.Background())
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, dirs[0], dirs[i])
	}
}

func TestEnsureDailyNewDay(t *testing.T) {
	now := fixedNow
	base := t.TempDir()
	a, err := staging.New(base, staging.Clock(func() time.Time { return now }))
	require.NoError(t, err)

	d1, err := a.EnsureDaily(context.Background())
	require.NoError(t, err)

	now = now.AddDate(0, 0, 1)
	d2, err := a.EnsureDaily(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "03-08-2024", d2.Date)
	assert.NotEqual(t, d1.Root, d2.Root)
	assert.DirExists(t, d2.Thumbnail())
}

func TestEnsureDailyMkdirFailure(t *testing.T) {
	base := t.TempDir()
	// a regular file where the uploads directory should be
	require.NoError(t, os.WriteFile(filepath.Join(base, "uploads"), nil, 0o644))

	a, err := staging.New(base)
	require.NoError(t, err)

	_, err = a.EnsureDaily(context.Background())
	assert.Error(t, err)
}

func TestWriteOriginal(t *testing.T) {
	a, _ := newArea(t)

	dir, err := a.EnsureDaily(context.Background())
	require.NoError(t, err)

	payload := base64.StdEncoding.EncodeToString([]byte("hello image"))
	f, err := a.WriteOriginal(dir, payload, ".jpeg")
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{32}[0-9]+\.jpeg$`), f.Filename)
	assert.Equal(t, filepath.Join(dir.Original(), f.Filename), f.Path)

	data, err := os.ReadFile(f.Path)
	require.NoError(t, err)
	assert.Equal(t, "hello image", string(data))
}

func TestWriteOriginalUnpadded(t *testing.T) {
	a, _ := newArea(t)

	dir, err := a.EnsureDaily(context.Background())
	require.NoError(t, err)

	payload := base64.RawStdEncoding.EncodeToString([]byte("abcd"))
	f, err := a.WriteOriginal(dir, payload, ".png")
	require.NoError(t, err)

	data, err := os.ReadFile(f.Path)
	require.NoError(t, err)
	assert.Equal(t, "abcd", string(data))
}

func TestWriteOriginalInvalidBase64(t *testing.T) {
	a, _ := newArea(t)

	dir, err := a.EnsureDaily(context.Background())
	require.NoError(t, err)

	_, err = a.WriteOriginal(dir, "not an image", ".jpeg")
	assert.Error(t, err)
}

func TestFilenameTimestamp(t *testing.T) {
	a, _ := newArea(t)

	name := a.Filename(".png")
	assert.Regexp(t, `^[0-9a-f]{32}1709823845000\.png$`, name)
}
