package staging

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/francepatrick/s3-image-uploader/internal/entity"
	"github.com/francepatrick/s3-image-uploader/pkg/token"
	"golang.org/x/sync/singleflight"
)

const (
	_dateLayout  = "01-02-2006"
	_tokenLength = 16
	_dirPerm     = 0o755
	_filePerm    = 0o644
)

// Area manages <base>/uploads/temp/<MM-DD-YYYY>. Directories are created
// once per date and shared by every upload of that day.
type Area struct {
	root string
	now  func() time.Time

	mu    sync.Mutex
	dirs  map[string]entity.StagingDir
	group singleflight.Group
}

func New(baseDir string, opts ...Option) (*Area, error) {
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("staging - New - filepath.Abs: %w", err)
	}

	a := &Area{
		root: filepath.Join(abs, "uploads", "temp"),
		now:  time.Now,
		dirs: make(map[string]entity.StagingDir),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// EnsureDaily returns today's staging directory, creating it and its three
// children on first use.
func (a *Area) EnsureDaily(ctx context.Context) (entity.StagingDir, error) {
	date := a.now().Format(_dateLayout)

	a.mu.Lock()
	dir, ok := a.dirs[date]
	a.mu.Unlock()
	if ok {
		return dir, nil
	}

	ch := a.group.DoChan(date, func() (interface{}, error) {
		return a.create(date)
	})

	select {
	case <-ctx.Done():
		return entity.StagingDir{}, fmt.Errorf("Area - EnsureDaily: %w", ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return entity.StagingDir{}, fmt.Errorf("Area - EnsureDaily: %w", res.Err)
		}
		return res.Val.(entity.StagingDir), nil
	}
}

func (a *Area) create(date string) (entity.StagingDir, error) {
	dir := entity.StagingDir{
		Root: filepath.Join(a.root, date),
		Date: date,
	}

	for _, r := range entity.Roles {
		if err := os.MkdirAll(dir.Path(r), _dirPerm); err != nil {
			return entity.StagingDir{}, fmt.Errorf("Area - create - os.MkdirAll: %w", err)
		}
	}

	a.mu.Lock()
	// only the current day is ever looked up again
	for d := range a.dirs {
		delete(a.dirs, d)
	}
	a.dirs[date] = dir
	a.mu.Unlock()

	return dir, nil
}

// WriteOriginal decodes the base64 payload into dir/original under a freshly
// generated name.
func (a *Area) WriteOriginal(dir entity.StagingDir, payload, ext string) (entity.StagedFile, error) {
	data, err := decodeBase64(payload)
	if err != nil {
		return entity.StagedFile{}, fmt.Errorf("Area - WriteOriginal - decodeBase64: %w", err)
	}

	filename := a.Filename(ext)
	path := filepath.Join(dir.Original(), filename)

	if err := os.WriteFile(path, data, _filePerm); err != nil {
		return entity.StagedFile{}, fmt.Errorf("Area - WriteOriginal - os.WriteFile: %w", err)
	}

	return entity.StagedFile{Filename: filename, Path: path}, nil
}

// Filename returns <32 hex chars><unix millis><ext>.
func (a *Area) Filename(ext string) string {
	return token.Hex(_tokenLength) + strconv.FormatInt(a.now().UnixMilli(), 10) + ext
}

func decodeBase64(s string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err == nil {
		return data, nil
	}

	data, rawErr := base64.RawStdEncoding.DecodeString(s)
	if rawErr != nil {
		return nil, err
	}

	return data, nil
}
