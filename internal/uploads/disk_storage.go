package uploads

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/warmachine/internal/telemetry/tracing"
	"github.com/2beens/warmachine/pkg"
)

// PublicPrefix is the URL path the uploads dir is served under.
const PublicPrefix = "/uploads/"

var ErrFileNotFound = errors.New("file not found")

// DiskStorage stores uploaded files flat in a single directory.
// File names are never reused, so the directory is append only.
type DiskStorage struct {
	rootPath string
	mutex    sync.Mutex
	// injectable clock, for tests
	Now func() time.Time
}

func NewDiskStorage(rootPath string) (*DiskStorage, error) {
	if rootPath == "" {
		return nil, errors.New("root path cannot be empty")
	}
	if err := pkg.EnsureDir(rootPath); err != nil {
		return nil, fmt.Errorf("ensure uploads dir: %w", err)
	}
	return &DiskStorage{
		rootPath: rootPath,
		Now:      time.Now,
	}, nil
}

type SaveFileParams struct {
	// Prefix is the logical kind, e.g. "profile" or "drawing"
	Prefix  string
	OwnerID int64
	Ext     string
	File    io.Reader
}

type SavedFile struct {
	Name string
	URL  string
	Size int64
}

// Save writes the file as <prefix>_<ownerID>_<unixMillis>.<ext>.
func (ds *DiskStorage) Save(ctx context.Context, params SaveFileParams) (_ *SavedFile, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "uploads.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("file.prefix", params.Prefix))
	span.SetAttributes(attribute.Int64("file.owner", params.OwnerID))

	dst, name, err := ds.createUnique(params)
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	size, err := io.Copy(dst, params.File)
	if err != nil {
		if removeErr := os.Remove(dst.Name()); removeErr != nil {
			log.Errorf("failed to remove partially written upload %s: %s", dst.Name(), removeErr)
		}
		return nil, fmt.Errorf("write upload: %w", err)
	}

	span.SetAttributes(attribute.Int64("file.size", size))
	log.Debugf("uploads: saved %s [%d bytes]", name, size)

	return &SavedFile{
		Name: name,
		URL:  path.Join(PublicPrefix, name),
		Size: size,
	}, nil
}

// createUnique reserves the file name; two uploads in the same millisecond
// get consecutive timestamps.
func (ds *DiskStorage) createUnique(params SaveFileParams) (*os.File, string, error) {
	ds.mutex.Lock()
	defer ds.mutex.Unlock()

	ts := ds.Now().UnixMilli()
	for attempt := 0; attempt < 100; attempt++ {
		name := fmt.Sprintf("%s_%d_%d.%s", params.Prefix, params.OwnerID, ts+int64(attempt), params.Ext)
		f, err := os.OpenFile(filepath.Join(ds.rootPath, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return f, name, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, "", fmt.Errorf("create upload file: %w", err)
		}
	}
	return nil, "", errors.New("could not find a free upload file name")
}

// Open returns the stored file by its name. Anything that is not a
// plain file directly in the uploads dir is ErrFileNotFound.
func (ds *DiskStorage) Open(name string) (*os.File, error) {
	if !isPlainName(name) {
		return nil, ErrFileNotFound
	}
	f, err := os.Open(filepath.Join(ds.rootPath, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}
	stat, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if !stat.Mode().IsRegular() {
		_ = f.Close()
		return nil, ErrFileNotFound
	}
	return f, nil
}

// Remove deletes a stored file, used when the row referencing it could not be written.
func (ds *DiskStorage) Remove(ctx context.Context, name string) (err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "uploads.remove")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("file.name", name))

	if !isPlainName(name) {
		return ErrFileNotFound
	}
	if err := os.Remove(filepath.Join(ds.rootPath, name)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrFileNotFound
		}
		return fmt.Errorf("remove upload: %w", err)
	}
	log.Debugf("uploads: removed %s", name)
	return nil
}

func isPlainName(name string) bool {
	return name != "" && name != "." && name != ".." && name == filepath.Base(name)
}
