package archive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"golang.org/x/sys/unix"

	"rendezvous/internal/documents"
	"rendezvous/internal/fileutil"
	"rendezvous/internal/logging"
	"rendezvous/internal/services"
)

const lockRetryDelay = 50 * time.Millisecond

// Archive writes documents under a single directory.
type Archive struct {
	dir    string
	lock   *flock.Flock
	logger *slog.Logger
}

// New prepares dir for writing and returns an archive rooted there.
func New(dir string, logger *slog.Logger) (*Archive, error) {
	if dir == "" {
		return nil, services.Wrap(services.ErrConfiguration, "archive", "open", "documents directory is empty", nil)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create documents directory: %w", err)
	}
	if err := unix.Access(dir, unix.W_OK|unix.X_OK); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "archive", "open",
			fmt.Sprintf("documents directory %s is not writable", dir), err)
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Archive{
		dir:    dir,
		lock:   flock.New(filepath.Join(dir, ".rendezvous.lock")),
		logger: logging.NewComponentLogger(logger, "archive"),
	}, nil
}

// Dir returns the archive root.
func (a *Archive) Dir() string {
	return a.dir
}

// Write renders out as PDF and stores it under its suggested filename. It
// returns the final path.
func (a *Archive) Write(ctx context.Context, out documents.Output) (string, error) {
	name := fileutil.SanitizeFileName(out.Filename)
	if name == "" {
		return "", services.Wrap(services.ErrValidation, "archive", "write", "document has no filename", nil)
	}
	dst := filepath.Join(a.dir, name)

	locked, err := a.lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return "", fmt.Errorf("acquire archive lock: %w", err)
	}
	if !locked {
		return "", errors.New("archive lock not acquired")
	}
	defer func() {
		if err := a.lock.Unlock(); err != nil {
			a.logger.Warn("failed to release archive lock", logging.Error(err))
		}
	}()

	err = fileutil.WriteAtomic(dst, 0o644, func(w io.Writer) error {
		return out.WritePDF(w)
	})
	if err != nil {
		return "", services.Wrap(services.ErrGeneration, "archive", "write", name, err)
	}

	logging.WithContext(ctx, a.logger).Info("document archived",
		logging.String("kind", string(out.Kind)),
		logging.String("path", dst),
		logging.Int("pages", len(out.Document.Pages)),
	)
	return dst, nil
}

// WriteAll stores every output in order and returns their paths. It stops at
// the first failure.
func (a *Archive) WriteAll(ctx context.Context, outputs []documents.Output) ([]string, error) {
	paths := make([]string, 0, len(outputs))
	for _, out := range outputs {
		path, err := a.Write(ctx, out)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
