package usecases

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"regexp"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

var safeExtensionPattern = regexp.MustCompile(`^\.[A-Za-z0-9]{1,8}$`)

// ScratchSpace is the directory holding request-scoped audio files. Every
// file belonging to one request shares a base name so it can be removed with
// a single Cleanup call.
type ScratchSpace struct {
	fs     afero.Fs
	dir    string
	logger *logrus.Logger
}

// NewScratchSpace creates a ScratchSpace rooted at dir.
func NewScratchSpace(fs afero.Fs, dir string, logger *logrus.Logger) ScratchSpace {
	return ScratchSpace{
		fs:     fs,
		dir:    dir,
		logger: logger,
	}
}

// Dir returns the scratch directory.
func (s ScratchSpace) Dir() string {
	return s.dir
}

// Ensure creates the scratch directory if it does not exist.
func (s ScratchSpace) Ensure() error {
	return s.fs.MkdirAll(s.dir, 0o755)
}

// Store writes content to <dir>/<baseName><ext> and returns the path. Only
// short alphanumeric extensions are kept.
func (s ScratchSpace) Store(baseName, ext string, content io.Reader) (string, error) {
	if !safeExtensionPattern.MatchString(ext) {
		ext = ""
	}
	path := filepath.Join(s.dir, baseName+ext)

	f, err := s.fs.Create(path)
	if err != nil {
		return "", fmt.Errorf("create scratch file: %w", err)
	}
	if _, err := io.Copy(f, content); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("write scratch file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close scratch file: %w", err)
	}
	return path, nil
}

// Cleanup removes every file whose name starts with baseName. Failures are
// logged and never returned.
func (s ScratchSpace) Cleanup(baseName string) {
	matches, err := afero.Glob(s.fs, filepath.Join(s.dir, baseName+"*"))
	if err != nil {
		s.logger.Warnf("ScratchSpace: cannot list files for %s: %v", baseName, err)
		return
	}
	for _, match := range matches {
		if err := s.fs.Remove(match); err != nil {
			s.logger.WithField("path", match).Warnf("ScratchSpace: cleanup failed: %v", err)
		}
	}
}

// InitScratchSpace creates the scratch directory and registers the ScratchSpace.
type InitScratchSpace struct {
	Logger *logrus.Logger `resolve:""`
	Dir    string         `config:"TEMP_AUDIO_DIR" default:"temp_audio"`
}

// Initialize creates the directory on the local file system.
func (iss InitScratchSpace) Initialize(ctx context.Context) (context.Context, error) {
	scratch := NewScratchSpace(afero.NewOsFs(), iss.Dir, iss.Logger)
	if err := scratch.Ensure(); err != nil {
		return ctx, fmt.Errorf("create scratch directory %s: %w", iss.Dir, err)
	}
	depend.Register(scratch)
	return ctx, nil
}
