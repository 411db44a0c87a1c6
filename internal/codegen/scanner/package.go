package scanner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Alia5/rosmsgc/internal/codegen/meta"
	"github.com/Alia5/rosmsgc/internal/log"
)

// ErrUnreadableInput wraps any failure to list a directory or read a definition file.
var ErrUnreadableInput = errors.New("unreadable input")

// PackageScanner walks an input directory and builds its package tree.
type PackageScanner struct {
	logger *slog.Logger
}

func NewPackageScanner(logger *slog.Logger) *PackageScanner {
	if logger == nil {
		logger = slog.Default()
	}
	return &PackageScanner{logger: logger}
}

// ScanPackage builds the package tree rooted at root. Every subdirectory
// becomes a child package, even when empty; every .msg file becomes a
// message. Any read failure aborts the scan and no tree is returned.
func (s *PackageScanner) ScanPackage(root string) (*meta.Package, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: resolve %s: %w", ErrUnreadableInput, root, err)
	}
	return s.scanDir(abs)
}

func (s *PackageScanner) scanDir(dir string) (*meta.Package, error) {
	pkg := meta.NewPackage(filepath.Base(dir))

	// os.ReadDir returns entries sorted by file name.
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: read directory %s: %w", ErrUnreadableInput, dir, err)
	}
	s.logger.Debug("Scanning package directory", "dir", dir, "entries", len(entries))

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		isDir, err := entryIsDir(path, entry)
		if err != nil {
			return nil, err
		}

		if isDir {
			child, err := s.scanDir(path)
			if err != nil {
				return nil, err
			}
			pkg.AddPackage(child)
			continue
		}

		if !IsMsgFile(entry.Name()) {
			s.logger.Log(context.Background(), log.LevelTrace, "Skipping non-definition file", "file", path)
			continue
		}

		msg, err := s.ScanMsgFile(path)
		if err != nil {
			return nil, err
		}
		pkg.AddMessage(msg)
	}

	return pkg, nil
}

// ScanMsgFile reads and parses a single definition file.
func (s *PackageScanner) ScanMsgFile(path string) (*meta.Msg, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read file %s: %w", ErrUnreadableInput, path, err)
	}

	msg := ParseMsg(MsgName(path), string(source))
	if len(source) == 0 {
		s.logger.Debug("Empty definition file", "file", path, "message", msg.Name)
	}
	s.logger.Debug("Parsed message", "file", path, "message", msg.Name, "fields", len(msg.Fields))
	return msg, nil
}

// entryIsDir follows symlinks so linked message sets are walked like plain directories.
func entryIsDir(path string, entry fs.DirEntry) (bool, error) {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir(), nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("%w: stat %s: %w", ErrUnreadableInput, path, err)
	}
	return info.IsDir(), nil
}
