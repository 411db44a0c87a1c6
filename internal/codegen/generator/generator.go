package generator

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/Alia5/rosmsgc/internal/codegen/common"
	"github.com/Alia5/rosmsgc/internal/codegen/generator/rust"
	"github.com/Alia5/rosmsgc/internal/codegen/meta"
	"github.com/Alia5/rosmsgc/internal/codegen/scanner"
)

var (
	// ErrUnwritableOutput wraps failures to create or replace the generated file.
	ErrUnwritableOutput = errors.New("unwritable output")
	// ErrOutOfDate is returned by Check when the file on disk differs from a fresh generation.
	ErrOutOfDate = errors.New("generated output is out of date")
)

type Generator struct {
	inputs    []string
	outputDir string
	fileName  string
	logger    *slog.Logger
}

type LanguageGenerator func(logger *slog.Logger, md *meta.Metadata) ([]byte, error)

type language struct {
	generate        LanguageGenerator
	defaultFileName string
}

var generators = map[string]language{
	"rust": {generate: rust.Generate, defaultFileName: rust.DefaultFileName},
}

// Languages returns the supported target languages, sorted.
func Languages() []string {
	var supported []string
	for k := range generators {
		supported = append(supported, k)
	}
	sort.Strings(supported)
	return supported
}

// New creates a generator reading the given input roots and writing into
// outputDir. An empty fileName selects the target language's default.
func New(inputs []string, outputDir, fileName string, logger *slog.Logger) *Generator {
	return &Generator{
		inputs:    inputs,
		outputDir: outputDir,
		fileName:  fileName,
		logger:    logger,
	}
}

// OutputPath returns the path of the generated file for lang.
func (g *Generator) OutputPath(lang string) (string, error) {
	l, err := lookup(lang)
	if err != nil {
		return "", err
	}
	name := g.fileName
	if name == "" {
		name = l.defaultFileName
	}
	return filepath.Join(g.outputDir, name), nil
}

func lookup(lang string) (language, error) {
	l, ok := generators[lang]
	if !ok {
		return language{}, fmt.Errorf("unsupported language '%s' (supported: %v)", lang, Languages())
	}
	return l, nil
}

// ScanAll builds one package tree per input root and injects the header
// message into each root. Any unreadable input fails the whole scan.
func (g *Generator) ScanAll() (*meta.Metadata, error) {
	if len(g.inputs) == 0 {
		return nil, errors.New("no input directories given")
	}

	g.logger.Info("Scanning message definitions", "roots", len(g.inputs))

	md := &meta.Metadata{}
	ps := scanner.NewPackageScanner(g.logger)
	for _, input := range g.inputs {
		g.logger.Debug("Scanning input root", "path", input)
		root, err := ps.ScanPackage(input)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", input, err)
		}

		meta.InjectHeader(root)
		md.Roots = append(md.Roots, root)

		g.logger.Info("Scanned input root",
			"module", root.Name,
			"packages", root.PackageCount(),
			"messages", root.MessageCount())
	}

	return md, nil
}

// Render scans all inputs and returns the generated source for lang without
// touching the output directory.
func (g *Generator) Render(lang string) ([]byte, error) {
	l, err := lookup(lang)
	if err != nil {
		return nil, err
	}

	md, err := g.ScanAll()
	if err != nil {
		return nil, err
	}

	g.logger.Info("Generating message definitions", "language", lang)
	src, err := l.generate(g.logger, md)
	if err != nil {
		return nil, fmt.Errorf("generate %s sources: %w", lang, err)
	}
	return src, nil
}

// GenerateLang renders lang and replaces the output file atomically.
// Nothing is written if scanning or rendering fails.
func (g *Generator) GenerateLang(lang string) error {
	outputFile, err := g.OutputPath(lang)
	if err != nil {
		return err
	}

	src, err := g.Render(lang)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return fmt.Errorf("%w: create output directory %s: %w", ErrUnwritableOutput, g.outputDir, err)
	}
	if err := writeFileAtomic(outputFile, src); err != nil {
		return fmt.Errorf("%w: %w", ErrUnwritableOutput, err)
	}

	g.logger.Info("Message definition generation complete",
		"language", lang,
		"file", outputFile,
		"bytes", len(src),
		"digest", common.Digest(src))
	return nil
}

// WriteLang renders lang to w instead of the output directory.
func (g *Generator) WriteLang(lang string, w io.Writer) error {
	src, err := g.Render(lang)
	if err != nil {
		return err
	}
	if _, err := w.Write(src); err != nil {
		return fmt.Errorf("%w: %w", ErrUnwritableOutput, err)
	}
	return nil
}

// Check renders lang and compares it with the existing output file.
// It returns ErrOutOfDate when the file is missing or differs.
func (g *Generator) Check(lang string) error {
	outputFile, err := g.OutputPath(lang)
	if err != nil {
		return err
	}

	src, err := g.Render(lang)
	if err != nil {
		return err
	}

	existing, err := os.ReadFile(outputFile)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s does not exist", ErrOutOfDate, outputFile)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", outputFile, err)
	}

	want, have := common.Digest(src), common.Digest(existing)
	if want != have || !bytes.Equal(src, existing) {
		g.logger.Warn("Generated output differs", "file", outputFile, "want", want, "have", have)
		return fmt.Errorf("%w: %s", ErrOutOfDate, outputFile)
	}

	g.logger.Info("Generated output is up to date", "file", outputFile, "digest", have)
	return nil
}

// writeFileAtomic writes data next to path and renames it into place, so a
// failed run never leaves a truncated file behind.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if tmpName != "" {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename to %s: %w", path, err)
	}
	tmpName = ""
	return nil
}
