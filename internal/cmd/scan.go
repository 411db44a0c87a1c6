package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Alia5/rosmsgc/internal/codegen/generator"
)

// Scan dumps the intermediate package tree as JSON for inspecting what the
// generator will see.
type Scan struct {
	Input []string `help:"Message definition root directory; repeat for several roots" short:"i" env:"ROSMSGC_INPUT"`
}

func (s *Scan) Run(logger *slog.Logger) error {
	return s.Execute(logger, os.Stdout)
}

func (s *Scan) Execute(logger *slog.Logger, stdout io.Writer) error {
	md, err := generator.New(s.Input, "", "", logger).ScanAll()
	if err != nil {
		return err
	}

	output, err := json.MarshalIndent(md, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(stdout, string(output))
	return err
}
