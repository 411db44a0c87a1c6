package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/Alia5/rosmsgc/internal/codegen/generator"
)

type Generate struct {
	Input    []string `help:"Message definition root directory; repeat for several roots" short:"i" env:"ROSMSGC_INPUT"`
	Output   string   `help:"Output directory for the generated source file" short:"o" default:"." type:"path" env:"ROSMSGC_OUTPUT"`
	FileName string   `help:"Name of the generated file (default depends on language, ros_msg_defs.rs for rust)" env:"ROSMSGC_FILE_NAME"`
	Lang     string   `help:"Target language" default:"rust" enum:"rust" env:"ROSMSGC_LANG"`
	Check    bool     `help:"Fail if the existing output differs from a fresh generation instead of writing it"`
	Stdout   bool     `help:"Write the generated source to stdout instead of the output directory"`
}

// Run is called by Kong when the generate command is executed.
func (g *Generate) Run(logger *slog.Logger) error {
	return g.Execute(logger, os.Stdout)
}

// Execute runs the generation with stdout as the target of --stdout.
func (g *Generate) Execute(logger *slog.Logger, stdout io.Writer) error {
	logger.Info("Starting message definition generation", "inputs", g.Input, "output", g.Output, "lang", g.Lang)

	gen := generator.New(g.Input, g.Output, g.FileName, logger)
	switch {
	case g.Check:
		return gen.Check(g.Lang)
	case g.Stdout:
		return gen.WriteLang(g.Lang, stdout)
	default:
		return gen.GenerateLang(g.Lang)
	}
}
