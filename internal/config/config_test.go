package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args []string, options ...kong.Option) (*CLI, *kong.Context) {
	t.Helper()
	var cli CLI
	options = append([]kong.Option{kong.Name("rosmsgc"), kong.Exit(func(int) { t.Fatal("unexpected exit") })}, options...)
	parser, err := kong.New(&cli, options...)
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	return &cli, ctx
}

func TestParseGenerateFlags(t *testing.T) {
	cli, ctx := parse(t, []string{"generate", "-i", "a", "-i", "b", "-o", "out", "--stdout", "--log.level=debug"})

	assert.Equal(t, "generate", ctx.Command())
	assert.Equal(t, []string{"a", "b"}, cli.Generate.Input)
	assert.True(t, filepath.IsAbs(cli.Generate.Output))
	assert.Equal(t, "rust", cli.Generate.Lang)
	assert.Equal(t, "debug", cli.Log.Level)
	assert.Equal(t, "auto", cli.Log.Format)
	assert.True(t, cli.ReservesStdout(ctx.Command()))
}

func TestParseDefaultCommand(t *testing.T) {
	cli, ctx := parse(t, []string{"-i", "defs"})
	assert.Equal(t, "generate", ctx.Command())
	assert.Equal(t, []string{"defs"}, cli.Generate.Input)
	assert.False(t, cli.ReservesStdout(ctx.Command()))
}

func TestParseScanCommand(t *testing.T) {
	cli, ctx := parse(t, []string{"scan", "-i", "defs"})
	assert.Equal(t, "scan", ctx.Command())
	assert.Equal(t, []string{"defs"}, cli.Scan.Input)
	assert.True(t, cli.ReservesStdout(ctx.Command()))
}

func TestParseRejectsUnknownLang(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli, kong.Name("rosmsgc"), kong.Exit(func(int) {}))
	require.NoError(t, err)
	_, err = parser.Parse([]string{"generate", "--lang", "cobol"})
	assert.Error(t, err)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("ROSMSGC_FILE_NAME", "msgs.rs")
	t.Setenv("ROSMSGC_LOG_LEVEL", "warn")

	cli, _ := parse(t, []string{"generate"})
	assert.Equal(t, "msgs.rs", cli.Generate.FileName)
	assert.Equal(t, "warn", cli.Log.Level)
}

func TestParseConfigFiles(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "rosmsgc.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("output: from_yaml\n"), 0o644))
	cli, _ := parse(t, []string{"generate", "-i", "defs"}, kong.Configuration(kongyaml.Loader, yamlPath))
	assert.Equal(t, []string{"defs"}, cli.Generate.Input)

	tomlPath := filepath.Join(dir, "rosmsgc.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte("output = \"from_toml\"\n"), 0o644))
	cli, _ = parse(t, []string{"generate", "-i", "defs"}, kong.Configuration(kongtoml.Loader, tomlPath))
	assert.Equal(t, []string{"defs"}, cli.Generate.Input)

	jsonPath := filepath.Join(dir, "rosmsgc.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"file_name": "from_json.rs", "log": {"level": "debug"}}`), 0o644))
	cli, _ = parse(t, []string{"generate"}, kong.Configuration(kong.JSON, jsonPath))
	assert.Equal(t, "from_json.rs", cli.Generate.FileName)
	assert.Equal(t, "debug", cli.Log.Level)

	cli, _ = parse(t, []string{"generate", "--file-name", "flag.rs"}, kong.Configuration(kong.JSON, jsonPath))
	assert.Equal(t, "flag.rs", cli.Generate.FileName, "flags override config values")
}
