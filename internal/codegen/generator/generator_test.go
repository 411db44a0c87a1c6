package generator_test

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/rosmsgc/internal/codegen/generator"
	"github.com/Alia5/rosmsgc/internal/codegen/scanner"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func messageTree(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "common_msgs")
	writeFile(t, filepath.Join(root, "geometry_msgs", "msg", "Vector3.msg"),
		"# This represents a vector in free space.\nfloat64 x\nfloat64 y\nfloat64 z\n")
	writeFile(t, filepath.Join(root, "geometry_msgs", "msg", "PoseArray.msg"),
		"Header header\ngeometry_msgs/Pose[] poses\n")
	writeFile(t, filepath.Join(root, "shape_msgs", "msg", "SolidPrimitive.msg"),
		"uint8 BOX=1\nuint8 type\nfloat64[3] dimensions\n")
	writeFile(t, filepath.Join(root, "shape_msgs", "README.md"), "# shapes\n")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty_msgs", "msg"), 0o755))
	return root
}

func TestGenerateLang(t *testing.T) {
	root := messageTree(t)
	out := filepath.Join(t.TempDir(), "src")

	gen := generator.New([]string{root}, out, "", testLogger())
	require.NoError(t, gen.GenerateLang("rust"))

	data, err := os.ReadFile(filepath.Join(out, "ros_msg_defs.rs"))
	require.NoError(t, err)

	want := "pub mod common_msgs {\n" +
		"    pub struct Header {\n" +
		"        time_stamp: usize,\n" +
		"        frame_id: String,\n" +
		"    }\n" +
		"    pub mod geometry_msgs {\n" +
		"        pub mod msg {\n" +
		"            pub struct PoseArray {\n" +
		"                header: Header,\n" +
		"                poses: Vec<geometry_msgs::Pose>,\n" +
		"            }\n" +
		"            pub struct Vector3 {\n" +
		"                x: f64,\n" +
		"                y: f64,\n" +
		"                z: f64,\n" +
		"            }\n" +
		"        }\n" +
		"    }\n" +
		"    pub mod shape_msgs {\n" +
		"        pub mod msg {\n" +
		"            pub struct SolidPrimitive {\n" +
		"                BOX: u8,\n" +
		"                _type: u8,\n" +
		"                dimensions: Vec<f64>,\n" +
		"            }\n" +
		"        }\n" +
		"    }\n" +
		"}\n"

	src := string(data)
	require.True(t, strings.HasPrefix(src, "// Code generated by rosmsgc "))
	assert.Equal(t, want, src[strings.Index(src, "pub mod"):])
	assert.NotContains(t, src, "empty_msgs")

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestGenerateLang_Idempotent(t *testing.T) {
	root := messageTree(t)
	out := t.TempDir()

	gen := generator.New([]string{root}, out, "types.rs", testLogger())
	require.NoError(t, gen.GenerateLang("rust"))
	first, err := os.ReadFile(filepath.Join(out, "types.rs"))
	require.NoError(t, err)

	require.NoError(t, gen.GenerateLang("rust"))
	second, err := os.ReadFile(filepath.Join(out, "types.rs"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NoError(t, gen.Check("rust"))
}

func TestGenerateLang_MultipleRoots(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "std_msgs", "ColorRGBA.msg"), "float32 r\nfloat32 g\nfloat32 b\nfloat32 a\n")
	writeFile(t, filepath.Join(base, "nav_msgs", "MapMetaData.msg"), "time map_load_time\nfloat32 resolution\n")

	var buf bytes.Buffer
	gen := generator.New([]string{
		filepath.Join(base, "std_msgs"),
		filepath.Join(base, "nav_msgs"),
	}, t.TempDir(), "", testLogger())
	require.NoError(t, gen.WriteLang("rust", &buf))

	src := buf.String()
	std := strings.Index(src, "pub mod std_msgs {")
	nav := strings.Index(src, "pub mod nav_msgs {")
	require.GreaterOrEqual(t, std, 0)
	require.GreaterOrEqual(t, nav, 0)
	assert.Less(t, std, nav, "roots keep invocation order")
	assert.Equal(t, 2, strings.Count(src, "pub struct Header {"))
	assert.Contains(t, src, "        map_load_time: usize,\n")
}

func TestGenerateLang_UnreadableInputWritesNothing(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out")
	gen := generator.New([]string{filepath.Join(t.TempDir(), "missing")}, out, "", testLogger())

	err := gen.GenerateLang("rust")
	require.Error(t, err)
	assert.ErrorIs(t, err, scanner.ErrUnreadableInput)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "output directory must not be created")
}

func TestGenerateLang_UnwritableOutput(t *testing.T) {
	root := messageTree(t)
	blocker := filepath.Join(t.TempDir(), "file")
	writeFile(t, blocker, "not a directory")

	gen := generator.New([]string{root}, blocker, "", testLogger())
	err := gen.GenerateLang("rust")
	assert.ErrorIs(t, err, generator.ErrUnwritableOutput)
}

func TestGenerateLang_UnsupportedLanguage(t *testing.T) {
	gen := generator.New([]string{t.TempDir()}, t.TempDir(), "", testLogger())
	err := gen.GenerateLang("cobol")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported language 'cobol'")
}

func TestScanAll_NoInputs(t *testing.T) {
	_, err := generator.New(nil, t.TempDir(), "", testLogger()).ScanAll()
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	root := messageTree(t)
	out := t.TempDir()
	gen := generator.New([]string{root}, out, "", testLogger())

	assert.ErrorIs(t, gen.Check("rust"), generator.ErrOutOfDate)

	require.NoError(t, gen.GenerateLang("rust"))
	require.NoError(t, gen.Check("rust"))

	writeFile(t, filepath.Join(root, "shape_msgs", "msg", "Mesh.msg"), "MeshTriangle[] triangles\n")
	assert.ErrorIs(t, gen.Check("rust"), generator.ErrOutOfDate)
}

func TestOutputPath(t *testing.T) {
	gen := generator.New(nil, "out", "", testLogger())
	p, err := gen.OutputPath("rust")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("out", "ros_msg_defs.rs"), p)

	assert.Equal(t, []string{"rust"}, generator.Languages())
}
