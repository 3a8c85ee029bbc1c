package cfamily

import (
	"encoding/json"
	stderr "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tally "github.com/uber-go/tally/v4"
	"github.com/uber/lint-client/src/lintclient/entity"
	"github.com/uber/lint-client/src/lintclient/gateway/host/hostmock"
	"github.com/uber/lint-client/src/lintclient/internal/errors"
	"github.com/uber/lint-client/src/lintclient/internal/fs"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newController(t *testing.T) (*controller, string) {
	ctrl := gomock.NewController(t)
	storage := t.TempDir()
	workspace := hostmock.NewMockWorkspace(ctrl)
	workspace.EXPECT().Environment().Return(entity.HostEnvironment{StorageDir: storage})

	c := New(Params{FS: fs.New(), Workspace: workspace, Logger: zap.NewNop().Sugar(), Stats: tally.NoopScope}).(*controller)
	c.environ = func() []string { return []string{"PATH=/usr/bin", "CC=gcc"} }
	return c, storage
}

func writeFile(t *testing.T, path, content string, mtime time.Time) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
}

func readDump(t *testing.T, path string) Dump {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	var dump Dump
	require.NoError(t, json.Unmarshal(content, &dump))
	return dump
}

func TestConvert(t *testing.T) {
	c, _ := newController(t)
	dir := t.TempDir()
	source := filepath.Join(dir, "compile_commands.json")
	dumpPath := filepath.Join(dir, "out", "dump.json")
	writeFile(t, source, `[{"directory":"/p","command":"gcc -c a.c","file":"a.c"}]`, time.Now())

	written, err := c.Convert(source, dumpPath)
	require.NoError(t, err)
	assert.True(t, written)

	assert.Equal(t, Dump{
		Version: 0,
		Captures: []Capture{{
			Compiler:   "text",
			Cwd:        "/p",
			Executable: "gcc",
			Cmd:        []string{"gcc", "-c", "a.c"},
			Env:        []string{"PATH=/usr/bin", "CC=gcc"},
		}},
	}, readDump(t, dumpPath))
}

func TestConvert_ArgumentsAndQuoting(t *testing.T) {
	c, _ := newController(t)
	dir := t.TempDir()
	source := filepath.Join(dir, "compile_commands.json")
	dumpPath := filepath.Join(dir, "dump.json")
	writeFile(t, source, `[
		{"directory":"/p","arguments":["/usr/bin/clang++","-std=c++17","b.cpp"],"file":"b.cpp"},
		{"directory":"/q","command":"cc -DNAME=\"a b\" -c 'c d.c'","file":"c d.c"}
	]`, time.Now())

	_, err := c.Convert(source, dumpPath)
	require.NoError(t, err)

	dump := readDump(t, dumpPath)
	require.Len(t, dump.Captures, 2)
	assert.Equal(t, "clang", dump.Captures[0].Compiler)
	assert.Equal(t, []string{"/usr/bin/clang++", "-std=c++17", "b.cpp"}, dump.Captures[0].Cmd, "explicit arguments are used as is")
	assert.Equal(t, []string{"cc", "-DNAME=a b", "-c", "c d.c"}, dump.Captures[1].Cmd)
}

func TestConvert_UpToDate(t *testing.T) {
	c, _ := newController(t)
	dir := t.TempDir()
	source := filepath.Join(dir, "compile_commands.json")
	dumpPath := filepath.Join(dir, "dump.json")
	now := time.Now()
	writeFile(t, source, `[{"directory":"/p","command":"gcc -c a.c"}]`, now.Add(-time.Hour))
	writeFile(t, dumpPath, "previous", now)

	written, err := c.Convert(source, dumpPath)
	require.NoError(t, err)
	assert.False(t, written)

	content, err := os.ReadFile(dumpPath)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(content), "a newer dump is left untouched")

	require.NoError(t, os.Chtimes(source, now.Add(time.Hour), now.Add(time.Hour)))
	written, err = c.Convert(source, dumpPath)
	require.NoError(t, err)
	assert.True(t, written, "a stale dump is regenerated")
}

func TestConvert_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not json", content: `[{"directory":`},
		{name: "not an array", content: `{"directory":"/p"}`},
		{name: "unterminated quote", content: `[{"directory":"/p","command":"gcc \"a.c"}]`},
		{name: "empty command", content: `[{"directory":"/p","command":""}]`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newController(t)
			dir := t.TempDir()
			source := filepath.Join(dir, "compile_commands.json")
			dumpPath := filepath.Join(dir, "dump.json")
			writeFile(t, source, tt.content, time.Now())

			written, err := c.Convert(source, dumpPath)
			assert.False(t, written)
			assert.True(t, stderr.Is(err, errors.ErrMalformedCompilationDatabase), "got %v", err)
			_, statErr := os.Stat(dumpPath)
			assert.True(t, os.IsNotExist(statErr), "nothing is written")
		})
	}
}

func TestConvert_MissingSource(t *testing.T) {
	c, _ := newController(t)
	_, err := c.Convert(filepath.Join(t.TempDir(), "compile_commands.json"), filepath.Join(t.TempDir(), "dump.json"))
	assert.ErrorContains(t, err, "reading compilation database")
}

func TestDumpPath(t *testing.T) {
	c, storage := newController(t)

	a := c.DumpPath("/repo/build/compile_commands.json")
	assert.Equal(t, a, c.DumpPath("/repo/build/../build/compile_commands.json"), "stable for equivalent paths")
	assert.NotEqual(t, a, c.DumpPath("/other/compile_commands.json"))
	assert.True(t, filepath.IsAbs(a))
	rel, err := filepath.Rel(storage, a)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(rel, _dumpDir+string(filepath.Separator)), rel)
}

func TestWatch(t *testing.T) {
	c, _ := newController(t)
	dir := t.TempDir()
	source := filepath.Join(dir, "compile_commands.json")
	writeFile(t, source, `[{"directory":"/p","command":"gcc -c a.c"}]`, time.Now().Add(-time.Hour))

	watcher, err := c.Watch(source)
	require.NoError(t, err)
	defer func() { assert.NoError(t, watcher.Dispose()) }()

	dumpPath := c.DumpPath(source)
	require.Len(t, readDump(t, dumpPath).Captures, 1, "converted when the watch starts")

	writeFile(t, source, `[{"directory":"/p","command":"gcc -c a.c"},{"directory":"/p","command":"gcc -c b.c"}]`, time.Now().Add(time.Hour))
	assert.Eventually(t, func() bool {
		content, err := os.ReadFile(dumpPath)
		if err != nil {
			return false
		}
		var dump Dump
		return json.Unmarshal(content, &dump) == nil && len(dump.Captures) == 2
	}, 5*time.Second, 50*time.Millisecond)
}
