package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeToProtocol(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "plain path",
			path: "/workspace/app/src/Main.java",
			want: "file:///workspace/app/src/Main.java",
		},
		{
			name: "segments are percent-encoded",
			path: "/workspace/my app/a#b.c",
			want: "file:///workspace/my%20app/a%23b.c",
		},
		{
			name: "drive letter gains a leading slash",
			path: "C:/Users/dev/project/main.c",
			want: "file:///C:/Users/dev/project/main.c",
		},
		{
			name: "path is not cleaned",
			path: "/tmp/./a/../b.c",
			want: "file:///tmp/./a/../b.c",
		},
		{
			name: "relative path stays relative",
			path: "rel/a b.c",
			want: "file:rel/a%20b.c",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, string(CodeToProtocol(tt.path)))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	paths := []string{
		"/workspace/app/src/Main.java",
		"/workspace/with space/ünïcode/file.ts",
		"/tmp/percent%20literal/x?.c",
		"D:/sources/lib/util.cpp",
		"/tmp/dir/",
		"/tmp//x.c",
		"/tmp/./a/../b.c",
		"$GOROOT/src/x.go",
		"rel/a.c",
		"./a.c",
		"//double/leading",
		"/a:b/c.c",
	}
	for _, p := range paths {
		got, err := ProtocolToCode(string(CodeToProtocol(p)))
		require.NoError(t, err, p)
		assert.Equal(t, p, got)
	}
}

func TestProtocolToCode_Errors(t *testing.T) {
	_, err := ProtocolToCode("https://example.com/rules")
	assert.ErrorContains(t, err, "unsupported uri scheme")

	_, err = ProtocolToCode("not a uri")
	assert.Error(t, err)

	_, err = ProtocolToCode("file://")
	assert.ErrorContains(t, err, "empty path")
}

func TestPathsToURLs(t *testing.T) {
	got := PathsToURLs([]string{"/opt/lint/analyzers/java.jar", "/opt/lint/analyzers/js plugin.jar"})
	assert.Equal(t, []string{
		"file:///opt/lint/analyzers/java.jar",
		"file:///opt/lint/analyzers/js%20plugin.jar",
	}, got)
	assert.Empty(t, PathsToURLs(nil))
}
