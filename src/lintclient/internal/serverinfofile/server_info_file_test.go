package serverinfofile

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber/lint-client/src/lintclient/internal/fs"
	"github.com/uber/lint-client/src/lintclient/internal/fs/fsmock"
	"go.uber.org/config"
	"go.uber.org/fx/fxtest"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newProvider(t *testing.T, values map[string]interface{}) config.Provider {
	p, err := config.NewStaticProvider(values)
	require.NoError(t, err)
	return p
}

func readInfo(t *testing.T, path string) map[string]string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var contents map[string]string
	require.NoError(t, json.Unmarshal(data, &contents))
	return contents
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		config  map[string]interface{}
		wantErr bool
	}{
		{
			name:   "path configured",
			config: map[string]interface{}{"serverInfo": map[string]interface{}{"path": "/tmp/lint/server-info.json"}},
		},
		{
			name:    "missing key",
			config:  map[string]interface{}{},
			wantErr: true,
		},
		{
			name:    "malformed value",
			config:  map[string]interface{}{"serverInfo": map[string]interface{}{"path": []string{"a", "b"}}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(Params{
				Config:    newProvider(t, tt.config),
				FS:        fs.New(),
				Lifecycle: fxtest.NewLifecycle(t),
				Logger:    zap.NewNop().Sugar(),
			})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateAndDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "server-info.json")
	lc := fxtest.NewLifecycle(t)
	info, err := New(Params{
		Config:    newProvider(t, map[string]interface{}{"serverInfo": map[string]interface{}{"path": path}}),
		FS:        fs.New(),
		Lifecycle: lc,
		Logger:    zap.NewNop().Sugar(),
	})
	require.NoError(t, err)
	lc.RequireStart()

	require.NoError(t, info.Update(map[string]string{FieldPort: "51234", FieldPID: "4242"}))
	require.NoError(t, info.Update(map[string]string{FieldJavaHome: "/opt/jdk-17"}))
	assert.Equal(t, map[string]string{FieldPort: "51234", FieldPID: "4242", FieldJavaHome: "/opt/jdk-17"}, readInfo(t, path))

	require.NoError(t, info.Delete(FieldPort, FieldPID))
	assert.Equal(t, map[string]string{FieldJavaHome: "/opt/jdk-17"}, readInfo(t, path))

	lc.RequireStop()
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "the file is removed on stop")
}

func TestOnStop(t *testing.T) {
	ctrl := gomock.NewController(t)

	t.Run("never written", func(t *testing.T) {
		fsMock := fsmock.NewMockLintFS(ctrl)
		fsMock.EXPECT().FileExists("/tmp/info.json").Return(false, nil)
		m := module{infofile: "/tmp/info.json", fs: fsMock, logger: zap.NewNop().Sugar()}
		assert.NoError(t, m.OnStop(context.Background()))
	})

	t.Run("remove fails", func(t *testing.T) {
		fsMock := fsmock.NewMockLintFS(ctrl)
		fsMock.EXPECT().FileExists("/tmp/info.json").Return(true, nil)
		fsMock.EXPECT().Remove("/tmp/info.json").Return(errors.New("permission denied"))
		m := module{infofile: "/tmp/info.json", fs: fsMock, logger: zap.NewNop().Sugar()}
		assert.Error(t, m.OnStop(context.Background()))
	})
}

func TestWriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	fsMock := fsmock.NewMockLintFS(ctrl)
	fsMock.EXPECT().MkdirAll("/tmp/lint").Return(nil)
	fsMock.EXPECT().WriteFileAtomic("/tmp/lint/info.json", gomock.Any()).Return(errors.New("disk full"))

	m := module{infofile: "/tmp/lint/info.json", fs: fsMock, logger: zap.NewNop().Sugar(), fileContents: map[string]string{}}
	assert.ErrorContains(t, m.Update(map[string]string{FieldPort: "1"}), "disk full")
}
