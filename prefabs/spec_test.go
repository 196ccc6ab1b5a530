package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/phox/anim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPlayerSpec(t *testing.T) {
	spec, err := LoadPlayerSpec()
	require.NoError(t, err)

	cfg := spec.Config()
	assert.Equal(t, 200.0, cfg.MoveSpeed)
	assert.Equal(t, 160.0, cfg.JumpImpulse)
	assert.Equal(t, 2.0, cfg.SpeedMultiplier)
	assert.Equal(t, 2, cfg.JumpLimit)
	assert.Equal(t, 18.0, spec.Collider.Width)
	assert.Equal(t, 32.0, spec.Collider.Height)

	lib, err := spec.Animation.Library()
	require.NoError(t, err)
	assert.Equal(t, 4, lib.Len())

	idle, ok := lib.Get(anim.Idle)
	require.True(t, ok)
	assert.Equal(t, 11, idle.FrameCount)
	assert.InDelta(t, 0.05, idle.FrameDuration, 1e-9)

	run, ok := lib.Get(anim.Run)
	require.True(t, ok)
	assert.Equal(t, 12, run.FrameCount)

	initial, err := spec.Animation.InitialState()
	require.NoError(t, err)
	assert.Equal(t, anim.Idle, initial)
}

func TestLoadCameraAndWorldSpecs(t *testing.T) {
	cam, err := LoadCameraSpec()
	require.NoError(t, err)
	assert.Equal(t, 16.0, cam.AspectW)
	assert.Equal(t, 9.0, cam.AspectH)

	world, err := LoadWorldSpec()
	require.NoError(t, err)
	assert.Greater(t, world.Gravity, 0.0)
	assert.Greater(t, world.Iterations, 0)
}

func TestLoadSpecMissing(t *testing.T) {
	_, err := LoadSpec[CameraSpec]("nope.yaml")
	require.Error(t, err)
}

func TestPlayerConfigDefaults(t *testing.T) {
	var nilSpec *PlayerSpec
	assert.Equal(t, 200.0, nilSpec.Config().MoveSpeed)

	zero := 0
	spec := &PlayerSpec{JumpLimit: &zero}
	cfg := spec.Config()
	assert.Equal(t, 200.0, cfg.MoveSpeed)
	assert.Equal(t, 0, cfg.JumpLimit)
}

func TestAnimationSpecErrors(t *testing.T) {
	tests := []struct {
		name string
		spec AnimationSpec
	}{
		{
			name: "unknown state",
			spec: AnimationSpec{Clips: map[string]ClipSpec{
				"crouch": {FrameW: 1, FrameH: 1, FrameCount: 1, FrameDuration: 1},
			}},
		},
		{
			name: "zero frames",
			spec: AnimationSpec{Clips: map[string]ClipSpec{
				"idle": {FrameW: 1, FrameH: 1, FrameCount: 0, FrameDuration: 1},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.spec.Library()
			require.Error(t, err)
		})
	}

	_, err := AnimationSpec{Initial: "crouch"}.InitialState()
	require.Error(t, err)
}

func TestCleanPrefabPath(t *testing.T) {
	assert.Equal(t, "player.yaml", cleanPrefabPath("prefabs/player.yaml"))
	assert.Equal(t, "player.yaml", cleanPrefabPath("player.yaml"))
	assert.Equal(t, "", cleanPrefabPath(""))
	assert.Equal(t, "world.yaml", BaseName(filepath.Join("some", "dir", "world.yaml")))
}

func TestWatcherReportsYAMLWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	target := filepath.Join(dir, "player.yaml")
	require.NoError(t, os.WriteFile(target, []byte("name: player\n"), 0o644))

	select {
	case got := <-w.Events:
		assert.Equal(t, "player.yaml", BaseName(got))
	case <-time.After(2 * time.Second):
		t.Fatal("no watcher event")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
}

func TestReloadFilterSkipsUnchangedFiles(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.Mkdir("prefabs", 0o755))
	path := filepath.Join("prefabs", PlayerFile)
	require.NoError(t, os.WriteFile(path, []byte("name: player\n"), 0o644))

	_, ok := ModTime(CameraFile)
	assert.False(t, ok)
	mod, ok := ModTime(PlayerFile)
	require.True(t, ok)

	var f ReloadFilter
	assert.True(t, f.Changed(PlayerFile))
	assert.False(t, f.Changed(PlayerFile), "same mtime twice")
	assert.False(t, f.Changed(CameraFile), "no disk copy")

	later := mod.Add(time.Second)
	require.NoError(t, os.Chtimes(path, later, later))
	assert.True(t, f.Changed("prefabs/"+PlayerFile))
	assert.False(t, f.Changed(PlayerFile))
}
