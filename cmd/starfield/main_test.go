package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/starfield/internal/infrastructure/config"
)

func TestParseFlags_Defaults(t *testing.T) {
	for _, key := range []string{"STARFIELD_CONFIG", "STARFIELD_SCENE", "STARFIELD_SEED", "STARFIELD_TERM"} {
		t.Setenv(key, "")
	}

	o, err := parseFlags(nil)
	require.NoError(t, err)

	assert.Equal(t, config.DefaultSceneFile, o.sceneFile)
	assert.NotZero(t, o.seed, "seed falls back to time")
	assert.False(t, o.term)
	assert.Empty(t, o.configDir)
}

func TestParseFlags_EnvAndOverrides(t *testing.T) {
	t.Setenv("STARFIELD_SCENE", "spheres.toml")
	t.Setenv("STARFIELD_SEED", "42")
	t.Setenv("STARFIELD_TERM", "true")
	t.Setenv("STARFIELD_SOUND", "notabool")

	o, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, "spheres.toml", o.sceneFile)
	assert.Equal(t, int64(42), o.seed)
	assert.True(t, o.term)
	assert.False(t, o.sound, "bad value keeps the default")

	o, err = parseFlags([]string{"-scene", "scene.yaml", "-seed", "7", "-term=false"})
	require.NoError(t, err)
	assert.Equal(t, "scene.yaml", o.sceneFile, "flags win over env")
	assert.Equal(t, int64(7), o.seed)
	assert.False(t, o.term)
}

func TestParseFlags_HeadlessNeedsReplay(t *testing.T) {
	_, err := parseFlags([]string{"-headless"})
	assert.Error(t, err)
}

func TestLoadScene_Embedded(t *testing.T) {
	for _, name := range []string{"scene.yaml", "spheres.toml"} {
		t.Run(name, func(t *testing.T) {
			cfg, err := loadScene(options{sceneFile: name})
			require.NoError(t, err)
			assert.Greater(t, cfg.Stars.Count, 0)
		})
	}

	cfg, err := loadScene(options{sceneFile: "spheres.toml"})
	require.NoError(t, err)
	assert.Equal(t, config.StyleSpheres, cfg.Render.Style)

	_, err = loadScene(options{sceneFile: "missing.yaml"})
	assert.Error(t, err)
}

func TestLoadScene_Directory(t *testing.T) {
	cfg, err := loadScene(options{configDir: filepath.Join("configs"), sceneFile: "scene.yaml"})
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.Display.Framerate)
}
