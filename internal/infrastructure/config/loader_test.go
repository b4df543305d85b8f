package config

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadScene(t *testing.T) {
	loader := NewLoader("../../../cmd/starfield/configs")

	cfg, err := loader.LoadScene("scene.yaml")
	require.NoError(t, err)

	assert.Equal(t, 960, cfg.Display.ScreenWidth)
	assert.Equal(t, 540, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 3600, cfg.Stars.Count)
	assert.Equal(t, 500.0, cfg.Stars.Radius)
	assert.Equal(t, 170.0, cfg.Cinematic.FOVTarget)
	assert.Equal(t, "power1.in", cfg.Cinematic.CamRotateEase)
	assert.Equal(t, 0.8, cfg.Cinematic.RevertSpawnAt)
	assert.Equal(t, StylePoints, cfg.Render.Style)
}

func TestLoader_DefaultScene(t *testing.T) {
	loader := NewLoader("../../../cmd/starfield/configs")

	cfg, err := loader.LoadScene(DefaultSceneFile)
	require.NoError(t, err)
	assert.NotNil(t, cfg)
}

func TestLoader_Formats(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yaml": {Data: []byte("stars:\n  count: 10\ncinematic:\n  bloomTarget: 12\n")},
		"b.toml": {Data: []byte("[stars]\ncount = 20\n\n[cinematic]\nbloomTarget = 14.0\n")},
		"c.json": {Data: []byte(`{"stars": {"count": 30}, "cinematic": {"bloomTarget": 16}}`)},
	}
	loader := NewFSLoader(fsys, ".")

	tests := []struct {
		file  string
		count int
		bloom float64
	}{
		{"a.yaml", 10, 12},
		{"b.toml", 20, 14},
		{"c.json", 30, 16},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			cfg, err := loader.LoadScene(tt.file)
			require.NoError(t, err)
			assert.Equal(t, tt.count, cfg.Stars.Count)
			assert.Equal(t, tt.bloom, cfg.Cinematic.BloomTarget)

			// Untouched fields keep their defaults
			assert.Equal(t, Default().Stars.Radius, cfg.Stars.Radius)
			assert.Equal(t, Default().UI, cfg.UI)
		})
	}
}

func TestLoader_Errors(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.yaml":     {Data: []byte("stars: [unclosed")},
		"scene.ini":    {Data: []byte("count=1")},
		"invalid.json": {Data: []byte(`{"stars": {"count": -1}}`)},
	}
	loader := NewFSLoader(fsys, ".")

	t.Run("missing file", func(t *testing.T) {
		_, err := loader.LoadScene("nope.yaml")
		require.Error(t, err)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := loader.LoadScene("bad.yaml")
		assert.ErrorContains(t, err, "failed to parse bad.yaml")
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := loader.LoadScene("scene.ini")
		assert.ErrorContains(t, err, "unsupported format")
	})

	t.Run("fails validation", func(t *testing.T) {
		_, err := loader.LoadScene("invalid.json")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalid))
	})
}

func TestSceneConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SceneConfig)
		wantErr bool
	}{
		{"defaults", func(*SceneConfig) {}, false},
		{"zero stars", func(c *SceneConfig) { c.Stars.Count = 0 }, true},
		{"zero radius", func(c *SceneConfig) { c.Stars.Radius = 0 }, true},
		{"inverted sizes", func(c *SceneConfig) { c.Stars.SizeMin = 2 }, true},
		{"inverted velocity", func(c *SceneConfig) { c.Stars.VelocityMin = 1 }, true},
		{"spawn fraction", func(c *SceneConfig) { c.Cinematic.MoveSpawnAt = 1.1 }, true},
		{"negative time", func(c *SceneConfig) { c.Cinematic.BloomTime = -1 }, true},
		{"fov target too wide", func(c *SceneConfig) { c.Cinematic.FOVTarget = 180 }, true},
		{"fov original too narrow", func(c *SceneConfig) { c.Cinematic.FOVOriginal = 20 }, true},
		{"fov at limits", func(c *SceneConfig) { c.Cinematic.FOVOriginal, c.Cinematic.FOVTarget = 30, 170 }, false},
		{"bloom target too high", func(c *SceneConfig) { c.Cinematic.BloomTarget = 25 }, true},
		{"negative bloom", func(c *SceneConfig) { c.Cinematic.BloomInit = -0.5 }, true},
		{"ease names checked later", func(c *SceneConfig) { c.Cinematic.FadeEase = "elastic.out" }, false},
		{"unknown style", func(c *SceneConfig) { c.Render.Style = "voxels" }, true},
		{"spheres style", func(c *SceneConfig) { c.Render.Style = StyleSpheres }, false},
		{"clip range", func(c *SceneConfig) { c.Render.Far = 0.05 }, true},
		{"zero framerate", func(c *SceneConfig) { c.Display.Framerate = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalid))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 30}

	assert.True(t, r.Contains(10, 20))
	assert.True(t, r.Contains(109, 49))
	assert.False(t, r.Contains(110, 20))
	assert.False(t, r.Contains(9, 25))
	assert.False(t, r.Contains(50, 50))
}
