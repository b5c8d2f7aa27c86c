package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/audiom/embed-go/pkg/embed"
)

const sample = `
apiKey: k
sources:
  - osm
  - source: units
    type: esri
    url: https://x
    mapType: indoor
center: [-122.1431, 47.6495]
zoom: 15
soundpack: city
title: Campus
stepSize: 2.5km
heading: 3
showHeading: true
demo: false
additionalParams:
  theme: dark
  zoom: 12
`

func TestParseSample(t *testing.T) {
	f, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "k", f.APIKey)
	require.Len(t, f.Sources, 2)
	assert.Equal(t, "osm", f.Sources[0].Source)
	assert.Equal(t, embed.TypeEsri, f.Sources[1].Type)
	assert.Equal(t, []float64{-122.1431, 47.6495}, f.Center)
	require.NotNil(t, f.Zoom)
	assert.Equal(t, 15.0, *f.Zoom)
	assert.Equal(t, "2.5km", f.StepSize)
	require.NotNil(t, f.Demo)
	assert.False(t, *f.Demo)
}

func TestBuildDynamicURL(t *testing.T) {
	f, err := Parse([]byte(sample))
	require.NoError(t, err)

	cfg, err := f.Build()
	require.NoError(t, err)

	url := cfg.URL()
	assert.Contains(t, url, "embed/dynamic")
	assert.Contains(t, url, "apiKey=k")
	assert.Contains(t, url, "sources=osm,units")
	assert.Contains(t, url, "units.type=esri")
	assert.Contains(t, url, "center=-122.1431,47.6495")
	assert.Contains(t, url, "stepsize=2.5km")
	assert.Contains(t, url, "demo=false")
	// additionalParams merge last and override the typed zoom.
	assert.Contains(t, url, "zoom=12")
	assert.NotContains(t, url, "zoom=15")
	assert.Contains(t, url, "theme=dark")
}

func TestBuildStatic(t *testing.T) {
	f, err := Parse([]byte("embedId: \"12345\"\napiKey: k\n"))
	require.NoError(t, err)

	cfg, err := f.Build()
	require.NoError(t, err)
	assert.Contains(t, cfg.URL(), "embed/12345")
}

func TestParseRequiresAPIKey(t *testing.T) {
	_, err := Parse([]byte("zoom: 3\n"))
	assert.ErrorContains(t, err, "apiKey")
}

func TestParseRejectsBadCenter(t *testing.T) {
	_, err := Parse([]byte("apiKey: k\ncenter: [1, 2, 3]\n"))
	assert.ErrorContains(t, err, "center")
}

func TestBuildSurfacesStepSizeError(t *testing.T) {
	f, err := Parse([]byte("apiKey: k\nstepSize: bogus\n"))
	require.NoError(t, err)

	_, err = f.Build()
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "embed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0644))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "k", f.APIKey)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
