package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/logger"
	"github.com/0x0FACED/go-delaunay/pkg/voronoi"
)

func TestGenerateFixStations(t *testing.T) {
	for _, n := range []int{1, 5, 12, 17} {
		stations := generateFixStations(n, 1000, 800)
		require.Len(t, stations, n)
		for _, s := range stations {
			assert.True(t, s.X > 0 && s.X < 1000)
			assert.True(t, s.Y > 0 && s.Y < 800)
		}
	}
	assert.Empty(t, generateFixStations(0, 1000, 800))
}

func TestFixStationsTileBounds(t *testing.T) {
	bounds := geom.NewRect(0, 0, 1000, 800)
	// 3 stations make a single row, the others full grids.
	for _, n := range []int{3, 4, 9, 12} {
		d, err := voronoi.New(generateFixStations(n, 1000, 800), bounds)
		require.NoError(t, err)

		var sum float64
		for _, region := range d.Regions() {
			sum += region.Area()
		}
		assert.InDelta(t, bounds.Area(), sum, 1e-3, "%d stations", n)
	}
}

func TestGenerateRandStationsSeeded(t *testing.T) {
	a := generateRandStations(20, 100, 100, 42)
	b := generateRandStations(20, 100, 100, 42)
	assert.Equal(t, a, b)
	for _, s := range a {
		assert.True(t, s.X >= 0 && s.X < 100)
		assert.True(t, s.Y >= 0 && s.Y < 100)
	}
}

func runRoot(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestExportWKT(t *testing.T) {
	out, err := runRoot(t, "export", "--sites", "9", "--width", "90", "--height", "90", "--log-level", "error")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 9)
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "POLYGON"), line)
	}
}

func TestExportJSON(t *testing.T) {
	out, err := runRoot(t, "export", "--format", "json", "--random", "--seed", "7", "--sites", "30", "--relax", "2", "--log-level", "error")
	require.NoError(t, err)

	var d exportedDiagram
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Len(t, d.Sites, 30)
	assert.Len(t, d.Regions, 30)
	assert.NotEmpty(t, d.Voronoi)
	assert.NotEmpty(t, d.Delaunay)
	assert.GreaterOrEqual(t, len(d.Hull), 3)
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	_, err := runRoot(t, "export", "--format", "svg")
	assert.Error(t, err)

	_, err = runRoot(t, "export", "--log-level", "loud")
	assert.Error(t, err)
}

func TestDiagramHandler(t *testing.T) {
	h := &diagramHandler{defaults: defaultDiagramConfig(), log: logger.NewNop()}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Диаграмма Вороного")
	assert.Contains(t, body, "[fortune] diagram ready")

	form := url.Values{
		"width":    {"500"},
		"height":   {"400"},
		"stations": {"25"},
		"random":   {"true"},
		"relax":    {"1"},
	}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	form.Set("relax", "-1")
	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
