package main

import (
	"math"
	"math/rand"
	"time"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
)

// Генерируем случайные точки для станций
func generateRandStations(n int, width, height int, seed int64) []geom.Point {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(seed))

	stations := make([]geom.Point, n)
	for i := range stations {
		stations[i] = geom.Pt(rnd.Float64()*float64(width), rnd.Float64()*float64(height))
	}
	return stations
}

func generateFixStations(n int, width, height int) []geom.Point {
	if n <= 0 {
		return nil
	}
	stations := make([]geom.Point, 0, n)

	rows := int(math.Sqrt(float64(n)))
	cols := (n + rows - 1) / rows

	xStep := float64(width) / float64(cols)
	yStep := float64(height) / float64(rows)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			// строк и столбцов может быть больше, чем станций
			if len(stations) == n {
				return stations
			}
			stations = append(stations, geom.Pt(xStep/2+float64(j)*xStep, yStep/2+float64(i)*yStep))
		}
	}

	return stations
}

func generateStations(cfg diagramConfig) []geom.Point {
	if cfg.random {
		return generateRandStations(cfg.stations, cfg.width, cfg.height, cfg.seed)
	}
	return generateFixStations(cfg.stations, cfg.width, cfg.height)
}
