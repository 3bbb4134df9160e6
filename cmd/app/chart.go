package main

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/voronoi"
)

func prepareScatter(scatter *charts.Scatter) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: "580px",
			Width:  "1020px",
		}),
		charts.WithLegendOpts(opts.Legend{
			TextStyle: &opts.TextStyle{
				Color: "white",
			},
			Right: "10%",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:                "Диаграмма Вороного (Форчун)",
			TitleBackgroundColor: "white",
			Left:                 "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "Ширина",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "Высота",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "horizontal",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "vertical",
		}),
	)
}

// segmentLine рисует один отрезок отдельной серией
func segmentLine(name, color string, width float32, s geom.Segment) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Show: opts.Bool(true)}),
	)
	line.AddSeries(name, []opts.LineData{
		{Value: []float64{s.P0.X, s.P0.Y}},
		{Value: []float64{s.P1.X, s.P1.Y}},
	}).SetSeriesOptions(
		charts.WithLineStyleOpts(opts.LineStyle{
			Width: width,
			Color: color,
		}),
	)
	return line
}

// Преобразуем диаграмму в Echarts для отображения
func voronoiToEcharts(diagram *voronoi.Diagram, showDelaunay bool) *charts.Scatter {
	scatter := charts.NewScatter()

	points := make([]opts.ScatterData, 0)
	for _, station := range diagram.SiteCoords() {
		points = append(points, opts.ScatterData{
			Value: []float64{station.X, station.Y},
		})
	}

	// Дизайним скаттер
	prepareScatter(scatter)

	scatter.AddSeries("Станции", points).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "lightgreen",
			}),
		)

	for _, edge := range diagram.VoronoiDiagram() {
		scatter.Overlap(segmentLine("Границы", "#5470c6", 2, edge))
	}

	if showDelaunay {
		for _, edge := range diagram.DelaunayLines() {
			scatter.Overlap(segmentLine("Делоне", "#91cc75", 1, edge))
		}
	}

	for _, edge := range diagram.Hull() {
		scatter.Overlap(segmentLine("Оболочка", "#ee6666", 1, edge))
	}

	return scatter
}
