package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/voronoi"
)

const (
	formatWKT  = "wkt"
	formatJSON = "json"
)

type exportedDiagram struct {
	Sites    [][2]float64   `json:"sites"`
	Regions  [][][2]float64 `json:"regions"`
	Voronoi  [][4]float64   `json:"voronoi"`
	Delaunay [][4]float64   `json:"delaunay"`
	Hull     [][2]float64   `json:"hull"`
}

func pair(p geom.Point) [2]float64 {
	return [2]float64{p.X, p.Y}
}

func segments(ss []geom.Segment) [][4]float64 {
	out := make([][4]float64, len(ss))
	for i, s := range ss {
		out[i] = [4]float64{s.P0.X, s.P0.Y, s.P1.X, s.P1.Y}
	}
	return out
}

func exportJSON(w io.Writer, d *voronoi.Diagram) error {
	out := exportedDiagram{
		Voronoi:  segments(d.VoronoiDiagram()),
		Delaunay: segments(d.DelaunayLines()),
	}
	for _, s := range d.SiteCoords() {
		out.Sites = append(out.Sites, pair(s))
	}
	for _, region := range d.Regions() {
		ring := make([][2]float64, len(region))
		for i, p := range region {
			ring[i] = pair(p)
		}
		out.Regions = append(out.Regions, ring)
	}
	for _, p := range d.HullPointsInOrder() {
		out.Hull = append(out.Hull, pair(p))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(out), "encoding diagram")
}

func exportWKT(w io.Writer, d *voronoi.Diagram) error {
	wkts, err := d.RegionsWKT()
	if err != nil {
		return err
	}
	for _, wkt := range wkts {
		if _, err := fmt.Fprintln(w, wkt); err != nil {
			return errors.Wrap(err, "writing region")
		}
	}
	return nil
}

func newExportCmd(logLevel *string) *cobra.Command {
	cfg := defaultDiagramConfig()
	format := formatWKT

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Построить диаграмму и вывести регионы (WKT или JSON)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatWKT && format != formatJSON {
				return errors.Newf("unknown format %q", format)
			}
			log, err := newLogger(*logLevel)
			if err != nil {
				return err
			}
			defer log.Sync()

			bounds := geom.NewRect(0, 0, float64(cfg.width), float64(cfg.height))
			d, err := voronoi.New(generateStations(cfg), bounds,
				voronoi.WithLogger(log),
				voronoi.WithRelaxation(cfg.relax))
			if err != nil {
				return err
			}

			if format == formatJSON {
				return exportJSON(cmd.OutOrStdout(), d)
			}
			return exportWKT(cmd.OutOrStdout(), d)
		},
	}
	cmd.Flags().StringVar(&format, "format", format, "output format: wkt or json")
	bindDiagramFlags(cmd.Flags(), &cfg)
	return cmd
}
