package main

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/logger"
	"github.com/0x0FACED/go-delaunay/pkg/voronoi"
	"github.com/0x0FACED/go-delaunay/static"
)

type diagramHandler struct {
	defaults diagramConfig
	log      *logger.ZapLogger
}

// formInt читает целое из формы, оставляя значение по умолчанию при ошибке
func formInt(r *http.Request, name string, def int) int {
	v, err := strconv.Atoi(r.FormValue(name))
	if err != nil {
		return def
	}
	return v
}

func (h *diagramHandler) configFromRequest(r *http.Request) (diagramConfig, error) {
	cfg := h.defaults
	if r.Method != http.MethodPost {
		return cfg, nil
	}
	if err := r.ParseForm(); err != nil {
		return cfg, err
	}
	cfg.width = formInt(r, "width", cfg.width)
	cfg.height = formInt(r, "height", cfg.height)
	cfg.stations = formInt(r, "stations", cfg.stations)
	cfg.relax = formInt(r, "relax", cfg.relax)
	cfg.random = r.FormValue("random") == "true"
	return cfg, nil
}

// http обработчик страницы с диаграмой и формой для ввода данных
func (h *diagramHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.configFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// логи запроса уходят на страницу
	reqLog := logger.New()
	defer reqLog.ClearLogs()

	stations := generateStations(cfg)
	bounds := geom.NewRect(0, 0, float64(cfg.width), float64(cfg.height))

	diagram, err := voronoi.New(stations, bounds,
		voronoi.WithLogger(reqLog),
		voronoi.WithRelaxation(cfg.relax))
	if err != nil {
		h.log.Warn("Не удалось построить диаграмму", zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.log.Info("Диаграмма построена",
		zap.Int("stations", len(stations)),
		zap.Int("edges", len(diagram.Edges())),
		zap.Int("relax", cfg.relax))

	scatter := voronoiToEcharts(diagram, true)

	fmt.Fprintln(w, static.Part1)
	fmt.Fprintf(w, static.StatsFormat,
		len(stations), len(diagram.VoronoiDiagram()), len(diagram.Vertices()), cfg.relax)

	if err := scatter.Render(w); err != nil {
		h.log.Error("Ошибка рендеринга диаграммы", zap.Error(err))
	}

	fmt.Fprintln(w, static.Part2)

	// Вставляем логи в HTML
	fmt.Fprintln(w, reqLog.HTML())

	fmt.Fprintln(w, static.Part3)
}

func newServeCmd(logLevel *string) *cobra.Command {
	cfg := defaultDiagramConfig()
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Запустить веб-страницу с диаграммой",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(*logLevel)
			if err != nil {
				return err
			}
			defer log.Sync()

			http.Handle("/", &diagramHandler{defaults: cfg, log: log})
			log.Info("Сервер запущен", zap.String("addr", addr))
			return http.ListenAndServe(addr, nil)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	bindDiagramFlags(cmd.Flags(), &cfg)
	return cmd
}
