package server

import (
	"encoding/json"
	"image"
	"image/png"
	"log"
	"net/http"
	"slices"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/gravitas-games/hexpaint/internal/editor"
	"github.com/gravitas-games/hexpaint/internal/hex"
	"github.com/gravitas-games/hexpaint/internal/preview"
	"github.com/gravitas-games/hexpaint/internal/tilemap"
)

const (
	maxRangeRadius   = 32
	maxPreviewPixels = 4096
)

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.config.Host.AllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/ws", s.handleWebSocket)
	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", s.metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/status", s.handleStatus)
		r.Get("/tools", s.handleTools)
		r.Get("/tiles", s.handleTiles)
		r.Get("/range/{index}", s.handleRange)
		r.Get("/preview.png", s.handlePreview)
	})
	return r
}

// TileInfo is one tile as listed by the HTTP API
type TileInfo struct {
	Index uint64 `json:"index"`
	Q     int    `json:"q"`
	R     int    `json:"r"`
	S     int    `json:"s"`
	Tag   string `json:"tag"`
}

// RangeInfo is the movement range around a cell
type RangeInfo struct {
	Index  uint64   `json:"index"`
	Radius int      `json:"radius"`
	Cells  []uint64 `json:"cells"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.session.Status())
}

func (s *Server) handleTools(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ToolInfos(s.config.Grid.AssetDir))
}

func (s *Server) handleTiles(w http.ResponseWriter, r *http.Request) {
	var tiles []TileInfo
	s.session.Inspect(func(e *editor.Editor) {
		tiles = make([]TileInfo, 0, e.Store().Len())
		e.Store().Each(func(t tilemap.Tile) {
			c := t.Cube()
			tiles = append(tiles, TileInfo{Index: uint64(t.Index), Q: c.Q, R: c.R, S: c.S, Tag: t.Tag.String()})
		})
	})
	writeJSON(w, http.StatusOK, tiles)
}

func (s *Server) handleRange(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.ParseUint(chi.URLParam(r, "index"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "index must be a non-negative integer")
		return
	}
	radius := s.config.Paint.HighlightRadius
	if v := r.URL.Query().Get("radius"); v != "" {
		radius, err = strconv.Atoi(v)
		if err != nil || radius < 0 || radius > maxRangeRadius {
			writeError(w, http.StatusBadRequest, "radius must be between 0 and 32")
			return
		}
	}

	center, ok := hex.CubeOf(hex.Index(index))
	if !ok || hex.RingOf(hex.Index(index)) > hex.MaxRing-radius {
		writeError(w, http.StatusBadRequest, "range leaves the lattice")
		return
	}

	rng := hex.MovementRange(center, radius)
	info := RangeInfo{Index: index, Radius: radius, Cells: make([]uint64, 0, rng.Size())}
	for _, c := range rng.Cells() {
		if i, ok := hex.IndexOf(c); ok {
			info.Cells = append(info.Cells, uint64(i))
		}
	}
	slices.Sort(info.Cells)
	writeJSON(w, http.StatusOK, info)
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	width := queryInt(r, "width", int(s.config.Camera.ViewportWidth))
	height := queryInt(r, "height", int(s.config.Camera.ViewportHeight))
	if width <= 0 || height <= 0 || width > maxPreviewPixels || height > maxPreviewPixels {
		writeError(w, http.StatusBadRequest, "invalid preview size")
		return
	}

	var (
		img image.Image
		err error
	)
	s.session.Inspect(func(e *editor.Editor) {
		img, err = preview.Render(e.Store(), e.Layout(), preview.Options{
			Width:     width,
			Height:    height,
			Camera:    e.Camera(),
			Labels:    e.Labels(),
			Highlight: e.Painter().Highlight,
		})
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, img); err != nil {
		log.Printf("Failed to encode preview: %v", err)
	}
}

func queryInt(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return -1
	}
	return n
}
