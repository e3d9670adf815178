// Package web serves the browser front end: a form of radio buttons, one
// launch button, and a result page with the distance and the animation.
package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/san-kum/paperplane/internal/anim"
	"github.com/san-kum/paperplane/internal/config"
	"github.com/san-kum/paperplane/internal/flight"
	"github.com/san-kum/paperplane/internal/render"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	cfg      *config.Config
	renderer *render.Renderer
	source   flight.RandomSource
	logger   *log.Logger
}

// New builds a server. src is shared by all requests and is locked
// internally.
func New(cfg *config.Config, src flight.RandomSource, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		cfg:      cfg,
		renderer: cfg.Renderer(),
		source:   flight.Locked(src),
		logger:   logger,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /fly", s.handleFly)
	mux.HandleFunc("GET /flight.gif", s.handleGIF)
	mux.HandleFunc("GET /api/fly", s.handleAPI)
	return s.logRequests(mux)
}

// ListenAndServe serves until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Printf("listening on %s", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.writePage(w, http.StatusOK, newPage(s.cfg.Plane))
}

func (s *Server) handleFly(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		p := newPage(s.cfg.Plane)
		p.Error = err.Error()
		s.writePage(w, http.StatusBadRequest, p)
		return
	}
	plane, err := planeFromValues(r.PostForm, nil)
	if err != nil {
		p := newPage(s.cfg.Plane)
		p.Error = err.Error()
		s.writePage(w, http.StatusBadRequest, p)
		return
	}

	res := flight.Simulate(plane, s.source)
	data, err := s.renderer.GIFBytes(anim.Path(res.Distance), render.StyleFor(plane), s.cfg.Animation.FPS)
	if err != nil {
		s.logger.Printf("render failed: %v", err)
		http.Error(w, "rendering failed", http.StatusInternalServerError)
		return
	}

	p := newPage(plane)
	p.Result = &flightView{
		Readout: flight.Readout(res.Distance),
		GIF:     gifDataURL(data),
	}
	s.writePage(w, http.StatusOK, p)
}

func (s *Server) handleGIF(w http.ResponseWriter, r *http.Request) {
	plane, err := planeFromValues(r.URL.Query(), &s.cfg.Plane)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res := flight.Simulate(plane, s.source)
	data, err := s.renderer.GIFBytes(anim.Path(res.Distance), render.StyleFor(plane), s.cfg.Animation.FPS)
	if err != nil {
		s.logger.Printf("render failed: %v", err)
		http.Error(w, "rendering failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/gif")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("X-Flight-Distance", flight.Readout(res.Distance))
	w.Write(data)
}

type apiResponse struct {
	flight.FlightResult
	Readout string       `json:"readout"`
	Path    []anim.Point `json:"path,omitempty"`
}

func (s *Server) handleAPI(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	plane, err := planeFromValues(q, &s.cfg.Plane)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	res := flight.Simulate(plane, s.source)
	resp := apiResponse{FlightResult: res, Readout: flight.Readout(res.Distance)}
	if q.Get("path") == "1" {
		resp.Path = anim.Points(anim.Path(res.Distance))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) writePage(w http.ResponseWriter, status int, p page) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, p); err != nil {
		s.logger.Printf("template: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// planeFromValues reads one value per attribute key. Missing keys fall
// back to fallback, or are an error when fallback is nil.
func planeFromValues(values url.Values, fallback *flight.Plane) (flight.Plane, error) {
	var p flight.Plane
	for _, a := range flight.Attributes {
		v := values.Get(a.Key())
		if v == "" {
			if fallback == nil {
				return flight.Plane{}, fmt.Errorf("missing selection for %s", a.Label())
			}
			v = fallback.Get(a)
		}
		canon, err := flight.ParseValue(a, v)
		if err != nil {
			return flight.Plane{}, err
		}
		p.Set(a, canon)
	}
	return p, nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Printf("%s %s %d %v", r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}
