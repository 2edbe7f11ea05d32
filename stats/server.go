package stats

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/focusflow/internal/config"
	"github.com/ayoisaiah/focusflow/internal/models"
	"github.com/ayoisaiah/focusflow/internal/timeutil"
)

const shutdownTimeout = 5 * time.Second

// Source is the read side of the store served over HTTP.
type Source interface {
	LoadHistory() ([]models.FocusRecord, error)
	LoadTags() ([]models.Tag, error)
}

type handler struct {
	src Source
	now func() time.Time
}

func writeError(c *gin.Context, status int, code string, err error) {
	c.JSON(status, gin.H{
		"error": gin.H{"code": code, "message": err.Error()},
	})
}

func (h *handler) load(c *gin.Context) ([]models.FocusRecord, []models.Tag, bool) {
	records, err := h.src.LoadHistory()
	if err != nil {
		writeError(c, http.StatusInternalServerError, "load_history", err)
		return nil, nil, false
	}

	tags, err := h.src.LoadTags()
	if err != nil {
		writeError(c, http.StatusInternalServerError, "load_tags", err)
		return nil, nil, false
	}

	if tags == nil {
		tags = models.DefaultTags()
	}

	return records, tags, true
}

func (h *handler) Stats(c *gin.Context) {
	records, tags, ok := h.load(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, Compute(records, tags, h.now()))
}

// History lists records, optionally narrowed by the since, until and tag
// query parameters.
func (h *handler) History(c *gin.Context) {
	now := h.now()
	f := &config.Filter{Until: now}

	for param, dst := range map[string]*time.Time{
		"since": &f.Since,
		"until": &f.Until,
	} {
		v := c.Query(param)
		if v == "" {
			continue
		}

		t, err := timeutil.FromStr(v, now)
		if err != nil {
			writeError(c, http.StatusBadRequest, "invalid_"+param, err)
			return
		}

		*dst = t
	}

	if tag := c.Query("tag"); tag != "" {
		f.Tags = []string{tag}
	}

	records, _, ok := h.load(c)
	if !ok {
		return
	}

	out := f.Apply(records)
	if out == nil {
		out = []models.FocusRecord{}
	}

	c.JSON(http.StatusOK, gin.H{"records": out})
}

func logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		slog.Info(
			"stats request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
		)
	}
}

// NewRouter returns the HTTP API over src.
func NewRouter(src Source, now func() time.Time) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	h := &handler{src: src, now: now}

	engine := gin.New()
	engine.Use(gin.Recovery(), logRequests())

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")
	api.GET("/stats", h.Stats)
	api.GET("/history", h.History)

	return engine
}

// Serve runs the API on port until ctx is cancelled.
func Serve(ctx context.Context, src Source, port uint) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf("localhost:%d", port),
		Handler:           NewRouter(src, time.Now),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)

	go func() {
		errc <- srv.ListenAndServe()
	}()

	pterm.Info.Printfln("serving statistics on http://%s", srv.Addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		shutdownTimeout,
	)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
