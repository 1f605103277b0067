// Package preview serves the static portfolio locally with skill tags
// already converted, so the widgets can be checked without a deploy.
package preview

import (
	"bytes"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio-widgets/internal/skills"
)

type Server struct {
	siteDir  string
	renderer *skills.Renderer
	logger   *zap.Logger
}

func NewServer(siteDir string, renderer *skills.Renderer, logger *zap.Logger) *Server {
	return &Server{siteDir: siteDir, renderer: renderer, logger: logger}
}

// Router builds the gin engine. It has no POST routes; the contact form
// talks to EmailJS straight from the browser.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	r.GET("/skills.json", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"default_percent": s.renderer.Table.Default(),
			"skills":          s.renderer.Table.Entries(),
		})
	})

	r.NoRoute(s.servePage)
	return r
}

func (s *Server) servePage(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.Status(http.StatusMethodNotAllowed)
		return
	}

	rel := path.Clean("/" + c.Request.URL.Path)
	if strings.HasSuffix(c.Request.URL.Path, "/") {
		rel = path.Join(rel, "index.html")
	}
	file := filepath.Join(s.siteDir, filepath.FromSlash(rel))

	info, err := os.Stat(file)
	if err == nil && info.IsDir() {
		file = filepath.Join(file, "index.html")
		info, err = os.Stat(file)
	}
	if err != nil {
		c.String(http.StatusNotFound, "404 page not found")
		return
	}

	if !strings.EqualFold(filepath.Ext(file), ".html") {
		c.File(file)
		return
	}

	page, err := s.renderPage(file)
	if err != nil {
		s.logger.Error("Render page", zap.String("file", file), zap.Error(err))
		c.String(http.StatusInternalServerError, "failed to render page")
		return
	}
	c.Header("Last-Modified", info.ModTime().UTC().Format(http.TimeFormat))
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

func (s *Server) renderPage(file string) ([]byte, error) {
	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	report := s.renderer.Render(doc)
	if len(report.Widgets) == 0 && report.Skipped == 0 {
		return raw, nil
	}

	out, err := doc.Html()
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("Request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}
