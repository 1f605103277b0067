package preview

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio-widgets/internal/config"
	"github.com/Zachkp/portfolio-widgets/internal/skills"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte(
		`<html><body><div class="skill-tag"><span>Python</span></div></body></html>`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "plain.html"), []byte(
		`<html><body><p>nothing here</p></body></html>`), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "static"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "static", "app.css"), []byte(`.skill-item{}`), 0o644))

	renderer := &skills.Renderer{Table: skills.Builtin(skills.DefaultPercent), Logger: zap.NewNop()}
	return NewServer(dir, renderer, zap.NewNop()), dir
}

func do(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func TestServeIndexPreRendersSkills(t *testing.T) {
	t.Parallel()

	s, _ := newTestServer(t)
	w := do(t, s.Router(), http.MethodGet, "/")

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	body := w.Body.String()
	require.Contains(t, body, `class="skill-item"`)
	require.Contains(t, body, `data-width="90%"`)
	require.Contains(t, body, `style="width: 0%"`)
	require.NotContains(t, body, "skill-tag")
}

func TestServePlainPageUntouched(t *testing.T) {
	t.Parallel()

	s, dir := newTestServer(t)
	raw, err := os.ReadFile(filepath.Join(dir, "plain.html"))
	require.NoError(t, err)

	w := do(t, s.Router(), http.MethodGet, "/plain.html")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, string(raw), w.Body.String())
}

func TestServeStaticAndMissing(t *testing.T) {
	t.Parallel()

	s, _ := newTestServer(t)
	r := s.Router()

	w := do(t, r, http.MethodGet, "/static/app.css")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, ".skill-item{}", w.Body.String())

	require.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/nope.html").Code)
	require.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/../../etc/passwd").Code)
}

func TestNoContactEndpoint(t *testing.T) {
	t.Parallel()

	s, _ := newTestServer(t)
	require.Equal(t, http.StatusMethodNotAllowed, do(t, s.Router(), http.MethodPost, "/contact").Code)
}

func TestHealthAndSkillsJSON(t *testing.T) {
	t.Parallel()

	s, _ := newTestServer(t)
	r := s.Router()

	w := do(t, r, http.MethodGet, "/healthz")
	require.Equal(t, "ok", w.Body.String())

	w = do(t, r, http.MethodGet, "/skills.json")
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "application/json"))
	require.Contains(t, w.Body.String(), `"default_percent":75`)
	require.Contains(t, w.Body.String(), `{"label":"Python","percent":90}`)
}

func TestLoadTableSources(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()

	table, err := LoadTable(ctx, config.SkillsConfig{DefaultPercent: 75}, zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, 90, table.Percent("Python"))

	path := filepath.Join(dir, "skills.toml")
	require.NoError(t, os.WriteFile(path, []byte("[skills]\nGo = 77\n"), 0o644))
	table, err = LoadTable(ctx, config.SkillsConfig{TablePath: path, DefaultPercent: 50}, zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, 77, table.Percent("Go"))
	require.Equal(t, 50, table.Percent("Python"))

	table, err = LoadTable(ctx, config.SkillsConfig{DBPath: filepath.Join(dir, "skills.db"), TablePath: path, DefaultPercent: 75}, zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, 90, table.Percent("Python"))
}
