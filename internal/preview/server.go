package preview

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peterboddev/vibespacdemo-sub001/internal/models"
)

// Server exposes a freshly generated routes config over HTTP for local
// inspection. It is read-only: the artifact on disk stays the source of
// truth for the provisioning layer.
type Server struct {
	echo *echo.Echo
	cfg  models.RoutesConfig
	tree *models.ResourceNode
}

// NewServer creates a preview server for the given config and resource tree.
func NewServer(cfg models.RoutesConfig, tree *models.ResourceNode) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{echo: e, cfg: cfg, tree: tree}

	e.GET("/healthz", s.health)
	e.GET("/routes", s.routes)
	e.GET("/routes/tree", s.routesTree)
	e.GET("/functions", s.functions)

	return s
}

// Start serves until the listener fails or the process exits.
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// ServeHTTP allows the server to be driven directly in tests.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// routes returns the full artifact as the provisioning layer would read it.
func (s *Server) routes(c echo.Context) error {
	return c.JSON(http.StatusOK, s.cfg)
}

// routesTree returns the merged path-segment tree.
func (s *Server) routesTree(c echo.Context) error {
	return c.JSON(http.StatusOK, s.tree)
}

// functions returns just the discovered function list.
func (s *Server) functions(c echo.Context) error {
	return c.JSON(http.StatusOK, s.cfg.Functions)
}
