package server

import (
	"embed"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ibrahimsalihaldhubayb/al-zumuruda-system/internal/api"
	"github.com/ibrahimsalihaldhubayb/al-zumuruda-system/internal/config"
	"github.com/ibrahimsalihaldhubayb/al-zumuruda-system/internal/override"
	"github.com/ibrahimsalihaldhubayb/al-zumuruda-system/internal/service/excel"
	"github.com/ibrahimsalihaldhubayb/al-zumuruda-system/internal/service/inventory"
	"github.com/ibrahimsalihaldhubayb/al-zumuruda-system/internal/service/quote"
)

//go:embed index.html
var staticFiles embed.FS

// Server is the HTTP server hosting the sales API and the clerk page.
type Server struct {
	router *gin.Engine
	cache  *inventory.Cache
	api    *api.Handler
}

// NewServer assembles the server from the configuration.
func NewServer(cfg *config.AppConfig, dataDir string) *Server {
	devMode := cfg.Server.DevMode
	if !devMode {
		gin.SetMode(gin.ReleaseMode)
	}

	sourceDir := filepath.Join(dataDir, "sources")

	builder := inventory.NewBuilder(excel.DefaultSchema())
	cache := inventory.NewCache(builder, sourceDir, cfg.Data.MasterPattern, cfg.Data.VacantPattern)

	client := override.New(
		cfg.Override.BaseURL,
		cfg.Override.AuthToken,
		time.Duration(cfg.Override.TimeoutSeconds)*time.Second,
	)

	templatePath := cfg.Template.QuotePath
	if templatePath == "" {
		templatePath = filepath.Join(dataDir, "templates", "quote_template.xlsx")
	}
	renderer := quote.NewRenderer(templatePath)

	downloadTTL := time.Duration(cfg.Business.DownloadTTLMinutes) * time.Minute

	apiHandler := api.NewHandler(cache, client, renderer, cfg.Business.OfficeFee, downloadTTL)

	s := &Server{
		router: gin.Default(),
		cache:  cache,
		api:    apiHandler,
	}

	s.setupRoutes()

	return s
}

// setupRoutes wires middleware, the API group and the clerk page.
func (s *Server) setupRoutes() {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	apiGroup := s.router.Group("/api")
	{
		s.api.RegisterRoutes(apiGroup)
	}

	servePage := func(c *gin.Context) {
		data, err := staticFiles.ReadFile("index.html")
		if err != nil {
			c.Status(http.StatusNotFound)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", data)
	}
	s.router.GET("/", servePage)
	s.router.NoRoute(servePage)
}

// Run starts the server.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Warmup builds the first inventory snapshot so the opening lookup is
// not the one paying for the parse.
func (s *Server) Warmup() {
	s.cache.Snapshot()
}
