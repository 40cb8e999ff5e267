package main

import (
	"log/slog"
	"net/http"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/Zachkp/portfolio/reveal"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := loadConfig()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	reveal.SetLogger(logger)

	salt, err := newSalt()
	if err != nil {
		slog.Error("startup failed", "err", err)
		os.Exit(1)
	}

	r := newRouter(cfg, reveal.RealClock(), logger, salt)

	slog.Info("portfolio listening", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

// tab is one pill-nav button
type tab struct {
	Label  string
	Path   string
	Active bool
}

// navData renders the pill nav; OOB marks the copy carried by a tab
// fragment so HTMX swaps it in place of the current nav
type navData struct {
	Tabs []tab
	OOB  bool
}

var tabs = []tab{
	{Label: "About", Path: "/about-content"},
	{Label: "Experience", Path: "/experience-content"},
	{Label: "Projects", Path: "/projects-content"},
	{Label: "University", Path: "/university-content"},
}

func nav(active string, oob bool) navData {
	data := navData{Tabs: make([]tab, len(tabs)), OOB: oob}
	for i, t := range tabs {
		t.Active = t.Path == active
		data.Tabs[i] = t
	}
	return data
}

func newRouter(cfg Config, clock reveal.Clock, logger *slog.Logger, salt string) *gin.Engine {
	// No gin request logger: it prints raw client addresses. Visits go
	// through visitorLoggingMiddleware instead.
	r := gin.New()
	r.Use(gin.Recovery())
	r.LoadHTMLGlob(cfg.TemplatesGlob)

	r.Static("/static", cfg.StaticDir)
	r.Use(visitorLoggingMiddleware(logger, salt))

	// Page shell, tabs load their content over HTMX
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{
			"name":     Name,
			"email":    Email,
			"github":   GitHub,
			"linkedin": LinkedIn,
			"intro":    IntroTexts,
			"nav":      nav("/about-content", false),
		})
	})

	r.GET("/about-content", func(c *gin.Context) {
		c.HTML(http.StatusOK, "about.html", gin.H{
			"intro":      IntroTexts,
			"paragraphs": AboutParagraphs,
			"nav":        nav(c.FullPath(), true),
		})
	})

	r.GET("/experience-content", func(c *gin.Context) {
		c.HTML(http.StatusOK, "experience.html", gin.H{
			"jobs": Experience,
			"nav":  nav(c.FullPath(), true),
		})
	})

	r.GET("/projects-content", func(c *gin.Context) {
		c.HTML(http.StatusOK, "projects.html", gin.H{
			"projects": Projects,
			"nav":      nav(c.FullPath(), true),
		})
	})

	r.GET("/university-content", func(c *gin.Context) {
		c.HTML(http.StatusOK, "university.html", gin.H{
			"university": University,
			"nav":        nav(c.FullPath(), true),
		})
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	setupPrivacyRoutes(r)
	setupRevealRoutes(r, cfg, clock)

	return r
}
