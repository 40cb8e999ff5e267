package main

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// newSalt returns a random per-process salt for visitor hashing
func newSalt() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("generate visitor salt: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// hashIP hashes an address with the salt so visits can be correlated within
// one process lifetime without logging the raw address
func hashIP(ip, salt string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + salt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

// visitorLoggingMiddleware logs page visits with hashed addresses. Static
// assets, reveal streams and the privacy page are skipped, and Do Not Track
// is honoured. Nothing is stored.
func visitorLoggingMiddleware(log *slog.Logger, salt string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/static/") ||
			strings.HasPrefix(path, "/reveal/") ||
			strings.HasPrefix(path, "/favicon") ||
			strings.HasPrefix(path, "/privacy") ||
			path == "/healthz" {
			c.Next()
			return
		}

		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		log.Info("visit",
			"visitor", hashIP(c.ClientIP(), salt),
			"path", path,
			"user_agent", c.GetHeader("User-Agent"),
		)
		c.Next()
	}
}

func setupPrivacyRoutes(r *gin.Engine) {
	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", gin.H{
			"title": "Privacy Policy",
			"email": Email,
		})
	})
}
