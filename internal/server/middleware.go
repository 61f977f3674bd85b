package server

import (
	"regexp"
	"time"

	"mini-praisells/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// Origins matching these patterns are allowed in addition to the configured
// allow-list: local development hosts, ngrok tunnels and GitHub Pages.
var allowedOriginPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^https://.*\.ngrok\.io$`),
	regexp.MustCompile(`^https://.*\.ngrok-free\.app$`),
	regexp.MustCompile(`^https://.*\.github\.io$`),
	regexp.MustCompile(`^http://localhost:\d+$`),
	regexp.MustCompile(`^http://127\.0\.0\.1:\d+$`),
}

// OriginAllowed returns the AllowOriginFunc for the CORS middleware:
// exact matches against the configured allow-list first, then the
// development patterns.
func OriginAllowed(allowed []string) func(origin string) bool {
	return func(origin string) bool {
		for _, a := range allowed {
			if origin == a {
				return true
			}
		}
		for _, p := range allowedOriginPatterns {
			if p.MatchString(origin) {
				return true
			}
		}
		utils.Warn("CORS blocked origin", map[string]any{"origin": origin})
		return false
	}
}
