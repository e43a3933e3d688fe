package middleware

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultAllowOrigin = "http://localhost"

var corsMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}

// CORS allows the configured origins with credentials and any method. A
// preflight gets its Access-Control-Request-Headers echoed back, since browsers
// drop a "*" there on credentialed requests. Requests from other origins pass
// through untouched, without CORS headers.
func (m Middleware) CORS() gin.HandlerFunc {
	origins := m.allowOrigins
	if len(origins) == 0 {
		origins = []string{defaultAllowOrigin}
	}

	allowed := make(map[string]struct{}, len(origins))
	anyOrigin := false
	for _, o := range origins {
		if o == "*" {
			anyOrigin = true
			continue
		}
		allowed[strings.TrimRight(o, "/")] = struct{}{}
	}

	// one cors handler per distinct requested header set
	handlers, _ := lru.New[string, gin.HandlerFunc](128)
	handlerFor := func(requested string) gin.HandlerFunc {
		key := strings.ToLower(strings.TrimSpace(requested))
		if h, ok := handlers.Get(key); ok {
			return h
		}
		h := cors.New(cors.Config{
			AllowOriginFunc:  func(string) bool { return true },
			AllowMethods:     corsMethods,
			AllowHeaders:     splitHeaders(key),
			ExposeHeaders:    []string{HeaderRequestID},
			AllowCredentials: true,
		})
		handlers.Add(key, h)
		return h
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			return
		}
		if _, ok := allowed[origin]; !ok && !anyOrigin {
			return
		}
		handlerFor(c.GetHeader("Access-Control-Request-Headers"))(c)
	}
}

func splitHeaders(raw string) []string {
	var out []string
	for _, h := range strings.Split(raw, ",") {
		if h = strings.TrimSpace(h); h != "" {
			out = append(out, h)
		}
	}
	return out
}
