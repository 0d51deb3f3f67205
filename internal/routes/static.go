package routes

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ServeStatic serves the front-end from dir for every path the API does not
// claim. Unknown /api paths still answer with a JSON 404.
func ServeStatic(r *gin.Engine, dir string) {
	files := http.FileServer(http.Dir(dir))

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		files.ServeHTTP(c.Writer, c.Request)
	})
}
