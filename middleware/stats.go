package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/seo-optimizer/contentseo/logging"
)

// PageURLKey is the gin context key under which handlers store the URL of
// an analyzed page.
const PageURLKey = "pageURL"

// saveEvery is how many requests pass between statistics snapshots.
const saveEvery = 100

// Stats tracks visitors and analysis requests.
func Stats(stats *logging.Statistics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := timeNow()

		stats.TrackVisitor(c.ClientIP())

		c.Next()

		if c.Request.Method == http.MethodPost && strings.HasPrefix(c.Request.URL.Path, "/api/analyze") {
			stats.TrackAnalysis(c.GetString(PageURLKey), timeNow().Sub(start), c.Writer.Status() >= 400)
		}

		if stats.Requests()%saveEvery == 0 {
			stats.SaveAsync()
		}
	}
}
