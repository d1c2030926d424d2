package latency

import (
	"time"

	"github.com/gin-gonic/gin"
)

// New returns middleware that sleeps for the configured duration before
// handling each request, simulating the round-trip of the remote API this
// service stands in for. A non-positive duration disables the delay, which
// keeps tests fast.
func New(delay time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if delay > 0 {
			select {
			case <-time.After(delay):
			case <-c.Request.Context().Done():
				c.AbortWithStatus(499)
				return
			}
		}
		c.Next()
	}
}
