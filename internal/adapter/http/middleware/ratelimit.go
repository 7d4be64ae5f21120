package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RateLimit applies a fixed window/count policy per caller IP, using the
// limiter's in-memory store.
func RateLimit(period time.Duration, limit int64) gin.HandlerFunc {
	rate := limiter.Rate{Period: period, Limit: limit}
	return mgin.NewMiddleware(limiter.New(memory.NewStore(), rate))
}
