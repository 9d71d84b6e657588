package deps

import (
	"time"

	"github.com/MrSnakeDoc/shelf/internal/httpserver/mw"
	"github.com/MrSnakeDoc/shelf/internal/index"
	"github.com/MrSnakeDoc/shelf/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Deps carries the shared dependencies handed to every route registrar.
type Deps struct {
	Logger        logger.Logger
	StartTime     time.Time
	Version       string
	Commit        string
	BuildDate     string
	GoVersion     string
	TimeNow       func() time.Time   // for testing, defaults to time.Now
	AllowedHosts  []string           // Host headers allowed to access the server
	AllowedCIDRS  []string           // IPs allowed to access guarded endpoints
	TrustProxy    bool               // true if running behind a trusted reverse proxy
	ShelfFile     string             // Path to the shelf bookmark file
	RedisClient   *redis.Client      // Redis client connection
	MemoryIndex   *index.MemoryIndex // In-memory entry index
	ReloadTrigger chan struct{}      // Channel to trigger manual shelf reload
	RateLimit     mw.RateLimitConfig // Rate limit applied to mutating endpoints
}
