package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/storefront-backend/internal/http/handlers"
	httpMW "github.com/yungbote/storefront-backend/internal/http/middleware"
	"github.com/yungbote/storefront-backend/internal/http/response"
	"github.com/yungbote/storefront-backend/internal/platform/logger"
	"github.com/yungbote/storefront-backend/internal/platform/ratelimit"
)

// Route binds one method and path to a handler. Nested routes carry the parent
// id in the :id segment and the child id in :pk.
type Route struct {
	Method string
	Path   string
	Nested bool
	Handle httpH.HandlerFunc
}

type RouterConfig struct {
	Log *logger.Logger

	HealthHandler     *httpH.HealthHandler
	ProductHandler    *httpH.ProductHandler
	CollectionHandler *httpH.CollectionHandler
	ReviewHandler     *httpH.ReviewHandler
	CartHandler       *httpH.CartHandler
	CartItemHandler   *httpH.CartItemHandler

	CORSOrigins []string
	Limiter     ratelimit.Limiter
	// TracingService names the otelgin span source; empty disables it.
	TracingService string
}

// Routes is the full storefront route table.
func Routes(cfg RouterConfig) []Route {
	var routes []Route
	add := func(method, path string, nested bool, h httpH.HandlerFunc) {
		routes = append(routes, Route{Method: method, Path: path, Nested: nested, Handle: h})
	}

	if h := cfg.HealthHandler; h != nil {
		add(http.MethodGet, "/healthcheck", false, h.HealthCheck)
	}

	if h := cfg.ProductHandler; h != nil {
		add(http.MethodGet, "/store/products/", false, h.List)
		add(http.MethodPost, "/store/products/", false, h.Create)
		add(http.MethodGet, "/store/products/:id/", false, h.Get)
		add(http.MethodPut, "/store/products/:id/", false, h.Update)
		add(http.MethodPatch, "/store/products/:id/", false, h.Update)
		add(http.MethodDelete, "/store/products/:id/", false, h.Delete)
	}

	if h := cfg.CollectionHandler; h != nil {
		add(http.MethodGet, "/store/collections/", false, h.List)
		add(http.MethodPost, "/store/collections/", false, h.Create)
		add(http.MethodGet, "/store/collections/:id/", false, h.Get)
		add(http.MethodPut, "/store/collections/:id/", false, h.Update)
		add(http.MethodPatch, "/store/collections/:id/", false, h.Update)
		add(http.MethodDelete, "/store/collections/:id/", false, h.Delete)
	}

	if h := cfg.ReviewHandler; h != nil {
		add(http.MethodGet, "/store/products/:id/reviews/", true, h.List)
		add(http.MethodPost, "/store/products/:id/reviews/", true, h.Create)
		add(http.MethodGet, "/store/products/:id/reviews/:pk/", true, h.Get)
		add(http.MethodPut, "/store/products/:id/reviews/:pk/", true, h.Update)
		add(http.MethodPatch, "/store/products/:id/reviews/:pk/", true, h.Update)
		add(http.MethodDelete, "/store/products/:id/reviews/:pk/", true, h.Delete)
	}

	if h := cfg.CartHandler; h != nil {
		add(http.MethodPost, "/store/carts/", false, h.Create)
		add(http.MethodGet, "/store/carts/:id/", false, h.Get)
		add(http.MethodDelete, "/store/carts/:id/", false, h.Delete)
	}

	if h := cfg.CartItemHandler; h != nil {
		add(http.MethodGet, "/store/carts/:id/items/", true, h.List)
		add(http.MethodPost, "/store/carts/:id/items/", true, h.Create)
		add(http.MethodGet, "/store/carts/:id/items/:pk/", true, h.Get)
		add(http.MethodPatch, "/store/carts/:id/items/:pk/", true, h.Update)
		add(http.MethodDelete, "/store/carts/:id/items/:pk/", true, h.Delete)
	}

	return routes
}

// adapt lifts a route's handler into gin, reading gin's path state once.
func adapt(rt Route) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := httpH.Params{ID: c.Param("id")}
		if rt.Nested {
			p = httpH.Params{ParentID: c.Param("id"), ID: c.Param("pk")}
		}
		rt.Handle(c, p)
	}
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	if cfg.TracingService != "" {
		r.Use(otelgin.Middleware(cfg.TracingService))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(gin.Recovery())
	r.Use(httpMW.CORS(cfg.CORSOrigins))
	if cfg.Limiter != nil {
		r.Use(httpMW.RateLimit(cfg.Limiter, cfg.Log))
	}

	for _, rt := range Routes(cfg) {
		r.Handle(rt.Method, rt.Path, adapt(rt))
	}

	r.NoRoute(func(c *gin.Context) {
		response.RespondDetail(c, http.StatusNotFound, response.MsgNotFound)
	})
	r.NoMethod(func(c *gin.Context) {
		response.RespondDetail(c, http.StatusMethodNotAllowed, `Method "`+c.Request.Method+`" not allowed.`)
	})
	return r
}
