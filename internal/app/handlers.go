package app

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	apphttp "github.com/yungbote/storefront-backend/internal/http"
	httpH "github.com/yungbote/storefront-backend/internal/http/handlers"
	"github.com/yungbote/storefront-backend/internal/observability"
	"github.com/yungbote/storefront-backend/internal/platform/logger"
	"github.com/yungbote/storefront-backend/internal/platform/ratelimit"
)

type Handlers struct {
	Health     *httpH.HealthHandler
	Product    *httpH.ProductHandler
	Collection *httpH.CollectionHandler
	Review     *httpH.ReviewHandler
	Cart       *httpH.CartHandler
	CartItem   *httpH.CartItemHandler
}

func wireHandlers(db *gorm.DB, log *logger.Logger, cfg Config, s Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:     httpH.NewHealthHandler(db),
		Product:    httpH.NewProductHandler(log, s.Product, cfg.TaxRate),
		Collection: httpH.NewCollectionHandler(log, s.Collection),
		Review:     httpH.NewReviewHandler(log, s.Review),
		Cart:       httpH.NewCartHandler(log, s.Cart),
		CartItem:   httpH.NewCartItemHandler(log, s.CartItem),
	}
}

func wireRouter(log *logger.Logger, cfg Config, h Handlers, limiter ratelimit.Limiter) *gin.Engine {
	tracing := ""
	if cfg.Otel.Enabled {
		tracing = cfg.Otel.ServiceName
		if tracing == "" {
			tracing = observability.DefaultServiceName
		}
	}
	return apphttp.NewRouter(apphttp.RouterConfig{
		Log:               log,
		HealthHandler:     h.Health,
		ProductHandler:    h.Product,
		CollectionHandler: h.Collection,
		ReviewHandler:     h.Review,
		CartHandler:       h.Cart,
		CartItemHandler:   h.CartItem,
		CORSOrigins:       cfg.CORSOrigins,
		Limiter:           limiter,
		TracingService:    tracing,
	})
}
