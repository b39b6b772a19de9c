package routes

import (
	"log"

	_ "claims_settlement/docs"
	"claims_settlement/internal/adapter/http/handlers"
	"claims_settlement/internal/app"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server
func Run(c *app.Container) error {
	gin.SetMode(c.Config.GinMode)

	offerHandler := handlers.NewOfferHandler(c.Offers)
	paymentHandler := handlers.NewPaymentHandler(c.Payments, c.Config.PaymentGatewayMock)

	router := NewRouter(offerHandler, paymentHandler)

	log.Printf("[http] listening addr=%s storage=%s", c.Config.AppAddr, c.Config.StorageDriver)
	if err := router.Run(c.Config.AppAddr); err != nil {
		log.Printf("Failed to startup the application: %v", err.Error())
		return err
	}
	return nil
}

// NewRouter registers middlewares, swagger and the v1 routes.
func NewRouter(offerHandler *handlers.OfferHandler, paymentHandler *handlers.PaymentHandler) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOfferRoutes(v1, offerHandler)
	addPaymentRoutes(v1, paymentHandler)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
