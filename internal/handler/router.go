package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

func NewRouter(catalog *CatalogHandler, payments *PaymentHandler, history *HistoryHandler) *gin.Engine {
	router := gin.Default()
	router.Use(otelgin.Middleware("mbg-backend"))
	router.Use(MetricsMiddleware())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	produk := router.Group("/produk")
	{
		produk.GET("", catalog.ListProducts)
		produk.POST("", catalog.CreateProduct)
		produk.GET("/:id", catalog.GetProduct)
		produk.PUT("/:id", catalog.UpdateProduct)
		produk.DELETE("/:id", catalog.DeleteProduct)
	}

	pelanggan := router.Group("/pelanggan")
	{
		pelanggan.GET("", catalog.ListCustomers)
		pelanggan.POST("", catalog.CreateCustomer)
		pelanggan.PUT("/:id", catalog.UpdateCustomer)
		pelanggan.DELETE("/:id", catalog.DeleteCustomer)
	}

	pembayaran := router.Group("/pembayaran")
	{
		pembayaran.GET("", payments.ListPayments)
		pembayaran.POST("", payments.CreatePayment)
		pembayaran.GET("/:id", payments.GetPayment)
		pembayaran.DELETE("/:id", payments.DeletePayment)
	}

	router.GET("/riwayat", history.ListHistory)
	router.GET("/riwayat/export", history.ExportHistory)
	router.GET("/aktivitas", history.ListActivities)

	return router
}
