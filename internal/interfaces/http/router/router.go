// Package router assembles the gin engine, middlewares and routes.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ledgerhub/backend/internal/application/bus"
	"github.com/ledgerhub/backend/internal/infrastructure/config"
	"github.com/ledgerhub/backend/internal/infrastructure/logger"
	"github.com/ledgerhub/backend/internal/infrastructure/persistence"
	"github.com/ledgerhub/backend/internal/interfaces/http/handler"
	"github.com/ledgerhub/backend/internal/interfaces/http/middleware"
)

// New builds the HTTP engine with all middlewares and routes wired
func New(cfg *config.Config, log *zap.Logger, b *bus.Bus, db *persistence.Database) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	registerValidations()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		_ = engine.SetTrustedProxies(cfg.HTTP.TrustedProxies)
	} else {
		_ = engine.SetTrustedProxies(nil)
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.Tenant("/health", "/ready"))

	systemHandler := handler.NewSystemHandler(db)
	engine.GET("/health", systemHandler.Health)
	engine.GET("/ready", systemHandler.Ready)

	personHandler := handler.NewPersonHandler(b)
	payableHandler := handler.NewAccountPayableHandler(b)
	receivableHandler := handler.NewAccountReceivableHandler(b)

	v1 := engine.Group("/api/v1")
	{
		persons := v1.Group("/persons")
		{
			persons.POST("/individual", personHandler.CreateIndividual)
			persons.POST("/legal", personHandler.CreateLegal)
			persons.GET("", personHandler.List)
			persons.GET("/:id", personHandler.Get)
			persons.PUT("/:id", personHandler.UpdateContact)
			persons.PATCH("/:id/marital-status", personHandler.ChangeMaritalStatus)
			persons.PATCH("/:id/legal-name", personHandler.ChangeLegalName)
			persons.PATCH("/:id/activation", personHandler.SetActivation)
			persons.DELETE("/:id", personHandler.Delete)
		}

		payables := v1.Group("/accounts-payable")
		{
			payables.POST("", payableHandler.Create)
			payables.GET("", payableHandler.List)
			payables.GET("/:id", payableHandler.Get)
			payables.PUT("/:id", payableHandler.Update)
			payables.PATCH("/:id/status", payableHandler.ChangeStatus)
			payables.POST("/:id/payment", payableHandler.RegisterPayment)
			payables.POST("/:id/installments", payableHandler.AddInstallment)
			payables.DELETE("/:id", payableHandler.Delete)
		}

		receivables := v1.Group("/accounts-receivable")
		{
			receivables.POST("", receivableHandler.Create)
			receivables.GET("", receivableHandler.List)
			receivables.GET("/invoice/:invoice", receivableHandler.GetByInvoice)
			receivables.GET("/:id", receivableHandler.Get)
			receivables.PUT("/:id", receivableHandler.Update)
			receivables.PATCH("/:id/status", receivableHandler.ChangeStatus)
			receivables.POST("/:id/receipt", receivableHandler.RegisterReceipt)
			receivables.POST("/:id/installments", receivableHandler.AddInstallment)
			receivables.DELETE("/:id", receivableHandler.Delete)
		}
	}

	return engine
}

// registerValidations adds the custom binding validators. br_doc accepts
// the characters of formatted CPF/CNPJ documents.
func registerValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("br_doc", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		for _, r := range value {
			switch {
			case r >= '0' && r <= '9':
			case r == '.' || r == '-' || r == '/':
			default:
				return false
			}
		}
		return true
	})
}
