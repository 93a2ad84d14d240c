package app

import (
	"Backoffice/internal/auth"
	"Backoffice/internal/cache"
	"Backoffice/internal/config"
	"Backoffice/internal/handlers"
	"Backoffice/internal/repo"
	"Backoffice/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine. The route table mirrors the
// original portal: every operation exists as a form endpoint (redirects) and a
// rest endpoint (status + JSON).
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) error {
	r.GET("/", landingHandler())
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	tokens, err := auth.NewIssuer([]byte(cfg.Auth.TokenSecret), cfg.Auth.TokenTTL.Duration())
	if err != nil {
		return err
	}

	accountRepo := repo.NewPGAccountRepo(db)
	accountSvc := service.NewAccountService(accountRepo)
	accountHandler := handlers.NewAccountHandler(accountSvc, tokens)

	employeeRepo := repo.NewPGEmployeeRepo(db)
	employeeCache := cache.NewEmployeeCache(rdb, cfg.Redis.DefaultTTL.Duration())
	employeeSvc := service.NewEmployeeService(employeeRepo, employeeCache)
	employeeHandler := handlers.NewEmployeeHandler(employeeSvc)

	RegisterAccountRoutes(r, accountHandler, tokens)
	RegisterEmployeeRoutes(r, employeeHandler, tokens)
	return nil
}

// RegisterAccountRoutes wires signup, login and logout in both modes.
func RegisterAccountRoutes(r *gin.Engine, h *handlers.AccountHandler, tokens *auth.Issuer) {
	r.POST("/auth/signup", h.Signup)
	r.POST("/auth/restsignup", h.RestSignup)
	r.POST("/auth/login", h.Login)
	r.POST("/auth/restlogin", h.RestLogin)
	r.POST("/auth/logout", auth.RequireTokenCookie(tokens), h.Logout)
	r.POST("/auth/restlogout", auth.RequireTokenHeader(tokens), h.RestLogout)
}

// RegisterEmployeeRoutes wires the guarded CRUD surface. Form routes sit
// behind the cookie guard, rest routes behind the header guard.
func RegisterEmployeeRoutes(r *gin.Engine, h *handlers.EmployeeHandler, tokens *auth.Issuer) {
	cookieGuard := auth.RequireTokenCookie(tokens)
	headerGuard := auth.RequireTokenHeader(tokens)

	r.GET("/auth/view", cookieGuard, h.View)
	r.GET("/auth/restview", headerGuard, h.RestView)
	r.POST("/auth/create", cookieGuard, h.Create)
	r.POST("/auth/restcreate", headerGuard, h.RestCreate)

	r.POST("/:id/update", cookieGuard, h.Update)
	r.PATCH("/:id/update", headerGuard, h.RestUpdate)
	r.GET("/:id/delete", cookieGuard, h.Delete)
	r.DELETE("/:id/delete", headerGuard, h.RestDelete)
}

func landingHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(200, "auth.html", gin.H{"Error": c.Query("error")})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}
