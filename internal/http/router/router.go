package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-cms/internal/config"
	"github.com/ignatzorin/portfolio-cms/internal/http/handlers"
	"github.com/ignatzorin/portfolio-cms/internal/http/middleware"
	"github.com/ignatzorin/portfolio-cms/internal/service"
)

// SetupRouter собирает все маршруты API.
func SetupRouter(
	cfg *config.Config,
	accessHandler *handlers.AccessHandler,
	portfolioHandler *handlers.PortfolioHandler,
	educationHandler *handlers.EducationHandler,
	workExperienceHandler *handlers.WorkExperienceHandler,
	skillHandler *handlers.SkillHandler,
	projectHandler *handlers.ProjectHandler,
	blogHandler *handlers.BlogHandler,
	tagHandler *handlers.TagHandler,
	newsletterHandler *handlers.NewsletterHandler,
	healthHandler *handlers.HealthHandler,
	access *service.AccessService,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(middleware.TimeoutMiddleware(cfg.RequestTimeout))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Portfolio CMS API"})
	})
	r.GET("/health", healthHandler.Health)

	api := r.Group("/api/v1")

	// Публичные маршруты.
	public := api.Group("/public")
	{
		public.GET("/portfolio", portfolioHandler.GetPublic)
		public.GET("/blogs", blogHandler.PublicList)
		public.GET("/blogs/:slug", blogHandler.PublicGetBySlug)
		public.POST("/newsletter", newsletterHandler.Subscribe)
	}

	// Вход в админку с ограничением частоты запросов.
	accessRateLimit := middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod)
	api.POST("/admin/access", accessRateLimit, accessHandler.Login)

	// Защищённые маршруты.
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(access))
	{
		admin.GET("/portfolio", portfolioHandler.GetInfo)
		admin.POST("/portfolio", portfolioHandler.Create)
		admin.PUT("/portfolio", portfolioHandler.Update)
		admin.DELETE("/portfolio", portfolioHandler.Delete)

		admin.GET("/education", educationHandler.List)
		admin.POST("/education", educationHandler.Add)
		admin.PUT("/education/:id", educationHandler.Update)
		admin.DELETE("/education/:id", educationHandler.Delete)

		admin.GET("/work-experience", workExperienceHandler.List)
		admin.POST("/work-experience", workExperienceHandler.Add)
		admin.PUT("/work-experience/:id", workExperienceHandler.Update)
		admin.DELETE("/work-experience/:id", workExperienceHandler.Delete)

		admin.GET("/skills", skillHandler.List)
		admin.POST("/skills", skillHandler.Add)
		admin.PUT("/skills/:id", skillHandler.Update)
		admin.DELETE("/skills/:id", skillHandler.Delete)

		admin.GET("/projects", projectHandler.List)
		admin.GET("/projects/:id", projectHandler.Get)
		admin.POST("/projects", projectHandler.Add)
		admin.PUT("/projects/:id", projectHandler.Update)
		admin.DELETE("/projects/:id", projectHandler.Delete)

		admin.GET("/blogs/blog", blogHandler.AdminList)
		admin.GET("/blogs/blog/:id", blogHandler.Get)
		admin.POST("/blogs/blog", blogHandler.Create)
		admin.PUT("/blogs/blog/:id", blogHandler.Update)
		admin.PUT("/blogs/blog/:id/hide", blogHandler.Hide)
		admin.PUT("/blogs/blog/:id/unhide", blogHandler.Unhide)
		admin.DELETE("/blogs/blog/:id", blogHandler.Delete)

		admin.GET("/blogs/tags", tagHandler.List)
		admin.POST("/blogs/tags", tagHandler.Create)
		admin.PUT("/blogs/tags/:id", tagHandler.Update)
		admin.DELETE("/blogs/tags/:id", tagHandler.Delete)

		admin.GET("/newsletter", newsletterHandler.List)
		admin.DELETE("/newsletter/:id", newsletterHandler.Delete)
	}

	return r
}
