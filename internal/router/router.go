package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/employee-management-api/internal/auth"
	"github.com/yukikurage/employee-management-api/internal/config"
	"github.com/yukikurage/employee-management-api/internal/constants"
	"github.com/yukikurage/employee-management-api/internal/handlers"
	"github.com/yukikurage/employee-management-api/internal/middleware"
	"github.com/yukikurage/employee-management-api/internal/repository"
	"github.com/yukikurage/employee-management-api/internal/services"
	"github.com/yukikurage/employee-management-api/internal/validation"
	"gorm.io/gorm"
)

// New wires repositories, services and handlers onto a gin engine.
func New(cfg *config.Config, db *gorm.DB, tokens *auth.TokenManager) *gin.Engine {
	validation.Register()

	r := gin.New()
	r.Use(middleware.RequestID(), gin.Logger(), gin.Recovery())
	r.Use(cors.New(corsConfig(cfg)))

	// Repositories
	employeeRepo := repository.NewEmployeeRepository(db)
	laptopRepo := repository.NewLaptopRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	toolRepo := repository.NewToolRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	authService := services.NewAuthService(userRepo, tokens)
	employeeService := services.NewEmployeeService(employeeRepo)
	laptopService := services.NewLaptopService(employeeRepo, laptopRepo)
	teamService := services.NewTeamService(employeeRepo, teamRepo)
	toolService := services.NewToolService(employeeRepo, toolRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	laptopHandler := handlers.NewLaptopHandler(laptopService)
	teamHandler := handlers.NewTeamHandler(teamService)
	toolHandler := handlers.NewToolHandler(toolService)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Employee Management API is running",
		})
	})

	v1 := r.Group("/v1")
	{
		// User routes (public)
		users := v1.Group("/users")
		{
			users.POST("/register", authHandler.Register)
			users.POST("/login", authHandler.Login)
		}

		// Employee routes (protected)
		employees := v1.Group("/employees")
		employees.Use(middleware.RequireAuth(authService))
		{
			employees.POST("", employeeHandler.CreateEmployee)
			employees.GET("", employeeHandler.ListEmployees)
			employees.PUT("", employeeHandler.UpdateEmployee)
			employees.GET("/:id", employeeHandler.GetEmployee)
			employees.DELETE("/:id", employeeHandler.DeleteEmployee)

			employees.POST("/:id/laptops", laptopHandler.AddLaptop)
			employees.GET("/:id/laptops", laptopHandler.GetLaptop)
			employees.PUT("/:id/laptops", laptopHandler.UpdateLaptop)
			employees.DELETE("/:id/laptops", laptopHandler.DeleteLaptop)

			employees.POST("/:id/teams", teamHandler.AddTeam)
			employees.GET("/:id/teams", teamHandler.GetTeam)
			employees.PUT("/:id/teams", teamHandler.UpdateTeam)
			employees.DELETE("/:id/teams", teamHandler.DeleteTeam)

			employees.POST("/:id/tools", toolHandler.AddTool)
			employees.GET("/:id/tools", toolHandler.GetTools)
			employees.DELETE("/:id/tools", toolHandler.DeleteTools)
		}
	}

	return r
}

func corsConfig(cfg *config.Config) cors.Config {
	cc := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Length", "Content-Type", "Accept", constants.HeaderAuthorization, constants.HeaderRequestID},
		ExposeHeaders: []string{"Content-Length", constants.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		cc.AllowAllOrigins = true
	} else {
		cc.AllowOrigins = cfg.CORSAllowedOrigins
		cc.AllowCredentials = true
	}
	return cc
}
