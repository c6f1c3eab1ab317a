package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/lizTheDeveloper/solarpunk-utopia-project-sub001/pkg/auth"
	"github.com/lizTheDeveloper/solarpunk-utopia-project-sub001/pkg/database"
	"github.com/lizTheDeveloper/solarpunk-utopia-project-sub001/pkg/handlers"
)

func main() {
	// Load .env if it exists
	// Try root and parent directories for flexibility
	envPaths := []string{".env", "../.env", "../../.env"}
	for _, p := range envPaths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			break
		}
	}

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	db := database.InitDB()
	_ = auth.EnsureFounderExists(db)
	h := handlers.NewHandler(db)

	r := gin.Default()

	// Routes
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Community Time Bank API",
			"version": "1.0.0",
		})
	})

	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)

	// Public browsing endpoints
	r.GET("/api/skills", h.BrowseSkills)
	r.GET("/api/skills/categories", h.ListCategories)
	r.GET("/api/skills/stats", h.GetStatistics)
	r.GET("/api/skills/digest", h.SkillsDigest)

	// Member endpoints
	api := r.Group("/api")
	api.Use(h.AuthMiddleware())
	{
		api.POST("/invites", h.IssueInvite)
		api.POST("/skills", h.PublishOffer)
		api.POST("/sessions", h.ScheduleSession)
		api.POST("/sessions/validate", h.ValidateSession)
		api.POST("/sessions/:id/confirm", h.ConfirmSession)
		api.POST("/sessions/:id/reschedule", h.RescheduleSession)
		api.POST("/sessions/:id/complete", h.CompleteSession)
		api.POST("/sessions/:id/gratitude", h.ExpressGratitude)
		api.GET("/sessions/upcoming", h.GetUpcoming)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("could not run server: %v", err)
	}
}
