package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/lizTheDeveloper/solarpunk-utopia-project-sub001/pkg/auth"
	"github.com/lizTheDeveloper/solarpunk-utopia-project-sub001/pkg/database"
	"github.com/lizTheDeveloper/solarpunk-utopia-project-sub001/pkg/handlers"
)

var r *gin.Engine

func init() {
	// Load .env if it exists (for local testing with vercel dev)
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")

	// Initialize DB
	db := database.InitDB()
	_ = auth.EnsureFounderExists(db)
	h := handlers.NewHandler(db)

	// Initialize Gin
	gin.SetMode(gin.ReleaseMode)
	r = gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Routes
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Community Time Bank API (Vercel)",
			"version": "1.0.0",
		})
	})

	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)

	r.GET("/api/skills", h.BrowseSkills)
	r.GET("/api/skills/categories", h.ListCategories)
	r.GET("/api/skills/stats", h.GetStatistics)
	r.GET("/api/skills/digest", h.SkillsDigest)

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
}

// Handler is the entry point for Vercel Go Runtime
func Handler(w http.ResponseWriter, r_req *http.Request) {
	r.ServeHTTP(w, r_req)
}
