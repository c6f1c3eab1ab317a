package handlers

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lizTheDeveloper/solarpunk-utopia-project-sub001/internal/store"
	"github.com/lizTheDeveloper/solarpunk-utopia-project-sub001/pkg/auth"
	"github.com/lizTheDeveloper/solarpunk-utopia-project-sub001/pkg/browse"
	"github.com/lizTheDeveloper/solarpunk-utopia-project-sub001/pkg/database"
	"github.com/lizTheDeveloper/solarpunk-utopia-project-sub001/pkg/display"
	"github.com/lizTheDeveloper/solarpunk-utopia-project-sub001/pkg/models"
	"github.com/lizTheDeveloper/solarpunk-utopia-project-sub001/pkg/sessions"
	"gorm.io/gorm"
)

// Handler contains dependencies for the route handlers
type Handler struct {
	DB       *gorm.DB
	Offers   *store.SkillStore
	Skills   *browse.Service
	Sessions *sessions.Service
}

// NewHandler wires the stores and services onto a database handle
func NewHandler(db *gorm.DB) *Handler {
	offers := store.NewSkillStore(db)
	return &Handler{
		DB:       db,
		Offers:   offers,
		Skills:   browse.NewService(offers),
		Sessions: sessions.NewService(store.NewSessionStore(db)),
	}
}

// AuthMiddleware verifies the JWT token for member routes
func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		// Strip "Bearer " if present
		if len(token) > 7 && token[:7] == "Bearer " {
			token = token[7:]
		}

		claims, err := auth.VerifyToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("memberID", claims.MemberID)
		c.Set("username", claims.Username)
		c.Next()
	}
}

// Register creates a new member account. When INVITE_SECRET is set,
// registration requires a valid invite code.
func (h *Handler) Register(c *gin.Context) {
	var req struct {
		Username    string `json:"username"`
		DisplayName string `json:"display_name"`
		Password    string `json:"password"`
		InviteCode  string `json:"invite_code"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	if os.Getenv("INVITE_SECRET") != "" {
		if _, err := auth.VerifyInviteCode(req.InviteCode); err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "A valid invite code is required"})
			return
		}
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not hash password"})
		return
	}

	if req.DisplayName == "" {
		req.DisplayName = req.Username
	}

	member := database.Member{
		ID:           uuid.New().String(),
		Username:     req.Username,
		DisplayName:  req.DisplayName,
		PasswordHash: hash,
	}

	if err := h.DB.Create(&member).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Username is already taken"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": member.ID, "username": member.Username})
}

// IssueInvite creates a signed invite code for a prospective member.
// Any logged-in member can invite someone in.
func (h *Handler) IssueInvite(c *gin.Context) {
	var req struct {
		Handle string `json:"handle"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Handle == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "handle is required"})
		return
	}

	code := auth.GenerateInviteCode(req.Handle)

	c.JSON(http.StatusOK, gin.H{
		"handle":      req.Handle,
		"invite_code": code,
	})
}

// Login handles member login
func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var member database.Member
	if err := h.DB.Where("username = ?", req.Username).First(&member).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !auth.CheckPasswordHash(req.Password, member.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := auth.CreateToken(&member)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
}

// BrowseSkills lists skill offers with search/category/sort/pagination
// query parameters
func (h *Handler) BrowseSkills(c *gin.Context) {
	var opts models.BrowseOptions
	if err := c.ShouldBindQuery(&opts); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Skills.Browse(opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch skill offers"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListCategories returns every skill category in use
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.Skills.Categories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch categories"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// GetStatistics returns the aggregate skill statistics
func (h *Handler) GetStatistics(c *gin.Context) {
	stats, err := h.Skills.Statistics()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not compute statistics"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// SkillsDigest returns the skill list and statistics as a console-style
// text block
func (h *Handler) SkillsDigest(c *gin.Context) {
	var opts models.BrowseOptions
	if err := c.ShouldBindQuery(&opts); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Skills.Browse(opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch skill offers"})
		return
	}
	stats, err := h.Skills.Statistics()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not compute statistics"})
		return
	}

	c.String(http.StatusOK, display.SkillList(result)+"\n"+display.Statistics(stats))
}

// PublishOffer creates a skill offer owned by the authenticated member
func (h *Handler) PublishOffer(c *gin.Context) {
	var req models.PublishOfferInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.SkillName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "skill_name is required"})
		return
	}

	offer := database.SkillOffer{
		ID:          uuid.New().String(),
		MemberID:    c.GetString("memberID"),
		SkillName:   req.SkillName,
		Description: req.Description,
		Categories:  req.Categories,
		Available:   true,
		CreatedAt:   time.Now(),
	}

	if err := h.Offers.CreateOffer(&offer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create skill offer"})
		return
	}

	c.JSON(http.StatusOK, offer)
}
