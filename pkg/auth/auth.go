package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/lizTheDeveloper/solarpunk-utopia-project-sub001/pkg/database"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var jwtSecret = []byte(os.Getenv("JWT_SECRET"))
var jwtAlgorithm = jwt.SigningMethodHS256

// Claims represents the JWT claims for a logged-in member
type Claims struct {
	MemberID string `json:"member_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

// CheckPasswordHash compares a password with its hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// CreateToken creates a new JWT token for a member
func CreateToken(member *database.Member) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)
	claims := &Claims{
		MemberID: member.ID,
		Username: member.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwtAlgorithm, claims)
	return token.SignedString(jwtSecret)
}

// VerifyToken verifies a JWT token
func VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// EnsureFounderExists creates a first member from environment variables
// when the members table is empty, so a fresh deployment can log in.
func EnsureFounderExists(db *gorm.DB) error {
	var count int64
	db.Model(&database.Member{}).Count(&count)

	if count == 0 {
		username := os.Getenv("FOUNDER_USERNAME")
		if username == "" {
			username = "founder"
		}
		password := os.Getenv("FOUNDER_PASSWORD")
		if password == "" {
			password = "solarpunk"
		}

		hash, err := HashPassword(password)
		if err != nil {
			return err
		}

		member := database.Member{
			ID:           uuid.New().String(),
			Username:     username,
			DisplayName:  username,
			PasswordHash: hash,
		}

		err = db.Create(&member).Error
		if err == nil {
			println("Founding member created: " + username)
		}
		return err
	}
	return nil
}

// GenerateInviteCode creates a signed community invite code using
// HMAC-SHA256. The handle identifies who the invite was issued to.
func GenerateInviteCode(handle string) string {
	secret := os.Getenv("INVITE_SECRET")
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(handle))
	signature := hex.EncodeToString(h.Sum(nil))
	return handle + "." + signature
}

// VerifyInviteCode validates an HMAC-signed invite code and returns the
// handle it was issued to
func VerifyInviteCode(code string) (string, error) {
	parts := strings.Split(code, ".")
	if len(parts) != 2 {
		return "", errors.New("invalid invite code format")
	}

	handle := parts[0]
	providedSignature := parts[1]

	secret := os.Getenv("INVITE_SECRET")
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(handle))
	expectedSignature := hex.EncodeToString(h.Sum(nil))

	// Use constant-time comparison to prevent timing attacks
	if !hmac.Equal([]byte(providedSignature), []byte(expectedSignature)) {
		return "", errors.New("invalid invite signature")
	}

	return handle, nil
}
