package handlers

import (
	"net/http"

	"mehfil/middleware"
	"mehfil/services/user"
	"mehfil/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves the account endpoints.
type AuthHandler struct {
	Service user.UserService
}

func NewAuthHandler(svc user.UserService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

var errInvalidBody = utils.NewValidationError("Invalid request body")

func (h *AuthHandler) Signup(c *gin.Context) {
	var req user.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, errInvalidBody)
		return
	}
	msg, err := h.Service.Signup(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": msg})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, errInvalidBody)
		return
	}
	res, err := h.Service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	getLogger(c).Info("User logged in", zap.String("userID", res.User.ID))
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Login successful",
		"token":     res.Token,
		"expiresAt": res.ExpiresAt,
		"user":      res.User,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	err := h.Service.Logout(c.Request.Context(), currentUserID(c), c.GetString(middleware.ContextToken))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out"})
}

type emailRequest struct {
	Email string `json:"email"`
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req emailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, errInvalidBody)
		return
	}
	if err := h.Service.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "If an account with this email exists, you will receive a password reset link.",
	})
}

type resetRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req resetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, errInvalidBody)
		return
	}
	if err := h.Service.ResetPassword(c.Request.Context(), req.Token, req.Password); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Password reset successfully. You can now sign in with your new password.",
	})
}

// VerifyEmail accepts the token as a query parameter (GET) or JSON body (POST).
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if c.Request.Method == http.MethodPost {
		var body struct {
			Token string `json:"token"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.RespondError(c, errInvalidBody)
			return
		}
		token = body.Token
	}
	if err := h.Service.VerifyEmail(c.Request.Context(), token); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Email verified successfully! You can now sign in."})
}
