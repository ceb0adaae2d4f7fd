package auth

import (
	"errors"
	"net/http"

	"github.com/anoixa/photo-album/api/common"
	"github.com/anoixa/photo-album/database/models"
	svcAuth "github.com/anoixa/photo-album/internal/auth"
	"github.com/anoixa/photo-album/utils"
	"github.com/gin-gonic/gin"
)

// LoginHandler 登录处理器
type LoginHandler struct {
	loginService *svcAuth.LoginService
}

// NewLoginHandler 使用 LoginService 创建登录处理器
func NewLoginHandler(loginService *svcAuth.LoginService) *LoginHandler {
	return &LoginHandler{
		loginService: loginService,
	}
}

type userAuthRequestBody struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   int64        `json:"expires_at"`
	User        *models.User `json:"user"`
}

// LoginHandlerFunc user login
// @Summary      Login
// @Description  Exchange username and password for a bearer access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      userAuthRequestBody  true  "Credentials"
// @Success      200      {object}  common.Response  "Access token"
// @Failure      400      {object}  common.Response  "Invalid request body"
// @Failure      401      {object}  common.Response  "Invalid credentials"
// @Failure      500      {object}  common.MessageResponse  "Internal server error"
// @Router       /api/auth/login [post]
func (h *LoginHandler) LoginHandlerFunc(c *gin.Context) {
	if h.loginService == nil {
		common.RespondError(c, http.StatusInternalServerError, "Login service not initialized")
		return
	}

	var req userAuthRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondFail(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	result, err := h.loginService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, svcAuth.ErrInvalidCredentials) {
			utils.LogIfDevf("[Auth] Failed login for user %s", utils.SanitizeLogUsername(req.Username))
			common.RespondFail(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		common.RespondError(c, http.StatusInternalServerError, "Internal server error")
		_ = c.Error(err)
		return
	}

	common.RespondSuccess(c, loginResponse{
		AccessToken: result.AccessToken,
		ExpiresAt:   result.AccessTokenExpiry.Unix(),
		User:        result.User,
	})
}
