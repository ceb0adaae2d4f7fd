package albums

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/anoixa/photo-album/api/common"
	"github.com/anoixa/photo-album/api/middleware"
	svcAlbums "github.com/anoixa/photo-album/internal/albums"
	"github.com/gin-gonic/gin"
)

const (
	albumIDParam = "albumId"
	photoIDParam = "photoId"

	invalidJSONMsg  = "Invalid JSON body"
	unauthorizedMsg = "Authentication required"
)

// Handler 相册处理器
type Handler struct {
	svc *svcAlbums.Service
}

// NewHandler 创建新的相册处理器
func NewHandler(svc *svcAlbums.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes 在路由组上注册相册路由，路由组需要已挂载认证中间件
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.ListAlbumsHandler)
	rg.POST("", h.CreateAlbumHandler)
	rg.GET("/:"+albumIDParam, h.GetAlbumDetailHandler)
	rg.PUT("/:"+albumIDParam, h.UpdateAlbumHandler)
	rg.DELETE("/:"+albumIDParam, h.DeleteAlbumHandler)
	rg.POST("/:"+albumIDParam+"/photos", h.AttachPhotosHandler)
	rg.DELETE("/:"+albumIDParam+"/photos/:"+photoIDParam, h.DetachPhotoHandler)
}

// requireUser 读取当前用户，缺失时写出 401
func requireUser(c *gin.Context) (uint, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		common.RespondFail(c, http.StatusUnauthorized, unauthorizedMsg)
		return 0, false
	}
	return userID, true
}

// parseID 解析路径中的数字 ID，无法解析时返回 false
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// bindBody 解析 JSON 请求体，失败时写出 422
// 空请求体按空对象处理，交给字段校验报告缺失字段
func bindBody(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	field := svcAlbums.FieldError{Msg: invalidJSONMsg, Location: "body"}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field.Msg = "Invalid value"
		field.Param = typeErr.Field
	}
	common.RespondFail(c, http.StatusUnprocessableEntity, []svcAlbums.FieldError{field})
	return false
}

// respondServiceError 把服务错误映射为响应
// 内部错误在写出 500 后通过 c.Error 继续上报
func respondServiceError(c *gin.Context, err error) {
	svcErr, ok := svcAlbums.AsError(err)
	if !ok {
		common.RespondError(c, http.StatusInternalServerError, "Internal server error")
		_ = c.Error(err)
		return
	}

	switch svcErr.Kind {
	case svcAlbums.KindValidation:
		common.RespondFail(c, http.StatusUnprocessableEntity, svcErr.Fields)
	case svcAlbums.KindForbidden:
		common.RespondFail(c, http.StatusForbidden, svcErr.Message)
	case svcAlbums.KindNotFound:
		common.RespondFail(c, http.StatusNotFound, svcErr.Message)
	case svcAlbums.KindConflict:
		common.RespondFail(c, http.StatusBadRequest, svcErr.Message)
	default:
		common.RespondError(c, http.StatusInternalServerError, svcErr.Message)
		_ = c.Error(err)
	}
}
