package albums

import (
	"github.com/anoixa/photo-album/api/common"
	svcAlbums "github.com/anoixa/photo-album/internal/albums"
	"github.com/gin-gonic/gin"
)

// CreateAlbumHandler 创建相册，所有者为当前用户
// @Summary      Create album
// @Description  Create an album owned by the current user. Any user_id in the body is ignored.
// @Tags         albums
// @Accept       json
// @Produce      json
// @Param        request  body      svcAlbums.CreateAlbumInput  true  "Album fields"
// @Success      200      {object}  common.Response  "Created album"
// @Failure      401      {object}  common.Response  "Unauthorized"
// @Failure      422      {object}  common.Response  "Invalid fields"
// @Failure      500      {object}  common.MessageResponse  "Internal server error"
// @Security     BearerAuth
// @Router       /albums [post]
func (h *Handler) CreateAlbumHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req svcAlbums.CreateAlbumInput
	if !bindBody(c, &req) {
		return
	}

	album, err := h.svc.Create(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	common.RespondSuccess(c, album)
}
