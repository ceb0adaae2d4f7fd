package albums

import (
	"net/http"

	"github.com/anoixa/photo-album/api/common"
	svcAlbums "github.com/anoixa/photo-album/internal/albums"
	"github.com/gin-gonic/gin"
)

// UpdateAlbumHandler 部分更新相册
// @Summary      Update album
// @Description  Update the provided fields of an album owned by the current user
// @Tags         albums
// @Accept       json
// @Produce      json
// @Param        albumId  path      int                         true  "Album ID"
// @Param        request  body      svcAlbums.UpdateAlbumInput  true  "Fields to update"
// @Success      200      {object}  common.Response  "Updated album"
// @Failure      401      {object}  common.Response  "Unauthorized"
// @Failure      403      {object}  common.Response  "Album does not belong to user"
// @Failure      422      {object}  common.Response  "Invalid fields"
// @Failure      500      {object}  common.MessageResponse  "Internal server error"
// @Security     BearerAuth
// @Router       /albums/{albumId} [put]
func (h *Handler) UpdateAlbumHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	albumID, ok := parseID(c, albumIDParam)
	if !ok {
		common.RespondFail(c, http.StatusNotFound, svcAlbums.MsgAlbumNotFound)
		return
	}

	// 字段类型错误由服务在归属检查之后报告
	var req svcAlbums.UpdateAlbumInput
	if !bindBody(c, &req) {
		return
	}

	album, err := h.svc.Update(c.Request.Context(), userID, albumID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	common.RespondSuccess(c, album)
}
