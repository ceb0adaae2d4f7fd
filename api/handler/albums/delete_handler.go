package albums

import (
	"net/http"

	"github.com/anoixa/photo-album/api/common"
	svcAlbums "github.com/anoixa/photo-album/internal/albums"
	"github.com/gin-gonic/gin"
)

// DeleteAlbumHandler 删除相册及其照片关联，照片本身保留
// @Summary      Delete album
// @Description  Delete an album owned by the current user. Photos are kept.
// @Tags         albums
// @Produce      json
// @Param        albumId  path      int  true  "Album ID"
// @Success      200      {object}  common.Response  "Album deleted"
// @Failure      401      {object}  common.Response  "Unauthorized"
// @Failure      403      {object}  common.Response  "Album does not belong to user"
// @Failure      500      {object}  common.MessageResponse  "Internal server error"
// @Security     BearerAuth
// @Router       /albums/{albumId} [delete]
func (h *Handler) DeleteAlbumHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	albumID, ok := parseID(c, albumIDParam)
	if !ok {
		common.RespondFail(c, http.StatusNotFound, svcAlbums.MsgAlbumNotFound)
		return
	}

	if err := h.svc.Destroy(c.Request.Context(), userID, albumID); err != nil {
		respondServiceError(c, err)
		return
	}

	common.RespondSuccess(c, nil)
}
