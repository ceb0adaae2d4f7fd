package albums

import (
	"net/http"

	"github.com/anoixa/photo-album/api/common"
	"github.com/anoixa/photo-album/database/models"
	svcAlbums "github.com/anoixa/photo-album/internal/albums"
	"github.com/gin-gonic/gin"
)

// AlbumDetail 相册详情，photos 始终输出为数组
type AlbumDetail struct {
	*models.Album
	Photos []*models.Photo `json:"photos"`
}

// GetAlbumDetailHandler 获取相册详情
// @Summary      Get album
// @Description  Get one album owned by the current user, with its photos
// @Tags         albums
// @Produce      json
// @Param        albumId  path      int  true  "Album ID"
// @Success      200      {object}  common.Response  "Album with photos"
// @Failure      401      {object}  common.Response  "Unauthorized"
// @Failure      404      {object}  common.MessageResponse  "Album not found"
// @Failure      500      {object}  common.MessageResponse  "Internal server error"
// @Security     BearerAuth
// @Router       /albums/{albumId} [get]
func (h *Handler) GetAlbumDetailHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	albumID, ok := parseID(c, albumIDParam)
	if !ok {
		common.RespondFailMessage(c, http.StatusNotFound, svcAlbums.MsgAlbumNotFound)
		return
	}

	album, err := h.svc.GetOne(c.Request.Context(), userID, albumID)
	if err != nil {
		if svcAlbums.IsKind(err, svcAlbums.KindNotFound) {
			common.RespondFailMessage(c, http.StatusNotFound, svcAlbums.MsgAlbumNotFound)
			return
		}
		respondServiceError(c, err)
		return
	}

	photos := album.Photos
	if photos == nil {
		photos = make([]*models.Photo, 0)
	}
	common.RespondSuccess(c, AlbumDetail{Album: album, Photos: photos})
}
