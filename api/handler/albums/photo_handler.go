package albums

import (
	"net/http"

	"github.com/anoixa/photo-album/api/common"
	svcAlbums "github.com/anoixa/photo-album/internal/albums"
	"github.com/gin-gonic/gin"
)

// AttachPhotosHandler 将照片加入相册
// @Summary      Attach photos
// @Description  Attach photos of the current user to one of their albums. photo_id accepts a number or an array.
// @Tags         albums
// @Accept       json
// @Produce      json
// @Param        albumId  path      int                           true  "Album ID"
// @Param        request  body      svcAlbums.AttachPhotosInput  true  "Photo IDs"
// @Success      200      {object}  common.Response  "Photos attached"
// @Failure      400      {object}  common.Response  "Photo already exists"
// @Failure      401      {object}  common.Response  "Unauthorized"
// @Failure      403      {object}  common.Response  "Album or photo does not belong to user"
// @Failure      422      {object}  common.Response  "Invalid fields"
// @Failure      500      {object}  common.MessageResponse  "Internal server error"
// @Security     BearerAuth
// @Router       /albums/{albumId}/photos [post]
func (h *Handler) AttachPhotosHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	albumID, ok := parseID(c, albumIDParam)
	if !ok {
		common.RespondFail(c, http.StatusNotFound, svcAlbums.MsgAlbumNotFound)
		return
	}

	var req svcAlbums.AttachPhotosInput
	if !bindBody(c, &req) {
		return
	}

	if err := h.svc.AttachPhotos(c.Request.Context(), userID, albumID, req); err != nil {
		respondServiceError(c, err)
		return
	}

	common.RespondSuccess(c, nil)
}

// DetachPhotoHandler 从相册移除照片
// @Summary      Detach photo
// @Description  Remove one photo from an album owned by the current user
// @Tags         albums
// @Produce      json
// @Param        albumId  path      int  true  "Album ID"
// @Param        photoId  path      int  true  "Photo ID"
// @Success      200      {object}  common.Response  "Photo removed"
// @Failure      401      {object}  common.Response  "Unauthorized"
// @Failure      403      {object}  common.Response  "Album does not belong to user"
// @Failure      404      {object}  common.Response  "Photo does not exist in album"
// @Failure      500      {object}  common.MessageResponse  "Internal server error"
// @Security     BearerAuth
// @Router       /albums/{albumId}/photos/{photoId} [delete]
func (h *Handler) DetachPhotoHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	albumID, ok := parseID(c, albumIDParam)
	if !ok {
		common.RespondFail(c, http.StatusNotFound, svcAlbums.MsgAlbumNotFound)
		return
	}
	photoID, ok := parseID(c, photoIDParam)
	if !ok {
		common.RespondFail(c, http.StatusNotFound, svcAlbums.MsgPhotoNotInAlbum)
		return
	}

	if err := h.svc.DetachPhoto(c.Request.Context(), userID, albumID, photoID); err != nil {
		respondServiceError(c, err)
		return
	}

	common.RespondSuccess(c, nil)
}
