package albums

import (
	"github.com/anoixa/photo-album/api/common"
	"github.com/gin-gonic/gin"
)

// ListAlbumsHandler 获取当前用户的相册列表
// @Summary      List albums
// @Description  List the albums owned by the current user, without photos
// @Tags         albums
// @Produce      json
// @Success      200  {object}  common.Response  "Albums of the current user"
// @Failure      401  {object}  common.Response  "Unauthorized"
// @Failure      500  {object}  common.MessageResponse  "Internal server error"
// @Security     BearerAuth
// @Router       /albums [get]
func (h *Handler) ListAlbumsHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	albums, err := h.svc.ListForUser(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	common.RespondSuccess(c, albums)
}
