package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bloglist/internal/stats"
)

type statsResponse struct {
	TotalLikes         int                `json:"total_likes"`
	FavouritePost      *postView          `json:"favourite_post"`
	MostProlificAuthor *stats.AuthorCount `json:"most_prolific_author"`
}

// @Summary      聚合统计
// @Description  对全部文章计算总点赞数、最受欢迎文章与高产作者
// @Tags         stats
// @Produce      json
// @Success      200 {object} statsResponse
// @Router       /api/stats [get]
func (h *Handler) stats(c *gin.Context) {
	posts, err := h.postSvc.List(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	resp := statsResponse{
		TotalLikes:         stats.TotalLikes(posts),
		MostProlificAuthor: stats.MostProlificAuthor(posts),
	}
	if fav := stats.FavouritePost(posts); fav != nil {
		v := toPostView(*fav)
		resp.FavouritePost = &v
	}
	c.JSON(http.StatusOK, resp)
}
