package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"academyhub.app/server/internal/service"
)

type RecommendationHandler struct {
	recommendationService service.RecommendationService
}

func NewRecommendationHandler(recommendationService service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService}
}

func (h *RecommendationHandler) Recommend(c *gin.Context) {
	childID, err := queryInt64Ptr(c, "child_id")
	if err != nil {
		badRequest(c, err)
		return
	}
	limit, err := queryInt32(c, "limit")
	if err != nil {
		badRequest(c, err)
		return
	}

	var tags []string
	for _, t := range strings.Split(c.Query("tags"), ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}

	recs, err := h.recommendationService.Recommend(c.Request.Context(), currentUser(c).ID, service.RecommendationQuery{
		ChildID: childID,
		Tags:    tags,
		Region:  queryStringPtr(c, "region"),
		Limit:   limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	if recs == nil {
		recs = []service.Recommendation{}
	}
	c.JSON(http.StatusOK, recs)
}
