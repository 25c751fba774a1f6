package rest

import (
	"net/http"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/gin-gonic/gin"
)

type ReplyHandler struct {
	Service domain.ReplyUsecase
}

func NewReplyHandler(svc domain.ReplyUsecase) *ReplyHandler {
	return &ReplyHandler{
		Service: svc,
	}
}

// CreateReply will add a reply to the comment in the path
func (h *ReplyHandler) CreateReply(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: "User not authenticated"})
		return
	}
	threadID := c.Param("threadId")
	commentID := c.Param("commentId")

	ctx := c.Request.Context()
	added, err := h.Service.Add(ctx, userID.(string), threadID, commentID, payload)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: getErrorMessage(err)})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"reply": added})
}

// DeleteReply will soft-delete the reply in the path, owner only
func (h *ReplyHandler) DeleteReply(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: "User not authenticated"})
		return
	}
	threadID := c.Param("threadId")
	commentID := c.Param("commentId")
	replyID := c.Param("replyId")

	ctx := c.Request.Context()
	if err := h.Service.Delete(ctx, userID.(string), threadID, commentID, replyID); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: getErrorMessage(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reply deleted successfully"})
}
