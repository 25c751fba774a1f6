package rest

import (
	"net/http"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *CommentHandler {
	return &CommentHandler{
		Service: svc,
	}
}

// CreateComment will add a comment to the thread in the path
func (h *CommentHandler) CreateComment(c *gin.Context) {
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

	ctx := c.Request.Context()
	added, err := h.Service.Add(ctx, userID.(string), threadID, payload)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: getErrorMessage(err)})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": added})
}

// DeleteComment will soft-delete the comment in the path, owner only
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: "User not authenticated"})
		return
	}
	threadID := c.Param("threadId")
	commentID := c.Param("commentId")

	ctx := c.Request.Context()
	if err := h.Service.Delete(ctx, userID.(string), threadID, commentID); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: getErrorMessage(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}

// ToggleLike flips the caller's like on the comment in the path
func (h *CommentHandler) ToggleLike(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: "User not authenticated"})
		return
	}
	threadID := c.Param("threadId")
	commentID := c.Param("commentId")

	ctx := c.Request.Context()
	if err := h.Service.ToggleLike(ctx, userID.(string), threadID, commentID); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: getErrorMessage(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment like toggled successfully"})
}
