package rest

import (
	"net/http"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/gin-gonic/gin"
)

// ThreadHandler represent the http handler for threads
type ThreadHandler struct {
	Service domain.ThreadUsecase
}

func NewThreadHandler(svc domain.ThreadUsecase) *ThreadHandler {
	return &ThreadHandler{
		Service: svc,
	}
}

// Store will create a thread from the given request body
func (h *ThreadHandler) Store(c *gin.Context) {
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

	ctx := c.Request.Context()
	added, err := h.Service.Add(ctx, userID.(string), payload)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: getErrorMessage(err)})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"thread": added})
}

// GetDetail will get a thread with its comments and replies by given id
func (h *ThreadHandler) GetDetail(c *gin.Context) {
	threadID := c.Param("threadId")

	ctx := c.Request.Context()
	detail, err := h.Service.GetDetail(ctx, threadID)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: getErrorMessage(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"thread": detail})
}
