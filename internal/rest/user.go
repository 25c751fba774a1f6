package rest

import (
	"net/http"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/request"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/response"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	Service domain.UserUsecase
}

func NewUserHandler(svc domain.UserUsecase) *UserHandler {
	return &UserHandler{
		Service: svc,
	}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req request.RegisterUser
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	ctx := c.Request.Context()
	u, err := h.Service.Register(ctx, req.Username, req.Password, req.Fullname)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: getErrorMessage(err)})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": response.NewRegisteredUserFromDomain(&u)})
}

func (h *UserHandler) Login(c *gin.Context) {
	var req request.LoginUser
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	ctx := c.Request.Context()
	token, err := h.Service.Login(ctx, req.Username, req.Password)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: getErrorMessage(err)})
		return
	}

	c.JSON(http.StatusOK, response.Token{AccessToken: token})
}
