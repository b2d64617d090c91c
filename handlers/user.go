// File: handlers/user.go
package handlers

import (
	"net/http"

	usersvc "medibook/services/user"
	"medibook/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler bundles patient account endpoints.
type UserHandler struct {
	Service usersvc.UserService
}

func NewUserHandler(svc usersvc.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	var req usersvc.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	resp, err := h.Service.Register(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *UserHandler) AuthenticateUserHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	resp, err := h.Service.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
