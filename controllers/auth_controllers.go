package controllers

import (
	"nexustech/dto"
	"nexustech/response"
	"nexustech/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) AuthController {
	return AuthController{auth: auth}
}

// Login godoc
// @Summary Issue the session cookie for an email
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "email"
// @Success 200 {object} response.Response
// @Router /login [post]
func (a AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	token, err := a.auth.Login(req.Email)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	a.auth.SetTokenCookie(c, token)
	response.Success(c, gin.H{"success": true})
}

func (a AuthController) LoginWithGoogle(c *gin.Context) {
	var req dto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	token, err := a.auth.LoginWithGoogle(c.Request.Context(), req.IDToken)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	a.auth.SetTokenCookie(c, token)
	response.Success(c, gin.H{"success": true})
}

func (a AuthController) Logout(c *gin.Context) {
	a.auth.ClearTokenCookie(c)
	response.Success(c, gin.H{"success": true})
}
