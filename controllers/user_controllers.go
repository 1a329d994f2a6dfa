package controllers

import (
	"nexustech/dto"
	"nexustech/models"
	"nexustech/response"
	"nexustech/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	users   *services.UserService
	avatars *services.AvatarService
}

func NewUserController(users *services.UserService, avatars *services.AvatarService) UserController {
	return UserController{
		users:   users,
		avatars: avatars,
	}
}

// CreateUser godoc
// @Summary Register a user profile
// @Tags users
// @Accept json
// @Produce json
// @Param body body dto.CreateUserRequest true "profile"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /users [post]
func (u UserController) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user := models.User{
		Name:          req.Name,
		Email:         req.Email,
		Role:          req.Role,
		Designation:   req.Designation,
		Salary:        req.Salary,
		BankAccountNo: req.BankAccountNo,
		Photo:         req.Photo,
	}
	if err := u.users.CreateUser(c.Request.Context(), &user); err != nil {
		response.HandleError(c, err)
		return
	}
	response.Created(c, user)
}

func (u UserController) GetRole(c *gin.Context) {
	role, err := u.users.GetRole(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, dto.RoleResponse{Role: role})
}

func (u UserController) IsFired(c *gin.Context) {
	fired, err := u.users.IsFired(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, dto.FiredResponse{Fired: fired})
}

func (u UserController) GetProfile(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	user, err := u.users.GetProfile(c.Request.Context(), p.Email, c.Param("email"))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, user)
}

// ListEmployees godoc
// @Summary Employees with a count per designation
// @Tags users
// @Produce json
// @Success 200 {object} response.Response
// @Router /employee-list [get]
func (u UserController) ListEmployees(c *gin.Context) {
	list, err := u.users.ListEmployees(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, list)
}

func (u UserController) ListStaff(c *gin.Context) {
	users, err := u.users.ListStaff(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.SuccessWithTotal(c, users, int64(len(users)))
}

func (u UserController) Verify(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.HandleError(c, err)
		return
	}

	var req dto.VerifyRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "Invalid request body")
			return
		}
	}
	verified := true
	if req.IsVerified != nil {
		verified = *req.IsVerified
	}

	result, err := u.users.SetVerified(c.Request.Context(), id, verified)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, result)
}

func (u UserController) MakeHR(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.HandleError(c, err)
		return
	}

	result, err := u.users.MakeHR(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, result)
}

func (u UserController) Fire(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.HandleError(c, err)
		return
	}

	result, err := u.users.Fire(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, result)
}

// UpdateSalary godoc
// @Summary Raise an employee's salary
// @Tags users
// @Accept json
// @Produce json
// @Param body body dto.SalaryUpdateRequest true "new salary"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /pay/salary-update [patch]
func (u UserController) UpdateSalary(c *gin.Context) {
	var req dto.SalaryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := u.users.UpdateSalary(c.Request.Context(), req.ID, req.Salary)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, result)
}

func (u UserController) UploadAvatar(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "File is required")
		return
	}
	src, err := file.Open()
	if err != nil {
		response.BadRequest(c, "Could not read file")
		return
	}
	defer src.Close()

	url, err := u.avatars.SetAvatar(c.Request.Context(), p.Email, src)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, dto.AvatarResponse{URL: url})
}
