package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/giftex-inc/giftex/internal/application/user/usecases"
	"github.com/giftex-inc/giftex/internal/shared/logger"
	"github.com/giftex-inc/giftex/internal/shared/utils"
)

// UserHandler manages portal accounts. There is no public signup; staff
// create every account.
type UserHandler struct {
	createUC    usecases.CreateUserExecutor
	listUC      usecases.ListUsersExecutor
	setActiveUC usecases.SetUserActiveExecutor
	logger      logger.Interface
}

func NewUserHandler(
	createUC usecases.CreateUserExecutor,
	listUC usecases.ListUsersExecutor,
	setActiveUC usecases.SetUserActiveExecutor,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		createUC:    createUC,
		listUC:      listUC,
		setActiveUC: setActiveUC,
		logger:      logger,
	}
}

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required"`
	Company  string `json:"company"`
	Phone    string `json:"phone"`
}

type SetUserActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateUserCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Company:  req.Company,
		Phone:    req.Phone,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"user_id":    result.UserID,
		"created_at": result.CreatedAt,
	}, "user created")
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListUsersQuery{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Users, result.Total, result.Page, result.PageSize)
}

func (h *UserHandler) SetUserActive(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SetUserActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.setActiveUC.Execute(c.Request.Context(), usecases.SetUserActiveCommand{
		UserID: userID,
		Active: *req.Active,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "user updated", nil)
}
