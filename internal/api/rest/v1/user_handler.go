package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/dannykhan02/Ticketing-system/internal/domain/users"
	"github.com/gin-gonic/gin"
)

// UserHandler defines the interface for admin user management requests
type UserHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
}

type userHandler struct {
	authService users.AuthService
	userRepo    users.UserRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(authService users.AuthService, userRepo users.UserRepository) UserHandler {
	return &userHandler{authService: authService, userRepo: userRepo}
}

// Create handles the POST request to create an account with an explicit role
func (handler *userHandler) Create(ctx *gin.Context) {
	var request RegisterRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid user data: %v", err.Error())})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return
	}

	role := request.Role
	if role == "" {
		role = users.RoleAttendee
	}

	registration := users.Registration{
		Email:       request.Email,
		PhoneNumber: request.PhoneNumber,
		Password:    request.Password,
	}

	user, err := handler.authService.RegisterWithRole(ctx, registration, role)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error creating user: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusCreated, newUserResponse(user))
}

// List handles the GET request to list accounts
func (handler *userHandler) List(ctx *gin.Context) {
	query := users.NewUserQuery()
	query.Role = ctx.Query("role")
	if limit := ctx.Query("limit"); limit != "" {
		parsed, err := strconv.Atoi(limit)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "limit must be an integer"})
			return
		}
		query.Limit = parsed
	}
	if offset := ctx.Query("offset"); offset != "" {
		parsed, err := strconv.Atoi(offset)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "offset must be an integer"})
			return
		}
		query.Offset = parsed
	}

	userList, err := handler.userRepo.List(ctx, query)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error listing users: %v", err.Error())})
		return
	}

	response := make([]UserResponse, 0, len(userList))
	for _, user := range userList {
		response = append(response, newUserResponse(user))
	}
	ctx.JSON(http.StatusOK, response)
}
