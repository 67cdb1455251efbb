package controllers

import (
	"errors"
	"net/mail"
	"strings"

	"prephub/backend/config"
	"prephub/backend/models"
	"prephub/backend/repository"
	"prephub/backend/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type AuthController struct {
	Users *repository.UserRepository
	Cfg   *config.Config
}

func NewAuthController(users *repository.UserRepository, cfg *config.Config) *AuthController {
	return &AuthController{Users: users, Cfg: cfg}
}

type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func authResponse(token string, user *models.User) fiber.Map {
	return fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	}
}

// [+] Register godoc
// @Summary Register a new user
// @Description Creates a new user account and returns a token
// @Tags auth
// @Accept json
// @Produce json
// @Param user body RegisterInput true "User registration data"
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /auth/register [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(input.Email)

	fields := map[string]string{}
	if input.Username == "" {
		fields["username"] = "is required"
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		fields["email"] = "must be a valid email address"
	}
	if len(input.Password) < 6 {
		fields["password"] = "must be at least 6 characters"
	}
	if len(fields) > 0 {
		return utils.ValidationError(c, fields)
	}

	if _, err := ac.Users.FindByUsername(c.UserContext(), input.Username); err == nil {
		return utils.HandleError(c, utils.ConflictErr("username %q is taken", input.Username))
	} else if !errors.Is(err, utils.ErrNotFound) {
		return utils.HandleError(c, err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return utils.InternalServerError(c, "Could not hash password")
	}

	user := models.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
	}
	if err := ac.Users.Create(c.UserContext(), &user); err != nil {
		return utils.HandleError(c, err)
	}

	token, err := utils.GenerateJWTToken(user.ID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}
	return utils.Success(c, fiber.StatusCreated, authResponse(token, &user))
}

// [+] Login godoc
// @Summary User login
// @Description Authenticate user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginInput true "Login credentials"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	user, err := ac.Users.FindByUsername(c.UserContext(), strings.TrimSpace(input.Username))
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.Unauthorized(c, "Invalid credentials")
		}
		return utils.HandleError(c, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return utils.Unauthorized(c, "Invalid credentials")
	}

	token, err := utils.GenerateJWTToken(user.ID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}
	return utils.Success(c, fiber.StatusOK, authResponse(token, user))
}
