package controllers

import (
	"net/mail"
	"strings"

	"prephub/backend/repository"
	"prephub/backend/services"
	"prephub/backend/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type UserController struct {
	Users *repository.UserRepository
	Stats *services.StatsService
}

func NewUserController(users *repository.UserRepository, stats *services.StatsService) *UserController {
	return &UserController{Users: users, Stats: stats}
}

type UpdateUserRequest struct {
	Email       string `json:"email" example:"user@example.com" format:"email"`
	OldPassword string `json:"old_password" example:"oldPassword123"`
	NewPassword string `json:"new_password" example:"newPassword123" minLength:"6"`
}

// GetProfile godoc
// @Summary Get user profile
// @Description Returns the authenticated user's profile with current streaks
// @Tags users
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/profile [get]
func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	user, err := uc.Users.FindByID(c.UserContext(), userID)
	if err != nil {
		return utils.HandleError(c, err)
	}
	snapshot, err := uc.Stats.Snapshot(c.UserContext(), userID)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"id":             user.ID,
		"username":       user.Username,
		"email":          user.Email,
		"role":           user.Role,
		"created_at":     user.CreatedAt,
		"current_streak": snapshot.CurrentStreak,
		"longest_streak": snapshot.LongestStreak,
		"last_active":    snapshot.LastActiveDate,
	})
}

// UpdateProfile godoc
// @Summary Update user profile
// @Description Changes email and/or password; a password change needs the old password
// @Tags users
// @Accept json
// @Produce json
// @Param request body UpdateUserRequest true "Profile changes"
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/profile [put]
func (uc *UserController) UpdateProfile(c *fiber.Ctx) error {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	user, err := uc.Users.FindByID(c.UserContext(), userID)
	if err != nil {
		return utils.HandleError(c, err)
	}

	fields := map[string]string{}
	if email := strings.TrimSpace(req.Email); email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			fields["email"] = "must be a valid email address"
		} else {
			user.Email = email
		}
	}
	if req.NewPassword != "" {
		if len(req.NewPassword) < 6 {
			fields["new_password"] = "must be at least 6 characters"
		} else if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
			fields["old_password"] = "does not match"
		} else {
			hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
			if err != nil {
				return utils.InternalServerError(c, "Could not hash password")
			}
			user.PasswordHash = string(hashed)
		}
	}
	if len(fields) > 0 {
		return utils.ValidationError(c, fields)
	}

	if err := uc.Users.Update(c.UserContext(), user); err != nil {
		return utils.HandleError(c, err)
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
	})
}
