package api

import (
	"math/rand"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/qiaoohe/Sleep-Planet/internal"
)

var loginValidate = validator.New()

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1,max=64"`
	Email    string `json:"email" validate:"omitempty,email"`
}

var avatarColors = []string{
	"bg-indigo-500", "bg-blue-500", "bg-purple-500", "bg-pink-500",
	"bg-red-500", "bg-orange-500", "bg-amber-500", "bg-green-500",
}

// PostLogin signs a user in by name, creating them on first sight, and
// returns a bearer token. Demo-grade identity, no password.
func PostLogin(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body LoginRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}
		if err := loginValidate.Struct(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		ctx := c.Request.Context()
		user, err := app.Users().FindUserByName(ctx, body.Username)
		if err != nil {
			user = &internal.User{
				ID:          uuid.NewString(),
				Name:        body.Username,
				Email:       body.Email,
				AvatarColor: avatarColors[rand.Intn(len(avatarColors))],
				CreatedAt:   time.Now(),
			}
			if err := app.Users().SaveUser(ctx, user); err != nil {
				HandleError(c, app.Logger(), err, 500, "Failed to create user")
				return
			}
			app.Logger().Infof("created user %s (%s)", user.Name, user.ID)
		}

		token, err := app.Auth().IssueToken(user)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to issue token")
			return
		}
		HandleSuccess(c, app.Logger(), user, map[string]any{"token": token})
	}
}
