package dto_test

import (
	"encoding/json"
	"sharedhouse/internal/domains/user/model"
	"sharedhouse/internal/domains/user/model/dto"
	gModel "sharedhouse/shared/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserResponse_FromModel(t *testing.T) {
	created := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	avatar := "avatars/u1.png"

	var res dto.UserResponse
	res.FromModel(model.User{
		ID:             "u1",
		Username:       "alice",
		RoomNumber:     "201",
		Email:          "alice@example.com",
		ProfilePicture: &avatar,
		IsActive:       true,
		Metadata:       gModel.Metadata{CreatedAt: created, UpdatedAt: created},
	}, "https://cdn.example.com/avatars/u1.png")

	raw, err := json.Marshal(res)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": "u1",
		"username": "alice",
		"roomNumber": "201",
		"email": "alice@example.com",
		"profilePicture": "https://cdn.example.com/avatars/u1.png",
		"isAdmin": false,
		"createdAt": "2024-03-01T09:30:00Z",
		"updatedAt": "2024-03-01T09:30:00Z"
	}`, string(raw))
}

func TestUser_Owner(t *testing.T) {
	t.Run("without picture", func(t *testing.T) {
		owner := model.User{ID: "u1", Username: "alice", RoomNumber: "201"}.Owner()

		assert.Equal(t, model.Owner{ID: "u1", Username: "alice", RoomNumber: "201"}, owner)
	})

	t.Run("with picture", func(t *testing.T) {
		avatar := "avatars/u1.png"
		owner := model.User{ID: "u1", ProfilePicture: &avatar}.Owner()

		assert.Equal(t, "avatars/u1.png", owner.ProfilePicture)
	})
}
