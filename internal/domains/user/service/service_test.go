package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"sharedhouse/infras/otel/mocks"
	s3Mocks "sharedhouse/infras/s3/mocks"
	userMocks "sharedhouse/internal/domains/user/mocks"
	"sharedhouse/internal/domains/user/model"
	"sharedhouse/internal/domains/user/service"
	"sharedhouse/shared/constant"
	"sharedhouse/shared/failure"
)

const userID = "0b8f8a1e-6d55-4a3c-9b3a-2f1e0c9d8b7a"

func activeUser() model.User {
	avatar := "avatars/alice.png"

	return model.User{
		ID:             userID,
		Username:       "alice",
		RoomNumber:     "201",
		Email:          "alice@example.com",
		ProfilePicture: &avatar,
		IsActive:       true,
	}
}

func TestUserService_FindByID(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		setupMock func(repo *userMocks.MockUser)
		wantCode  string
	}{
		{
			name: "active user",
			id:   userID,
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeUser(), nil)
			},
		},
		{
			name:      "malformed id",
			id:        "42",
			setupMock: func(*userMocks.MockUser) {},
			wantCode:  failure.CodeNotFound,
		},
		{
			name: "missing user",
			id:   userID,
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)
			},
			wantCode: failure.CodeNotFound,
		},
		{
			name: "deactivated user",
			id:   userID,
			setupMock: func(repo *userMocks.MockUser) {
				user := activeUser()
				user.IsActive = false

				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
			},
			wantCode: failure.CodeNotFound,
		},
		{
			name: "repository error",
			id:   userID,
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, errors.New("database error"))
			},
			wantCode: failure.CodeStorageError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := userMocks.NewMockUser(ctrl)
			tt.setupMock(repo)

			svc := service.New(repo, mocks.NewOtel(), s3Mocks.NewMockS3(ctrl))

			got, err := svc.FindByID(context.Background(), tt.id)

			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, failure.GetErrorCode(err))
				assert.Empty(t, got.ID)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "alice", got.Username)
		})
	}
}

func TestUserService_GetMe(t *testing.T) {
	t.Run("resolves the current profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := userMocks.NewMockUser(ctrl)
		s3 := s3Mocks.NewMockS3(ctrl)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeUser(), nil)
		s3.EXPECT().ObjectURL(gomock.Any(), "avatars/alice.png").Return("https://cdn/avatars/alice.png", nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)
		got, err := service.New(repo, mocks.NewOtel(), s3).GetMe(ctx)

		require.NoError(t, err)
		assert.Equal(t, "https://cdn/avatars/alice.png", got.ProfilePicture)
		assert.Equal(t, "201", got.RoomNumber)
	})

	t.Run("picture failure degrades to empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := userMocks.NewMockUser(ctrl)
		s3 := s3Mocks.NewMockS3(ctrl)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeUser(), nil)
		s3.EXPECT().ObjectURL(gomock.Any(), gomock.Any()).Return("", errors.New("presign failed"))

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)
		got, err := service.New(repo, mocks.NewOtel(), s3).GetMe(ctx)

		require.NoError(t, err)
		assert.Empty(t, got.ProfilePicture)
	})

	t.Run("no principal", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		_, err := service.New(userMocks.NewMockUser(ctrl), mocks.NewOtel(), s3Mocks.NewMockS3(ctrl)).GetMe(context.Background())

		assert.Equal(t, failure.CodeUnauthenticated, failure.GetErrorCode(err))
	})

	t.Run("deactivated account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := userMocks.NewMockUser(ctrl)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)
		_, err := service.New(repo, mocks.NewOtel(), s3Mocks.NewMockS3(ctrl)).GetMe(ctx)

		assert.Equal(t, failure.CodeUnauthenticated, failure.GetErrorCode(err))
	})
}
