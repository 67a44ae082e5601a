package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSessionService_StartSession_MissingInitData(t *testing.T) {
	fx := createTestSessionService(t, false)

	out, err := fx.service.StartSession(context.Background(), "")

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrInitDataInvalid))
}

func TestSessionService_StartSession_BadSignature(t *testing.T) {
	fx := createTestSessionService(t, true)

	fx.verifier.EXPECT().Verify("hash=forged").Return(nil, errors.New("init data hash mismatch"))

	out, err := fx.service.StartSession(context.Background(), "hash=forged")

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrInitDataInvalid))
	assert.Contains(t, err.Error(), "hash mismatch")
}

func TestSessionService_StartSession_ProfileLoadFails(t *testing.T) {
	fx := createTestSessionService(t, false)
	ctx := context.Background()
	user := &entity.User{ID: 42}

	fx.verifier.EXPECT().Verify("data").Return(user, nil)
	fx.profiles.EXPECT().GetProfile(ctx, entity.UserID(42)).Return(nil, errors.New("status 500"))

	out, err := fx.service.StartSession(ctx, "data")

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileLoadFailed))
	assert.Equal(t, "Could not load your profile. Please try refreshing.", domainerrors.AlertMessage(err))
}

func TestSessionService_StartSession_TokenFails(t *testing.T) {
	fx := createTestSessionService(t, false)
	ctx := context.Background()
	user := &entity.User{ID: 42}

	fx.verifier.EXPECT().Verify("data").Return(user, nil)
	fx.profiles.EXPECT().GetProfile(ctx, entity.UserID(42)).Return(entity.DefaultProfile(42), nil)
	fx.tokens.EXPECT().GenerateToken(user).Return("", errors.New("no secret"))

	_, err := fx.service.StartSession(ctx, "data")

	assert.True(t, errors.Is(err, domainerrors.ErrInternalError))
}

func TestSessionService_SelectCity_UpsertFails(t *testing.T) {
	fx := createTestSessionService(t, false)
	ctx := context.Background()
	user := &entity.User{ID: 42}

	fx.profiles.EXPECT().GetProfile(ctx, entity.UserID(42)).Return(entity.DefaultProfile(42), nil)
	fx.profiles.EXPECT().UpsertProfile(ctx, entity.UserID(42), mock.Anything).Return(nil, errors.New("boom"))

	view, err := fx.service.SelectCity(ctx, user, 7)

	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrCitySelectionFailed))

	profile, err := fx.service.CurrentProfile(ctx, user)
	assert.NoError(t, err)
	assert.Nil(t, profile.SelectedCityID)
}

func TestSessionService_SelectCity_InvalidCity(t *testing.T) {
	fx := createTestSessionService(t, false)

	_, err := fx.service.SelectCity(context.Background(), &entity.User{ID: 42}, 0)

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestSessionService_CurrentProfile_RequiresUser(t *testing.T) {
	fx := createTestSessionService(t, false)

	_, err := fx.service.CurrentProfile(context.Background(), nil)

	assert.True(t, errors.Is(err, domainerrors.ErrUserRequired))
}

func TestSessionService_ListCities_Fails(t *testing.T) {
	fx := createTestSessionService(t, false)
	ctx := context.Background()

	fx.catalog.EXPECT().ListCities(ctx).Return(nil, errors.New("down"))

	_, err := fx.service.ListCities(ctx)

	assert.True(t, errors.Is(err, domainerrors.ErrCatalogUnavailable))
}
