package cataloging

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/duarte550/crmCRIback/infrastructure/repository/mocks"
	"github.com/duarte550/crmCRIback/internal/domain"
)

func TestService_ListEconomicGroupsNeverNil(t *testing.T) {
	ctrl := gomock.NewController(t)
	groupRepo := mocks.NewMockEconomicGroupRepository(ctrl)
	monitoringRepo := mocks.NewMockMonitoringRepository(ctrl)

	groupRepo.EXPECT().List(gomock.Any()).Return(nil, nil)

	groups, err := NewService(groupRepo, monitoringRepo).ListEconomicGroups(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

func TestService_ListReviewsPropagatesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	groupRepo := mocks.NewMockEconomicGroupRepository(ctrl)
	monitoringRepo := mocks.NewMockMonitoringRepository(ctrl)

	connErr := &domain.ConnectionError{Err: errors.New("dial tcp: connection refused")}
	monitoringRepo.EXPECT().ListReviews(gomock.Any()).Return(nil, connErr)

	reviews, err := NewService(groupRepo, monitoringRepo).ListReviews(context.Background())

	assert.Nil(t, reviews)
	assert.ErrorIs(t, err, connErr)
}

func TestService_VolumeByRating(t *testing.T) {
	ctrl := gomock.NewController(t)
	groupRepo := mocks.NewMockEconomicGroupRepository(ctrl)
	monitoringRepo := mocks.NewMockMonitoringRepository(ctrl)

	rating := "AA"
	groupRepo.EXPECT().VolumeByRating(gomock.Any()).Return([]domain.RatingVolume{
		{Rating: &rating, TotalVolume: decimal.NewNullDecimal(decimal.NewFromInt(3_000_000))},
	}, nil)

	volumes, err := NewService(groupRepo, monitoringRepo).VolumeByRating(context.Background())
	require.NoError(t, err)
	require.Len(t, volumes, 1)

	assert.Equal(t, "AA", *volumes[0].Rating)
}
