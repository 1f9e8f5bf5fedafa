package cataloging

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/duarte550/crmCRIback/infrastructure/repository"
	"github.com/duarte550/crmCRIback/internal/domain"
)

// Cataloger expõe as listagens planas do CRM
type Cataloger interface {
	ListEconomicGroups(ctx context.Context) ([]domain.EconomicGroup, error)
	ListReviews(ctx context.Context) ([]domain.Review, error)
	ListVisits(ctx context.Context) ([]domain.Visit, error)
	ListInsurances(ctx context.Context) ([]domain.Insurance, error)
	ListAppraisals(ctx context.Context) ([]domain.Appraisal, error)
	ListRules(ctx context.Context) ([]domain.Rule, error)
	VolumeByRating(ctx context.Context) ([]domain.RatingVolume, error)
}

type Service struct {
	groupRepository      repository.EconomicGroupRepository
	monitoringRepository repository.MonitoringRepository
}

func NewService(
	groupRepository repository.EconomicGroupRepository,
	monitoringRepository repository.MonitoringRepository,
) Cataloger {
	return &Service{
		groupRepository:      groupRepository,
		monitoringRepository: monitoringRepository,
	}
}

func (s *Service) ListEconomicGroups(ctx context.Context) ([]domain.EconomicGroup, error) {
	return list(ctx, "grupos econômicos", s.groupRepository.List)
}

func (s *Service) ListReviews(ctx context.Context) ([]domain.Review, error) {
	return list(ctx, "revisões", s.monitoringRepository.ListReviews)
}

func (s *Service) ListVisits(ctx context.Context) ([]domain.Visit, error) {
	return list(ctx, "visitas", s.monitoringRepository.ListVisits)
}

func (s *Service) ListInsurances(ctx context.Context) ([]domain.Insurance, error) {
	return list(ctx, "seguros", s.monitoringRepository.ListInsurances)
}

func (s *Service) ListAppraisals(ctx context.Context) ([]domain.Appraisal, error) {
	return list(ctx, "laudos", s.monitoringRepository.ListAppraisals)
}

func (s *Service) ListRules(ctx context.Context) ([]domain.Rule, error) {
	return list(ctx, "regras", s.monitoringRepository.ListRules)
}

func (s *Service) VolumeByRating(ctx context.Context) ([]domain.RatingVolume, error) {
	return list(ctx, "volume por rating", s.groupRepository.VolumeByRating)
}

func list[T any](ctx context.Context, entity string, fetch func(context.Context) ([]T, error)) ([]T, error) {
	items, err := fetch(ctx)
	if err != nil {
		logrus.WithError(err).Errorf("Erro ao listar %s", entity)
		return nil, err
	}

	if items == nil {
		items = make([]T, 0)
	}

	return items, nil
}
