package repository

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/duarte550/crmCRIback/infrastructure/database"
	"github.com/duarte550/crmCRIback/internal/domain"
)

// MonitoringRepository reúne as leituras planas de acompanhamento
// (revisões, visitas, seguros, laudos e regras)
type MonitoringRepository interface {
	ListReviews(ctx context.Context) ([]domain.Review, error)
	GetReviewStatus(ctx context.Context, groupID int64) (*domain.ReviewStatus, error)
	ListVisits(ctx context.Context) ([]domain.Visit, error)
	ListInsurances(ctx context.Context) ([]domain.Insurance, error)
	ListAppraisals(ctx context.Context) ([]domain.Appraisal, error)
	ListRules(ctx context.Context) ([]domain.Rule, error)
}

type monitoringRepository struct {
	conn database.Executor
}

func NewMonitoringRepository(conn database.Executor) MonitoringRepository {
	return &monitoringRepository{
		conn: conn,
	}
}

func (r *monitoringRepository) ListReviews(ctx context.Context) ([]domain.Review, error) {
	query := squirrel.
		Select(
			"r.id",
			"r.groupId AS group_id",
			"r.nextReviewDate AS next_review_date",
			"r.status",
			"g.name AS group_name",
			"g.currentVolume AS current_volume",
		).
		From(table(r.conn, reviewsTable) + " r").
		Join(table(r.conn, economicGroupsTable) + " g ON r.groupId = g.id").
		OrderBy("r.nextReviewDate ASC")

	reviews := make([]domain.Review, 0)
	if err := queryInto(ctx, r.conn, "revisoes.listar", query, &reviews); err != nil {
		return nil, err
	}

	return reviews, nil
}

// GetReviewStatus devolve nil quando o grupo não tem revisão cadastrada
func (r *monitoringRepository) GetReviewStatus(ctx context.Context, groupID int64) (*domain.ReviewStatus, error) {
	query := squirrel.
		Select("status").
		From(table(r.conn, reviewsTable)).
		Where(squirrel.Eq{"groupId": groupID}).
		OrderBy("id").
		Limit(1)

	review := &domain.ReviewStatus{}
	found, err := queryFirst(ctx, r.conn, "revisoes.status_por_grupo", query, review)
	if err != nil || !found {
		return nil, err
	}

	return review, nil
}

func (r *monitoringRepository) ListVisits(ctx context.Context) ([]domain.Visit, error) {
	query := squirrel.
		Select("v.id", "v.groupId AS group_id", "v.nextVisitDate AS next_visit_date", "g.name AS group_name").
		From(table(r.conn, visitsTable) + " v").
		Join(table(r.conn, economicGroupsTable) + " g ON v.groupId = g.id").
		OrderBy("v.nextVisitDate ASC")

	visits := make([]domain.Visit, 0)
	if err := queryInto(ctx, r.conn, "visitas.listar", query, &visits); err != nil {
		return nil, err
	}

	return visits, nil
}

func (r *monitoringRepository) ListInsurances(ctx context.Context) ([]domain.Insurance, error) {
	query := squirrel.
		Select(
			"i.id",
			"i.groupId AS group_id",
			"i.insurer",
			"i.policyNumber AS policy_number",
			"i.coverage",
			"i.expirationDate AS expiration_date",
			"g.name AS group_name",
		).
		From(table(r.conn, insurancesTable) + " i").
		Join(table(r.conn, economicGroupsTable) + " g ON i.groupId = g.id").
		OrderBy("i.expirationDate ASC")

	insurances := make([]domain.Insurance, 0)
	if err := queryInto(ctx, r.conn, "seguros.listar", query, &insurances); err != nil {
		return nil, err
	}

	return insurances, nil
}

func (r *monitoringRepository) ListAppraisals(ctx context.Context) ([]domain.Appraisal, error) {
	query := squirrel.
		Select(
			"a.id",
			"a.groupId AS group_id",
			"a.date",
			"a.propertyDescription AS property_description",
			"a.appraiser",
			"a.value",
			"g.name AS group_name",
		).
		From(table(r.conn, appraisalsTable) + " a").
		Join(table(r.conn, economicGroupsTable) + " g ON a.groupId = g.id").
		OrderBy("a.date DESC")

	appraisals := make([]domain.Appraisal, 0)
	if err := queryInto(ctx, r.conn, "laudos.listar", query, &appraisals); err != nil {
		return nil, err
	}

	return appraisals, nil
}

func (r *monitoringRepository) ListRules(ctx context.Context) ([]domain.Rule, error) {
	query := squirrel.
		Select("id", "name", "description", "priority", "nextExecution AS next_execution").
		From(table(r.conn, rulesTable)).
		OrderBy("priority", "nextExecution")

	rules := make([]domain.Rule, 0)
	if err := queryInto(ctx, r.conn, "regras.listar", query, &rules); err != nil {
		return nil, err
	}

	return rules, nil
}
