package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/contractors/internal/app/models"
	"github.com/yigit/contractors/internal/db"
	"github.com/yigit/contractors/internal/pkg/logger"
)

const contractorsTable = "contractors"

// summaryColumns is the list projection; order matches summaryTargets.
var summaryColumns = []string{
	"id", "name", "gender", "birth_date", "age", "photo_url", "education", "degree",
	"university", "major", "join_date", "employment_type", "band", "department",
	"position", "status", "phone", "email",
}

func summaryTargets(c *models.ContractorSummary) []any {
	return []any{
		&c.ID, &c.Name, &c.Gender, &c.BirthDate, &c.Age, &c.PhotoURL, &c.Education, &c.Degree,
		&c.University, &c.Major, &c.JoinDate, &c.EmploymentType, &c.Band, &c.Department,
		&c.Position, &c.Status, &c.Phone, &c.Email,
	}
}

func contractorColumns() []string {
	return append(append([]string{}, summaryColumns...), "created_at")
}

func contractorTargets(c *models.Contractor) []any {
	return append(summaryTargets(&c.ContractorSummary), &c.CreatedAt)
}

// childQuery describes how one child table is read for a contractor.
type childQuery struct {
	table   string
	columns []string
	// orderBy is empty for tables without a defined order.
	orderBy string
}

var (
	workExperienceQuery = childQuery{
		table:   "work_experience",
		columns: []string{"id", "contractor_id", "company", "position", "start_date", "end_date", "description"},
		orderBy: "start_date DESC",
	}
	projectExperienceQuery = childQuery{
		table:   "project_experience",
		columns: []string{"id", "contractor_id", "project_name", "role", "start_date", "end_date", "description"},
		orderBy: "start_date DESC",
	}
	skillsQuery = childQuery{
		table:   "skills",
		columns: []string{"id", "contractor_id", "skill_name", "proficiency"},
	}
	trainingRecordsQuery = childQuery{
		table:   "training_records",
		columns: []string{"id", "contractor_id", "training_name", "training_date", "provider", "result"},
		orderBy: "training_date DESC",
	}
	performanceReviewsQuery = childQuery{
		table:   "performance_reviews",
		columns: []string{"id", "contractor_id", "review_date", "reviewer", "rating", "comments"},
		orderBy: "review_date DESC",
	}
	contractsQuery = childQuery{
		table:   "contracts",
		columns: []string{"id", "contractor_id", "contract_type", "start_date", "end_date", "status"},
		orderBy: "start_date DESC",
	}
)

// ContractorRepository handles contractor database operations
type ContractorRepository struct {
	db Database
	sb squirrel.StatementBuilderType
}

// NewContractorRepository creates a new ContractorRepository
func NewContractorRepository(database Database) *ContractorRepository {
	return &ContractorRepository{
		db: database,
		sb: newStatementBuilder(),
	}
}

// List returns one page of contractors matching filter, newest first with
// id as tiebreaker, together with the number of matching rows ignoring
// pagination.
func (r *ContractorRepository) List(ctx context.Context, filter ContractorFilter, page Page) ([]models.ContractorSummary, int64, error) {
	where := filter.Predicate()

	countSQL, countArgs, err := r.sb.Select("COUNT(*)").
		From(contractorsTable).
		Where(where).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building count contractors SQL")
		return nil, 0, fmt.Errorf("failed to build count contractors query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error executing count contractors query")
		return nil, 0, fmt.Errorf("failed to count contractors: %w", err)
	}

	listSQL, listArgs, err := r.sb.Select(summaryColumns...).
		From(contractorsTable).
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list contractors SQL")
		return nil, 0, fmt.Errorf("failed to build list contractors query: %w", err)
	}

	contractors, err := collect(ctx, r.db, listSQL, listArgs, summaryTargets)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list contractors query")
		return nil, 0, fmt.Errorf("failed to query contractors: %w", err)
	}

	logger.Debug().Int64("total", total).Int("returned", len(contractors)).Uint64("offset", page.Offset).Msg("Fetched contractors page")
	return contractors, total, nil
}

// GetDetail loads a contractor and all child rows on one pooled connection.
// It returns ErrNotFound when no contractor has the given id.
func (r *ContractorRepository) GetDetail(ctx context.Context, id int64) (*models.ContractorDetail, error) {
	detail := &models.ContractorDetail{}

	err := r.db.WithConn(ctx, func(q db.Querier) error {
		contractor, err := r.getByID(ctx, q, id)
		if err != nil {
			return err
		}
		detail.Contractor = *contractor

		if detail.WorkExperience, err = queryChild(ctx, r, q, workExperienceQuery, id, func(w *models.WorkExperience) []any {
			return []any{&w.ID, &w.ContractorID, &w.Company, &w.Position, &w.StartDate, &w.EndDate, &w.Description}
		}); err != nil {
			return err
		}
		if detail.ProjectExperience, err = queryChild(ctx, r, q, projectExperienceQuery, id, func(p *models.ProjectExperience) []any {
			return []any{&p.ID, &p.ContractorID, &p.ProjectName, &p.Role, &p.StartDate, &p.EndDate, &p.Description}
		}); err != nil {
			return err
		}
		if detail.Skills, err = queryChild(ctx, r, q, skillsQuery, id, func(s *models.Skill) []any {
			return []any{&s.ID, &s.ContractorID, &s.SkillName, &s.Proficiency}
		}); err != nil {
			return err
		}
		if detail.TrainingRecords, err = queryChild(ctx, r, q, trainingRecordsQuery, id, func(t *models.TrainingRecord) []any {
			return []any{&t.ID, &t.ContractorID, &t.TrainingName, &t.TrainingDate, &t.Provider, &t.Result}
		}); err != nil {
			return err
		}
		if detail.PerformanceReviews, err = queryChild(ctx, r, q, performanceReviewsQuery, id, func(p *models.PerformanceReview) []any {
			return []any{&p.ID, &p.ContractorID, &p.ReviewDate, &p.Reviewer, &p.Rating, &p.Comments}
		}); err != nil {
			return err
		}
		if detail.Contracts, err = queryChild(ctx, r, q, contractsQuery, id, func(c *models.Contract) []any {
			return []any{&c.ID, &c.ContractorID, &c.ContractType, &c.StartDate, &c.EndDate, &c.Status}
		}); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return detail, nil
}

func (r *ContractorRepository) getByID(ctx context.Context, q db.Querier, id int64) (*models.Contractor, error) {
	sql, args, err := r.sb.Select(contractorColumns()...).
		From(contractorsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get contractor by ID SQL")
		return nil, fmt.Errorf("failed to build get contractor query: %w", err)
	}

	contractor := &models.Contractor{}
	if err := q.QueryRow(ctx, sql, args...).Scan(contractorTargets(contractor)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("contractorID", id).Msg("Error scanning contractor row")
		return nil, fmt.Errorf("error getting contractor by ID: %w", err)
	}

	return contractor, nil
}

func queryChild[T any](ctx context.Context, r *ContractorRepository, q db.Querier, cq childQuery, contractorID int64, targets func(*T) []any) ([]T, error) {
	builder := r.sb.Select(cq.columns...).
		From(cq.table).
		Where(squirrel.Eq{"contractor_id": contractorID})
	if cq.orderBy != "" {
		builder = builder.OrderBy(cq.orderBy)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", cq.table).Msg("Error building child table SQL")
		return nil, fmt.Errorf("failed to build %s query: %w", cq.table, err)
	}

	items, err := collect(ctx, q, sql, args, targets)
	if err != nil {
		logger.Error().Err(err).Str("table", cq.table).Int64("contractorID", contractorID).Msg("Error querying child table")
		return nil, fmt.Errorf("error querying %s: %w", cq.table, err)
	}
	return items, nil
}

// Departments returns the distinct non-null department values in database order.
func (r *ContractorRepository) Departments(ctx context.Context) ([]string, error) {
	sql, args, err := r.sb.Select("department").
		Distinct().
		From(contractorsTable).
		Where(squirrel.NotEq{"department": nil}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building departments SQL")
		return nil, fmt.Errorf("failed to build departments query: %w", err)
	}

	departments, err := collect(ctx, r.db, sql, args, func(s *string) []any { return []any{s} })
	if err != nil {
		logger.Error().Err(err).Msg("Error querying departments")
		return nil, fmt.Errorf("error querying departments: %w", err)
	}
	return departments, nil
}
