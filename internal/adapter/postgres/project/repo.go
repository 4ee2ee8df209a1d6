// Package project implements the Project, ProjectMember, and ProjectTask
// repositories using PostgreSQL.
package project

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/asotobase/backend/internal/adapter/postgres"
	"github.com/asotobase/backend/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var projectColumns = []string{
	"id", "owner_id", "title", "description", "category", "status",
	"start_date", "end_date", "frequency", "location_type", "location_detail",
	"is_recruiting", "max_members", "required_skills", "tags", "visibility",
	"created_at", "updated_at",
}

var memberColumns = []string{
	"id", "project_id", "user_id", "role", "status", "contribution_role",
	"contribution_points", "joined_at", "created_at", "updated_at",
}

var taskColumns = []string{
	`id`, `project_id`, `assignee_id`, `title`, `description`, `status`,
	`"order"`, `due_date`, `completed_at`, `created_at`, `updated_at`,
}

// Repo provides project, membership, and task persistence backed by
// PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new project repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Project operations
// ---------------------------------------------------------------------------

// Create inserts a new project and returns the persisted domain.Project.
// When called inside TxManager.RunInTx it joins the caller's transaction.
func (r *Repo) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("projects").
		Columns("id", "owner_id", "title", "description", "category", "status",
			"start_date", "end_date", "frequency", "location_type", "location_detail",
			"is_recruiting", "max_members", "required_skills", "tags", "visibility").
		Values(p.ID, p.OwnerID, p.Title, p.Description, p.Category, p.Status,
			p.StartDate, p.EndDate, p.Frequency, p.LocationType, p.LocationDetail,
			p.IsRecruiting, p.MaxMembers, p.RequiredSkills, p.Tags, p.Visibility).
		Suffix("RETURNING " + strings.Join(projectColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert project: %w", err)
	}

	created, err := scanProject(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "project", p.ID.String())
	}

	return created, nil
}

// GetByID returns a project by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(projectColumns...).
		From("projects").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select project: %w", err)
	}

	p, err := scanProject(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "project", id.String())
	}

	return p, nil
}

// List returns all projects, newest first.
func (r *Repo) List(ctx context.Context) ([]domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(projectColumns...).
		From("projects").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list projects: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "project", "all")
	}
	defer rows.Close()

	projects := make([]domain.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, postgres.MapError(err, "project", "all")
		}
		projects = append(projects, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "project", "all")
	}

	return projects, nil
}

// Update writes the mutable columns of a project and returns the stored row.
func (r *Repo) Update(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Update("projects").
		Set("title", p.Title).
		Set("description", p.Description).
		Set("category", p.Category).
		Set("status", p.Status).
		Set("start_date", p.StartDate).
		Set("end_date", p.EndDate).
		Set("frequency", p.Frequency).
		Set("location_type", p.LocationType).
		Set("location_detail", p.LocationDetail).
		Set("is_recruiting", p.IsRecruiting).
		Set("max_members", p.MaxMembers).
		Set("required_skills", p.RequiredSkills).
		Set("tags", p.Tags).
		Set("visibility", p.Visibility).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": p.ID}).
		Suffix("RETURNING " + strings.Join(projectColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update project: %w", err)
	}

	updated, err := scanProject(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "project", p.ID.String())
	}

	return updated, nil
}

// Delete removes a project by primary key. Members and tasks cascade at
// the schema level.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Delete("projects").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete project: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "project", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Member operations
// ---------------------------------------------------------------------------

// CreateMember inserts a membership row. The (project_id, user_id) UNIQUE
// constraint maps a racing duplicate to domain.ErrAlreadyExists.
func (r *Repo) CreateMember(ctx context.Context, m *domain.ProjectMember) (*domain.ProjectMember, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("project_members").
		Columns("id", "project_id", "user_id", "role", "status",
			"contribution_role", "contribution_points", "joined_at").
		Values(m.ID, m.ProjectID, m.UserID, m.Role, m.Status,
			m.ContributionRole, m.ContributionPoints, m.JoinedAt).
		Suffix("RETURNING " + strings.Join(memberColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert member: %w", err)
	}

	created, err := scanMember(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "project_member", m.ProjectID.String()+"/"+m.UserID.String())
	}

	return created, nil
}

// GetMember returns the membership row for (project, user), regardless
// of its status.
func (r *Repo) GetMember(ctx context.Context, projectID, userID uuid.UUID) (*domain.ProjectMember, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(memberColumns...).
		From("project_members").
		Where(sq.Eq{"project_id": projectID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select member: %w", err)
	}

	m, err := scanMember(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "project_member", projectID.String()+"/"+userID.String())
	}

	return m, nil
}

// ListMembers returns a project's membership rows, oldest first.
func (r *Repo) ListMembers(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectMember, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(memberColumns...).
		From("project_members").
		Where(sq.Eq{"project_id": projectID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list members: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "project_member", projectID.String())
	}
	defer rows.Close()

	members := make([]domain.ProjectMember, 0)
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, postgres.MapError(err, "project_member", projectID.String())
		}
		members = append(members, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "project_member", projectID.String())
	}

	return members, nil
}

// ---------------------------------------------------------------------------
// Task operations
// ---------------------------------------------------------------------------

// CreateTask inserts a new project task.
func (r *Repo) CreateTask(ctx context.Context, t *domain.ProjectTask) (*domain.ProjectTask, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("project_tasks").
		Columns(`id`, `project_id`, `assignee_id`, `title`, `description`, `status`, `"order"`, `due_date`).
		Values(t.ID, t.ProjectID, t.AssigneeID, t.Title, t.Description, t.Status, t.Order, t.DueDate).
		Suffix("RETURNING " + strings.Join(taskColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert task: %w", err)
	}

	created, err := scanTask(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "project_task", t.ID.String())
	}

	return created, nil
}

// GetTask returns a task by primary key.
func (r *Repo) GetTask(ctx context.Context, id uuid.UUID) (*domain.ProjectTask, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(taskColumns...).
		From("project_tasks").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select task: %w", err)
	}

	t, err := scanTask(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "project_task", id.String())
	}

	return t, nil
}

// ListTasks returns a project's tasks ordered by "order", then creation.
func (r *Repo) ListTasks(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectTask, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(taskColumns...).
		From("project_tasks").
		Where(sq.Eq{"project_id": projectID}).
		OrderBy(`"order" ASC NULLS LAST`, "created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list tasks: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "project_task", projectID.String())
	}
	defer rows.Close()

	tasks := make([]domain.ProjectTask, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, postgres.MapError(err, "project_task", projectID.String())
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "project_task", projectID.String())
	}

	return tasks, nil
}

// UpdateTask writes the mutable columns of a task and returns the stored row.
func (r *Repo) UpdateTask(ctx context.Context, t *domain.ProjectTask) (*domain.ProjectTask, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Update("project_tasks").
		Set("assignee_id", t.AssigneeID).
		Set("title", t.Title).
		Set("description", t.Description).
		Set("status", t.Status).
		Set(`"order"`, t.Order).
		Set("due_date", t.DueDate).
		Set("completed_at", t.CompletedAt).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": t.ID}).
		Suffix("RETURNING " + strings.Join(taskColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update task: %w", err)
	}

	updated, err := scanTask(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "project_task", t.ID.String())
	}

	return updated, nil
}

// DeleteTask removes a task by primary key.
func (r *Repo) DeleteTask(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Delete("project_tasks").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete task: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "project_task", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("project_task %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var p domain.Project
	err := row.Scan(
		&p.ID,
		&p.OwnerID,
		&p.Title,
		&p.Description,
		&p.Category,
		&p.Status,
		&p.StartDate,
		&p.EndDate,
		&p.Frequency,
		&p.LocationType,
		&p.LocationDetail,
		&p.IsRecruiting,
		&p.MaxMembers,
		&p.RequiredSkills,
		&p.Tags,
		&p.Visibility,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanMember(row rowScanner) (*domain.ProjectMember, error) {
	var m domain.ProjectMember
	err := row.Scan(
		&m.ID,
		&m.ProjectID,
		&m.UserID,
		&m.Role,
		&m.Status,
		&m.ContributionRole,
		&m.ContributionPoints,
		&m.JoinedAt,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func scanTask(row rowScanner) (*domain.ProjectTask, error) {
	var t domain.ProjectTask
	err := row.Scan(
		&t.ID,
		&t.ProjectID,
		&t.AssigneeID,
		&t.Title,
		&t.Description,
		&t.Status,
		&t.Order,
		&t.DueDate,
		&t.CompletedAt,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
