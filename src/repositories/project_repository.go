package repositories

import (
	"context"
	"errors"

	"timevalue/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProjectRepository interface {
	GetAllByUser(ctx context.Context, userID int) ([]models.Project, error)
	GetByID(ctx context.Context, userID, id int) (*models.Project, error)
	Create(ctx context.Context, project *models.Project) error
	Update(ctx context.Context, project *models.Project) error
	SoftDelete(ctx context.Context, userID, id int) error
}

type projectRepo struct {
	db *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) ProjectRepository {
	return &projectRepo{db: db}
}

func (r *projectRepo) GetAllByUser(ctx context.Context, userID int) ([]models.Project, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, name, description, color, created_at
		 FROM projects WHERE user_id = $1 AND NOT deleted ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var project models.Project
		if err := rows.Scan(&project.ID, &project.UserID, &project.Name,
			&project.Description, &project.Color, &project.CreatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, rows.Err()
}

func (r *projectRepo) GetByID(ctx context.Context, userID, id int) (*models.Project, error) {
	var project models.Project
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, name, description, color, created_at
		 FROM projects WHERE id = $1 AND user_id = $2 AND NOT deleted`, id, userID).
		Scan(&project.ID, &project.UserID, &project.Name, &project.Description, &project.Color, &project.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepo) Create(ctx context.Context, project *models.Project) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO projects (user_id, name, description, color)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		project.UserID, project.Name, project.Description, project.Color,
	).Scan(&project.ID, &project.CreatedAt)
}

func (r *projectRepo) Update(ctx context.Context, project *models.Project) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE projects SET name = $1, description = $2, color = $3
		 WHERE id = $4 AND user_id = $5 AND NOT deleted`,
		project.Name, project.Description, project.Color, project.ID, project.UserID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *projectRepo) SoftDelete(ctx context.Context, userID, id int) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE projects SET deleted = TRUE, deleted_at = NOW()
		 WHERE id = $1 AND user_id = $2 AND NOT deleted`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
