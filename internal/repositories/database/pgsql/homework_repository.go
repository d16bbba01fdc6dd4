package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/ports/repositories"

	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/domain"
)

// HomeworkRepository implements homework persistence on PostgreSQL.
type HomeworkRepository struct {
	BaseRepository
}

var _ portsrepo.HomeworkRepositoryFacade = (*HomeworkRepository)(nil)

// NewHomeworkRepository creates a new homework repository.
func NewHomeworkRepository(pool *pgxpool.Pool) *HomeworkRepository {
	return &HomeworkRepository{BaseRepository: NewBaseRepository(pool)}
}

// SaveHomework inserts a new homework entry.
func (r *HomeworkRepository) SaveHomework(ctx context.Context, hw domain.Homework) error {
	query := `
		INSERT INTO homework (homework_id, class, section, subject, title, instructions, due_date, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(ctx, query,
		hw.HomeworkID, hw.Class, hw.Section, hw.Subject, hw.Title,
		hw.Instructions, hw.DueDate, hw.CreatedBy, hw.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save homework: %w", err)
	}
	return nil
}

// ListHomework returns the most recent entries, newest first.
func (r *HomeworkRepository) ListHomework(ctx context.Context, limit int) ([]domain.Homework, error) {
	query := `
		SELECT homework_id, class, section, subject, title, instructions, due_date, created_by, created_at
		FROM homework
		ORDER BY created_at DESC
		LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query homework: %w", err)
	}
	defer rows.Close()

	var entries []domain.Homework
	for rows.Next() {
		var hw domain.Homework
		err := rows.Scan(&hw.HomeworkID, &hw.Class, &hw.Section, &hw.Subject,
			&hw.Title, &hw.Instructions, &hw.DueDate, &hw.CreatedBy, &hw.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan homework row: %w", err)
		}
		entries = append(entries, hw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating homework rows: %w", err)
	}
	return entries, nil
}
