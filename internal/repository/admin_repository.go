package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"sangam/internal/models"
)

type AdminRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.Admin, error)
	List(ctx context.Context) ([]models.Admin, error)
	Create(ctx context.Context, userID, role string) (*models.Admin, error)
	Update(ctx context.Context, id int, req *models.UpdateAdminRequest) (*models.Admin, error)
}

type adminRepository struct {
	db *sql.DB
}

func NewAdminRepository(db *sql.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) GetByUserID(ctx context.Context, userID string) (*models.Admin, error) {
	var a models.Admin
	err := r.db.QueryRowContext(ctx,
		"SELECT id, user_id, role, is_active FROM admins WHERE user_id = $1", userID,
	).Scan(&a.ID, &a.UserID, &a.Role, &a.IsActive)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("get admin by user id: %w", err)
	}
	return &a, nil
}

func (r *adminRepository) List(ctx context.Context) ([]models.Admin, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, user_id, role, is_active FROM admins ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	defer rows.Close()

	var out []models.Admin
	for rows.Next() {
		var a models.Admin
		if err := rows.Scan(&a.ID, &a.UserID, &a.Role, &a.IsActive); err != nil {
			return nil, fmt.Errorf("scan admin: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *adminRepository) Create(ctx context.Context, userID, role string) (*models.Admin, error) {
	var a models.Admin
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO admins (user_id, role)
		VALUES ($1, $2)
		RETURNING id, user_id, role, is_active
	`, userID, role).Scan(&a.ID, &a.UserID, &a.Role, &a.IsActive)
	if err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}
	return &a, nil
}

// Update applies a partial patch and returns the updated row, or
// sql.ErrNoRows when the id is unknown. Callers reject empty patches
// before reaching here.
func (r *adminRepository) Update(ctx context.Context, id int, req *models.UpdateAdminRequest) (*models.Admin, error) {
	var sets []string
	var args []any

	if req.Role != nil {
		args = append(args, *req.Role)
		sets = append(sets, fmt.Sprintf("role = $%d", len(args)))
	}
	if req.IsActive != nil {
		args = append(args, *req.IsActive)
		sets = append(sets, fmt.Sprintf("is_active = $%d", len(args)))
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE admins SET %s WHERE id = $%d RETURNING id, user_id, role, is_active",
		strings.Join(sets, ", "), len(args),
	)

	var a models.Admin
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&a.ID, &a.UserID, &a.Role, &a.IsActive)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("update admin: %w", err)
	}
	return &a, nil
}
