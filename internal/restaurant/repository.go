package restaurant

import (
	"context"
	"database/sql"
	"fmt"

	"foodcourt/internal/domain"
	apperrors "foodcourt/internal/errors"
)

type MySQLRepository struct {
	db *sql.DB
}

func NewMySQLRepository(db *sql.DB) *MySQLRepository {
	return &MySQLRepository{db: db}
}

func (r *MySQLRepository) Create(ctx context.Context, rest *domain.Restaurant) error {
	query := `
		INSERT INTO restaurants (restaurant_id, name, address, phone)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, rest.RestaurantID, rest.Name, rest.Address, rest.Phone)
	if err != nil {
		return fmt.Errorf("inserting restaurant: %w", err)
	}

	return nil
}

func (r *MySQLRepository) FindByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	query := `
		SELECT restaurant_id, name, address, phone
		FROM restaurants
		WHERE restaurant_id = ?
	`

	var rest domain.Restaurant
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rest.RestaurantID, &rest.Name, &rest.Address, &rest.Phone,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("restaurant not found with identifier : %s", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying restaurant by id: %w", err)
	}

	return &rest, nil
}

func (r *MySQLRepository) FindAll(ctx context.Context) ([]domain.Restaurant, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT restaurant_id, name, address, phone FROM restaurants`)
	if err != nil {
		return nil, fmt.Errorf("querying restaurants: %w", err)
	}
	defer rows.Close()

	var restaurants []domain.Restaurant
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.RestaurantID, &rest.Name, &rest.Address, &rest.Phone); err != nil {
			return nil, fmt.Errorf("scanning restaurant: %w", err)
		}
		restaurants = append(restaurants, rest)
	}

	return restaurants, rows.Err()
}

func (r *MySQLRepository) Update(ctx context.Context, rest *domain.Restaurant) error {
	query := `
		UPDATE restaurants
		SET name = ?, address = ?, phone = ?
		WHERE restaurant_id = ?
	`

	result, err := r.db.ExecContext(ctx, query, rest.Name, rest.Address, rest.Phone, rest.RestaurantID)
	if err != nil {
		return fmt.Errorf("updating restaurant: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("restaurant not found with identifier : %s", rest.RestaurantID))
	}

	return nil
}

func (r *MySQLRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM restaurants WHERE restaurant_id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting restaurant: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("restaurant not found with identifier : %s", id))
	}

	return nil
}
