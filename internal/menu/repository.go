package menu

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

func (r *MySQLRepository) Create(ctx context.Context, item *domain.MenuItem) error {
	query := `
		INSERT INTO menus (menu_id, restaurant_id, name, description, price)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		item.MenuID, item.RestaurantID, item.Name, item.Description, item.Price,
	)
	if err != nil {
		return fmt.Errorf("inserting menu item: %w", err)
	}

	return nil
}

func (r *MySQLRepository) FindByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	query := `
		SELECT menu_id, restaurant_id, name, description, price
		FROM menus
		WHERE menu_id = ?
	`

	var item domain.MenuItem
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.MenuID, &item.RestaurantID, &item.Name, &item.Description, &item.Price,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("menu not found with identifier : %s", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying menu item by id: %w", err)
	}

	return &item, nil
}

func (r *MySQLRepository) FindByRestaurant(ctx context.Context, restaurantID string) ([]domain.MenuItem, error) {
	query := `
		SELECT menu_id, restaurant_id, name, description, price
		FROM menus
		WHERE restaurant_id = ?
	`

	rows, err := r.db.QueryContext(ctx, query, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("querying menu items by restaurant: %w", err)
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.MenuID, &item.RestaurantID, &item.Name, &item.Description, &item.Price); err != nil {
			return nil, fmt.Errorf("scanning menu item: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *MySQLRepository) Update(ctx context.Context, item *domain.MenuItem) error {
	query := `
		UPDATE menus
		SET restaurant_id = ?, name = ?, description = ?, price = ?
		WHERE menu_id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		item.RestaurantID, item.Name, item.Description, item.Price, item.MenuID,
	)
	if err != nil {
		return fmt.Errorf("updating menu item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("menu not found with identifier : %s", item.MenuID))
	}

	return nil
}

func (r *MySQLRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM menus WHERE menu_id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting menu item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("menu not found with identifier : %s", id))
	}

	return nil
}
