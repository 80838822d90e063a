package order

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/mobicore/storefront/database"
)

// SQLStore keeps the order log in postgres.
type SQLStore struct {
	db *sqlx.DB
}

func NewSQLStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Insert(ctx context.Context, ord Order) (int64, error) {
	const q = `
	INSERT INTO orders (customer_name, items, total, created_at)
	VALUES ($1, $2, $3, $4)
	RETURNING order_id`

	var id int64
	err := database.Transaction(s.db, func(tx sqlx.ExtContext) error {
		row := tx.QueryRowxContext(ctx, q, ord.CustomerName, ord.Items, ord.Total, ord.CreatedAt)
		if err := row.Scan(&id); err != nil {
			return fmt.Errorf("scanning order id: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (s *SQLStore) List(ctx context.Context) ([]Order, error) {
	const q = `
	SELECT order_id, customer_name, items, total, created_at
	FROM orders
	ORDER BY created_at DESC, order_id DESC`

	orders := []Order{}
	if err := s.db.SelectContext(ctx, &orders, q); err != nil {
		return nil, fmt.Errorf("selecting orders: %w", err)
	}

	return orders, nil
}
