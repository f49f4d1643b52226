package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"mbg-project/internal/models"
)

type CustomerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Save(ctx context.Context, c models.Customer) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO pelanggan (id, nama, email, no_hp, alamat)
         VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.Name, c.Email, c.Phone, c.Address,
	)
	if err != nil {
		return fmt.Errorf("inserting pelanggan: %w", err)
	}
	return nil
}

func (r *CustomerRepository) Get(ctx context.Context, id string) (models.Customer, error) {
	var c models.Customer
	err := r.db.QueryRowContext(ctx,
		`SELECT id, nama, email, no_hp, alamat FROM pelanggan WHERE id = $1`,
		id).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address)
	if err != nil {
		return models.Customer{}, fmt.Errorf("selecting pelanggan %s: %w", id, err)
	}
	return c, nil
}

func (r *CustomerRepository) GetAll(ctx context.Context) ([]models.Customer, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, nama, email, no_hp, alamat FROM pelanggan ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("selecting all pelanggan: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("closing pelanggan rows: %v", err)
		}
	}()

	var customers []models.Customer
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address); err != nil {
			return nil, fmt.Errorf("scanning pelanggan row: %w", err)
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *CustomerRepository) Update(ctx context.Context, c models.Customer) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE pelanggan SET nama = $2, email = $3, no_hp = $4, alamat = $5 WHERE id = $1`,
		c.ID, c.Name, c.Email, c.Phone, c.Address,
	)
	if err != nil {
		return fmt.Errorf("updating pelanggan %s: %w", c.ID, err)
	}
	affected, err := res.RowsAffected()
	if err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pelanggan WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting pelanggan %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
