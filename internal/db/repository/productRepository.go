package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"mbg-project/internal/models"
)

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Save inserts a new product row.
func (r *ProductRepository) Save(ctx context.Context, p models.Product) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO produk (id, nama_produk, kategori, harga, stok, deskripsi)
         VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.Name, p.Category, p.Price, p.Stock, p.Description,
	)
	if err != nil {
		return fmt.Errorf("inserting produk: %w", err)
	}
	return nil
}

func (r *ProductRepository) Get(ctx context.Context, id string) (models.Product, error) {
	var p models.Product
	err := r.db.QueryRowContext(ctx,
		`SELECT id, nama_produk, kategori, harga, stok, deskripsi FROM produk WHERE id = $1`,
		id).Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Stock, &p.Description)
	if err != nil {
		return models.Product{}, fmt.Errorf("selecting produk %s: %w", id, err)
	}
	return p, nil
}

func (r *ProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, nama_produk, kategori, harga, stok, deskripsi FROM produk ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("selecting all produk: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("closing produk rows: %v", err)
		}
	}()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Stock, &p.Description); err != nil {
			return nil, fmt.Errorf("scanning produk row: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// Update replaces the full product row, stock included. The last writer wins;
// there is no version column guarding concurrent stock decrements.
func (r *ProductRepository) Update(ctx context.Context, p models.Product) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE produk SET nama_produk = $2, kategori = $3, harga = $4, stok = $5, deskripsi = $6
         WHERE id = $1`,
		p.ID, p.Name, p.Category, p.Price, p.Stock, p.Description,
	)
	if err != nil {
		return fmt.Errorf("updating produk %s: %w", p.ID, err)
	}
	affected, err := res.RowsAffected()
	if err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM produk WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting produk %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
