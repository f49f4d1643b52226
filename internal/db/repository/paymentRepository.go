package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"mbg-project/internal/models"
)

type PaymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Save stores the payment and its line items in one transaction.
func (r *PaymentRepository) Save(ctx context.Context, p models.Payment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			log.Printf("rolling back pembayaran tx: %v", err)
		}
	}()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO pembayaran (id, id_pelanggan, tanggal, total_bayar)
         VALUES ($1, $2, $3, $4)`,
		p.ID, p.CustomerID, p.Date, p.Total,
	)
	if err != nil {
		return fmt.Errorf("inserting pembayaran: %w", err)
	}

	for _, item := range p.Items {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO pembayaran_produk (id_pembayaran, id_produk, nama_produk, harga, jumlah, subtotal)
             VALUES ($1, $2, $3, $4, $5, $6)`,
			p.ID, item.ProductID, item.Name, item.Price, item.Quantity, item.Subtotal,
		)
		if err != nil {
			return fmt.Errorf("inserting pembayaran item: %w", err)
		}
	}

	return tx.Commit()
}

func (r *PaymentRepository) Get(ctx context.Context, id string) (models.Payment, error) {
	var p models.Payment
	err := r.db.QueryRowContext(ctx,
		`SELECT id, id_pelanggan, tanggal, total_bayar FROM pembayaran WHERE id = $1`,
		id).Scan(&p.ID, &p.CustomerID, &p.Date, &p.Total)
	if err != nil {
		return models.Payment{}, fmt.Errorf("selecting pembayaran %s: %w", id, err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id_produk, nama_produk, harga, jumlah, subtotal FROM pembayaran_produk WHERE id_pembayaran = $1`,
		id)
	if err != nil {
		return models.Payment{}, fmt.Errorf("selecting pembayaran items: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("closing pembayaran item rows: %v", err)
		}
	}()

	for rows.Next() {
		var item models.LineItem
		if err := rows.Scan(&item.ProductID, &item.Name, &item.Price, &item.Quantity, &item.Subtotal); err != nil {
			return models.Payment{}, fmt.Errorf("scanning pembayaran item: %w", err)
		}
		p.Items = append(p.Items, item)
	}

	return p, rows.Err()
}

func (r *PaymentRepository) GetAll(ctx context.Context) ([]models.Payment, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM pembayaran ORDER BY tanggal`)
	if err != nil {
		return nil, fmt.Errorf("selecting all pembayaran: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("closing pembayaran rows: %v", err)
		}
	}()

	var payments []models.Payment
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			continue
		}

		payment, err := r.Get(ctx, id)
		if err == nil {
			payments = append(payments, payment)
		}
	}
	return payments, rows.Err()
}

func (r *PaymentRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			log.Printf("rolling back pembayaran delete tx: %v", err)
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM pembayaran_produk WHERE id_pembayaran = $1`, id); err != nil {
		return fmt.Errorf("deleting pembayaran items: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM pembayaran WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting pembayaran %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err == nil && affected == 0 {
		return sql.ErrNoRows
	}

	return tx.Commit()
}
