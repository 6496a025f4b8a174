package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"bewear/internal/domain"
)

const addressColumns = `id, user_id, recipient_name, street, number,
	COALESCE(complement, ''), neighborhood, city, state, zip_code, country,
	phone, email, cpf, created_at, updated_at`

// CreateAddressParams holds normalized fields for an address insert.
type CreateAddressParams struct {
	UserID        uuid.UUID
	RecipientName string
	Street        string
	Number        string
	Complement    string
	Neighborhood  string
	City          string
	State         string
	ZipCode       string
	Country       string
	Phone         string
	Email         string
	CPF           string
}

// CreateAddress inserts a new shipping address attributed to the owner.
func (q *Queries) CreateAddress(ctx context.Context, arg CreateAddressParams) (domain.ShippingAddress, error) {
	query := `
		INSERT INTO shipping_addresses (
			user_id, recipient_name, street, number, complement,
			neighborhood, city, state, zip_code, country, phone, email, cpf
		) VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + addressColumns

	row := q.db.QueryRow(ctx, query,
		arg.UserID,
		arg.RecipientName,
		arg.Street,
		arg.Number,
		arg.Complement,
		arg.Neighborhood,
		arg.City,
		arg.State,
		arg.ZipCode,
		arg.Country,
		arg.Phone,
		arg.Email,
		arg.CPF,
	)

	addr, err := scanAddress(row)
	if err != nil {
		return domain.ShippingAddress{}, fmt.Errorf("insert shipping address: %w", err)
	}
	return addr, nil
}

// UpdateAddressParams holds normalized fields for a conditional update.
type UpdateAddressParams struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	RecipientName string
	Street        string
	Number        string
	Complement    string
	Neighborhood  string
	City          string
	State         string
	ZipCode       string
	Country       string
	Phone         string
	Email         string
	CPF           string
}

// UpdateAddressForUser updates the row matching BOTH id and owner in one
// conditional statement. Zero matched rows surfaces as pgx.ErrNoRows; the
// caller cannot tell a missing id from another user's id, which is the
// point.
func (q *Queries) UpdateAddressForUser(ctx context.Context, arg UpdateAddressParams) (domain.ShippingAddress, error) {
	query := `
		UPDATE shipping_addresses SET
			recipient_name = $3,
			street = $4,
			number = $5,
			complement = NULLIF($6, ''),
			neighborhood = $7,
			city = $8,
			state = $9,
			zip_code = $10,
			country = $11,
			phone = $12,
			email = $13,
			cpf = $14,
			updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + addressColumns

	row := q.db.QueryRow(ctx, query,
		arg.ID,
		arg.UserID,
		arg.RecipientName,
		arg.Street,
		arg.Number,
		arg.Complement,
		arg.Neighborhood,
		arg.City,
		arg.State,
		arg.ZipCode,
		arg.Country,
		arg.Phone,
		arg.Email,
		arg.CPF,
	)

	return scanAddress(row)
}

// ListAddressesForUser returns all addresses owned by userID, newest first.
func (q *Queries) ListAddressesForUser(ctx context.Context, userID uuid.UUID) ([]domain.ShippingAddress, error) {
	query := `
		SELECT ` + addressColumns + `
		FROM shipping_addresses
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := q.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list shipping addresses: %w", err)
	}
	defer rows.Close()

	var addresses []domain.ShippingAddress
	for rows.Next() {
		addr, err := scanAddress(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shipping address: %w", err)
		}
		addresses = append(addresses, addr)
	}
	return addresses, rows.Err()
}

// GetAddressForUser returns the address only if userID owns it.
func (q *Queries) GetAddressForUser(ctx context.Context, addressID, userID uuid.UUID) (domain.ShippingAddress, error) {
	query := `
		SELECT ` + addressColumns + `
		FROM shipping_addresses
		WHERE id = $1 AND user_id = $2`

	return scanAddress(q.db.QueryRow(ctx, query, addressID, userID))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAddress(row rowScanner) (domain.ShippingAddress, error) {
	var a domain.ShippingAddress
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.RecipientName,
		&a.Street,
		&a.Number,
		&a.Complement,
		&a.Neighborhood,
		&a.City,
		&a.State,
		&a.ZipCode,
		&a.Country,
		&a.Phone,
		&a.Email,
		&a.CPF,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}
