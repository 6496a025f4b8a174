package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bewear/internal/repository"
)

func setupQueries(t *testing.T) (*repository.Queries, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return repository.New(mock), mock
}

func addressColumns() []string {
	return []string{
		"id", "user_id", "recipient_name", "street", "number", "complement",
		"neighborhood", "city", "state", "zip_code", "country", "phone",
		"email", "cpf", "created_at", "updated_at",
	}
}

func sampleAddressParams(userID uuid.UUID) repository.CreateAddressParams {
	return repository.CreateAddressParams{
		UserID:        userID,
		RecipientName: "Maria da Silva",
		Street:        "Avenida Paulista",
		Number:        "1578",
		Complement:    "Apto 42",
		Neighborhood:  "Bela Vista",
		City:          "São Paulo",
		State:         "SP",
		ZipCode:       "01311-000",
		Country:       "Brasil",
		Phone:         "(11) 98888-7777",
		Email:         "maria@example.com",
		CPF:           "11144477735",
	}
}

func TestCreateAddress(t *testing.T) {
	q, mock := setupQueries(t)

	userID := uuid.New()
	addressID := uuid.New()
	now := time.Now()
	arg := sampleAddressParams(userID)

	mock.ExpectQuery("INSERT INTO shipping_addresses").
		WithArgs(
			arg.UserID, arg.RecipientName, arg.Street, arg.Number,
			arg.Complement, arg.Neighborhood, arg.City, arg.State,
			arg.ZipCode, arg.Country, arg.Phone, arg.Email, arg.CPF,
		).
		WillReturnRows(pgxmock.NewRows(addressColumns()).AddRow(
			addressID, userID, arg.RecipientName, arg.Street, arg.Number,
			arg.Complement, arg.Neighborhood, arg.City, arg.State,
			arg.ZipCode, arg.Country, arg.Phone, arg.Email, arg.CPF,
			now, now,
		))

	addr, err := q.CreateAddress(context.Background(), arg)
	require.NoError(t, err)
	assert.Equal(t, addressID, addr.ID)
	assert.Equal(t, userID, addr.UserID)
	assert.Equal(t, "01311-000", addr.ZipCode)
	assert.Equal(t, "11144477735", addr.CPF)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A conditional update that matches no row (nonexistent id or another
// user's id) comes back as pgx.ErrNoRows. Both cases are identical by
// construction: the ownership check is inside the WHERE clause.
func TestUpdateAddressForUser_NotOwnedOrMissing(t *testing.T) {
	q, mock := setupQueries(t)

	arg := repository.UpdateAddressParams{
		ID:     uuid.New(),
		UserID: uuid.New(),
	}

	mock.ExpectQuery("UPDATE shipping_addresses").
		WithArgs(
			arg.ID, arg.UserID, arg.RecipientName, arg.Street, arg.Number,
			arg.Complement, arg.Neighborhood, arg.City, arg.State,
			arg.ZipCode, arg.Country, arg.Phone, arg.Email, arg.CPF,
		).
		WillReturnRows(pgxmock.NewRows(addressColumns()))

	_, err := q.UpdateAddressForUser(context.Background(), arg)
	assert.True(t, errors.Is(err, pgx.ErrNoRows))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAddressForUser_Success(t *testing.T) {
	q, mock := setupQueries(t)

	userID := uuid.New()
	addressID := uuid.New()
	now := time.Now()
	create := sampleAddressParams(userID)
	arg := repository.UpdateAddressParams{
		ID:            addressID,
		UserID:        userID,
		RecipientName: create.RecipientName,
		Street:        create.Street,
		Number:        "200",
		Complement:    create.Complement,
		Neighborhood:  create.Neighborhood,
		City:          create.City,
		State:         create.State,
		ZipCode:       create.ZipCode,
		Country:       create.Country,
		Phone:         create.Phone,
		Email:         create.Email,
		CPF:           create.CPF,
	}

	mock.ExpectQuery("UPDATE shipping_addresses").
		WithArgs(
			arg.ID, arg.UserID, arg.RecipientName, arg.Street, arg.Number,
			arg.Complement, arg.Neighborhood, arg.City, arg.State,
			arg.ZipCode, arg.Country, arg.Phone, arg.Email, arg.CPF,
		).
		WillReturnRows(pgxmock.NewRows(addressColumns()).AddRow(
			addressID, userID, arg.RecipientName, arg.Street, arg.Number,
			arg.Complement, arg.Neighborhood, arg.City, arg.State,
			arg.ZipCode, arg.Country, arg.Phone, arg.Email, arg.CPF,
			now, now,
		))

	addr, err := q.UpdateAddressForUser(context.Background(), arg)
	require.NoError(t, err)
	assert.Equal(t, "200", addr.Number)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAddressesForUser_Empty(t *testing.T) {
	q, mock := setupQueries(t)

	userID := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM shipping_addresses").
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows(addressColumns()))

	addresses, err := q.ListAddressesForUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, addresses)
	assert.NoError(t, mock.ExpectationsWereMet())
}
