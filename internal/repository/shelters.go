package repository

import (
	"context"
	"time"

	"github.com/see-paw/backend-sub005/internal/domain"
)

func (r *Repository) CreateShelter(shelter *domain.Shelter) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO shelters (name, city, address, phone, description, opening_time, closing_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, version
	`

	args := []any{shelter.Name, shelter.City, shelter.Address, shelter.Phone, shelter.Description, shelter.OpeningTime, shelter.ClosingTime}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&shelter.ID, &shelter.CreatedAt, &shelter.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetShelterByID(id int64) (*domain.Shelter, error) {
	query := `
		SELECT name, city, address, phone, description, opening_time, closing_time, created_at, version
		FROM shelters WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	shelter := &domain.Shelter{
		ID: id,
	}

	dst := []any{&shelter.Name, &shelter.City, &shelter.Address, &shelter.Phone, &shelter.Description, &shelter.OpeningTime, &shelter.ClosingTime, &shelter.CreatedAt, &shelter.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return shelter, nil
}

func (r *Repository) GetAllShelters() ([]*domain.Shelter, error) {
	query := `
		SELECT id, name, city, address, phone, description, opening_time, closing_time, created_at, version
		FROM shelters ORDER BY id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shelters := make([]*domain.Shelter, 0)
	for rows.Next() {
		shelter := &domain.Shelter{}
		dst := []any{&shelter.ID, &shelter.Name, &shelter.City, &shelter.Address, &shelter.Phone, &shelter.Description, &shelter.OpeningTime, &shelter.ClosingTime, &shelter.CreatedAt, &shelter.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		shelters = append(shelters, shelter)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shelters, nil
}

func (r *Repository) UpdateShelter(shelter *domain.Shelter) error {
	query := `
		UPDATE shelters
		SET
			name = $1,
			city = $2,
			address = $3,
			phone = $4,
			description = $5,
			opening_time = $6,
			closing_time = $7,
			version = version + 1
		WHERE id = $8 AND version = $9
		RETURNING created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{shelter.Name, shelter.City, shelter.Address, shelter.Phone, shelter.Description, shelter.OpeningTime, shelter.ClosingTime, shelter.ID, shelter.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&shelter.CreatedAt, &shelter.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteShelter(id int64) error {
	query := `
		DELETE FROM shelters WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
