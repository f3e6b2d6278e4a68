package repository

import (
	"context"
	"time"

	"github.com/see-paw/backend-sub005/internal/domain"
)

func (r *Repository) CreateAnimal(animal *domain.Animal) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO animals (shelter_id, name, species, breed, sex, birth_date, sterilized, description, is_adoptable)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, version
	`

	args := []any{animal.ShelterID, animal.Name, animal.Species, animal.Breed, animal.Sex, animal.BirthDate, animal.Sterilized, animal.Description, animal.IsAdoptable}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&animal.ID, &animal.CreatedAt, &animal.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAnimalByID(id int64) (*domain.Animal, error) {
	query := `
		SELECT shelter_id, name, species, breed, sex, birth_date, sterilized, description, is_adoptable, created_at, version
		FROM animals WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	animal := &domain.Animal{
		ID: id,
	}

	dst := []any{&animal.ShelterID, &animal.Name, &animal.Species, &animal.Breed, &animal.Sex, &animal.BirthDate, &animal.Sterilized, &animal.Description, &animal.IsAdoptable, &animal.CreatedAt, &animal.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return animal, nil
}

// GetAllAnimals 获取动物列表，shelterID 为 0 时不按收容所过滤，
// adoptableOnly 为 true 时只返回可领养的动物
func (r *Repository) GetAllAnimals(shelterID int64, adoptableOnly bool) ([]*domain.Animal, error) {
	query := `
		SELECT id, shelter_id, name, species, breed, sex, birth_date, sterilized, description, is_adoptable, created_at, version
		FROM animals
		WHERE ($1 = 0 OR shelter_id = $1) AND (NOT $2 OR is_adoptable)
		ORDER BY id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, shelterID, adoptableOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	animals := make([]*domain.Animal, 0)
	for rows.Next() {
		animal := &domain.Animal{}
		dst := []any{&animal.ID, &animal.ShelterID, &animal.Name, &animal.Species, &animal.Breed, &animal.Sex, &animal.BirthDate, &animal.Sterilized, &animal.Description, &animal.IsAdoptable, &animal.CreatedAt, &animal.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		animals = append(animals, animal)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return animals, nil
}

func (r *Repository) UpdateAnimal(animal *domain.Animal) error {
	query := `
		UPDATE animals
		SET
			name = $1,
			species = $2,
			breed = $3,
			sex = $4,
			birth_date = $5,
			sterilized = $6,
			description = $7,
			is_adoptable = $8,
			version = version + 1
		WHERE id = $9 AND version = $10
		RETURNING created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{animal.Name, animal.Species, animal.Breed, animal.Sex, animal.BirthDate, animal.Sterilized, animal.Description, animal.IsAdoptable, animal.ID, animal.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&animal.CreatedAt, &animal.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteAnimal(id int64) error {
	query := `
		DELETE FROM animals WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
