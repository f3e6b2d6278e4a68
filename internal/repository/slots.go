package repository

import (
	"context"
	"time"

	"github.com/see-paw/backend-sub005/internal/domain"
)

func (r *Repository) CreateSlot(slot *domain.Slot) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO slots (kind, status, animal_id, shelter_id, user_id, reason, start_time, end_time)
		VALUES ($1, $2, NULLIF($3, 0), $4, $5, $6, $7, $8)
		RETURNING id, created_at, version
	`

	args := []any{slot.Kind, slot.Status, slot.AnimalID, slot.ShelterID, slot.UserID, slot.Reason, slot.StartTime, slot.EndTime}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&slot.ID, &slot.CreatedAt, &slot.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetSlotByID(id int64) (*domain.Slot, error) {
	query := `
		SELECT kind, status, COALESCE(animal_id, 0), shelter_id, user_id, COALESCE(reason, ''), start_time, end_time, created_at, version
		FROM slots WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	slot := &domain.Slot{
		ID: id,
	}

	dst := []any{&slot.Kind, &slot.Status, &slot.AnimalID, &slot.ShelterID, &slot.UserID, &slot.Reason, &slot.StartTime, &slot.EndTime, &slot.CreatedAt, &slot.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return slot, nil
}

// GetReservedSlotsByAnimal 获取某只动物在 [from, to) 内所有已预约的活动时段，
// 左闭右开的相交判断：start_time < to AND end_time > from
func (r *Repository) GetReservedSlotsByAnimal(animalID int64, from, to time.Time) ([]domain.Slot, error) {
	query := `
		SELECT id, kind, status, COALESCE(animal_id, 0), shelter_id, user_id, COALESCE(reason, ''), start_time, end_time, created_at, version
		FROM slots
		WHERE kind = $1 AND status = $2 AND animal_id = $3 AND start_time < $4 AND end_time > $5
		ORDER BY start_time, id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{domain.SlotKindActivity, domain.SlotStatusReserved, animalID, to, from}
	return r.querySlots(ctx, query, args...)
}

// GetShelterUnavailabilities 获取某收容所在 [from, to) 内的所有不可用时段，
// from 和 to 均为零值时返回全部
func (r *Repository) GetShelterUnavailabilities(shelterID int64, from, to time.Time) ([]domain.Slot, error) {
	query := `
		SELECT id, kind, status, COALESCE(animal_id, 0), shelter_id, user_id, COALESCE(reason, ''), start_time, end_time, created_at, version
		FROM slots
		WHERE kind = $1 AND shelter_id = $2 AND ($3::timestamptz IS NULL OR (start_time < $4 AND end_time > $3))
		ORDER BY start_time, id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var fromArg, toArg any
	if !from.IsZero() || !to.IsZero() {
		fromArg, toArg = from, to
	}

	args := []any{domain.SlotKindShelterUnavailable, shelterID, fromArg, toArg}
	return r.querySlots(ctx, query, args...)
}

func (r *Repository) GetReservedSlotsByUser(userID int64) ([]domain.Slot, error) {
	query := `
		SELECT id, kind, status, COALESCE(animal_id, 0), shelter_id, user_id, COALESCE(reason, ''), start_time, end_time, created_at, version
		FROM slots
		WHERE kind = $1 AND status = $2 AND user_id = $3
		ORDER BY start_time, id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{domain.SlotKindActivity, domain.SlotStatusReserved, userID}
	return r.querySlots(ctx, query, args...)
}

// CountConflictingSlots 统计与 [start, end) 相交的占用时段数量：
// 同一只动物的已预约活动时段，以及该收容所的不可用时段
// 相交采用严格不等式，首尾相接不算冲突
func (r *Repository) CountConflictingSlots(animalID, shelterID int64, start, end time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM slots
		WHERE start_time < $1 AND end_time > $2
		  AND (
		    (kind = $3 AND status = $4 AND animal_id = $5)
		    OR (kind = $6 AND shelter_id = $7)
		  )
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	count := 0
	args := []any{end, start, domain.SlotKindActivity, domain.SlotStatusReserved, animalID, domain.SlotKindShelterUnavailable, shelterID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *Repository) DeleteSlot(id int64) error {
	query := `
		DELETE FROM slots WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) querySlots(ctx context.Context, query string, args ...any) ([]domain.Slot, error) {
	rows, err := r.dbpool.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	slots := make([]domain.Slot, 0)
	for rows.Next() {
		slot := domain.Slot{}
		dst := []any{&slot.ID, &slot.Kind, &slot.Status, &slot.AnimalID, &slot.ShelterID, &slot.UserID, &slot.Reason, &slot.StartTime, &slot.EndTime, &slot.CreatedAt, &slot.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return slots, nil
}
