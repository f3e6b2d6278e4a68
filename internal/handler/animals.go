package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/see-paw/backend-sub005/internal/domain"
)

func (h *Handler) CreateAnimal(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ShelterID   int64      `json:"shelterID" validate:"required"`
		Name        string     `json:"name" validate:"required"`
		Species     string     `json:"species" validate:"required"`
		Breed       string     `json:"breed"`
		Sex         string     `json:"sex" validate:"required,oneof=雄性 雌性"`
		BirthDate   *time.Time `json:"birthDate"`
		Sterilized  bool       `json:"sterilized"`
		Description string     `json:"description"`
		IsAdoptable bool       `json:"isAdoptable"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	animal := &domain.Animal{
		ShelterID:   req.ShelterID,
		Name:        req.Name,
		Species:     req.Species,
		Breed:       req.Breed,
		Sex:         req.Sex,
		BirthDate:   req.BirthDate,
		Sterilized:  req.Sterilized,
		Description: req.Description,
		IsAdoptable: req.IsAdoptable,
	}

	if err := h.repository.CreateAnimal(animal); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch {
			case pgErr.ConstraintName == "animals_shelter_id_fkey":
				h.badRequest(w, r, errors.New("收容所不存在"))
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "动物创建成功", animal)
}

func (h *Handler) GetAllAnimals(w http.ResponseWriter, r *http.Request) {
	// 可选的 shelterID 和 adoptable 查询参数用于过滤
	var shelterID int64
	if shelterIDParam := r.URL.Query().Get("shelterID"); shelterIDParam != "" {
		parsed, err := strconv.ParseInt(shelterIDParam, 10, 64)
		if err != nil {
			h.errorResponse(w, r, "收容所ID无效")
			return
		}
		shelterID = parsed
	}

	adoptableOnly := r.URL.Query().Get("adoptable") == "true"

	animals, err := h.repository.GetAllAnimals(shelterID, adoptableOnly)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取动物列表成功", animals)
}

func (h *Handler) GetAnimal(w http.ResponseWriter, r *http.Request) {
	animal := r.Context().Value(AnimalCtx).(*domain.Animal)
	h.successResponse(w, r, "获取动物信息成功", animal)
}

func (h *Handler) UpdateAnimal(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        *string    `json:"name"`
		Species     *string    `json:"species"`
		Breed       *string    `json:"breed"`
		Sex         *string    `json:"sex" validate:"omitempty,oneof=雄性 雌性"`
		BirthDate   *time.Time `json:"birthDate"`
		Sterilized  *bool      `json:"sterilized"`
		Description *string    `json:"description"`
		IsAdoptable *bool      `json:"isAdoptable"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	animal := r.Context().Value(AnimalCtx).(*domain.Animal)

	if req.Name != nil {
		animal.Name = *req.Name
	}
	if req.Species != nil {
		animal.Species = *req.Species
	}
	if req.Breed != nil {
		animal.Breed = *req.Breed
	}
	if req.Sex != nil {
		animal.Sex = *req.Sex
	}
	if req.BirthDate != nil {
		animal.BirthDate = req.BirthDate
	}
	if req.Sterilized != nil {
		animal.Sterilized = *req.Sterilized
	}
	if req.Description != nil {
		animal.Description = *req.Description
	}
	if req.IsAdoptable != nil {
		animal.IsAdoptable = *req.IsAdoptable
	}

	if err := h.repository.UpdateAnimal(animal); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "更新动物信息失败，请重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "更新动物信息成功", animal)
}

func (h *Handler) DeleteAnimal(w http.ResponseWriter, r *http.Request) {
	animal := r.Context().Value(AnimalCtx).(*domain.Animal)

	if err := h.repository.DeleteAnimal(animal.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除动物成功", nil)
}
