package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/see-paw/backend-sub005/internal/domain"
	"github.com/see-paw/backend-sub005/internal/utils"
)

func (h *Handler) CreateShelter(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name" validate:"required"`
		City        string `json:"city" validate:"required"`
		Address     string `json:"address" validate:"required"`
		Phone       string `json:"phone" validate:"required"`
		Description string `json:"description"`
		OpeningTime string `json:"openingTime" validate:"required"`
		ClosingTime string `json:"closingTime" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	shelter := &domain.Shelter{
		Name:        req.Name,
		City:        req.City,
		Address:     req.Address,
		Phone:       req.Phone,
		Description: req.Description,
		OpeningTime: req.OpeningTime,
		ClosingTime: req.ClosingTime,
	}

	if err := utils.ValidateShelterHours(shelter); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	if err := h.repository.CreateShelter(shelter); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "收容所创建成功", shelter)
}

func (h *Handler) GetAllShelters(w http.ResponseWriter, r *http.Request) {
	shelters, err := h.repository.GetAllShelters()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取收容所列表成功", shelters)
}

func (h *Handler) GetShelter(w http.ResponseWriter, r *http.Request) {
	shelter := r.Context().Value(ShelterCtx).(*domain.Shelter)
	h.successResponse(w, r, "获取收容所信息成功", shelter)
}

func (h *Handler) UpdateShelter(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        *string `json:"name"`
		City        *string `json:"city"`
		Address     *string `json:"address"`
		Phone       *string `json:"phone"`
		Description *string `json:"description"`
		OpeningTime *string `json:"openingTime"`
		ClosingTime *string `json:"closingTime"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	shelter := r.Context().Value(ShelterCtx).(*domain.Shelter)

	if req.Name != nil {
		shelter.Name = *req.Name
	}
	if req.City != nil {
		shelter.City = *req.City
	}
	if req.Address != nil {
		shelter.Address = *req.Address
	}
	if req.Phone != nil {
		shelter.Phone = *req.Phone
	}
	if req.Description != nil {
		shelter.Description = *req.Description
	}
	if req.OpeningTime != nil {
		shelter.OpeningTime = *req.OpeningTime
	}
	if req.ClosingTime != nil {
		shelter.ClosingTime = *req.ClosingTime
	}

	if err := utils.ValidateShelterHours(shelter); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	if err := h.repository.UpdateShelter(shelter); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "更新收容所信息失败，请重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "更新收容所信息成功", shelter)
}

func (h *Handler) DeleteShelter(w http.ResponseWriter, r *http.Request) {
	shelter := r.Context().Value(ShelterCtx).(*domain.Shelter)

	if err := h.repository.DeleteShelter(shelter.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除收容所成功", nil)
}

func (h *Handler) GetShelterUnavailabilities(w http.ResponseWriter, r *http.Request) {
	shelter := r.Context().Value(ShelterCtx).(*domain.Shelter)

	// 可选的 from 和 to 查询参数用于限制时间范围，格式为 RFC 3339
	var from, to time.Time
	if fromParam := r.URL.Query().Get("from"); fromParam != "" {
		parsed, err := time.Parse(time.RFC3339, fromParam)
		if err != nil {
			h.errorResponse(w, r, "from 参数格式错误")
			return
		}
		from = parsed
	}
	if toParam := r.URL.Query().Get("to"); toParam != "" {
		parsed, err := time.Parse(time.RFC3339, toParam)
		if err != nil {
			h.errorResponse(w, r, "to 参数格式错误")
			return
		}
		to = parsed
	}

	slots, err := h.repository.GetShelterUnavailabilities(shelter.ID, from, to)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取收容所不可用时段成功", slots)
}

func (h *Handler) CreateShelterUnavailability(w http.ResponseWriter, r *http.Request) {
	shelter := r.Context().Value(ShelterCtx).(*domain.Shelter)

	var req struct {
		Reason    string    `json:"reason" validate:"required"`
		StartTime time.Time `json:"startTime" validate:"required"`
		EndTime   time.Time `json:"endTime" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// 不可用时段允许跨天，只要求结束时间晚于开始时间
	if !req.EndTime.After(req.StartTime) {
		h.errorResponse(w, r, "结束时间必须晚于开始时间")
		return
	}

	slot := domain.NewShelterUnavailabilitySlot(shelter.ID, req.Reason, req.StartTime, req.EndTime)
	if err := h.repository.CreateSlot(slot); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "收容所不可用时段创建成功", slot)
}

func (h *Handler) DeleteShelterUnavailability(w http.ResponseWriter, r *http.Request) {
	shelter := r.Context().Value(ShelterCtx).(*domain.Shelter)

	slotIDParam := chi.URLParam(r, "slotID")
	slotID, err := strconv.ParseInt(slotIDParam, 10, 64)
	if err != nil {
		h.errorResponse(w, r, "时段ID无效")
		return
	}

	slot, err := h.repository.GetSlotByID(slotID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "不可用时段不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if slot.Kind != domain.SlotKindShelterUnavailable || slot.ShelterID != shelter.ID {
		h.errorResponse(w, r, "不可用时段不存在")
		return
	}

	if err := h.repository.DeleteSlot(slot.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除收容所不可用时段成功", nil)
}
