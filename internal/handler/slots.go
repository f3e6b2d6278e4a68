package handler

import (
	"net/http"
	"time"

	"github.com/see-paw/backend-sub005/internal/domain"
	"github.com/see-paw/backend-sub005/internal/utils"
)

func (h *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	animal := r.Context().Value(AnimalCtx).(*domain.Animal)

	var req struct {
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

	if !animal.IsAdoptable {
		h.errorResponse(w, r, "该动物暂不可预约")
		return
	}

	shelter, err := h.repository.GetShelterByID(animal.ShelterID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	opening, err := utils.ParseClock(shelter.OpeningTime)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	closing, err := utils.ParseClock(shelter.ClosingTime)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if err := utils.ValidateReservationInterval(req.StartTime, req.EndTime, opening, closing); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	if req.StartTime.Before(time.Now()) {
		h.errorResponse(w, r, "不能预约过去的时段")
		return
	}

	// 检查与同一动物的已有预约以及收容所不可用时段是否冲突
	conflicts, err := h.repository.CountConflictingSlots(animal.ID, shelter.ID, req.StartTime, req.EndTime)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if conflicts > 0 {
		h.errorResponse(w, r, "该时段已被占用")
		return
	}

	slot := domain.NewActivitySlot(animal.ID, shelter.ID, myInfo.ID, req.StartTime, req.EndTime)
	if err := h.repository.CreateSlot(slot); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// 向领养人发送预约确认邮件
	mailMessage := domain.MailMessage{
		Type: "reservation_confirmed",
		To:   myInfo.Email,
		Data: domain.ReservationConfirmedMailData{
			FullName:    myInfo.FullName,
			AnimalName:  animal.Name,
			ShelterName: shelter.Name,
			StartTime:   slot.StartTime.Format("2006-01-02 15:04"),
			EndTime:     slot.EndTime.Format("2006-01-02 15:04"),
		},
	}

	if err := h.publishMail(mailMessage); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "预约成功", slot)
}

func (h *Handler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	slot := r.Context().Value(SlotCtx).(*domain.Slot)

	// 只有预约本人、收容所员工和管理员可以取消预约
	isOwner := slot.UserID != nil && *slot.UserID == myInfo.ID
	isStaff := myInfo.Role == domain.RoleStaff || myInfo.Role == domain.RoleAdmin
	if !isOwner && !isStaff {
		h.errorResponse(w, r, "权限不足")
		return
	}

	if err := h.repository.DeleteSlot(slot.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "取消预约成功", nil)
}

func (h *Handler) GetMyReservations(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	slots, err := h.repository.GetReservedSlotsByUser(myInfo.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取预约列表成功", slots)
}
