package handler

import (
	"net/http"
	"time"

	"github.com/see-paw/backend-sub005/internal/domain"
	"github.com/see-paw/backend-sub005/internal/schedule"
	"github.com/see-paw/backend-sub005/internal/utils"
)

// GetAnimalWeeklySchedule 返回某只动物一周的日程：
// 已预约时段、收容所不可用时段，以及剩下的空闲可预约区间。
// 可选的 week 查询参数（格式 2006-01-02）指定一周的起始日，
// 缺省时取当前日期所在周的周一。
func (h *Handler) GetAnimalWeeklySchedule(w http.ResponseWriter, r *http.Request) {
	animal := r.Context().Value(AnimalCtx).(*domain.Animal)

	weekStart := utils.MondayOf(time.Now())
	if weekParam := r.URL.Query().Get("week"); weekParam != "" {
		parsed, err := time.Parse("2006-01-02", weekParam)
		if err != nil {
			h.errorResponse(w, r, "week 参数格式错误")
			return
		}
		weekStart = parsed
	}
	weekEnd := weekStart.AddDate(0, 0, schedule.DaysPerWeek)

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

	reserved, err := h.repository.GetReservedSlotsByAnimal(animal.ID, weekStart, weekEnd)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	unavailable, err := h.repository.GetShelterUnavailabilities(shelter.ID, weekStart, weekEnd)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// 先把两类时段整理成夹取在开放窗口内的单日时段，再合并计算空闲区间
	reserved = schedule.Normalize(reserved, opening, closing)
	unavailable = schedule.Normalize(unavailable, opening, closing)

	occupied := make([]domain.Slot, 0, len(reserved)+len(unavailable))
	occupied = append(occupied, reserved...)
	occupied = append(occupied, unavailable...)

	available := schedule.WeeklyFreeRanges(occupied, opening, closing, weekStart)
	weekly := schedule.AssembleWeek(animal, shelter, reserved, unavailable, available, weekStart)

	h.successResponse(w, r, "获取动物周日程成功", weekly)
}
