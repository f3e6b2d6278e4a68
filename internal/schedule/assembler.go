package schedule

import (
	"time"

	"github.com/see-paw/backend-sub005/internal/domain"
)

// AssembleWeek 把已预约时段、收容所不可用时段和空闲区间按自然日归类，
// 组装成从 startDate 起连续 7 天的动物周日程。
// 无论输入多么稀疏，输出都恰好包含 7 个按日期升序排列的 DailySchedule，
// 没有数据的那天得到空列表而不是 nil。
// 这里只做聚合，不做任何过滤、排序或校验：available 的质量由
// Normalize 和 WeeklyFreeRanges 保证，reserved 和 unavailable 由调用方保证。
func AssembleWeek(
	animal *domain.Animal,
	shelter *domain.Shelter,
	reserved []domain.Slot,
	unavailable []domain.Slot,
	available []domain.TimeBlock,
	startDate time.Time,
) *domain.AnimalWeeklySchedule {
	reservedByDate := groupSlotsByDate(reserved)
	unavailableByDate := groupSlotsByDate(unavailable)

	availableByDate := make(map[dateKey][]domain.TimeBlock)
	for _, block := range available {
		k := keyOf(block.Date)
		availableByDate[k] = append(availableByDate[k], block)
	}

	firstDay := startOfDay(startDate)
	days := make([]domain.DailySchedule, 0, DaysPerWeek)

	for i := 0; i < DaysPerWeek; i++ {
		day := firstDay.AddDate(0, 0, i)
		k := keyOf(day)

		daily := domain.DailySchedule{
			Date:             day,
			AvailableSlots:   availableByDate[k],
			ReservedSlots:    reservedByDate[k],
			UnavailableSlots: unavailableByDate[k],
		}

		if daily.AvailableSlots == nil {
			daily.AvailableSlots = []domain.TimeBlock{}
		}
		if daily.ReservedSlots == nil {
			daily.ReservedSlots = []domain.Slot{}
		}
		if daily.UnavailableSlots == nil {
			daily.UnavailableSlots = []domain.Slot{}
		}

		days = append(days, daily)
	}

	return &domain.AnimalWeeklySchedule{
		Animal:    animal,
		Shelter:   shelter,
		StartDate: firstDay,
		Days:      days,
	}
}
