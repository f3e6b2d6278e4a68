package schedule

import (
	"sort"
	"time"

	"github.com/see-paw/backend-sub005/internal/domain"
)

// WeeklyFreeRanges 根据已占用的时段计算从 weekStart 起连续 7 天中每天的空闲区间。
// occupied 必须是已经过 Normalize 处理的时段（单日、已夹取），这里不会重新整理，
// 传入未整理的时段属于调用方错误，结果未定义。
//
// 对每一天：把当天的占用时段按起始时刻稳定排序后，从开放时间开始从左往右扫描，
// 每遇到一个起始时刻晚于游标的占用时段就产出一个空闲区间，随后把游标推进到
// max(游标, 占用时段结束时刻)，因此互相重叠的占用时段也能被正确合并；
// 扫描结束后若游标仍早于关闭时间，补上最后一个空闲区间。
// 当天没有任何占用时段时，产出覆盖整个开放窗口的单个区间；
// 占用时段铺满整个窗口时，当天产出零个区间。
//
// 输出中同一天的区间互不重叠、按起始时刻升序，并且与占用时段一起
// 恰好铺满当天的 [opening, closing) 窗口。
func WeeklyFreeRanges(occupied []domain.Slot, opening, closing time.Duration, weekStart time.Time) []domain.TimeBlock {
	grouped := groupSlotsByDate(occupied)

	blocks := make([]domain.TimeBlock, 0)
	firstDay := startOfDay(weekStart)

	for i := 0; i < DaysPerWeek; i++ {
		day := firstDay.AddDate(0, 0, i)

		daySlots := grouped[keyOf(day)]
		sort.SliceStable(daySlots, func(a, b int) bool {
			return daySlots[a].StartTime.Before(daySlots[b].StartTime)
		})

		cursor := day.Add(opening)
		windowEnd := day.Add(closing)

		for _, slot := range daySlots {
			if slot.StartTime.After(cursor) {
				blocks = append(blocks, domain.TimeBlock{
					Date:      day,
					StartTime: cursor,
					EndTime:   slot.StartTime,
				})
			}
			if slot.EndTime.After(cursor) {
				cursor = slot.EndTime
			}
		}

		if cursor.Before(windowEnd) {
			blocks = append(blocks, domain.TimeBlock{
				Date:      day,
				StartTime: cursor,
				EndTime:   windowEnd,
			})
		}
	}

	return blocks
}
