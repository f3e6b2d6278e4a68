package schedule

import (
	"sort"
	"time"

	"github.com/see-paw/backend-sub005/internal/domain"
)

// Normalize 把原始时段整理成以自然日为边界、且落在开放时间窗口内的时段序列：
//  1. 跨天的时段按自然日拆分成多段，每段继承原时段的 Kind 和 Status
//  2. 每段的起止时间被夹到当天的 [开放时间, 关闭时间] 之内
//  3. 夹完之后起始时间不早于结束时间的段直接丢弃（完全在窗口外或长度为零）
//  4. 稳定排序：先按日期再按起始时刻升序，起始时刻相同时保持输入顺序
//
// opening 和 closing 是距当天零点的偏移量，调用方必须保证 opening < closing。
// 纯函数，不修改入参，相同输入始终得到相同输出。
// 起始时间晚于结束时间的非法时段不会报错，会在第 3 步被丢弃，
// 需要严格校验的调用方应当在上游自行校验。
func Normalize(slots []domain.Slot, opening, closing time.Duration) []domain.Slot {
	segments := make([]domain.Slot, 0, len(slots))

	for _, slot := range slots {
		for day := startOfDay(slot.StartTime); day.Before(slot.EndTime); day = day.AddDate(0, 0, 1) {
			segStart := maxTime(slot.StartTime, day.Add(opening))
			segEnd := minTime(slot.EndTime, day.Add(closing))

			if !segStart.Before(segEnd) {
				continue
			}

			seg := slot
			seg.StartTime = segStart
			seg.EndTime = segEnd
			segments = append(segments, seg)
		}
	}

	sort.SliceStable(segments, func(i, j int) bool {
		return segments[i].StartTime.Before(segments[j].StartTime)
	})

	return segments
}
