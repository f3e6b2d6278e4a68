package schedule

import (
	"time"

	"github.com/see-paw/backend-sub005/internal/domain"
)

const DaysPerWeek = 7

// dateKey 用自然日作为分组的键，避免直接用 time.Time 做键时受时区和单调时钟的影响
type dateKey struct {
	year  int
	month time.Month
	day   int
}

func keyOf(t time.Time) dateKey {
	y, m, d := t.Date()
	return dateKey{year: y, month: m, day: d}
}

// startOfDay 返回 t 所在自然日的零点
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

// groupSlotsByDate 按自然日分组，组内保持输入顺序
func groupSlotsByDate(slots []domain.Slot) map[dateKey][]domain.Slot {
	grouped := make(map[dateKey][]domain.Slot)
	for _, slot := range slots {
		k := keyOf(slot.StartTime)
		grouped[k] = append(grouped[k], slot)
	}
	return grouped
}
