package schedule

import (
	"sort"
	"testing"
	"time"

	"github.com/see-paw/backend-sub005/internal/domain"
)

func blocksOn(blocks []domain.TimeBlock, day time.Time) []domain.TimeBlock {
	out := make([]domain.TimeBlock, 0)
	for _, b := range blocks {
		if b.Date.Equal(day) {
			out = append(out, b)
		}
	}
	return out
}

func TestWeeklyFreeRanges_OverlapMerge(t *testing.T) {
	// 两个互相重叠的占用时段 [09:00,11:00) 和 [10:00,12:00)
	// 在 08:00~18:00 的窗口下应只产出 [08:00,09:00) 和 [12:00,18:00) 两个空闲区间
	occupied := []domain.Slot{
		slotAt(at(day1, 9, 0), at(day1, 11, 0)),
		slotAt(at(day1, 10, 0), at(day1, 12, 0)),
	}

	blocks := WeeklyFreeRanges(occupied, 8*time.Hour, 18*time.Hour, day1)

	got := blocksOn(blocks, day1)
	if len(got) != 2 {
		t.Fatalf("期望当天 2 个空闲区间，实际 %d 个", len(got))
	}
	if !got[0].StartTime.Equal(at(day1, 8, 0)) || !got[0].EndTime.Equal(at(day1, 9, 0)) {
		t.Fatalf("第一个空闲区间应为 [08:00, 09:00)，实际 [%s, %s)", got[0].StartTime, got[0].EndTime)
	}
	if !got[1].StartTime.Equal(at(day1, 12, 0)) || !got[1].EndTime.Equal(at(day1, 18, 0)) {
		t.Fatalf("第二个空闲区间应为 [12:00, 18:00)，实际 [%s, %s)", got[1].StartTime, got[1].EndTime)
	}
}

func TestWeeklyFreeRanges_EmptyDays(t *testing.T) {
	blocks := WeeklyFreeRanges(nil, 9*time.Hour, 17*time.Hour, day1)

	if len(blocks) != DaysPerWeek {
		t.Fatalf("没有占用时段时每天应恰好产出一个区间，期望 %d 个，实际 %d 个", DaysPerWeek, len(blocks))
	}
	for i, b := range blocks {
		day := day1.AddDate(0, 0, i)
		if !b.Date.Equal(day) {
			t.Fatalf("第 %d 个区间的日期应为 %s，实际 %s", i, day, b.Date)
		}
		if !b.StartTime.Equal(at(day, 9, 0)) || !b.EndTime.Equal(at(day, 17, 0)) {
			t.Fatalf("第 %d 个区间应覆盖整个开放窗口，实际 [%s, %s)", i, b.StartTime, b.EndTime)
		}
	}
}

func TestWeeklyFreeRanges_FullyBookedDay(t *testing.T) {
	occupied := []domain.Slot{slotAt(at(day1, 9, 0), at(day1, 17, 0))}

	blocks := WeeklyFreeRanges(occupied, 9*time.Hour, 17*time.Hour, day1)

	if got := blocksOn(blocks, day1); len(got) != 0 {
		t.Fatalf("被占满的一天不应产出任何空闲区间，实际产出 %d 个", len(got))
	}
	// 其余六天仍应各有一个完整区间
	if len(blocks) != DaysPerWeek-1 {
		t.Fatalf("期望其余 %d 天各产出一个区间，实际共 %d 个", DaysPerWeek-1, len(blocks))
	}
}

func TestWeeklyFreeRanges_TailGap(t *testing.T) {
	occupied := []domain.Slot{slotAt(at(day1, 9, 0), at(day1, 10, 0))}

	got := blocksOn(WeeklyFreeRanges(occupied, 9*time.Hour, 17*time.Hour, day1), day1)
	if len(got) != 1 {
		t.Fatalf("期望 1 个空闲区间，实际 %d 个", len(got))
	}
	if !got[0].StartTime.Equal(at(day1, 10, 0)) || !got[0].EndTime.Equal(at(day1, 17, 0)) {
		t.Fatalf("末尾空闲区间应为 [10:00, 17:00)，实际 [%s, %s)", got[0].StartTime, got[0].EndTime)
	}
}

// 分割性质：任意一天的空闲区间和占用时段合在一起恰好铺满 [opening, closing)，
// 既没有缺口也没有重复
func TestWeeklyFreeRanges_PartitionProperty(t *testing.T) {
	opening := 8 * time.Hour
	closing := 18 * time.Hour

	occupied := Normalize([]domain.Slot{
		slotAt(at(day1, 9, 0), at(day1, 11, 0)),
		slotAt(at(day1, 10, 0), at(day1, 12, 0)), // 与上一个重叠
		slotAt(at(day1, 15, 30), at(day1, 16, 0)),
		slotAt(at(day2, 8, 0), at(day2, 18, 0)), // 铺满一整天
		slotAt(at(day1.AddDate(0, 0, 2), 17, 45), at(day1.AddDate(0, 0, 2), 18, 0)),
	}, opening, closing)

	blocks := WeeklyFreeRanges(occupied, opening, closing, day1)

	for i := 0; i < DaysPerWeek; i++ {
		day := day1.AddDate(0, 0, i)

		type interval struct{ start, end time.Time }
		intervals := make([]interval, 0)
		for _, b := range blocksOn(blocks, day) {
			intervals = append(intervals, interval{b.StartTime, b.EndTime})
		}
		for _, s := range occupied {
			if startOfDay(s.StartTime).Equal(day) {
				intervals = append(intervals, interval{s.StartTime, s.EndTime})
			}
		}

		sort.Slice(intervals, func(a, b int) bool { return intervals[a].start.Before(intervals[b].start) })

		cursor := day.Add(opening)
		for _, iv := range intervals {
			if iv.start.After(cursor) {
				t.Fatalf("%s 在 %s 和 %s 之间存在缺口", day.Format("2006-01-02"), cursor, iv.start)
			}
			if iv.end.After(cursor) {
				cursor = iv.end
			}
		}
		if !cursor.Equal(day.Add(closing)) {
			t.Fatalf("%s 的覆盖只到 %s，没有到达关闭时间", day.Format("2006-01-02"), cursor)
		}

		// 空闲区间之间互不重叠且均为正长度
		free := blocksOn(blocks, day)
		for j, b := range free {
			if !b.StartTime.Before(b.EndTime) {
				t.Fatalf("空闲区间长度必须为正：[%s, %s)", b.StartTime, b.EndTime)
			}
			if j > 0 && free[j-1].EndTime.After(b.StartTime) {
				t.Fatalf("空闲区间之间不应重叠")
			}
		}
	}
}
