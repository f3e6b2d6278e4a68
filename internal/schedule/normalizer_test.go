package schedule

import (
	"testing"
	"time"

	"github.com/see-paw/backend-sub005/internal/domain"
)

var (
	day1 = time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC) // 周一
	day2 = day1.AddDate(0, 0, 1)
)

func at(day time.Time, hour, minute int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func slotAt(start, end time.Time) domain.Slot {
	return domain.Slot{
		Kind:      domain.SlotKindActivity,
		Status:    domain.SlotStatusReserved,
		StartTime: start,
		EndTime:   end,
	}
}

func TestNormalize_Clamping(t *testing.T) {
	slots := []domain.Slot{slotAt(at(day1, 7, 0), at(day1, 9, 30))}

	out := Normalize(slots, 8*time.Hour, 20*time.Hour)
	if len(out) != 1 {
		t.Fatalf("期望 1 个时段，实际 %d 个", len(out))
	}
	if !out[0].StartTime.Equal(at(day1, 8, 0)) {
		t.Fatalf("起始时间应被夹到 08:00，实际 %s", out[0].StartTime)
	}
	if !out[0].EndTime.Equal(at(day1, 9, 30)) {
		t.Fatalf("结束时间不应改变，实际 %s", out[0].EndTime)
	}
}

func TestNormalize_MultiDaySplitOutsideWindow(t *testing.T) {
	// 22:00 跨天到次日 02:00，两段都完全落在开放窗口之外，夹完后长度为零，应全部丢弃
	slots := []domain.Slot{slotAt(at(day1, 22, 0), at(day2, 2, 0))}

	out := Normalize(slots, 8*time.Hour, 20*time.Hour)
	if len(out) != 0 {
		t.Fatalf("期望 0 个时段，实际 %d 个", len(out))
	}
}

func TestNormalize_MultiDaySplitWithinWindow(t *testing.T) {
	slots := []domain.Slot{slotAt(at(day1, 10, 0), at(day2, 15, 0))}

	out := Normalize(slots, 8*time.Hour, 20*time.Hour)
	if len(out) != 2 {
		t.Fatalf("期望拆分成 2 个时段，实际 %d 个", len(out))
	}
	if !out[0].StartTime.Equal(at(day1, 10, 0)) || !out[0].EndTime.Equal(at(day1, 20, 0)) {
		t.Fatalf("第一段应为 [10:00, 20:00)，实际 [%s, %s)", out[0].StartTime, out[0].EndTime)
	}
	if !out[1].StartTime.Equal(at(day2, 8, 0)) || !out[1].EndTime.Equal(at(day2, 15, 0)) {
		t.Fatalf("第二段应为次日 [08:00, 15:00)，实际 [%s, %s)", out[1].StartTime, out[1].EndTime)
	}
	for _, seg := range out {
		if !startOfDay(seg.StartTime).Equal(startOfDay(seg.EndTime.Add(-time.Nanosecond))) {
			t.Fatalf("拆分后的时段不应跨天：[%s, %s)", seg.StartTime, seg.EndTime)
		}
	}
}

func TestNormalize_DropsDegenerateSlots(t *testing.T) {
	slots := []domain.Slot{
		slotAt(at(day1, 12, 0), at(day1, 12, 0)), // 零长度
		slotAt(at(day1, 14, 0), at(day1, 13, 0)), // 起始晚于结束的非法输入
		slotAt(at(day1, 5, 0), at(day1, 7, 0)),   // 完全在窗口之前
		slotAt(at(day1, 21, 0), at(day1, 23, 0)), // 完全在窗口之后
	}

	out := Normalize(slots, 8*time.Hour, 20*time.Hour)
	if len(out) != 0 {
		t.Fatalf("所有退化时段都应被丢弃，实际保留了 %d 个", len(out))
	}
}

func TestNormalize_StableSortKeepsInputOrderOnTies(t *testing.T) {
	first := slotAt(at(day1, 9, 0), at(day1, 10, 0))
	second := slotAt(at(day1, 9, 0), at(day1, 11, 0))
	second.Kind = domain.SlotKindShelterUnavailable
	second.Status = domain.SlotStatusUnavailable

	// 故意把晚一天的时段放在最前面
	out := Normalize([]domain.Slot{slotAt(at(day2, 9, 0), at(day2, 10, 0)), first, second}, 8*time.Hour, 20*time.Hour)
	if len(out) != 3 {
		t.Fatalf("期望 3 个时段，实际 %d 个", len(out))
	}
	if !out[2].StartTime.Equal(at(day2, 9, 0)) {
		t.Fatalf("应先按日期再按起始时刻排序，最后一段应在次日")
	}
	if out[0].Kind != domain.SlotKindActivity || out[1].Kind != domain.SlotKindShelterUnavailable {
		t.Fatalf("起始时刻相同的时段应保持输入顺序")
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	slots := []domain.Slot{
		slotAt(at(day1, 7, 0), at(day1, 9, 30)),
		slotAt(at(day1, 22, 0), at(day2, 15, 0)),
		slotAt(at(day2, 10, 0), at(day2, 11, 0)),
	}

	once := Normalize(slots, 8*time.Hour, 20*time.Hour)
	twice := Normalize(once, 8*time.Hour, 20*time.Hour)

	if len(once) != len(twice) {
		t.Fatalf("再次整理后时段数量不应改变：%d != %d", len(once), len(twice))
	}
	for i := range once {
		if !once[i].StartTime.Equal(twice[i].StartTime) || !once[i].EndTime.Equal(twice[i].EndTime) {
			t.Fatalf("第 %d 个时段在再次整理后发生了变化", i)
		}
	}
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	original := slotAt(at(day1, 7, 0), at(day1, 9, 30))
	slots := []domain.Slot{original}

	_ = Normalize(slots, 8*time.Hour, 20*time.Hour)

	if !slots[0].StartTime.Equal(original.StartTime) || !slots[0].EndTime.Equal(original.EndTime) {
		t.Fatalf("Normalize 不应修改入参")
	}
}
