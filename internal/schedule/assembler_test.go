package schedule

import (
	"testing"

	"github.com/see-paw/backend-sub005/internal/domain"
)

func TestAssembleWeek_AlwaysSevenDays(t *testing.T) {
	animal := &domain.Animal{ID: 1, ShelterID: 2, Name: "旺财"}
	shelter := &domain.Shelter{ID: 2, Name: "测试收容所"}

	ws := AssembleWeek(animal, shelter, nil, nil, nil, day1)

	if len(ws.Days) != DaysPerWeek {
		t.Fatalf("即使输入全空也应恰好返回 %d 天，实际 %d 天", DaysPerWeek, len(ws.Days))
	}
	for i, d := range ws.Days {
		if !d.Date.Equal(day1.AddDate(0, 0, i)) {
			t.Fatalf("第 %d 天的日期不正确：%s", i, d.Date)
		}
		if d.AvailableSlots == nil || d.ReservedSlots == nil || d.UnavailableSlots == nil {
			t.Fatalf("第 %d 天的列表不应为 nil", i)
		}
		if len(d.AvailableSlots) != 0 || len(d.ReservedSlots) != 0 || len(d.UnavailableSlots) != 0 {
			t.Fatalf("输入全空时第 %d 天的列表应为空", i)
		}
	}
	if ws.Animal != animal || ws.Shelter != shelter {
		t.Fatalf("周日程应携带动物和收容所的引用")
	}
	if !ws.StartDate.Equal(day1) {
		t.Fatalf("StartDate 应为 %s，实际 %s", day1, ws.StartDate)
	}
}

func TestAssembleWeek_GroupsByDate(t *testing.T) {
	reserved := []domain.Slot{
		slotAt(at(day2, 9, 0), at(day2, 10, 0)),
		slotAt(at(day2, 14, 0), at(day2, 15, 0)),
	}

	unavailable := []domain.Slot{
		{
			Kind:      domain.SlotKindShelterUnavailable,
			Status:    domain.SlotStatusUnavailable,
			StartTime: at(day1, 8, 0),
			EndTime:   at(day1, 12, 0),
		},
	}

	available := []domain.TimeBlock{
		{Date: day1, StartTime: at(day1, 12, 0), EndTime: at(day1, 20, 0)},
		{Date: day2, StartTime: at(day2, 10, 0), EndTime: at(day2, 14, 0)},
	}

	ws := AssembleWeek(&domain.Animal{ID: 1}, &domain.Shelter{ID: 2}, reserved, unavailable, available, day1)

	monday := ws.Days[0]
	if len(monday.UnavailableSlots) != 1 || len(monday.AvailableSlots) != 1 || len(monday.ReservedSlots) != 0 {
		t.Fatalf("周一的分组不正确：unavailable=%d available=%d reserved=%d",
			len(monday.UnavailableSlots), len(monday.AvailableSlots), len(monday.ReservedSlots))
	}

	tuesday := ws.Days[1]
	if len(tuesday.ReservedSlots) != 2 || len(tuesday.AvailableSlots) != 1 || len(tuesday.UnavailableSlots) != 0 {
		t.Fatalf("周二的分组不正确：unavailable=%d available=%d reserved=%d",
			len(tuesday.UnavailableSlots), len(tuesday.AvailableSlots), len(tuesday.ReservedSlots))
	}

	for i := 2; i < DaysPerWeek; i++ {
		d := ws.Days[i]
		if len(d.AvailableSlots)+len(d.ReservedSlots)+len(d.UnavailableSlots) != 0 {
			t.Fatalf("第 %d 天不应有任何数据", i)
		}
	}
}

func TestAssembleWeek_IgnoresDataOutsideWeek(t *testing.T) {
	outside := day1.AddDate(0, 0, 10)
	reserved := []domain.Slot{slotAt(at(outside, 9, 0), at(outside, 10, 0))}

	ws := AssembleWeek(&domain.Animal{ID: 1}, &domain.Shelter{ID: 2}, reserved, nil, nil, day1)

	for i, d := range ws.Days {
		if len(d.ReservedSlots) != 0 {
			t.Fatalf("周范围之外的时段不应出现在第 %d 天", i)
		}
	}
}

func TestAssembleWeek_TruncatesStartDateToMidnight(t *testing.T) {
	ws := AssembleWeek(&domain.Animal{ID: 1}, &domain.Shelter{ID: 2}, nil, nil, nil, at(day1, 13, 30))

	if !ws.StartDate.Equal(day1) {
		t.Fatalf("StartDate 应被归一到当天零点，实际 %s", ws.StartDate)
	}
	if !ws.Days[0].Date.Equal(day1) {
		t.Fatalf("第一天的日期应为当天零点，实际 %s", ws.Days[0].Date)
	}
}
