package utils

import (
	"testing"
	"time"

	"github.com/see-paw/backend-sub005/internal/domain"
)

func TestParseClock(t *testing.T) {
	d, err := ParseClock("08:30:15")
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	want := 8*time.Hour + 30*time.Minute + 15*time.Second
	if d != want {
		t.Fatalf("期望 %v，实际 %v", want, d)
	}

	if _, err := ParseClock("25:00:00"); err == nil {
		t.Fatalf("非法时刻应解析失败")
	}
	if _, err := ParseClock("0800"); err == nil {
		t.Fatalf("格式错误应解析失败")
	}
}

func TestValidateShelterHours(t *testing.T) {
	shelter := &domain.Shelter{OpeningTime: "08:00:00", ClosingTime: "20:00:00"}
	if err := ValidateShelterHours(shelter); err != nil {
		t.Fatalf("合法配置不应报错: %v", err)
	}

	shelter = &domain.Shelter{OpeningTime: "20:00:00", ClosingTime: "08:00:00"}
	if err := ValidateShelterHours(shelter); err == nil {
		t.Fatalf("开放时间晚于关闭时间应报错")
	}

	shelter = &domain.Shelter{OpeningTime: "09:00:00", ClosingTime: "09:00:00"}
	if err := ValidateShelterHours(shelter); err == nil {
		t.Fatalf("开放时间等于关闭时间应报错")
	}
}

func TestValidateReservationInterval(t *testing.T) {
	day := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	opening := 8 * time.Hour
	closing := 20 * time.Hour

	ok := ValidateReservationInterval(day.Add(9*time.Hour), day.Add(10*time.Hour), opening, closing)
	if ok != nil {
		t.Fatalf("合法预约不应报错: %v", ok)
	}

	// 正好顶到关闭时间也合法
	if err := ValidateReservationInterval(day.Add(19*time.Hour), day.Add(20*time.Hour), opening, closing); err != nil {
		t.Fatalf("顶到关闭时间的预约不应报错: %v", err)
	}

	if err := ValidateReservationInterval(day.Add(10*time.Hour), day.Add(9*time.Hour), opening, closing); err == nil {
		t.Fatalf("结束早于开始应报错")
	}
	if err := ValidateReservationInterval(day.Add(7*time.Hour), day.Add(9*time.Hour), opening, closing); err == nil {
		t.Fatalf("早于开放时间应报错")
	}
	if err := ValidateReservationInterval(day.Add(19*time.Hour), day.Add(21*time.Hour), opening, closing); err == nil {
		t.Fatalf("晚于关闭时间应报错")
	}
	if err := ValidateReservationInterval(day.Add(22*time.Hour), day.Add(26*time.Hour), opening, closing); err == nil {
		t.Fatalf("跨天预约应报错")
	}
}

func TestMondayOf(t *testing.T) {
	// 2025-03-05 是周三
	wednesday := time.Date(2025, 3, 5, 15, 30, 0, 0, time.UTC)
	monday := MondayOf(wednesday)
	if !monday.Equal(time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("周三所在周的周一应为 2025-03-03，实际 %s", monday)
	}

	// 周日属于上一周
	sunday := time.Date(2025, 3, 9, 1, 0, 0, 0, time.UTC)
	if got := MondayOf(sunday); !got.Equal(time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("周日所在周的周一应为 2025-03-03，实际 %s", got)
	}

	// 周一就是它自己
	if got := MondayOf(time.Date(2025, 3, 3, 23, 0, 0, 0, time.UTC)); !got.Equal(time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("周一的所在周周一应为当天零点，实际 %s", got)
	}
}
