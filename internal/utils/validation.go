package utils

import (
	"fmt"
	"time"

	"github.com/see-paw/backend-sub005/internal/domain"
)

const ClockLayout = "15:04:05"

// ParseClock 把 15:04:05 格式的时刻解析成距当天零点的偏移量
func ParseClock(clock string) (time.Duration, error) {
	t, err := time.Parse(ClockLayout, clock)
	if err != nil {
		return 0, err
	}
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second, nil
}

// ValidateShelterHours 检查收容所的开放时间配置是否合法（格式正确且开放时间早于关闭时间）
func ValidateShelterHours(shelter *domain.Shelter) error {
	opening, err := ParseClock(shelter.OpeningTime)
	if err != nil {
		return fmt.Errorf("开放时间格式错误")
	}
	closing, err := ParseClock(shelter.ClosingTime)
	if err != nil {
		return fmt.Errorf("关闭时间格式错误")
	}
	if opening >= closing {
		return fmt.Errorf("开放时间必须早于关闭时间")
	}
	return nil
}

// ValidateReservationInterval 检查预约时段是否合法：
// 结束时间晚于开始时间、不跨天，且完整落在收容所当天的开放窗口内
func ValidateReservationInterval(start, end time.Time, opening, closing time.Duration) error {
	if !end.After(start) {
		return fmt.Errorf("结束时间必须晚于开始时间")
	}

	y1, m1, d1 := start.Date()
	y2, m2, d2 := end.Add(-time.Nanosecond).Date()
	if y1 != y2 || m1 != m2 || d1 != d2 {
		return fmt.Errorf("预约时段不能跨天")
	}

	dayStart := time.Date(y1, m1, d1, 0, 0, 0, 0, start.Location())
	if start.Before(dayStart.Add(opening)) || end.After(dayStart.Add(closing)) {
		return fmt.Errorf("预约时段必须在收容所开放时间内")
	}

	return nil
}

// MondayOf 返回 t 所在周的周一零点
func MondayOf(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7 // 周日算作一周的第七天
	}
	return day.AddDate(0, 0, 1-weekday)
}
