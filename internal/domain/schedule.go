package domain

import "time"

// TimeBlock 表示某一天内一段空闲的可预约区间，左闭右开，且 EndTime 一定晚于 StartTime
type TimeBlock struct {
	Date      time.Time `json:"date"` // 当天零点
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// DailySchedule 某一天的日程，三个列表都不会为 nil，没有数据时为空列表
type DailySchedule struct {
	Date             time.Time   `json:"date"`
	AvailableSlots   []TimeBlock `json:"availableSlots"`
	ReservedSlots    []Slot      `json:"reservedSlots"`
	UnavailableSlots []Slot      `json:"unavailableSlots"`
}

// AnimalWeeklySchedule 某只动物从 StartDate 开始连续 7 天的日程，Days 按日期升序排列
type AnimalWeeklySchedule struct {
	Animal    *Animal         `json:"animal"`
	Shelter   *Shelter        `json:"shelter"`
	StartDate time.Time       `json:"startDate"`
	Days      []DailySchedule `json:"days"`
}
