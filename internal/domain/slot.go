package domain

import "time"

type SlotKind string

const (
	SlotKindActivity           SlotKind = "activity"
	SlotKindShelterUnavailable SlotKind = "shelter_unavailable"
)

type SlotStatus string

const (
	SlotStatusAvailable   SlotStatus = "available"
	SlotStatusUnavailable SlotStatus = "unavailable"
	SlotStatusReserved    SlotStatus = "reserved"
)

// Slot 表示一段带类型的时间区间，消费方根据 Kind 来区分预约和收容所不可用时段
// 区间语义为左闭右开 [StartTime, EndTime)
type Slot struct {
	ID        int64      `json:"id"`
	Kind      SlotKind   `json:"kind"`
	Status    SlotStatus `json:"status"`
	AnimalID  int64      `json:"animalID"`
	ShelterID int64      `json:"shelterID"`
	UserID    *int64     `json:"userID"` // 预约用户，仅 activity 类型的 slot 才有
	Reason    string     `json:"reason"` // 不可用原因，仅 shelter_unavailable 类型的 slot 才有
	StartTime time.Time  `json:"startTime"`
	EndTime   time.Time  `json:"endTime"`
	CreatedAt time.Time  `json:"createdAt"`
	Version   int32      `json:"-"`
}

// NewActivitySlot 创建一个预约活动时段，状态恒为 reserved
func NewActivitySlot(animalID, shelterID, userID int64, start, end time.Time) *Slot {
	return &Slot{
		Kind:      SlotKindActivity,
		Status:    SlotStatusReserved,
		AnimalID:  animalID,
		ShelterID: shelterID,
		UserID:    &userID,
		StartTime: start,
		EndTime:   end,
	}
}

// NewShelterUnavailabilitySlot 创建一个收容所不可用时段
func NewShelterUnavailabilitySlot(shelterID int64, reason string, start, end time.Time) *Slot {
	return &Slot{
		Kind:      SlotKindShelterUnavailable,
		Status:    SlotStatusUnavailable,
		ShelterID: shelterID,
		Reason:    reason,
		StartTime: start,
		EndTime:   end,
	}
}

// IsOccupied 占用时段（已预约或不可用）不能再被安排活动
func (s *Slot) IsOccupied() bool {
	return s.Status == SlotStatusReserved || s.Status == SlotStatusUnavailable
}
