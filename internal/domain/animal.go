package domain

import "time"

type Animal struct {
	ID          int64      `json:"id"`
	ShelterID   int64      `json:"shelterID"`
	Name        string     `json:"name"`
	Species     string     `json:"species"`
	Breed       string     `json:"breed"`
	Sex         string     `json:"sex"`
	BirthDate   *time.Time `json:"birthDate"` // 出生日期往往只能估计，可以为空
	Sterilized  bool       `json:"sterilized"`
	Description string     `json:"description"`
	IsAdoptable bool       `json:"isAdoptable"`
	CreatedAt   time.Time  `json:"createdAt"`
	Version     int32      `json:"-"`
}
