package domain

import "time"

type Shelter struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	City        string `json:"city"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Description string `json:"description"`
	// 开放时间和关闭时间均为一天内的时刻，格式为 15:04:05
	// 创建和更新收容所时必须保证开放时间早于关闭时间
	OpeningTime string    `json:"openingTime"`
	ClosingTime string    `json:"closingTime"`
	CreatedAt   time.Time `json:"createdAt"`
	Version     int32     `json:"-"`
}
