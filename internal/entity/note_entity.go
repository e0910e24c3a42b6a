package entity

import "time"

type Note struct {
	Id        uint
	Title     string
	Content   string
	UserId    uint
	CreatedAt time.Time
	UpdatedAt time.Time
}
