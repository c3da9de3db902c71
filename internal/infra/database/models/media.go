package models

import (
	"time"
)

type MediaObject struct {
	Key         string    `json:"key" gorm:"primaryKey;type:text"`
	ContentType string    `json:"contentType" gorm:"type:text;not null"`
	Bytes       []byte    `json:"-" gorm:"type:bytea;not null"`
	CDate       time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}
