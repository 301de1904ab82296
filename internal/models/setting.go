package models

type Setting struct {
	Key   string `gorm:"primaryKey;size:50" json:"key"`
	Value string `gorm:"size:255;not null" json:"value"`
}

const (
	SettingOpening = "opening"
	SettingClosing = "closing"
)
