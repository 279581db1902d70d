package models

// SettingsRowID is the only id the settings table may hold.
const SettingsRowID = 1

// Setting is a singleton row; the check constraint keeps any second row out.
type Setting struct {
	ID      uint   `gorm:"primaryKey;check:id = 1" json:"id"`
	Tagline string `gorm:"size:255" json:"tagline"`
}

func (Setting) TableName() string {
	return "settings"
}
