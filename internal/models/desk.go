package models

// Desk is the persisted form of a bookable desk or room.
type Desk struct {
	DeskID        string  `db:"desk_id" gorm:"column:desk_id;primaryKey;size:36"`
	Code          string  `db:"code" gorm:"column:code;not null;uniqueIndex:idx_desks_code"`
	Name          string  `db:"name" gorm:"column:name;not null"`
	DeskType      string  `db:"desk_type" gorm:"column:desk_type;size:32;not null;index"`
	Capacity      int     `db:"capacity" gorm:"column:capacity;not null;default:1"`
	Floor         string  `db:"floor" gorm:"column:floor;not null;default:''"`
	Section       string  `db:"section" gorm:"column:section;not null;default:''"`
	PosX          float64 `db:"pos_x" gorm:"column:pos_x;not null;default:0"`
	PosY          float64 `db:"pos_y" gorm:"column:pos_y;not null;default:0"`
	IsActive      bool    `db:"is_active" gorm:"column:is_active;not null"`
	IsUnavailable bool    `db:"is_unavailable" gorm:"column:is_unavailable;not null"`
	AuditFields
}

func (Desk) TableName() string { return "desks" }
