package models

import "time"

type User struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Email     string     `json:"email" gorm:"uniqueIndex;not null" validate:"required,email"`
	Password  string     `json:"-" gorm:"not null" validate:"required,min=8"`
	IsActive  bool       `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"index"`
	Profile   *Profile   `json:"profile,omitempty" gorm:"foreignKey:UserID;references:ID"`
}

// Profile is the role-bearing identity record, one-to-one with a User.
// MemberID is the shared student/clinician number printed on clinic records.
type Profile struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	UserID       string    `json:"user_id" gorm:"uniqueIndex;not null;type:uuid" validate:"required,uuid"`
	MemberID     string    `json:"member_id" gorm:"uniqueIndex;not null" validate:"required"`
	OfficialName string    `json:"official_name" gorm:"not null" validate:"required"`
	Role         Role      `json:"role" gorm:"not null;default:'student'" validate:"required"`
	Phone        string    `json:"phone,omitempty" gorm:"type:varchar(20)"`
	IsLocked     bool      `json:"is_locked" gorm:"default:false"`
	ProfileLog   string    `json:"profile_log,omitempty"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
	User         *User     `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
}
