package models

import "time"

type User struct {
	ID           uint64    `gorm:"column:id;primary_key" json:"id"`
	Username     string    `gorm:"column:username;type:varchar(50);not null;uniqueIndex:uk_username" json:"username"`
	Email        string    `gorm:"column:email;type:varchar(100);not null;uniqueIndex:uk_email" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	FullName     string    `gorm:"column:full_name;type:varchar(100)" json:"full_name"`
	Bio          string    `gorm:"column:bio;type:text" json:"bio"`
	AvatarURL    string    `gorm:"column:avatar_url;type:varchar(255)" json:"avatar_url"`
	IsActive     bool      `gorm:"column:is_active;not null;default:1" json:"is_active"`
	IsSuperuser  bool      `gorm:"column:is_superuser;not null;default:0" json:"is_superuser"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (u User) TableName() string { return "users" }
