package model

import "time"

type User struct {
	ID       string `gorm:"primaryKey;size:36;not null" json:"id"`
	Username string `gorm:"size:64;not null" json:"username"`
	// lookup key for login; uniqueness enforced at the store layer
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:128;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type Book struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Title  string `gorm:"size:255;not null" json:"title"`
	Author string `gorm:"size:255" json:"author"`
	// minor units (cents for USD)
	Price     int64     `gorm:"not null" json:"price"`
	Currency  string    `gorm:"size:8;not null" json:"currency"`
	FileURL   string    `gorm:"size:512" json:"file_url"`
	CreatedAt time.Time `json:"created_at"`
}
