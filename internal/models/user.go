package models

type UserRole string

const (
	RoleSR    UserRole = "SR"
	RoleAdmin UserRole = "ADMIN"
)

type User struct {
	ID       uint     `gorm:"primaryKey;autoIncrement"`
	Username string   `gorm:"uniqueIndex;size:50;not null"`
	Password string   `gorm:"size:100;not null"` // plaintext, inherited from the legacy deployment
	Role     UserRole `gorm:"type:varchar(10);not null;default:SR"`
	FullName string   `gorm:"size:255"`
}
