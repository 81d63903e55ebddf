package database

import (
	"errors"

	"field-sales/internal/models"

	"gorm.io/gorm"
)

// AuthenticateUser matches username and password by exact equality against
// the stored plaintext credentials. Absence of a match is the failure signal;
// there is no lockout or rate limiting. Carried over from the legacy
// deployment, see DESIGN.md before reusing this anywhere else.
func AuthenticateUser(username, password string) (*models.User, error) {
	var user models.User
	err := DB.Where("username = ? AND password = ?", username, password).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserByID loads a user by primary key, for session hydration.
func UserByID(id uint) (*models.User, error) {
	var user models.User
	if err := DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
