package psswd

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHash реализует хеширование паролей аккаунтов через bcrypt.
// Состояния у типа нет, стоимость хеширования фиксирована.
type PasswordHash string

// HashPassword возвращает bcrypt-хеш пароля. Хеш хранится в users.encrypted_password.
func (p PasswordHash) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %s", err.Error())
	}
	return string(bytes), nil
}

// ComparePassword сверяет пароль логина с сохраненным хешем.
func (p PasswordHash) ComparePassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
