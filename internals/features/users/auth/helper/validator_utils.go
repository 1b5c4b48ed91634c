package helpers

import (
	"errors"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

func isAlphaNumeric(s string) bool {
	hasLetter := regexp.MustCompile(`[A-Za-z]`).MatchString(s)
	hasNumber := regexp.MustCompile(`[0-9]`).MatchString(s)
	return hasLetter && hasNumber
}

// Validasi Email (regex simple)
func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

// ValidateRegisterInput: validasi dasar sebelum validator struct jalan
func ValidateRegisterInput(username, email, password, securityAnswer string) error {
	username = strings.TrimSpace(username)
	if len(username) < 3 {
		return errors.New("username minimal 3 karakter")
	}
	if !isValidEmail(strings.TrimSpace(email)) {
		return errors.New("format email tidak valid")
	}
	if len(password) < 8 {
		return errors.New("password minimal 8 karakter")
	}
	if !isAlphaNumeric(password) {
		return errors.New("password harus mengandung huruf dan angka")
	}
	if strings.TrimSpace(securityAnswer) == "" {
		return errors.New("security answer wajib diisi")
	}
	return nil
}

func ValidateLoginInput(identifier, password string) error {
	if strings.TrimSpace(identifier) == "" {
		return errors.New("identifier wajib diisi")
	}
	if password == "" {
		return errors.New("password wajib diisi")
	}
	return nil
}

func ValidateResetPassword(email, newPassword string) error {
	if !isValidEmail(strings.TrimSpace(email)) {
		return errors.New("format email tidak valid")
	}
	if len(newPassword) < 8 {
		return errors.New("password minimal 8 karakter")
	}
	if !isAlphaNumeric(newPassword) {
		return errors.New("password harus mengandung huruf dan angka")
	}
	return nil
}

// HashPassword menggunakan bcrypt default cost
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPasswordHash(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
