package helpers

import "testing"

func TestValidateRegisterInput(t *testing.T) {
	tests := []struct {
		name           string
		username       string
		email          string
		password       string
		securityAnswer string
		wantErr        bool
	}{
		{"valid", "budi", "budi@kampus.ac.id", "rahasia123", "kucing", false},
		{"username pendek", "ab", "budi@kampus.ac.id", "rahasia123", "kucing", true},
		{"email invalid", "budi", "bukan-email", "rahasia123", "kucing", true},
		{"password pendek", "budi", "budi@kampus.ac.id", "abc1", "kucing", true},
		{"password tanpa angka", "budi", "budi@kampus.ac.id", "rahasiabanget", "kucing", true},
		{"password tanpa huruf", "budi", "budi@kampus.ac.id", "123456789", "kucing", true},
		{"security answer kosong", "budi", "budi@kampus.ac.id", "rahasia123", "  ", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegisterInput(tt.username, tt.email, tt.password, tt.securityAnswer)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRegisterInput() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateLoginInput(t *testing.T) {
	if err := ValidateLoginInput("budi", "rahasia123"); err != nil {
		t.Errorf("login valid ditolak: %v", err)
	}
	if err := ValidateLoginInput("  ", "rahasia123"); err == nil {
		t.Errorf("identifier kosong seharusnya ditolak")
	}
	if err := ValidateLoginInput("budi", ""); err == nil {
		t.Errorf("password kosong seharusnya ditolak")
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("rahasia123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "rahasia123" {
		t.Fatalf("password tersimpan plaintext")
	}
	if err := CheckPasswordHash(hash, "rahasia123"); err != nil {
		t.Errorf("password benar ditolak: %v", err)
	}
	if err := CheckPasswordHash(hash, "salah123"); err == nil {
		t.Errorf("password salah diterima")
	}
}
