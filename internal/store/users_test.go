package store

import (
	"path/filepath"
	"testing"

	"resto_back_end/internal/models"
	"resto_back_end/internal/utils"
)

func TestSeedDefaults(t *testing.T) {
	s := NewUserStore(filepath.Join(t.TempDir(), "users.json"))

	if err := s.SeedDefaults(); err != nil {
		t.Fatalf("SeedDefaults failed: %v", err)
	}

	users := s.LoadUsers()
	if len(users) != 3 {
		t.Fatalf("expected 3 default accounts, got %d", len(users))
	}

	admin, found := s.FindByUsername("admin")
	if !found {
		t.Fatal("admin account should exist")
	}
	if !admin.HasRole(models.RoleAdmin) {
		t.Errorf("expected role admin, got %s", admin.Role)
	}

	// mot de passe hashé, vérifiable
	ok, err := utils.VerifyPassword("admin123", admin.Password)
	if err != nil || !ok {
		t.Errorf("default password should verify, ok=%v err=%v", ok, err)
	}
	if ok, _ := utils.VerifyPassword("wrong", admin.Password); ok {
		t.Errorf("wrong password must not verify")
	}

	// second appel sans effet
	if err := s.SeedDefaults(); err != nil {
		t.Fatal(err)
	}
	if len(s.LoadUsers()) != 3 {
		t.Errorf("second SeedDefaults must not duplicate accounts")
	}
}

func TestLoadUsers_Lenient(t *testing.T) {
	s := NewUserStore(filepath.Join(t.TempDir(), "missing.json"))
	if got := s.LoadUsers(); len(got) != 0 {
		t.Errorf("missing file should load as empty, got %d users", len(got))
	}

	if _, found := s.FindByUsername("admin"); found {
		t.Errorf("no user expected in an empty store")
	}
}
