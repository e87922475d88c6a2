package services

import (
	"testing"

	"agrolink/internal/models"
	"agrolink/internal/testutil"
)

func TestRegister(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.Register("farmer@example.com", "password123", "Sunil Perera", models.UserRoleFarmer, "Kandy", "0771234567")
		testutil.AssertNoError(t, err)

		if user.ID == 0 {
			t.Fatal("expected non-zero user ID")
		}
		if user.Email != "farmer@example.com" {
			t.Errorf("expected email farmer@example.com, got %s", user.Email)
		}
		if user.Role != models.UserRoleFarmer {
			t.Errorf("expected farmer role, got %s", user.Role)
		}
		if user.Password == "password123" {
			t.Error("password must be stored hashed")
		}
	})

	t.Run("lowercases_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.Register("Buyer@Example.COM", "password123", "Amara Silva", models.UserRoleBuyer, "", "")
		testutil.AssertNoError(t, err)

		if user.Email != "buyer@example.com" {
			t.Errorf("expected lowercased email, got %s", user.Email)
		}
	})

	t.Run("duplicate_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.Register("dup@example.com", "password123", "First", models.UserRoleFarmer, "", "")
		testutil.AssertNoError(t, err)

		_, err = svc.Register("dup@example.com", "password123", "Second", models.UserRoleBuyer, "", "")
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})

	t.Run("missing_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.Register("", "password123", "Name", models.UserRoleFarmer, "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.Register("a@b.com", "", "Name", models.UserRoleFarmer, "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.Register("a@b.com", "password123", "", models.UserRoleFarmer, "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetUserByEmail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		created, err := svc.Register("find@example.com", "password123", "Findable", models.UserRoleFarmer, "", "")
		testutil.AssertNoError(t, err)

		user, err := svc.GetUserByEmail("find@example.com")
		testutil.AssertNoError(t, err)
		if user.ID != created.ID {
			t.Errorf("expected user %d, got %d", created.ID, user.ID)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.GetUserByEmail("ghost@example.com")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}

func TestVerifyPassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewUserService(db)

	user, err := svc.Register("verify@example.com", "password123", "Verifier", models.UserRoleBuyer, "", "")
	testutil.AssertNoError(t, err)

	if !svc.VerifyPassword(user, "password123") {
		t.Error("expected correct password to verify")
	}
	if svc.VerifyPassword(user, "wrong-password") {
		t.Error("expected wrong password to fail")
	}
}
