package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/ofimatica/catalog-system/internal/core/domain"
	"github.com/ofimatica/catalog-system/internal/core/ports"
)

func validRegisterInput() ports.RegisterAccountInput {
	return ports.RegisterAccountInput{
		Name:     "New",
		Surname:  "User",
		Username: "newuser",
		Email:    "new@example.com",
		Password: "Password1!345?",
	}
}

// ---------------------------------------------------------------------------
// Register tests
// ---------------------------------------------------------------------------

func TestAccountService_Register_Success(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, discardLogger)

	account, err := svc.Register(context.Background(), validRegisterInput())
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if account.ID == "" {
		t.Error("expected an assigned id")
	}
	if account.Role != domain.RoleUser {
		t.Errorf("new accounts must get the user role, got %q", account.Role)
	}
	if !account.Active {
		t.Error("new accounts must start active")
	}
	if account.LoginRetries != 0 {
		t.Errorf("new accounts must start with 0 retries, got %d", account.LoginRetries)
	}
	if len(repo.accounts) != 1 {
		t.Errorf("expected exactly one persisted account, got %d", len(repo.accounts))
	}
}

func TestAccountService_Register_HashesPassword(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, discardLogger)

	account, err := svc.Register(context.Background(), validRegisterInput())
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if account.PasswordHash == "Password1!345?" {
		t.Fatal("password must not be stored as plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("Password1!345?")); err != nil {
		t.Fatalf("stored hash does not verify against the password: %v", err)
	}
}

func TestAccountService_Register_AggregatesValidationErrors(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, discardLogger)

	input := validRegisterInput()
	input.Email = "not-an-email"
	input.Password = "weak"

	_, err := svc.Register(context.Background(), input)
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Codes) != 2 {
		t.Fatalf("expected both field codes aggregated, got %v", verr.Codes)
	}
	if verr.Codes[0] != domain.CodeWrongEmailFormat || verr.Codes[1] != domain.CodePasswordDoesntMeetRequirements {
		t.Errorf("unexpected codes: %v", verr.Codes)
	}
	if len(repo.accounts) != 0 {
		t.Error("a failed validation must not persist anything")
	}
}

func TestAccountService_Register_EmptyFieldsCreateMode(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, discardLogger)

	_, err := svc.Register(context.Background(), ports.RegisterAccountInput{Username: "x"})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	want := []domain.ValidationCode{domain.CodeEmailIsEmpty, domain.CodePasswordIsEmpty}
	if len(verr.Codes) != 2 || verr.Codes[0] != want[0] || verr.Codes[1] != want[1] {
		t.Errorf("expected %v, got %v", want, verr.Codes)
	}
}

func TestAccountService_Register_DuplicateUsername(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, discardLogger)

	if _, err := svc.Register(context.Background(), validRegisterInput()); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	input := validRegisterInput()
	input.Email = "other@example.com"
	if _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrUsernameDuplicated) {
		t.Fatalf("expected ErrUsernameDuplicated, got %v", err)
	}
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, discardLogger)

	if _, err := svc.Register(context.Background(), validRegisterInput()); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	input := validRegisterInput()
	input.Username = "otheruser"
	if _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrEmailDuplicated) {
		t.Fatalf("expected ErrEmailDuplicated, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Update tests
// ---------------------------------------------------------------------------

func TestAccountService_Update_SelfAllowed(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, discardLogger)
	seeded := seedAccount(t, repo, "henry", goodPassword, true, 0)

	err := svc.Update(context.Background(), seeded.ID,
		ports.UpdateAccountInput{Name: "Henri"},
		ports.Caller{AccountID: seeded.ID, Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("self update failed: %v", err)
	}
	if repo.accounts[seeded.ID].Name != "Henri" {
		t.Errorf("name not applied: %q", repo.accounts[seeded.ID].Name)
	}
}

func TestAccountService_Update_AdminAllowed(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, discardLogger)
	seeded := seedAccount(t, repo, "iris", goodPassword, true, 0)

	err := svc.Update(context.Background(), seeded.ID,
		ports.UpdateAccountInput{Surname: "Changed"},
		ports.Caller{AccountID: "someone_else", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("admin update failed: %v", err)
	}
}

func TestAccountService_Update_OtherUserForbidden(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, discardLogger)
	seeded := seedAccount(t, repo, "jack", goodPassword, true, 0)

	err := svc.Update(context.Background(), seeded.ID,
		ports.UpdateAccountInput{Name: "Hacked"},
		ports.Caller{AccountID: "someone_else", Role: domain.RoleUser})
	if !errors.Is(err, domain.ErrUnauthorizedUpdate) {
		t.Fatalf("expected ErrUnauthorizedUpdate, got %v", err)
	}
	if repo.accounts[seeded.ID].Name == "Hacked" {
		t.Error("forbidden update must not be applied")
	}
}

func TestAccountService_Update_NotFound(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, discardLogger)

	err := svc.Update(context.Background(), "missing",
		ports.UpdateAccountInput{Name: "X"},
		ports.Caller{AccountID: "missing", Role: domain.RoleUser})
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountService_Update_InvalidEmailOrPasswordIsGeneric(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, discardLogger)
	seeded := seedAccount(t, repo, "kate", goodPassword, true, 0)

	cases := []ports.UpdateAccountInput{
		{Email: "broken"},
		{Password: "weak"},
		{Email: "broken", Password: "weak"},
	}
	for _, input := range cases {
		err := svc.Update(context.Background(), seeded.ID, input,
			ports.Caller{AccountID: seeded.ID, Role: domain.RoleUser})
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("input %+v: expected ValidationError, got %v", input, err)
		}
		// Email and password failures are deliberately not distinguished.
		if len(verr.Codes) != 1 || verr.Codes[0] != domain.CodeEmailOrPasswordIncorrect {
			t.Errorf("input %+v: expected [EmailOrPasswordIncorrect], got %v", input, verr.Codes)
		}
	}
}

func TestAccountService_Update_OmittedFieldsUntouched(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, discardLogger)
	seeded := seedAccount(t, repo, "liam", goodPassword, true, 0)
	originalHash := repo.accounts[seeded.ID].PasswordHash

	err := svc.Update(context.Background(), seeded.ID,
		ports.UpdateAccountInput{Name: "Renamed"},
		ports.Caller{AccountID: seeded.ID, Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	stored := repo.accounts[seeded.ID]
	if stored.Username != "liam" || stored.Email != "liam@example.com" {
		t.Errorf("omitted fields changed: %+v", stored)
	}
	if stored.PasswordHash != originalHash {
		t.Error("password hash must not change when password is omitted")
	}
}

func TestAccountService_Update_WhitespaceOnlyIsNoChange(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, discardLogger)
	seeded := seedAccount(t, repo, "nora", goodPassword, true, 0)
	originalHash := repo.accounts[seeded.ID].PasswordHash

	err := svc.Update(context.Background(), seeded.ID,
		ports.UpdateAccountInput{Email: "   ", Username: "\t", Password: "  \n"},
		ports.Caller{AccountID: seeded.ID, Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	stored := repo.accounts[seeded.ID]
	if stored.Email != "nora@example.com" {
		t.Errorf("whitespace-only email overwrote stored value: %q", stored.Email)
	}
	if stored.Username != "nora" {
		t.Errorf("whitespace-only username overwrote stored value: %q", stored.Username)
	}
	if stored.PasswordHash != originalHash {
		t.Error("whitespace-only password must not be hashed and applied")
	}
}

func TestAccountService_Update_RehashesSuppliedPassword(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, discardLogger)
	seeded := seedAccount(t, repo, "mona", goodPassword, true, 0)
	originalHash := repo.accounts[seeded.ID].PasswordHash

	err := svc.Update(context.Background(), seeded.ID,
		ports.UpdateAccountInput{Password: "NewPassword1!?x"},
		ports.Caller{AccountID: seeded.ID, Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	stored := repo.accounts[seeded.ID]
	if stored.PasswordHash == originalHash {
		t.Error("expected a new hash")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("NewPassword1!?x")); err != nil {
		t.Errorf("new hash does not verify: %v", err)
	}
}

// ---------------------------------------------------------------------------
// Activate / Deactivate tests
// ---------------------------------------------------------------------------

func TestAccountService_ActivateDeactivate(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, discardLogger)
	seeded := seedAccount(t, repo, "nina", goodPassword, true, 0)

	if err := svc.Deactivate(context.Background(), seeded.ID); err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}
	if repo.accounts[seeded.ID].Active {
		t.Error("expected inactive")
	}

	if err := svc.Activate(context.Background(), seeded.ID); err != nil {
		t.Fatalf("activate failed: %v", err)
	}
	if !repo.accounts[seeded.ID].Active {
		t.Error("expected active")
	}
}

func TestAccountService_Activate_KeepsRetryCounter(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, discardLogger)
	seeded := seedAccount(t, repo, "omar", goodPassword, false, 3)

	if err := svc.Activate(context.Background(), seeded.ID); err != nil {
		t.Fatalf("activate failed: %v", err)
	}
	// Activation bypasses the counter: reset only happens on successful login.
	if got := repo.accounts[seeded.ID].LoginRetries; got != 3 {
		t.Errorf("expected retry counter untouched at 3, got %d", got)
	}
}

func TestAccountService_Activate_NotFound(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, discardLogger)

	if err := svc.Activate(context.Background(), "missing"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
	if err := svc.Deactivate(context.Background(), "missing"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Filter tests
// ---------------------------------------------------------------------------

func TestAccountService_Filter_ByNameSurnameAndConcatenation(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, discardLogger)

	a := seedAccount(t, repo, "pedro", goodPassword, true, 0)
	repo.accounts[a.ID].Name = "Pedro"
	repo.accounts[a.ID].Surname = "García"
	b := seedAccount(t, repo, "ana", goodPassword, true, 0)
	repo.accounts[b.ID].Name = "Ana"
	repo.accounts[b.ID].Surname = "Torres"

	page, err := svc.Filter(context.Background(), ports.AccountFilter{Name: "pedro gar", Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("filter failed: %v", err)
	}
	if page.Total != 1 {
		t.Errorf("concatenated name match: expected 1, got %d", page.Total)
	}
}

func TestAccountService_Filter_ByActiveFlag(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, discardLogger)

	seedAccount(t, repo, "active1", goodPassword, true, 0)
	seedAccount(t, repo, "locked1", goodPassword, false, 3)

	inactive := false
	page, err := svc.Filter(context.Background(), ports.AccountFilter{Active: &inactive, Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("filter failed: %v", err)
	}
	if page.Total != 1 || page.Items[0].Username != "locked1" {
		t.Errorf("expected only the inactive account, got total=%d", page.Total)
	}
}

func TestAccountService_Filter_DefaultsAndCaps(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, discardLogger)

	page, err := svc.Filter(context.Background(), ports.AccountFilter{Page: 0, PageSize: 0})
	if err != nil {
		t.Fatalf("filter failed: %v", err)
	}
	if page.Page != 1 || page.PageSize != 20 {
		t.Errorf("expected defaults page=1 size=20, got page=%d size=%d", page.Page, page.PageSize)
	}

	page, err = svc.Filter(context.Background(), ports.AccountFilter{Page: 1, PageSize: 999})
	if err != nil {
		t.Fatalf("filter failed: %v", err)
	}
	if page.PageSize != 100 {
		t.Errorf("expected size capped at 100, got %d", page.PageSize)
	}
}
