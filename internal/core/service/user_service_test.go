package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/admindesk/user-management/internal/core/domain"
	"github.com/admindesk/user-management/internal/core/ports"
)

func seedUser(t *testing.T, repo *stubUserRepo, name, email, role string) *domain.User {
	t.Helper()
	user, err := repo.Create(context.Background(), &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: "$2a$12$stub",
		Role:         role,
		IsActive:     true,
	})
	if err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return user
}

func TestUserService_Get_SelfOrAdmin(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	admin := seedUser(t, repo, "Admin", "admin@x.com", domain.RoleAdmin)
	viewer := seedUser(t, repo, "Viewer", "viewer@x.com", domain.RoleViewer)
	other := seedUser(t, repo, "Other", "other@x.com", domain.RoleViewer)

	viewerPrincipal := domain.Principal{ID: viewer.ID, Role: domain.RoleViewer}
	adminPrincipal := domain.Principal{ID: admin.ID, Role: domain.RoleAdmin}

	// Viewer fetching own record succeeds.
	got, err := svc.Get(context.Background(), viewerPrincipal, viewer.ID)
	if err != nil {
		t.Fatalf("viewer self get failed: %v", err)
	}
	if got.Email != "viewer@x.com" {
		t.Fatalf("unexpected user: %+v", got)
	}

	// Viewer fetching another record is denied.
	if _, err := svc.Get(context.Background(), viewerPrincipal, other.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	// Admin fetches anyone.
	if _, err := svc.Get(context.Background(), adminPrincipal, other.ID); err != nil {
		t.Fatalf("admin get failed: %v", err)
	}

	// Absent id is not found.
	if _, err := svc.Get(context.Background(), adminPrincipal, 9999); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Create_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name:     "Frank",
		Email:    "frank@x.com",
		Password: "secret1",
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if user.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %s", user.Role)
	}
	if !user.IsActive {
		t.Fatalf("new user should be active")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestUserService_Create_RoleDefaultsToViewer(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name:     "Grace",
		Email:    "grace@x.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if user.Role != domain.RoleViewer {
		t.Fatalf("expected viewer default, got %s", user.Role)
	}
}

func TestUserService_Create_Validation(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	cases := []ports.CreateUserInput{
		{Name: "", Email: "a@x.com", Password: "secret1"},
		{Name: "A", Email: "", Password: "secret1"},
		{Name: "A", Email: "a@x.com", Password: ""},
		{Name: "A", Email: "a@x.com", Password: "short"},
		{Name: "A", Email: "a@x.com", Password: "secret1", Role: "superuser"},
	}
	for _, input := range cases {
		if _, err := svc.Create(context.Background(), input); !domain.IsValidation(err) {
			t.Fatalf("Create(%+v): expected validation error, got %v", input, err)
		}
	}
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	seedUser(t, repo, "Henry", "henry@x.com", domain.RoleViewer)

	_, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name:     "Henry II",
		Email:    "henry@x.com",
		Password: "secret1",
	})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserService_Update_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	user := seedUser(t, repo, "Ivy", "ivy@x.com", domain.RoleViewer)

	inactive := false
	err := svc.Update(context.Background(), user.ID, ports.UpdateUserInput{
		Name:     "Ivy Updated",
		Email:    "ivy-new@x.com",
		Role:     domain.RoleAdmin,
		IsActive: &inactive,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	got, _ := repo.FindByID(context.Background(), user.ID)
	if got.Name != "Ivy Updated" || got.Email != "ivy-new@x.com" || got.Role != domain.RoleAdmin {
		t.Fatalf("update not persisted: %+v", got)
	}
	if got.IsActive {
		t.Fatalf("expected is_active false")
	}
}

func TestUserService_Update_Defaults(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	user := seedUser(t, repo, "Jack", "jack@x.com", domain.RoleAdmin)

	// Omitted role falls back to viewer; omitted is_active falls back to true.
	if err := svc.Update(context.Background(), user.ID, ports.UpdateUserInput{Name: "Jack", Email: "jack@x.com"}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	got, _ := repo.FindByID(context.Background(), user.ID)
	if got.Role != domain.RoleViewer {
		t.Fatalf("expected role default viewer, got %s", got.Role)
	}
	if !got.IsActive {
		t.Fatalf("expected is_active default true")
	}
}

func TestUserService_Update_OwnEmailKept(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	user := seedUser(t, repo, "Kim", "kim@x.com", domain.RoleViewer)

	// Updating with the unchanged email must not conflict with itself.
	if err := svc.Update(context.Background(), user.ID, ports.UpdateUserInput{Name: "Kim R", Email: "kim@x.com"}); err != nil {
		t.Fatalf("own-email update failed: %v", err)
	}
}

func TestUserService_Update_EmailCollision(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	seedUser(t, repo, "Liz", "liz@x.com", domain.RoleViewer)
	user := seedUser(t, repo, "Max", "max@x.com", domain.RoleViewer)

	err := svc.Update(context.Background(), user.ID, ports.UpdateUserInput{Name: "Max", Email: "liz@x.com"})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserService_Update_NotFound(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	err := svc.Update(context.Background(), 42, ports.UpdateUserInput{Name: "Nobody", Email: "nobody@x.com"})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	admin := seedUser(t, repo, "Admin", "admin@x.com", domain.RoleAdmin)
	target := seedUser(t, repo, "Target", "target@x.com", domain.RoleViewer)
	principal := domain.Principal{ID: admin.ID, Role: domain.RoleAdmin}

	// Self-delete is rejected.
	if err := svc.Delete(context.Background(), principal, admin.ID); !errors.Is(err, domain.ErrSelfDelete) {
		t.Fatalf("expected ErrSelfDelete, got %v", err)
	}

	// Deleting another user succeeds and the id is gone afterwards.
	if err := svc.Delete(context.Background(), principal, target.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), target.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected deleted user to be not found, got %v", err)
	}

	// Deleting an absent id is not found.
	if err := svc.Delete(context.Background(), principal, 9999); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
