package services

import (
	"context"
	"testing"
	"time"

	"github.com/veloraops/backoffice-backend/internal/apierr"
	"github.com/veloraops/backoffice-backend/internal/repos"
	"github.com/veloraops/backoffice-backend/internal/requestdata"
)

func newAuthService(t *testing.T, env *testEnv) AuthService {
	t.Helper()
	adminRepo := repos.NewAdminUserRepo(env.db, newTestLogger())
	return NewAuthService(env.db, newTestLogger(), adminRepo, "test-secret", 15*time.Minute, 24*time.Hour)
}

func TestAuthRegisterLoginRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	svc := newAuthService(t, env)
	ctx := context.Background()

	user, err := svc.Register(ctx, AdminRegister{
		Email:     "Admin@Example.com",
		Password:  "s3cret!",
		FirstName: "Ada",
		LastName:  "Admin",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Email != "admin@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if user.Password == "s3cret!" {
		t.Fatal("password stored in plaintext")
	}

	pair, err := svc.Login(ctx, "admin@example.com", "s3cret!")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("incomplete token pair: %+v", pair)
	}

	refreshed, err := svc.Refresh(ctx, pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if refreshed.AccessToken == "" {
		t.Fatal("refresh returned empty access token")
	}
}

func TestAuthLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	svc := newAuthService(t, env)
	ctx := context.Background()

	if _, err := svc.Register(ctx, AdminRegister{Email: "a@b.com", Password: "right"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err := svc.Login(ctx, "a@b.com", "wrong")
	assertAPIErrCode(t, err, apierr.CodeValidation)

	_, err = svc.Login(ctx, "nobody@b.com", "right")
	assertAPIErrCode(t, err, apierr.CodeValidation)
}

func TestAuthRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	svc := newAuthService(t, env)
	ctx := context.Background()

	if _, err := svc.Register(ctx, AdminRegister{Email: "a@b.com", Password: "pw"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, err := svc.Register(ctx, AdminRegister{Email: "A@B.com", Password: "pw2"})
	assertAPIErrCode(t, err, apierr.CodeDuplicate)
}

func TestAuthSetContextFromToken(t *testing.T) {
	env := newTestEnv(t)
	svc := newAuthService(t, env)
	ctx := context.Background()

	user, err := svc.Register(ctx, AdminRegister{Email: "a@b.com", Password: "pw"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	pair, err := svc.Login(ctx, "a@b.com", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	authed, err := svc.SetContextFromToken(ctx, pair.AccessToken)
	if err != nil {
		t.Fatalf("set context: %v", err)
	}
	rd := requestdata.GetRequestData(authed)
	if rd == nil {
		t.Fatal("request data missing from context")
	}
	if rd.AdminID != user.ID || rd.Email != "a@b.com" {
		t.Fatalf("unexpected request data: %+v", rd)
	}

	// A refresh token is not an access token.
	if _, err := svc.SetContextFromToken(ctx, pair.RefreshToken); err == nil {
		t.Fatal("expected refresh token to be rejected for request auth")
	}
}
