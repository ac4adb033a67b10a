package userctx

import (
	"context"
	"testing"
)

func TestUserContext(t *testing.T) {
	ctx := context.Background()

	if _, ok := GetUserID(ctx); ok {
		t.Error("Expected no user ID in empty context")
	}
	if email := GetUserEmail(ctx); email != "anonymous" {
		t.Errorf("Expected anonymous, got %s", email)
	}

	ctx = SetUser(ctx, 42, "jane@example.com")

	id, ok := GetUserID(ctx)
	if !ok || id != 42 {
		t.Errorf("Expected user ID 42, got %d (%v)", id, ok)
	}
	if email := GetUserEmail(ctx); email != "jane@example.com" {
		t.Errorf("Expected jane@example.com, got %s", email)
	}
}
