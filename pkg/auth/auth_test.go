package auth

import "testing"

func TestInviteCodeRoundTrip(t *testing.T) {
	t.Setenv("INVITE_SECRET", "test-secret")

	code := GenerateInviteCode("maya")
	handle, err := VerifyInviteCode(code)
	if err != nil {
		t.Fatalf("generated code did not verify: %v", err)
	}
	if handle != "maya" {
		t.Errorf("Expected handle maya, got %s", handle)
	}
}

func TestInviteCodeRejectsTampering(t *testing.T) {
	t.Setenv("INVITE_SECRET", "test-secret")

	code := GenerateInviteCode("maya")
	if _, err := VerifyInviteCode("jun" + code[4:]); err == nil {
		t.Error("Expected a code with a swapped handle to be rejected")
	}
	if _, err := VerifyInviteCode("maya.deadbeef"); err == nil {
		t.Error("Expected a forged signature to be rejected")
	}
	if _, err := VerifyInviteCode("no-signature-here"); err == nil {
		t.Error("Expected a malformed code to be rejected")
	}
}
