package helper

import (
	"strings"
	"testing"
)

func TestGenerateInviteCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		code, err := GenerateInviteCode(InviteCodeLength)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(code) != InviteCodeLength {
			t.Fatalf("len = %d, want %d", len(code), InviteCodeLength)
		}
		for _, r := range code {
			if !strings.ContainsRune(inviteCodeCharset, r) {
				t.Fatalf("karakter di luar charset: %q", r)
			}
		}
		seen[code] = true
	}
	// 100 kode acak nyaris mustahil semuanya sama
	if len(seen) < 2 {
		t.Fatalf("expected variasi kode, got %d unik", len(seen))
	}
}

func TestGenerateInviteCodeDefaultLength(t *testing.T) {
	code, err := GenerateInviteCode(0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(code) != InviteCodeLength {
		t.Fatalf("len = %d, want default %d", len(code), InviteCodeLength)
	}
}
