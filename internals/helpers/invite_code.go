package helper

import (
	"crypto/rand"
	"fmt"
)

// Charset tanpa karakter ambigu (0/O, 1/I/L) biar gampang dibaca & diketik.
const inviteCodeCharset = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const InviteCodeLength = 8

// GenerateInviteCode menghasilkan kode undangan acak sepanjang n karakter.
func GenerateInviteCode(n int) (string, error) {
	if n <= 0 {
		n = InviteCodeLength
	}
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate invite code: %w", err)
	}
	for i, b := range buf {
		buf[i] = inviteCodeCharset[int(b)%len(inviteCodeCharset)]
	}
	return string(buf), nil
}
