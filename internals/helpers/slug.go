package helper

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"gorm.io/gorm"
)

const DefaultSlugMaxLen = 160

// SlugOptions menentukan cara cek keunikan slug di DB.
type SlugOptions struct {
	Table      string // contoh: "class_rooms"
	SlugColumn string // contoh: "class_rooms_slug"

	// Kolom soft-delete (NULL berarti belum terhapus). Kosongkan jika tidak pakai.
	SoftDeleteColumn string

	// Filter tambahan supaya unik per tenant, mis. map[string]any{"class_rooms_school_id": schoolID}
	Filters map[string]any

	MaxLen      int
	DefaultBase string
}

// GenerateSlug menormalkan string menjadi slug:
// lower-case, non-alnum jadi "-", collapse "-", trim ujung.
func GenerateSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
		} else {
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	out := strings.Trim(b.String(), "-")
	return regexp.MustCompile(`-+`).ReplaceAllString(out, "-")
}

func cutToLen(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return strings.Trim(s, "-")
	}
	return strings.Trim(s[:n], "-")
}

func slugTaken(db *gorm.DB, opts SlugOptions, candidate string) (bool, error) {
	if opts.Table == "" || opts.SlugColumn == "" {
		return false, errors.New("slug options: table/slug column required")
	}
	q := db.Table(opts.Table).
		Where(fmt.Sprintf("lower(%s) = lower(?)", opts.SlugColumn), candidate)
	for k, v := range opts.Filters {
		q = q.Where(fmt.Sprintf("%s = ?", k), v)
	}
	if opts.SoftDeleteColumn != "" {
		q = q.Where(fmt.Sprintf("%s IS NULL", opts.SoftDeleteColumn))
	}
	var cnt int64
	if err := q.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// GenerateUniqueSlug membuat slug unik berbasis "base" (atau DefaultBase bila kosong),
// case-insensitive, soft-delete aware, unik dalam scope Filters.
// Kalau bentrok dicoba base-2, base-3, dst.
func GenerateUniqueSlug(db *gorm.DB, opts SlugOptions, base string) (string, error) {
	maxLen := opts.MaxLen
	if maxLen <= 0 {
		maxLen = DefaultSlugMaxLen
	}

	b := GenerateSlug(base)
	if b == "" {
		b = GenerateSlug(opts.DefaultBase)
	}
	if b == "" {
		return "", errors.New("slug base kosong")
	}
	b = cutToLen(b, maxLen)

	taken, err := slugTaken(db, opts, b)
	if err != nil {
		return "", err
	}
	if !taken {
		return b, nil
	}

	for i := 2; i <= 200; i++ {
		suffix := fmt.Sprintf("-%d", i)
		candidate := cutToLen(b, maxLen-len(suffix)) + suffix
		taken, err := slugTaken(db, opts, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", errors.New("gagal menemukan slug unik")
}
