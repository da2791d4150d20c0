// Package sessionid generates, validates and parses the human-enterable
// session identifier (AAA-BBB-NNN) used to resume a draft.
package sessionid

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"unicode"
)

var idPattern = regexp.MustCompile(`^[A-Z]{3}-[A-Z0-9]{3}-[0-9]{3}$`)

const (
	numberMin = 100
	numberMax = 999

	// Random draws before falling back to a linear scan of the range.
	randomAttempts = 64

	// placeholderCode stands in when a name has no alphabetic characters.
	placeholderCode = "XXX"
)

var (
	ErrInvalidFormat    = errors.New("invalid session id format (expected AAA-BBB-NNN)")
	ErrIDSpaceExhausted = errors.New("session id space exhausted for code pair")
)

// Parts is the decomposition of a valid session identifier.
type Parts struct {
	ClinicianCode string
	SubjectCode   string
	Number        int
}

// Codec owns the used-identifier set so repeated generation never collides
// with ids already persisted or registered from elsewhere. Construct one at
// the composition root and share it by handle.
type Codec struct {
	mu   sync.Mutex
	used map[string]bool
}

func New() *Codec {
	return &Codec{used: make(map[string]bool)}
}

// Generate derives the two code segments from the given names and appends a
// random 3-digit number not yet in use for that code pair. Returns
// ErrIDSpaceExhausted only once all 900 numbers for the pair are taken.
func (c *Codec) Generate(clinicianName, subjectName string) (string, error) {
	prefix := deriveCode(clinicianName) + "-" + deriveCode(subjectName) + "-"

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := 0; i < randomAttempts; i++ {
		n := numberMin + rand.IntN(numberMax-numberMin+1)
		id := prefix + strconv.Itoa(n)
		if !c.used[id] {
			c.used[id] = true
			return id, nil
		}
	}

	// Random search is exhausted in practice only when the pair is nearly
	// full; scan the whole range before giving up.
	for n := numberMin; n <= numberMax; n++ {
		id := prefix + strconv.Itoa(n)
		if !c.used[id] {
			c.used[id] = true
			return id, nil
		}
	}
	return "", fmt.Errorf("%s: %w", strings.TrimSuffix(prefix, "-"), ErrIDSpaceExhausted)
}

// Validate reports whether candidate is a well-formed identifier. Input is
// case-normalized before matching; the caller's string is never modified.
func (c *Codec) Validate(candidate string) bool {
	_, ok := normalize(candidate)
	return ok
}

// Parse decomposes candidate into its parts, or returns ok=false when it
// fails validation.
func (c *Codec) Parse(candidate string) (Parts, bool) {
	id, ok := normalize(candidate)
	if !ok {
		return Parts{}, false
	}
	n, _ := strconv.Atoi(id[8:])
	return Parts{
		ClinicianCode: id[:3],
		SubjectCode:   id[4:7],
		Number:        n,
	}, true
}

// Normalize returns the canonical uppercase form of candidate, or
// ErrInvalidFormat.
func (c *Codec) Normalize(candidate string) (string, error) {
	id, ok := normalize(candidate)
	if !ok {
		return "", fmt.Errorf("%q: %w", candidate, ErrInvalidFormat)
	}
	return id, nil
}

// Register marks a single identifier as in use. Invalid input is ignored.
func (c *Codec) Register(id string) {
	c.RegisterKnownIDs([]string{id})
}

// RegisterKnownIDs seeds the used set, e.g. from sessions already on durable
// storage or a remote index. Entries that fail validation are skipped.
func (c *Codec) RegisterKnownIDs(ids []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, raw := range ids {
		if id, ok := normalize(raw); ok {
			c.used[id] = true
		}
	}
}

func normalize(candidate string) (string, bool) {
	id := strings.ToUpper(strings.TrimSpace(candidate))
	if !idPattern.MatchString(id) {
		return "", false
	}
	n, err := strconv.Atoi(id[8:])
	if err != nil || n < numberMin || n > numberMax {
		return "", false
	}
	return id, true
}

// deriveCode takes the first three alphabetic characters of name, uppercased
// and padded with X, falling back to the placeholder when none exist.
func deriveCode(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) && r < 128 {
			b.WriteRune(unicode.ToUpper(r))
			if b.Len() == 3 {
				break
			}
		}
	}
	code := b.String()
	if code == "" {
		return placeholderCode
	}
	for len(code) < 3 {
		code += "X"
	}
	return code
}
