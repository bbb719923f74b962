package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/momnetk/giftbattle/internal/domain"
)

const hashKey = "hash"

// Verifier validates signed Telegram WebApp initData payloads.
// The secret key is SHA-256 of the bot token; the payload is authentic
// when HMAC-SHA256 over the sorted key=value check string matches the
// hash field. Stateless and safe for concurrent use.
type Verifier struct {
	secret []byte
}

// NewVerifier derives the HMAC secret from the bot token.
func NewVerifier(botToken string) *Verifier {
	secret := sha256.Sum256([]byte(botToken))
	return &Verifier{secret: secret[:]}
}

type pair struct {
	key   string
	value string
}

// Verify reports whether initData carries a valid signature.
// Malformed payloads return false, never an error: this is a
// boundary-facing predicate.
func (v *Verifier) Verify(initData string) bool {
	if initData == "" {
		return false
	}

	var hash string
	var pairs []pair
	for _, segment := range strings.Split(initData, "&") {
		key, value, ok := strings.Cut(segment, "=")
		if !ok || key == "" {
			return false
		}
		if key == hashKey {
			hash = value
			continue
		}
		pairs = append(pairs, pair{key: key, value: value})
	}
	if hash == "" {
		return false
	}

	// Check string is the remaining pairs sorted by key, joined with newlines.
	// Values stay in their raw (still URL-encoded) form.
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].key < pairs[j].key })
	lines := make([]string, len(pairs))
	for i, p := range pairs {
		lines[i] = p.key + "=" + p.value
	}
	checkString := strings.Join(lines, "\n")

	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(checkString))
	computed := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(computed), []byte(hash))
}

// ParseUser extracts the identity asserted by the payload's user field.
// It does not check the signature; callers must Verify first.
func ParseUser(initData string) (*domain.TelegramUser, error) {
	for _, segment := range strings.Split(initData, "&") {
		key, value, ok := strings.Cut(segment, "=")
		if !ok || key != "user" {
			continue
		}
		decoded, err := url.QueryUnescape(value)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed user field", domain.ErrInvalidInitData)
		}
		var user domain.TelegramUser
		if err := json.Unmarshal([]byte(decoded), &user); err != nil {
			return nil, fmt.Errorf("%w: malformed user field", domain.ErrInvalidInitData)
		}
		if user.ID == 0 {
			return nil, fmt.Errorf("%w: user id missing", domain.ErrInvalidInitData)
		}
		return &user, nil
	}
	return nil, fmt.Errorf("%w: user field missing", domain.ErrInvalidInitData)
}
