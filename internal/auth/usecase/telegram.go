package usecase

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/url"
	"sort"
	"strings"

	"roulette_webapp/domain"
)

// ErrInvalidCredentials is the only error the verifier ever returns. Every
// rejection path (missing hash, malformed payload, signature mismatch) is
// deliberately indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

// InitDataVerifier checks that a Telegram Web App init data string was
// signed by the trusted bot and extracts the embedded user identity.
type InitDataVerifier interface {
	Verify(initData string) (*domain.TelegramUser, error)
}

type telegramVerifier struct {
	secret []byte
}

// NewInitDataVerifier derives the verification secret as
// HMAC-SHA256(key="WebAppData", message=botToken), the Telegram Mini App
// scheme. Payloads signed under the older SHA256(botToken) scheme are
// rejected; only one scheme is supported.
func NewInitDataVerifier(botToken string) InitDataVerifier {
	mac := hmac.New(sha256.New, []byte("WebAppData"))
	mac.Write([]byte(botToken))
	return &telegramVerifier{secret: mac.Sum(nil)}
}

func (v *telegramVerifier) Verify(initData string) (*domain.TelegramUser, error) {
	fields, err := parseInitData(initData)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	receivedHash, ok := fields["hash"]
	if !ok || receivedHash == "" {
		return nil, ErrInvalidCredentials
	}
	delete(fields, "hash")

	received, err := hex.DecodeString(receivedHash)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(checkString(fields)))
	if !hmac.Equal(mac.Sum(nil), received) {
		return nil, ErrInvalidCredentials
	}

	var tgUser domain.TelegramUser
	if err := json.Unmarshal([]byte(fields["user"]), &tgUser); err != nil {
		return nil, ErrInvalidCredentials
	}
	if tgUser.ID == 0 {
		return nil, ErrInvalidCredentials
	}
	return &tgUser, nil
}

// parseInitData splits the query-string-shaped payload into a field map.
// If a key repeats, the first occurrence wins.
func parseInitData(raw string) (map[string]string, error) {
	fields := make(map[string]string)
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return nil, err
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, err
		}
		if _, seen := fields[key]; seen {
			continue
		}
		fields[key] = value
	}
	if len(fields) == 0 {
		return nil, errors.New("empty payload")
	}
	return fields, nil
}

// checkString builds the canonical signed representation: "key=value" lines
// sorted lexicographically as whole lines, joined with newlines.
func checkString(fields map[string]string) string {
	lines := make([]string, 0, len(fields))
	for key, value := range fields {
		lines = append(lines, key+"="+value)
	}
	sort.Strings(lines)
	return strings.Join(lines, "\n")
}
