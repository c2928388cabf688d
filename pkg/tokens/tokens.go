package tokens

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var (
	ErrMissingSecret = errors.New("jwt gizli anahtarı tanımlı değil")
	ErrInvalidToken  = errors.New("geçersiz token")
	ErrTokenExpired  = errors.New("token süresi dolmuş")
)

// Claims oturum token'ının taşıdığı kullanıcı bilgileri.
type Claims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// Manager HS256 ile token üretir ve doğrular.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(secret string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Manager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue kullanıcı için imzalı token üretir.
func (m *Manager) Issue(userID, email, name string) (string, error) {
	if len(m.secret) == 0 {
		return "", ErrMissingSecret
	}
	now := m.now()
	claims := Claims{
		ID:    userID,
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Parse token'ı doğrular ve claim'leri döndürür.
func (m *Manager) Parse(raw string) (*Claims, error) {
	if len(m.secret) == 0 {
		return nil, ErrMissingSecret
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if errors.Is(err, jwt.ErrTokenExpired) {
		return nil, ErrTokenExpired
	}
	if err != nil || !token.Valid || claims.ID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
