package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/form3tech-oss/jwt-go"
	"github.com/google/uuid"
)

var ErrInvalidSeatToken = errors.New("invalid seat token")

// SeatClaims identifies the bot seat a token was issued for.
type SeatClaims struct {
	BotID   string
	MatchID string
	TokenID string
}

// SeatTokenService issues and verifies the tokens a game host presents when asking for bot decisions.
type SeatTokenService struct {
	secret string
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewSeatTokenService(secret, issuer string, ttl time.Duration) *SeatTokenService {
	return &SeatTokenService{
		secret: secret,
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue signs a token for botID seated in matchID.
func (s *SeatTokenService) Issue(botID, matchID string) (string, error) {
	if s == nil {
		return "", fmt.Errorf("seat token service is nil")
	}
	if botID == "" || matchID == "" {
		return "", fmt.Errorf("bot id and match id are required")
	}
	if s.secret == "" || s.issuer == "" {
		return "", fmt.Errorf("seat token config is incomplete")
	}

	claims := jwt.MapClaims{
		"iss": s.issuer,
		"sub": botID,
		"mid": matchID,
		"exp": s.now().Add(s.ttl).Unix(),
		"jti": uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// Verify parses a token and returns its seat claims.
func (s *SeatTokenService) Verify(raw string) (SeatClaims, error) {
	if s == nil || s.secret == "" {
		return SeatClaims{}, fmt.Errorf("seat token config is incomplete")
	}

	token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return SeatClaims{}, fmt.Errorf("%w: %v", ErrInvalidSeatToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return SeatClaims{}, ErrInvalidSeatToken
	}
	if !claims.VerifyIssuer(s.issuer, true) {
		return SeatClaims{}, fmt.Errorf("%w: unexpected issuer", ErrInvalidSeatToken)
	}
	if _, ok := claims["exp"]; !ok {
		return SeatClaims{}, fmt.Errorf("%w: missing exp", ErrInvalidSeatToken)
	}

	seat := SeatClaims{}
	seat.BotID, _ = claims["sub"].(string)
	seat.MatchID, _ = claims["mid"].(string)
	seat.TokenID, _ = claims["jti"].(string)
	if seat.BotID == "" || seat.MatchID == "" {
		return SeatClaims{}, fmt.Errorf("%w: missing seat claims", ErrInvalidSeatToken)
	}
	return seat, nil
}
