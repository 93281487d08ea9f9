package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
	"regexp"
	"time"

	"powerlink/internal/domain"
)

var otpRegex = regexp.MustCompile(`^\d{6}$`)

// generateOTP returns a uniformly random code in 100000-999999 inclusive.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

func hashOTP(code, pepper string) string {
	h := sha256.Sum256([]byte(code + pepper))
	return hex.EncodeToString(h[:])
}

// otpExpired: a code is expired strictly after its expiry instant; a check
// at exactly expiresAt still accepts.
func otpExpired(expiresAt, now time.Time) bool {
	return now.After(expiresAt)
}

// otpMatches checks the candidate against the account's pending code. It is
// side-effect free; clearing a consumed code is the verification step's job.
func otpMatches(u *domain.User, candidate, pepper string, now time.Time) bool {
	if u.OTPHash == "" || u.OTPExpiry == nil {
		return false
	}
	if otpExpired(*u.OTPExpiry, now) {
		return false
	}
	return hashOTP(candidate, pepper) == u.OTPHash
}
