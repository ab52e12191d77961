package hash

import "golang.org/x/crypto/bcrypt"

// bcrypt ignores everything past 72 bytes, truncate explicitly so the
// same password always produces a comparable hash.
func clip(password string) []byte {
	b := []byte(password)
	if len(b) > 72 {
		b = b[:72]
	}
	return b
}

func HashPassword(password string) (string, error) {
	hashBytes, err := bcrypt.GenerateFromPassword(clip(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), clip(password)) == nil
}
