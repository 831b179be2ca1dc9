package usecase

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// 토큰 키 엔트로피: 160비트 (hex 인코딩 후 40자 고정 길이)
const tokenKeyBytes = 20

// GenerateTokenKey는 암호학적 난수로 불투명 토큰 키를 생성합니다.
func GenerateTokenKey() (string, error) {
	b := make([]byte, tokenKeyBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// HashPassword는 비밀번호를 해싱하고 솔트를 반환합니다.
func HashPassword(password string) (hashedPassword string, salt string, err error) {
	// 솔트 생성
	saltBytes := make([]byte, 16)
	if _, err := rand.Read(saltBytes); err != nil {
		return "", "", err
	}
	salt = base64.StdEncoding.EncodeToString(saltBytes)

	// 비밀번호 해싱
	hash, err := bcrypt.GenerateFromPassword([]byte(password+salt), bcrypt.DefaultCost)
	if err != nil {
		return "", "", err
	}

	return string(hash), salt, nil
}

// VerifyPassword는 제공된 비밀번호가 저장된 해시와 일치하는지 확인합니다.
// bcrypt 비교는 상수 시간으로 수행됩니다.
func VerifyPassword(hashedPassword, inputPassword, salt string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(inputPassword+salt))
}
