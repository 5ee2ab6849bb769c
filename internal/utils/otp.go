package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// OTPLength is the number of digits in a generated OTP code
const OTPLength = 6

// GenerateOTPCode generates a cryptographically secure numeric OTP code
func GenerateOTPCode() (string, error) {
	result := ""
	for i := 0; i < OTPLength; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate OTP: %w", err)
		}
		result += fmt.Sprintf("%d", n.Int64())
	}
	return result, nil
}
