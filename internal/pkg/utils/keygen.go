package utils

import (
	"crypto/rand"
	"math/big"
	"strings"
)

// no 0/O or 1/I so codes survive being read aloud
const codeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const codeLength = 6

// GenerateProjectCode returns prefix + "-" + six random characters, e.g. "WEB-7KQ2ZD".
func GenerateProjectCode(prefix string) (string, error) {
	prefix = strings.ToUpper(strings.TrimSpace(prefix))
	if prefix == "" {
		prefix = "PRJ"
	}

	var sb strings.Builder
	sb.WriteString(prefix)
	sb.WriteByte('-')

	for range codeLength {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeChars))))
		if err != nil {
			return "", err
		}
		sb.WriteByte(codeChars[num.Int64()])
	}

	return sb.String(), nil
}
