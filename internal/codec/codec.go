package codec

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"

	nverrors "github.com/zarf0128-creator/NebulaVault/internal/errors"
)

// EncodeHex returns the lowercase hex encoding of data (2 chars per byte).
func EncodeHex(data []byte) string {
	return hex.EncodeToString(data)
}

// DecodeHex decodes a lowercase or mixed-case hex string back into bytes.
// Returns ErrInvalidInput if the string is not valid hex.
func DecodeHex(s string) ([]byte, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: not a valid hex string", nverrors.ErrInvalidInput)
	}
	return data, nil
}

// EncodeBase64 returns the standard base64 encoding of data.
// Base64 is only used at transport edges; persisted crypto material is hex.
func EncodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// DecodeBase64 decodes a standard base64 string back into bytes.
// Returns ErrInvalidInput if the string is not valid base64.
func DecodeBase64(s string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: not a valid base64 string", nverrors.ErrInvalidInput)
	}
	return data, nil
}
