package share

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/zarf0128-creator/NebulaVault/internal/codec"
	"github.com/zarf0128-creator/NebulaVault/internal/crypto"
	nverrors "github.com/zarf0128-creator/NebulaVault/internal/errors"
)

// FormatURL builds a share URL of the form
//
//	<origin>/share/<share_id>#key=<hex(shareKey)>
//
// The key lives only in the fragment: standard URL semantics never transmit
// the fragment to a server on navigation, so the share key reaches only a
// client that already holds the full link. It must never be placed in a path
// segment or query string.
func FormatURL(origin, shareID string, shareKey crypto.Key) string {
	return strings.TrimRight(origin, "/") + "/share/" + shareID + "#key=" + codec.EncodeHex(shareKey.Bytes())
}

// ParseURL extracts the share id and share key from a share URL.
//
// Returns ErrMissingKeyFragment if the URL lacks a #key=... fragment, and
// ErrInvalidInput if the id is missing or the key is not 32 hex-encoded bytes.
func ParseURL(raw string) (string, crypto.Key, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", crypto.Key{}, fmt.Errorf("%w: %v", nverrors.ErrInvalidInput, err)
	}

	shareID := shareIDFromPath(u.Path)
	if shareID == "" {
		return "", crypto.Key{}, fmt.Errorf("%w: expected a /share/<id> path", nverrors.ErrInvalidInput)
	}

	keyHex, ok := strings.CutPrefix(u.Fragment, "key=")
	if !ok || keyHex == "" {
		return "", crypto.Key{}, nverrors.ErrMissingKeyFragment
	}

	keyBytes, err := codec.DecodeHex(keyHex)
	if err != nil {
		return "", crypto.Key{}, err
	}
	shareKey, err := crypto.KeyFromBytes(keyBytes)
	if err != nil {
		return "", crypto.Key{}, err
	}

	return shareID, shareKey, nil
}

func shareIDFromPath(path string) string {
	idx := strings.LastIndex(path, "/share/")
	if idx < 0 {
		return ""
	}
	id := path[idx+len("/share/"):]
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
