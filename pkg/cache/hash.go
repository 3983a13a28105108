package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Hash returns the hex SHA-256 of data, used for card bytes and artifact
// digests.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// HashJSON returns the Hash of v's JSON encoding. Struct fields encode in
// declaration order, so equal values always hash alike.
func HashJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return Hash(data), nil
}

// namespacedKey builds "namespace:<hash of parts>".
func namespacedKey(namespace string, parts ...any) string {
	digest, err := HashJSON(parts)
	if err != nil {
		// Key parts are strings and plain structs; encoding cannot fail.
		panic("cache: unencodable key parts: " + err.Error())
	}
	return namespace + ":" + digest
}
