package ledger

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	keyDelimiter = "\x00"
	maxRune      = utf8.MaxRune
)

// Namespaces used by the registry.
const (
	NamespaceRequest  = "regnet.request"
	NamespaceUser     = "regnet.user"
	NamespaceProperty = "regnet.property"
)

// Key is a composite ledger key. The encoding matches the Fabric chaincode
// shim, so keys written through any backend are interchangeable.
type Key string

// CompositeKey derives a key from a namespace and an ordered list of
// attributes.
func CompositeKey(namespace string, attrs ...string) (Key, error) {
	if namespace == "" {
		return "", fmt.Errorf("%w: empty namespace", ErrInvalidKey)
	}
	if err := validateKeyPart(namespace); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(keyDelimiter)
	b.WriteString(namespace)
	b.WriteString(keyDelimiter)
	for _, attr := range attrs {
		if err := validateKeyPart(attr); err != nil {
			return "", err
		}
		b.WriteString(attr)
		b.WriteString(keyDelimiter)
	}
	return Key(b.String()), nil
}

// SplitCompositeKey is the inverse of CompositeKey.
func SplitCompositeKey(key Key) (string, []string, error) {
	s := string(key)
	if len(s) < 2 || !strings.HasPrefix(s, keyDelimiter) || !strings.HasSuffix(s, keyDelimiter) {
		return "", nil, fmt.Errorf("%w: %q is not a composite key", ErrInvalidKey, s)
	}
	parts := strings.Split(s[1:len(s)-1], keyDelimiter)
	if parts[0] == "" {
		return "", nil, fmt.Errorf("%w: %q has no namespace", ErrInvalidKey, s)
	}
	return parts[0], parts[1:], nil
}

// String renders the key as namespace:attr1:attr2 for logs and messages.
func (k Key) String() string {
	ns, attrs, err := SplitCompositeKey(k)
	if err != nil {
		return strings.ReplaceAll(string(k), keyDelimiter, ":")
	}
	return strings.Join(append([]string{ns}, attrs...), ":")
}

func validateKeyPart(s string) error {
	if !utf8.ValidString(s) {
		return fmt.Errorf("%w: %q is not valid UTF-8", ErrInvalidKey, s)
	}
	for _, r := range s {
		if r == 0 || r == maxRune {
			return fmt.Errorf("%w: %q contains U+0000 or U+10FFFF", ErrInvalidKey, s)
		}
	}
	return nil
}
