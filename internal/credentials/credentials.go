package credentials

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Kind names a credential source.
type Kind string

const (
	KindPrompt         Kind = "prompt"
	KindEnv            Kind = "env"
	KindStatic         Kind = "static"
	KindSecretsManager Kind = "secretsmanager"
)

// Kinds lists every supported source, in the order shown to the operator.
var Kinds = []Kind{KindPrompt, KindEnv, KindStatic, KindSecretsManager}

var (
	// ErrMissingCredentials is returned when a source has no key pair to offer.
	ErrMissingCredentials = errors.New("missing AWS credentials")

	// ErrUnknownSource is returned for an unsupported source kind.
	ErrUnknownSource = errors.New("unknown credential source")
)

// Credentials is an AWS access key pair. It never prints its secret parts.
type Credentials struct {
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
}

// String implements fmt.Stringer with the secret parts redacted.
func (c Credentials) String() string {
	return fmt.Sprintf("Credentials{AccessKeyID: %s, SecretAccessKey: %s}", MaskKey(c.AccessKeyID), redact(c.SecretAccessKey))
}

// GoString keeps %#v from leaking secrets as well.
func (c Credentials) GoString() string {
	return c.String()
}

// IsZero reports whether no key pair is set.
func (c Credentials) IsZero() bool {
	return c.AccessKeyID == "" && c.SecretAccessKey == ""
}

// MaskKey keeps the last four characters of an access key id.
func MaskKey(key string) string {
	if key == "" {
		return "<empty>"
	}
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}

func redact(secret string) string {
	if secret == "" {
		return "<empty>"
	}
	return "<redacted>"
}

// Source provides the key pair used to authenticate against AWS.
//
//go:generate mockery --name=Source --output=./mocks
type Source interface {
	Name() string
	Retrieve(ctx context.Context) (Credentials, error)
}

// Options carries what the individual sources need.
type Options struct {
	Prompter  *Prompter
	AccessKey string
	SecretKey string
	SecretID  string
	Region    string
}

// ParseKind converts a user supplied name to a Kind.
func ParseKind(name string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(name)))
	for _, k := range Kinds {
		if k == kind {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSource, name)
}

// NewSource builds the source for the given kind.
func NewSource(kind Kind, opts Options) (Source, error) {
	switch kind {
	case KindPrompt:
		if opts.Prompter == nil {
			return nil, errors.New("prompt credential source requires a prompter")
		}
		return NewPromptSource(opts.Prompter), nil
	case KindEnv:
		return NewEnvSource(), nil
	case KindStatic:
		return NewStaticSource(opts.AccessKey, opts.SecretKey), nil
	case KindSecretsManager:
		if opts.SecretID == "" {
			return nil, errors.New("secretsmanager credential source requires a secret id")
		}
		return NewSecretsManagerSource(opts.SecretID, opts.Region), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, kind)
	}
}
