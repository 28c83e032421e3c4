// Package identity generates the random tenant credential created for each
// provisioning request.
package identity

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	digitChars     = "0123456789"

	passwordLength = 8
)

// Credential is the generated identity for a new tenant. It's created once per
// request and never mutated afterwards.
type Credential struct {
	Name      string `json:"name" yaml:"name"`
	GivenName string `json:"given_name" yaml:"given_name"`
	Surname   string `json:"surname" yaml:"surname"`
	Password  string `json:"password" yaml:"password"`
	UPN       string `json:"upn" yaml:"upn"`
	OUPath    string `json:"ou_path" yaml:"ou_path"`
}

// GenerationFailedError indicates that the random source couldn't produce a
// credential.
type GenerationFailedError struct {
	Cause error
}

func (e *GenerationFailedError) Error() string {
	return fmt.Sprintf("credential generation failed: %s", e.Cause.Error())
}

func (e *GenerationFailedError) Unwrap() error {
	return e.Cause
}

// Generator produces tenant credentials for a fixed directory domain and
// organizational unit.
type Generator struct {
	domain string
	ouPath string
}

// NewGenerator returns a credential generator for the given directory settings.
func NewGenerator(domain, ouPath string) *Generator {
	return &Generator{domain: domain, ouPath: ouPath}
}

// Generate produces a new random tenant credential.
func (g *Generator) Generate() (*Credential, error) {
	givenName, err := pick(adjectives)
	if err != nil {
		return nil, &GenerationFailedError{Cause: err}
	}
	surname, err := pick(nouns)
	if err != nil {
		return nil, &GenerationFailedError{Cause: err}
	}

	password, err := generatePassword()
	if err != nil {
		return nil, &GenerationFailedError{Cause: err}
	}

	username := fmt.Sprintf("%s_%s", strings.ToLower(givenName), strings.ToLower(surname))

	return &Credential{
		Name:      username,
		GivenName: givenName,
		Surname:   surname,
		Password:  password,
		UPN:       fmt.Sprintf("%s@%s", username, g.domain),
		OUPath:    g.ouPath,
	}, nil
}

// generatePassword builds an 8-character password that is guaranteed to
// contain at least one uppercase letter, one lowercase letter, and one digit.
// One character is drawn from each required class, the remaining five come
// from the union of all three, and the result is shuffled so the guaranteed
// characters don't sit in predictable positions.
func generatePassword() (string, error) {
	allChars := uppercaseChars + lowercaseChars + digitChars

	password := make([]byte, 0, passwordLength)
	for _, alphabet := range []string{uppercaseChars, lowercaseChars, digitChars} {
		c, err := pickByte(alphabet)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}
	for len(password) < passwordLength {
		c, err := pickByte(allChars)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	// Fisher-Yates shuffle.
	for i := len(password) - 1; i > 0; i-- {
		j, err := randomInt(i + 1)
		if err != nil {
			return "", err
		}
		password[i], password[j] = password[j], password[i]
	}

	return string(password), nil
}

func pick(words []string) (string, error) {
	i, err := randomInt(len(words))
	if err != nil {
		return "", err
	}
	return words[i], nil
}

func pickByte(alphabet string) (byte, error) {
	i, err := randomInt(len(alphabet))
	if err != nil {
		return 0, err
	}
	return alphabet[i], nil
}

func randomInt(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, errors.Wrap(err, "unable to read from the random source")
	}
	return int(v.Int64()), nil
}
