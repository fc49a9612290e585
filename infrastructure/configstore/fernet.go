package configstore

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/fernet/fernet-go"
	"golang.org/x/crypto/pbkdf2"
)

const (
	keySalt       = "subwayiq_salt"
	keyIterations = 100000
	keyLength     = 32
)

var ErrInvalidToken = errors.New("token fernet inválido")

// DeriveKey gera a chave Fernet (32 bytes) a partir da senha com PBKDF2-HMAC-SHA256
func DeriveKey(password string) []byte {
	return pbkdf2.Key([]byte(password), []byte(keySalt), keyIterations, keyLength, sha256.New)
}

// EncodeKey devolve a chave em urlsafe base64, o formato aceito por outras implementações Fernet
func EncodeKey(key []byte) string {
	var k fernet.Key
	copy(k[:], key)
	return k.Encode()
}

// Fernet cifra o arquivo de configuração. Os tokens não expiram.
type Fernet struct {
	key *fernet.Key
}

func NewFernet(key []byte) (*Fernet, error) {
	if len(key) != keyLength {
		return nil, fmt.Errorf("chave fernet deve ter %d bytes, recebido %d", keyLength, len(key))
	}

	k := new(fernet.Key)
	copy(k[:], key)
	return &Fernet{key: k}, nil
}

func (f *Fernet) Encrypt(plaintext []byte) ([]byte, error) {
	return fernet.EncryptAndSign(plaintext, f.key)
}

func (f *Fernet) Decrypt(token []byte) ([]byte, error) {
	// ttl zero desliga a verificação de expiração
	plaintext := fernet.VerifyAndDecrypt(bytes.TrimSpace(token), 0, []*fernet.Key{f.key})
	if plaintext == nil {
		return nil, ErrInvalidToken
	}
	return plaintext, nil
}
