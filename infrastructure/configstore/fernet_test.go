package configstore

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey(t *testing.T) {
	key := DeriveKey("segredo")

	assert.Len(t, key, 32)
	assert.Equal(t, key, DeriveKey("segredo"))
	assert.NotEqual(t, key, DeriveKey("outro"))
	// mesmo valor de hashlib.pbkdf2_hmac("sha256", b"segredo", b"subwayiq_salt", 100000, 32)
	assert.Equal(t, "G-F088ay9KwHuz9vrPrkd6CDMBKMz3-idmUk_46Yl1Y=", EncodeKey(key))
}

func TestFernetRoundTrip(t *testing.T) {
	box, err := NewFernet(DeriveKey("segredo"))
	require.NoError(t, err)

	plaintext := []byte(`{"accounts":[],"max_workers":8}`)

	token, err := box.Encrypt(plaintext)
	require.NoError(t, err)
	assert.NotContains(t, string(token), "accounts")

	raw, err := base64.URLEncoding.DecodeString(string(token))
	require.NoError(t, err)
	assert.Equal(t, byte(0x80), raw[0])

	got, err := box.Decrypt(append(token, '\n'))
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)
}

// Token gerado pela implementação de referência (cryptography.fernet no Python)
func TestFernetDecryptsReferenceToken(t *testing.T) {
	key, err := base64.URLEncoding.DecodeString("cw_0x689RpI-jtRR7oE8h_eQsKImvJapLeSbXpwF4e4=")
	require.NoError(t, err)

	box, err := NewFernet(key)
	require.NoError(t, err)

	got, err := box.Decrypt([]byte("gAAAAAAdwJ6wAAECAwQFBgcICQoLDA0ODy021cpGVWKZ_eEwCGM4BLLF_5CV9dOPmrhuVUPgJobwOz7JcbmrR64jVmpU4IwqDA=="))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))
}

func TestFernetDecryptFailures(t *testing.T) {
	box, err := NewFernet(DeriveKey("segredo"))
	require.NoError(t, err)

	other, err := NewFernet(DeriveKey("errada"))
	require.NoError(t, err)

	token, err := box.Encrypt([]byte("dados"))
	require.NoError(t, err)

	tampered := append([]byte{}, token...)
	tampered[20] ^= 'A' ^ 'B'

	tests := []struct {
		name  string
		box   *Fernet
		token []byte
	}{
		{name: "chave errada", box: other, token: token},
		{name: "token adulterado", box: box, token: tampered},
		{name: "token curto", box: box, token: []byte("gAAAAA")},
		{name: "base64 inválido", box: box, token: []byte("!!!")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.box.Decrypt(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestNewFernetRejectsShortKey(t *testing.T) {
	_, err := NewFernet([]byte("curta"))
	assert.Error(t, err)
}
