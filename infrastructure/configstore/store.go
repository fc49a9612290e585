package configstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	jsoniter "github.com/json-iterator/go"
	pkgerrors "github.com/pkg/errors"
	"github.com/vfg2006/liveiq-reports/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const backupTimeLayout = "20060102_150405"

var (
	ErrNotFound        = errors.New("arquivo de configuração não encontrado")
	ErrInvalidPassword = errors.New("senha da configuração inválida")
	ErrCorrupted       = errors.New("conteúdo da configuração corrompido")
)

// FileStore guarda as configurações do usuário num único arquivo cifrado com Fernet
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load decifra e normaliza o arquivo. Falha de HMAC vira ErrInvalidPassword.
func (s *FileStore) Load(key []byte) (*domain.Settings, error) {
	box, err := NewFernet(key)
	if err != nil {
		return nil, err
	}

	token, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, pkgerrors.Wrapf(err, "erro ao ler %s", s.path)
	}

	plaintext, err := box.Decrypt(token)
	if err != nil {
		if errors.Is(err, ErrInvalidToken) {
			return nil, ErrInvalidPassword
		}
		return nil, pkgerrors.Wrap(err, "erro ao decifrar configuração")
	}

	settings := domain.DefaultSettings()
	if err := json.Unmarshal(plaintext, settings); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupted, err)
	}
	settings.Normalize()

	return settings, nil
}

// Save cifra e grava o arquivo de forma atômica (arquivo temporário + rename)
func (s *FileStore) Save(key []byte, settings *domain.Settings) error {
	box, err := NewFernet(key)
	if err != nil {
		return err
	}

	plaintext, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return pkgerrors.Wrap(err, "erro ao serializar configuração")
	}

	token, err := box.Encrypt(plaintext)
	if err != nil {
		return pkgerrors.Wrap(err, "erro ao cifrar configuração")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return pkgerrors.Wrapf(err, "erro ao criar diretório %s", dir)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return pkgerrors.Wrap(err, "erro ao criar arquivo temporário")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(token); err != nil {
		tmp.Close()
		return pkgerrors.Wrap(err, "erro ao gravar configuração")
	}
	if err := tmp.Close(); err != nil {
		return pkgerrors.Wrap(err, "erro ao fechar arquivo temporário")
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return pkgerrors.Wrapf(err, "erro ao substituir %s", s.path)
	}

	return nil
}

// Reset renomeia o arquivo atual para <arquivo>.<YYYYmmdd_HHMMSS>.bak e grava
// a configuração padrão. Retorna o caminho do backup (vazio se não havia arquivo).
func (s *FileStore) Reset(key []byte, now time.Time) (string, *domain.Settings, error) {
	var backup string

	if s.Exists() {
		backup = fmt.Sprintf("%s.%s.bak", s.path, now.Format(backupTimeLayout))
		if err := os.Rename(s.path, backup); err != nil {
			return "", nil, pkgerrors.Wrapf(err, "erro ao criar backup %s", backup)
		}
	}

	settings := domain.DefaultSettings()
	if err := s.Save(key, settings); err != nil {
		return backup, nil, err
	}

	return backup, settings, nil
}
