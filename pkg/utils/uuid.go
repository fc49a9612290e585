package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const suffixCharacters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateSuffix gera o sufixo de 4 caracteres usado nos nomes de arquivos exportados
func GenerateSuffix() (string, error) {
	return gonanoid.Generate(suffixCharacters, 4)
}
