package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 16
)

// GenerateID gera os IDs de credenciais e ingestion runs
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}
