package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera o identificador curto de uma execução do pipeline,
// devolvido no payload e usado nos logs para correlacionar as etapas
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}
