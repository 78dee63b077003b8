package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um identificador opaco de 20 caracteres alfanuméricos
// para registros de venda.
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 20)
}
