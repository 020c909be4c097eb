package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateRunID gera um identificador curto para correlacionar os logs de
// uma execução de sincronização.
func GenerateRunID() string {
	return gonanoid.MustGenerate(characters, 6)
}
