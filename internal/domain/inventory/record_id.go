package inventory

import (
	"crypto/rand"
	"fmt"
)

const (
	// RecordIDLength longitud de los identificadores generados.
	RecordIDLength = 22
	idAlphabet     = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	// maxUnbiased mayor múltiplo de len(idAlphabet) que cabe en un byte; bytes >= se descartan.
	maxUnbiased = 256 - 256%len(idAlphabet)
)

// NewRecordID genera un token aleatorio de 22 caracteres alfanuméricos.
func NewRecordID() (string, error) {
	out := make([]byte, 0, RecordIDLength)
	buf := make([]byte, RecordIDLength*2)
	for len(out) < RecordIDLength {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("generar id: %w", err)
		}
		for _, b := range buf {
			if int(b) >= maxUnbiased {
				continue
			}
			out = append(out, idAlphabet[int(b)%len(idAlphabet)])
			if len(out) == RecordIDLength {
				break
			}
		}
	}
	return string(out), nil
}
