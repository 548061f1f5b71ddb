package service

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"sync"
)

// OTPRegistry guarda en memoria a lo sumo un codigo pendiente por email.
// Un mutex global cubre las secciones de lectura-modificacion-escritura;
// nunca se sostiene durante I/O de red. Los codigos no expiran por tiempo:
// siguen validos hasta ser reemplazados o consumidos.
type OTPRegistry struct {
	mu    sync.Mutex
	codes map[string]string
}

func NewOTPRegistry() *OTPRegistry {
	return &OTPRegistry{codes: make(map[string]string)}
}

// Issue genera un codigo de 6 digitos y lo guarda bajo el email,
// reemplazando cualquier codigo anterior de esa identidad.
func (r *OTPRegistry) Issue(email string) (string, error) {
	code, err := generateOTP()
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	r.codes[email] = code
	r.mu.Unlock()

	return code, nil
}

// Verify compara el codigo enviado contra el almacenado. Un acierto consume
// la entrada (codigos de un solo uso); un fallo la conserva para permitir
// reintentos. Ausencia y desajuste son indistinguibles para el caller.
func (r *OTPRegistry) Verify(email, submitted string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.codes[email]
	if !ok {
		return false
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(submitted)) != 1 {
		return false
	}
	delete(r.codes, email)
	return true
}

// generateOTP devuelve un codigo uniforme en [100000, 999999].
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
