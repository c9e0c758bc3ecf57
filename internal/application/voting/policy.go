package voting

import "github.com/tu-usuario/lunch-decider/internal/domain"

// PolicyVersion variante versionada de la regla de aceptación de votos.
// Se selecciona por petición vía el header Accept (parámetro version).
type PolicyVersion string

const (
	// PolicyV1 "hasta dos votos": un empleado puede votar dos veces por el
	// mismo menú; el tercer voto se rechaza.
	PolicyV1 PolicyVersion = "1.0"
	// PolicyV2 "voto único": un segundo voto por el mismo menú se rechaza.
	PolicyV2 PolicyVersion = "2.0"

	// DefaultPolicyVersion versión aplicada cuando el cliente no declara
	// ninguna o declara una desconocida.
	DefaultPolicyVersion = PolicyV2
)

// ParsePolicyVersion normaliza el token de versión del cliente.
// Cualquier valor no reconocido cae a DefaultPolicyVersion.
func ParsePolicyVersion(s string) PolicyVersion {
	switch PolicyVersion(s) {
	case PolicyV1:
		return PolicyV1
	case PolicyV2:
		return PolicyV2
	default:
		return DefaultPolicyVersion
	}
}

// Validate decide si un voto adicional es admisible dado el número de votos
// ya registrados del empleado para ese menú. nil = admitir.
func (v PolicyVersion) Validate(existingVotes int) error {
	switch v {
	case PolicyV1:
		if existingVotes >= 2 {
			return domain.ErrVoteLimitReached
		}
	default:
		if existingVotes >= 1 {
			return domain.ErrAlreadyVoted
		}
	}
	return nil
}
