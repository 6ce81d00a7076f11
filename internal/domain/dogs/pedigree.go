package dogs

import "context"

const (
	DefaultPedigreeDepth = 3

	// MaxPedigreeDepth acota el fan-out del resolver: el peor caso son
	// 2^depth lookups (árbol binario de ancestros completo).
	MaxPedigreeDepth = 10
)

// PedigreeNode es un nodo del árbol de ancestros. Sire/Dam son nil cuando
// la referencia no existe, no resuelve, o se llegó al límite de profundidad.
type PedigreeNode struct {
	Dog  Dog
	Sire *PedigreeNode
	Dam  *PedigreeNode
}

// Pedigree arma el árbol de ancestros desde rootID hasta depth generaciones.
//
// El root tiene que existir (ErrInvalidID / ErrNotFound). De ahí para arriba
// todo es best-effort: una referencia ausente, malformada o colgante deja esa
// rama en nil en vez de fallar. La recursión termina solo por el límite de
// profundidad, lo que de paso hace inofensivos los ciclos en las referencias
// (un perro listado como su propio ancestro se expande depth veces y corta).
func (s *Service) Pedigree(ctx context.Context, rootID string, depth int) (*PedigreeNode, error) {
	if depth < 0 {
		depth = 0
	}
	if depth > MaxPedigreeDepth {
		depth = MaxPedigreeDepth
	}

	root, err := s.GetByID(ctx, rootID)
	if err != nil {
		return nil, err
	}
	return s.expand(ctx, root, 0, depth), nil
}

func (s *Service) expand(ctx context.Context, d Dog, level, depth int) *PedigreeNode {
	n := &PedigreeNode{Dog: d}
	if level >= depth {
		return n
	}

	if d.SireID != "" {
		if sire, err := s.GetByID(ctx, d.SireID); err == nil {
			n.Sire = s.expand(ctx, sire, level+1, depth)
		}
	}
	if d.DamID != "" {
		if dam, err := s.GetByID(ctx, d.DamID); err == nil {
			n.Dam = s.expand(ctx, dam, level+1, depth)
		}
	}
	return n
}
