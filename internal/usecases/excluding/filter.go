package excluding

// Entity é qualquer item de relatório identificável para fins de exclusão.
type Entity interface {
	EntityID() string
}

// ActiveEntities devolve apenas as entidades fora do conjunto de exclusão,
// preservando a ordem original da listagem.
func ActiveEntities[T Entity](all []T, excluded map[string]bool) []T {
	if len(excluded) == 0 {
		return all
	}

	active := make([]T, 0, len(all))

	for _, entity := range all {
		if excluded[entity.EntityID()] {
			continue
		}

		active = append(active, entity)
	}

	return active
}
