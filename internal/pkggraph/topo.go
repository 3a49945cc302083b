package pkggraph

import "github.com/specialistvlad/pkgproj/internal/model"

// topologicalSort walks the dependency relation depth-first from root and
// returns the reverse post-order: root first, each package ahead of the
// packages it depends on. Dependencies are visited in declaration order, so the
// result is deterministic for a given input.
func topologicalSort(root *model.Package) ([]*model.Package, error) {
	visiting := make(map[string]bool)
	visited := make(map[string]bool)
	instances := make(map[string]*model.Package)

	var path []string
	var postOrder []*model.Package

	var visit func(p *model.Package) error
	visit = func(p *model.Package) error {
		if p == nil {
			return invalidf("nil dependency declared by %q", path[len(path)-1])
		}
		if seen, ok := instances[p.ID]; ok && seen != p {
			return duplicateError(p.ID)
		}
		instances[p.ID] = p

		if visiting[p.ID] {
			return cycleError(cyclePath(path, p.ID))
		}
		if visited[p.ID] {
			return nil
		}

		visiting[p.ID] = true
		path = append(path, p.ID)
		for _, dep := range p.Dependencies {
			if err := visit(dep); err != nil {
				return err
			}
		}
		path = path[:len(path)-1]
		delete(visiting, p.ID)
		visited[p.ID] = true
		postOrder = append(postOrder, p)
		return nil
	}

	if err := visit(root); err != nil {
		return nil, err
	}

	order := make([]*model.Package, len(postOrder))
	for i, p := range postOrder {
		order[len(postOrder)-1-i] = p
	}
	return order, nil
}

// cyclePath extracts the closed cycle ending at id from the current DFS path.
func cyclePath(path []string, id string) []string {
	start := 0
	for i, p := range path {
		if p == id {
			start = i
			break
		}
	}
	out := make([]string, 0, len(path)-start+1)
	out = append(out, path[start:]...)
	return append(out, id)
}
