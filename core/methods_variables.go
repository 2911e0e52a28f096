// File: methods_variables.go
// Role: Variable declaration & queries.
//
// Determinism:
//   - Variables() returns variables in declaration order.
//
// Concurrency:
//   - All state protected by Network.mu.
package core

import "fmt"

// AddVariable declares v in the network.
//
// Implementation:
//   - Stage 1: Validate the domain bounds (ErrBadDomain).
//   - Stage 2: Validate the table against len(v.Parents) and the network tolerance.
//   - Stage 3: Under the write lock, reject duplicates and undeclared parents.
//   - Stage 4: Store a private copy of v (parents and table are deep-copied).
//
// Errors:
//   - ErrBadDomain, ErrRowCount, ErrRowWidth, ErrProbability, ErrRowSum,
//     ErrDuplicateVariable, ErrUnknownParent; all wrapped with the variable name.
//
// Complexity:
//   - Time O(p + r), Space O(p + r).
func (n *Network) AddVariable(v Variable) error {
	// Stage 1: domain sanity.
	if v.Domain.Low > v.Domain.High {
		return fmt.Errorf("AddVariable(%s): [%d, %d]: %w", v.Key, v.Domain.Low, v.Domain.High, ErrBadDomain)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	// Stage 2: table invariants.
	if err := ValidateTable(v.Table, len(v.Parents), n.tolerance); err != nil {
		return fmt.Errorf("AddVariable(%s): %w", v.Key, err)
	}

	// Stage 3: identity and parent references.
	if _, exists := n.index[v.Key]; exists {
		return fmt.Errorf("AddVariable(%s): %w", v.Key, ErrDuplicateVariable)
	}
	seen := make(map[Key]struct{}, len(v.Parents))
	for _, p := range v.Parents {
		if _, ok := n.index[p]; !ok {
			return fmt.Errorf("AddVariable(%s): parent %s: %w", v.Key, p, ErrUnknownParent)
		}
		if _, dup := seen[p]; dup {
			return fmt.Errorf("AddVariable(%s): parent %s listed twice: %w", v.Key, p, ErrDuplicateVariable)
		}
		seen[p] = struct{}{}
	}

	// Stage 4: register a private copy.
	stored := &Variable{
		Key:     v.Key,
		Domain:  v.Domain,
		Parents: append([]Key(nil), v.Parents...),
		Table:   CloneTable(v.Table),
	}
	n.index[v.Key] = len(n.vars)
	n.vars = append(n.vars, stored)

	return nil
}

// HasVariable reports whether k is declared.
func (n *Network) HasVariable(k Key) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	_, ok := n.index[k]

	return ok
}

// Variable returns a copy of the variable with key k.
func (n *Network) Variable(k Key) (Variable, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	i, ok := n.index[k]
	if !ok {
		return Variable{}, fmt.Errorf("Variable(%s): %w", k, ErrUnknownParent)
	}

	return copyVariable(n.vars[i]), nil
}

// Variables returns copies of all variables in declaration order.
// Complexity: O(V + Σ(p + r)).
func (n *Network) Variables() []Variable {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]Variable, len(n.vars))
	for i, v := range n.vars {
		out[i] = copyVariable(v)
	}

	return out
}

// Keys returns variable keys in declaration order.
func (n *Network) Keys() []Key {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]Key, len(n.vars))
	for i, v := range n.vars {
		out[i] = v.Key
	}

	return out
}

// VariableCount returns |V|.
func (n *Network) VariableCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.vars)
}

func copyVariable(v *Variable) Variable {
	return Variable{
		Key:     v.Key,
		Domain:  v.Domain,
		Parents: append([]Key(nil), v.Parents...),
		Table:   CloneTable(v.Table),
	}
}
