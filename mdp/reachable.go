// SPDX-License-Identifier: MIT

package mdp

// ReachableStates returns every state reachable from m.StartState() by
// following the outcomes of every action, in breadth-first discovery order
// (start first; successors in the order the model lists them).
//
// The reachable space must be finite.
func ReachableStates[S, A comparable](m MDP[S, A]) []S {
	if m == nil {
		return nil
	}
	start := m.StartState()
	seen := map[S]struct{}{start: {}}
	order := []S{start}
	for head := 0; head < len(order); head++ {
		s := order[head]
		for _, a := range m.Actions(s) {
			for _, t := range m.SuccAndProbReward(s, a) {
				if _, ok := seen[t.State]; ok {
					continue
				}
				seen[t.State] = struct{}{}
				order = append(order, t.State)
			}
		}
	}

	return order
}
