// Package builder provides validation helpers to enforce parameter
// contracts in Constructor factories.
package builder

// validateMin ensures that got ≥ min.
// Complexity: O(1) time and space.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooFewVertices, "n=%d < min=%d", got, min)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// Complexity: O(1) time and space.
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return builderErrorf(method, ErrInvalidProbability, "p=%.6f not in [%.1f,%.1f]", p, MinProbability, MaxProbability)
	}

	return nil
}
