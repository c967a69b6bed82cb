// pkg/ai/client.go

package ai

import "arborlog/entities"

// Client produces a short care recommendation for one record. It never
// raises: a transport or API failure comes back as a fixed user-facing
// message instead of advice.
type Client interface {
	Advise(r *entities.TreeRecord) string
}
