// pkg/ai/mock_client.go

package ai

import (
	"fmt"

	"arborlog/entities"
)

type mockClient struct{}

// NewMock is the fallback when no LLM endpoint is configured.
func NewMock() Client { return &mockClient{} }

func (m *mockClient) Advise(r *entities.TreeRecord) string {
	switch r.Health {
	case entities.HealthCritical, entities.HealthPoor:
		return fmt.Sprintf("- Inspect %s for pest or root damage this week\n- Water deeply and hold off fertilizer until recovery\n- Consider a certified arborist visit", r.Species)
	case entities.HealthFair:
		return fmt.Sprintf("- Monitor %s weekly for changes\n- Mulch around the base and keep soil evenly moist\n- Prune damaged limbs in the dormant season", r.Species)
	default:
		return fmt.Sprintf("- %s looks on track; keep the current watering schedule\n- Apply balanced fertilizer at the start of the growing season", r.Species)
	}
}
