package success

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/yolapp/yol-backend/internal/domain"
)

// Success definitions are seed data that changes only on redeploy, so a
// small expiring LRU in front of the repository removes most reads.
const (
	definitionCacheSize = 64
	definitionCacheTTL  = 5 * time.Minute

	cacheKeyAll = "all"
)

// definitionCache provides an in-memory LRU cache for success definitions
type definitionCache struct {
	byID  *expirable.LRU[int, *domain.Success]
	lists *expirable.LRU[string, []domain.Success]
}

func newDefinitionCache() *definitionCache {
	return &definitionCache{
		byID:  expirable.NewLRU[int, *domain.Success](definitionCacheSize, nil, definitionCacheTTL),
		lists: expirable.NewLRU[string, []domain.Success](1, nil, definitionCacheTTL),
	}
}

func (c *definitionCache) GetByID(successID int) (*domain.Success, bool) {
	return c.byID.Get(successID)
}

func (c *definitionCache) SetByID(success *domain.Success) {
	c.byID.Add(success.ID, success)
}

func (c *definitionCache) GetList() ([]domain.Success, bool) {
	return c.lists.Get(cacheKeyAll)
}

func (c *definitionCache) SetList(successes []domain.Success) {
	c.lists.Add(cacheKeyAll, successes)
	for i := range successes {
		c.byID.Add(successes[i].ID, &successes[i])
	}
}
