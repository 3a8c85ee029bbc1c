// Package locations holds the secondary locations of the issue currently displayed to the user.
package locations

import (
	"sync"

	"github.com/uber/lint-client/src/lintclient/entity"
	"github.com/uber/lint-client/src/lintclient/internal/event"
	"github.com/uber/lint-client/src/lintclient/mapper"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides the location tree controller.
var Module = fx.Options(
	fx.Provide(New),
)

// Controller is the state of the location tree. Show and Clear are the only mutations.
type Controller interface {
	// Show replaces the displayed issue and its locations.
	Show(issue *entity.Issue)
	// Clear empties the tree and its header.
	Clear()
	// Snapshot returns a copy of what is displayed. The zero value means nothing is displayed.
	Snapshot() entity.DisplayedIssue
	// OnDidChange is notified with a snapshot after every mutation.
	OnDidChange(l event.Listener[entity.DisplayedIssue]) event.Disposable
}

// Params are the dependencies of the controller.
type Params struct {
	fx.In

	Logger *zap.SugaredLogger
}

type controller struct {
	logger *zap.SugaredLogger

	mu        sync.Mutex
	displayed entity.DisplayedIssue
	changes   event.Emitter[entity.DisplayedIssue]
}

// New creates an empty location tree.
func New(p Params) Controller {
	return &controller{logger: p.Logger.Named("locations")}
}

func (c *controller) Show(issue *entity.Issue) {
	displayed := mapper.IssueToDisplayed(issue)

	c.mu.Lock()
	c.displayed = displayed
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	c.logger.Debugw("showing issue locations", "rule", issue.RuleKey, "locations", len(displayed.Locations))
	c.publish(snapshot)
}

func (c *controller) Clear() {
	c.mu.Lock()
	c.displayed = entity.DisplayedIssue{}
	c.mu.Unlock()

	c.publish(entity.DisplayedIssue{})
}

func (c *controller) Snapshot() entity.DisplayedIssue {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *controller) OnDidChange(l event.Listener[entity.DisplayedIssue]) event.Disposable {
	return c.changes.Subscribe(l)
}

func (c *controller) snapshotLocked() entity.DisplayedIssue {
	snapshot := c.displayed
	if c.displayed.Locations != nil {
		snapshot.Locations = append([]entity.SecondaryLocation(nil), c.displayed.Locations...)
	}
	if c.displayed.Issue.Flows != nil {
		snapshot.Issue.Flows = append([]entity.Flow(nil), c.displayed.Issue.Flows...)
	}
	return snapshot
}

func (c *controller) publish(snapshot entity.DisplayedIssue) {
	if err := c.changes.Emit(snapshot); err != nil {
		c.logger.Errorf("Location tree listener failed: %v", err)
	}
}
