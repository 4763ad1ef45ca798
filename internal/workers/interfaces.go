// Package workers runs the background loops of the client, such as the
// notification poller, and stops them together on logout or exit.
package workers

import "context"

// Worker is a background loop. Start returns once the loop is running;
// Stop blocks until it has exited.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
