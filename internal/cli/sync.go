package cli

import "context"

// Sync forces an immediate relay check instead of waiting for the poller.
func (a *App) Sync(ctx context.Context) error {
	applied, err := a.ctrl.CheckForUpdates(ctx)
	if err != nil {
		a.log.Error(ctx, "sync failed", "error", err)
		return err
	}
	if applied {
		printlnFn("Applied newer remote snapshot")
	} else {
		printlnFn("Already up to date")
	}
	return nil
}
