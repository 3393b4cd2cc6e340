package cmd

import (
	"fmt"

	"github.com/corey/mechsize/internal/adapters/bbolt"
)

// storeError adds actionable guidance when the design store could not be
// opened because another process holds its lock.
func storeError(err error) error {
	if !bbolt.IsLockTimeout(err) {
		return err
	}
	return fmt.Errorf("%w\n%s", err, diagnoseStoreLock(application.Config.StorePath))
}

// diagnoseStoreLock returns guidance for a bbolt lock timeout on path.
func diagnoseStoreLock(path string) string {
	return fmt.Sprintf("design store is locked by another process\n"+
		"  → find the process:  lsof %s\n"+
		"  → or use a separate store:  mechsize --store /tmp/designs.db ...\n"+
		"  → then retry your command", path)
}
