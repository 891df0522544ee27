package model

import (
	"context"
	"fmt"
	"sync"

	"aidj/config"
)

type StatusReport struct {
	BackendConnected bool
	DatabaseReady    bool
	Documents        int
}

func (r StatusReport) String() string {
	backend := "Disconnected"
	if r.BackendConnected {
		backend = "Connected"
	}
	db := "Not Ready"
	if r.DatabaseReady {
		db = "Ready"
	}
	return fmt.Sprintf("System Status:\n  Backend: %s\n  Database: %s\n  Documents: %d documents loaded",
		backend, db, r.Documents)
}

// CheckStatus runs the three backend checks concurrently and waits for all
// of them. A failed check reads as disconnected, not ready, or zero documents.
func CheckStatus(ctx context.Context, b Backend) StatusReport {
	var report StatusReport
	if b == nil {
		return report
	}

	var wg sync.WaitGroup
	wg.Add(3)

	go runCheck(&wg, "status", func() {
		report.BackendConnected = b.Status(ctx) == nil
	})
	go runCheck(&wg, "db-status", func() {
		report.DatabaseReady = b.DBStatus(ctx) == nil
	})
	go runCheck(&wg, "doc-count", func() {
		reply, err := b.DocCount(ctx)
		if err != nil {
			return
		}
		report.Documents = reply.Value()
	})

	wg.Wait()
	return report
}

func runCheck(wg *sync.WaitGroup, name string, fn func()) {
	defer wg.Done()
	defer func() {
		if r := recover(); r != nil && config.DebugLog != nil {
			config.DebugLog.Printf("[Status] Check %s panicked: %v", name, r)
		}
	}()
	fn()
}
