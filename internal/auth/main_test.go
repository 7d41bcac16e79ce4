//go:build integration
// +build integration

package auth

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"testing"

	"crm-dashboard-backend/internal/testutils"
)

// TestMain ensures Docker cleanup after the sync integration tests
func TestMain(m *testing.M) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("auth tests interrupted, cleaning up Docker containers...")
		testutils.CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()

	testutils.CleanupSharedContainer()
	os.Exit(code)
}
