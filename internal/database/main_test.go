package database

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain verifies that no goroutines leak from transaction handling.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
