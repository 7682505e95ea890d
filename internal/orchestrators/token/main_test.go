package token_test

import (
	"testing"

	"go.uber.org/goleak"
)

// decode fans out to goroutines; none may outlive a lookup
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
