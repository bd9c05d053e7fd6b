package magetasks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLdflags(t *testing.T) {
	built := time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("X", 3600))
	got := Ldflags("v1.2.3", "abc123", built)

	assert.Contains(t, got, "-X 'github.com/dkoosis/sqboot/internal/version.Version=v1.2.3'")
	assert.Contains(t, got, "-X 'github.com/dkoosis/sqboot/internal/version.CommitHash=abc123'")
	assert.Contains(t, got, "-X 'github.com/dkoosis/sqboot/internal/version.BuildDate=2026-03-01T11:00:00Z'")
}
