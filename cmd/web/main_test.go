package main

import (
	"strings"
	"testing"

	"valk_landing/internal/shared"
)

func TestRun_BadDSNReturnsError(t *testing.T) {
	err := run(shared.Config{MySQLDSN: "not-a-dsn"})
	if err == nil || !strings.Contains(err.Error(), "sql.Open") {
		t.Fatalf("expected sql.Open error, got %v", err)
	}
}
