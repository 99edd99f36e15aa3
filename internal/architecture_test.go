package internal

import (
	"testing"

	"github.com/kcmvp/archunit"
)

func TestArchitecture(t *testing.T) {
	core := archunit.Packages("core", []string{".../internal/core/domain/...", ".../internal/core/port/...", ".../internal/core/service/..."})
	adapters := archunit.Packages("adapters", []string{".../internal/adapter/..."})

	// Rule 1: Core should not depend on adapters
	if err := core.ShouldNotReferLayers(adapters); err != nil {
		t.Errorf("Architecture violation: Core depends on Adapters: %v", err)
	}
}

func TestProjectorPackage(t *testing.T) {
	// The projection service is the heart of the bridge, make sure it stays
	// where adapters expect it
	svc := archunit.Packages("service", []string{".../internal/core/service"})
	if len(svc.Packages()) == 0 {
		t.Error("No service package found in core")
	}
}
