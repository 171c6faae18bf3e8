package cmd

import "testing"

func TestRunCheckOnKnownFixtureReportsNoErrors(t *testing.T) {
	strict, asJSON = false, false
	if err := runCheck(nil, []string{"arithmetic"}); err != nil {
		t.Fatalf("unexpected error checking the arithmetic fixture: %v", err)
	}
}

func TestRunCheckOnUnknownFixtureErrors(t *testing.T) {
	strict, asJSON = false, false
	if err := runCheck(nil, []string{"does-not-exist"}); err == nil {
		t.Fatal("expected an error for an unregistered fixture name")
	}
}

func TestRunDumpTypesOnCounterClassFixture(t *testing.T) {
	strict, asJSON = false, false
	if err := runDumpTypes(nil, []string{"counter-class"}); err != nil {
		t.Fatalf("unexpected error dumping types for counter-class: %v", err)
	}
}
