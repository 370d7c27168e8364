package runner

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTableResultsAreSortedAndCopied(t *testing.T) {
	table := NewTable()
	table.Add(Result{Name: "zexall"})
	table.Add(Result{Name: "adc16"})

	got := table.Results()
	if len(got) != 2 || got[0].Name != "adc16" || got[1].Name != "zexall" {
		t.Fatalf("Results() = %+v, want sorted [adc16 zexall]", got)
	}
	got[0].Name = "mutated"
	if table.Results()[0].Name != "adc16" {
		t.Error("mutating a Results() slice must not affect the table")
	}
	if table.Len() != 2 {
		t.Errorf("Len() = %d, want 2", table.Len())
	}
}

func TestCheckpointRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ckpt.gob")
	want := &Checkpoint{
		Results: []Result{
			{Name: "a", InstructionCount: 10},
			{Name: "b", Panicked: true, PanicValue: "boom"},
		},
		Completed: 2,
	}
	if err := SaveCheckpoint(path, want); err != nil {
		t.Fatalf("SaveCheckpoint: %v", err)
	}
	got, err := LoadCheckpoint(path)
	if err != nil {
		t.Fatalf("LoadCheckpoint: %v", err)
	}
	if got.Completed != want.Completed || len(got.Results) != len(want.Results) {
		t.Fatalf("LoadCheckpoint = %+v, want %+v", got, want)
	}
	if got.Results[1].PanicValue != "boom" {
		t.Errorf("Results[1].PanicValue = %q, want boom", got.Results[1].PanicValue)
	}
}

func TestRunSuiteExecutesEachImageIndependently(t *testing.T) {
	// Image 1: halts immediately.
	halter := []byte{0x76} // HALT
	// Image 2: jumps straight to zero, the termination convention.
	jumper := []byte{0xC3, 0x00, 0x00} // JP 0x0000

	suite := Suite{Images: []Image{
		{Name: "halter", LoadAddr: 0x0100, InitialPC: 0x0100, Program: halter},
		{Name: "jumper", LoadAddr: 0x0100, InitialPC: 0x0100, Program: jumper},
	}}

	table := RunSuite(suite, Config{NumWorkers: 2, MaxInstructions: 1000})
	results := table.Results()
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	for _, r := range results {
		if r.Panicked {
			t.Errorf("image %s panicked: %s", r.Name, r.PanicValue)
		}
		if r.InstructionCount == 0 {
			t.Errorf("image %s ran zero instructions", r.Name)
		}
	}
}

func TestRunSuiteRecoversPanicAndRespectsMaxInstructions(t *testing.T) {
	// ED FF is not a recognized ED-prefixed opcode and must panic; the
	// panic should be recorded on that image's Result without affecting
	// others.
	bad := []byte{0xED, 0xFF}
	loop := []byte{0x18, 0xFE} // JR -2: an infinite loop, bounded by MaxInstructions

	suite := Suite{Images: []Image{
		{Name: "bad", LoadAddr: 0, InitialPC: 0, Program: bad},
		// Looping back to address 0 would trigger the jump-to-zero
		// termination convention instead of actually looping, so this
		// image lives away from address zero.
		{Name: "loop", LoadAddr: 0x0010, InitialPC: 0x0010, Program: loop},
	}}
	table := RunSuite(suite, Config{NumWorkers: 2, MaxInstructions: 50})

	var badResult, loopResult Result
	for _, r := range table.Results() {
		switch r.Name {
		case "bad":
			badResult = r
		case "loop":
			loopResult = r
		}
	}
	if !badResult.Panicked {
		t.Error("unimplemented opcode must be recorded as a panic")
	}
	if !loopResult.TimedOut {
		t.Error("an infinite loop must be stopped by MaxInstructions and marked TimedOut")
	}
	if loopResult.InstructionCount < 50 {
		t.Errorf("loop InstructionCount = %d, want >= 50", loopResult.InstructionCount)
	}
}

func TestMain(m *testing.M) {
	os.Exit(m.Run())
}
