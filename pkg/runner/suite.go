package runner

import (
	"bytes"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/oisee/z80emu/pkg/cpu"
)

// Image is one program to load and run: Program bytes land at LoadAddr,
// execution starts at InitialPC. CPMStub opts that image into the minimal
// BDOS character/string output convention.
type Image struct {
	Name      string
	LoadAddr  uint16
	InitialPC uint16
	Program   []byte
	CPMStub   bool
}

// Suite is a batch of images to run.
type Suite struct {
	Images []Image
}

// Config tunes a suite run. NumWorkers <= 0 defaults to runtime.NumCPU().
// MaxInstructions <= 0 means no safety bound (the image is trusted to halt
// or jump to zero on its own).
type Config struct {
	NumWorkers      int
	MaxInstructions uint64
	RAMSize         int
}

// RunSuite executes every image in the suite on a pool of cfg.NumWorkers
// goroutines, each image on its own independently-constructed
// cpu.System — System itself is strictly
// synchronous and is never shared between goroutines. A panic while running
// one image (an unimplemented or malformed opcode, typically) is recovered
// per task and recorded on that image's Result; it does not abort the rest
// of the suite.
func RunSuite(suite Suite, cfg Config) *Table {
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = runtime.NumCPU()
	}
	if cfg.RAMSize <= 0 {
		cfg.RAMSize = 0x10000
	}

	table := NewTable()
	total := int64(len(suite.Images))
	ch := make(chan Image, len(suite.Images))
	for _, img := range suite.Images {
		ch <- img
	}
	close(ch)

	var completed atomic.Int64
	done := make(chan struct{})
	startTime := time.Now()
	go func() {
		ticker := time.NewTicker(10 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				comp := completed.Load()
				pct := float64(comp) / float64(total) * 100
				fmt.Printf("  [%s] %d/%d images (%.1f%%)\n",
					time.Since(startTime).Round(time.Second), comp, total, pct)
			}
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < cfg.NumWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for img := range ch {
				table.Add(runImage(img, cfg))
				completed.Add(1)
			}
		}()
	}
	wg.Wait()
	close(done)

	return table
}

func runImage(img Image, cfg Config) (result Result) {
	result = Result{Name: img.Name, InitialPC: img.InitialPC}
	defer func() {
		if r := recover(); r != nil {
			result.Panicked = true
			result.PanicValue = fmt.Sprint(r)
		}
	}()

	sys := cpu.New(cfg.RAMSize, img.InitialPC, img.CPMStub)
	if err := sys.Mem.WriteRange(int(img.LoadAddr), len(img.Program), img.Program); err != nil {
		result.Panicked = true
		result.PanicValue = err.Error()
		return result
	}

	var out bytes.Buffer
	sys.Stdout = &out

	for sys.Running {
		sys.ExecuteInstruction()
		if cfg.MaxInstructions > 0 && sys.InstructionCount >= cfg.MaxInstructions {
			result.TimedOut = true
			break
		}
	}

	result.InstructionCount = sys.InstructionCount
	result.Output = out.String()
	return result
}
