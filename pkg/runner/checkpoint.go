package runner

import (
	"encoding/gob"
	"os"
)

// Checkpoint holds enough state to resume a partially-completed suite run:
// the results gathered so far and how many images had completed.
type Checkpoint struct {
	Results   []Result
	Completed int
}

// SaveCheckpoint writes suite state to path.
func SaveCheckpoint(path string, ckpt *Checkpoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gob.NewEncoder(f).Encode(ckpt)
}

// LoadCheckpoint loads suite state from path.
func LoadCheckpoint(path string) (*Checkpoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var ckpt Checkpoint
	if err := gob.NewDecoder(f).Decode(&ckpt); err != nil {
		return nil, err
	}
	return &ckpt, nil
}
