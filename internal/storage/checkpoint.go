// Package storage persists and restores block-lattice checkpoints: JSON
// metadata describing the run (descriptor, dynamics, domain size, time
// step) alongside a dense binary payload of per-cell decomposed state,
// the way internal/storage.Store separates a run's metadata.json from
// its bulk state file.
package storage

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/san-kum/lbmcore/internal/block"
	"github.com/san-kum/lbmcore/internal/dynamics"
	"github.com/san-kum/lbmcore/internal/geom"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// CheckpointMetadata is the JSON side-car of a checkpoint: everything
// needed to reallocate the block before the binary payload is streamed
// back in.
type CheckpointMetadata struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Descriptor string    `json:"descriptor"`
	Dynamics   string    `json:"dynamics"`
	Domain     geom.Box3D `json:"domain"`
	Time       int64     `json:"time"`
	Order      int       `json:"order"`
}

// Save decomposes every cell of b at the given decomposition order and
// writes metadata.json plus a state.bin payload under a fresh run
// directory, returning the run ID.
func (s *Store) Save(b *block.AtomicBlock3D, dynName string, simTime int64, order int) (string, error) {
	domain := b.BoundingBox()
	runID := fmt.Sprintf("ckpt_%d", time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := CheckpointMetadata{
		ID:         runID,
		Timestamp:  time.Now(),
		Descriptor: b.Descriptor().Name(),
		Dynamics:   dynName,
		Domain:     domain,
		Time:       simTime,
		Order:      order,
	}
	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()
	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	binPath := filepath.Join(runDir, "state.bin")
	binFile, err := os.Create(binPath)
	if err != nil {
		return "", err
	}
	defer binFile.Close()
	w := bufio.NewWriter(binFile)
	defer w.Flush()

	for x := domain.X0; x <= domain.X1; x++ {
		for y := domain.Y0; y <= domain.Y1; y++ {
			for z := domain.Z0; z <= domain.Z1; z++ {
				c := b.Get(x, y, z)
				dyn, ok := c.Dyn.(dynamics.Dynamics)
				if !ok {
					return "", fmt.Errorf("storage: cell (%d,%d,%d) dynamics does not implement dynamics.Dynamics", x, y, z)
				}
				raw, err := dyn.Decompose(c, order)
				if err != nil {
					return "", err
				}
				for _, v := range raw {
					if err := binary.Write(w, binary.LittleEndian, math.Float64bits(v)); err != nil {
						return "", err
					}
				}
			}
		}
	}

	return runID, nil
}

// Load rebuilds a block from a saved checkpoint. defaultDyn must be a
// zero-valued instance of the checkpoint's dynamics variant (typically
// obtained from the same dynamics.Registry the run was configured with)
// so per-cell Recompose has a concrete dynamics to dispatch through.
func (s *Store) Load(runID string, defaultDyn dynamics.Dynamics) (*block.AtomicBlock3D, *CheckpointMetadata, error) {
	runDir := filepath.Join(s.baseDir, runID)
	metaPath := filepath.Join(runDir, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, nil, err
	}
	var meta CheckpointMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, nil, err
	}

	b := block.NewAtomicBlock3D(meta.Domain, defaultDyn)

	binPath := filepath.Join(runDir, "state.bin")
	binFile, err := os.Open(binPath)
	if err != nil {
		return nil, nil, err
	}
	defer binFile.Close()
	r := bufio.NewReader(binFile)

	n := defaultDyn.NumDecomposedVariables(meta.Order)
	raw := make([]float64, n)
	domain := meta.Domain
	for x := domain.X0; x <= domain.X1; x++ {
		for y := domain.Y0; y <= domain.Y1; y++ {
			for z := domain.Z0; z <= domain.Z1; z++ {
				for i := range raw {
					var bits uint64
					if err := binary.Read(r, binary.LittleEndian, &bits); err != nil {
						return nil, nil, err
					}
					raw[i] = math.Float64frombits(bits)
				}
				c := b.Get(x, y, z)
				dyn := c.Dyn.(dynamics.Dynamics)
				if err := dyn.Recompose(c, raw, meta.Order); err != nil {
					return nil, nil, err
				}
			}
		}
	}

	return b, &meta, nil
}

// List enumerates saved checkpoints' metadata, newest last.
func (s *Store) List() ([]CheckpointMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []CheckpointMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]CheckpointMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}
		var meta CheckpointMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}
