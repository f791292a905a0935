package vectors

import (
	"encoding/json"
	"os"
	"time"

	"github.com/fpverif/go-fp-golden/golden"
	"github.com/google/uuid"
	cid "github.com/ipfs/go-cid"
	mh "github.com/multiformats/go-multihash"
	"golang.org/x/xerrors"
)

// FileRef identifies a vector file by content
type FileRef struct {
	Path    string `json:"path"`
	CID     string `json:"cid"`
	Records int    `json:"records"`
}

// Manifest records what a compute run consumed and produced, so that an
// expected-output file can be traced back to its inputs
type Manifest struct {
	RunID    string         `json:"run_id"`
	Created  time.Time      `json:"created"`
	Format   string         `json:"format"`
	NaNSign  string         `json:"nan_sign"`
	Input    FileRef        `json:"input"`
	Expected FileRef        `json:"expected"`
	Skipped  int            `json:"skipped"`
	Flags    map[string]int `json:"flags"`
}

var filePrefix = cid.Prefix{
	Version:  1,
	Codec:    cid.Raw,
	MhType:   mh.SHA2_256,
	MhLength: -1,
}

// FileCID returns the CIDv1 (raw codec, sha2-256) of the file contents
func FileCID(path string) (cid.Cid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return cid.Undef, xerrors.Errorf("reading %s: %w", path, err)
	}
	c, err := filePrefix.Sum(data)
	if err != nil {
		return cid.Undef, xerrors.Errorf("hashing %s: %w", path, err)
	}
	return c, nil
}

// NewManifest describes a completed Process run over the given files
func NewManifest(inPath, outPath string, ev golden.Evaluator, sum Summary) (*Manifest, error) {
	in, err := FileCID(inPath)
	if err != nil {
		return nil, err
	}
	out, err := FileCID(outPath)
	if err != nil {
		return nil, err
	}
	return &Manifest{
		RunID:    uuid.New().String(),
		Created:  time.Now().UTC(),
		Format:   sum.Format,
		NaNSign:  ev.NaNSign.String(),
		Input:    FileRef{Path: inPath, CID: in.String(), Records: sum.Stats.Records + sum.Stats.Skipped},
		Expected: FileRef{Path: outPath, CID: out.String(), Records: sum.Stats.Records},
		Skipped:  sum.Stats.Skipped,
		Flags:    sum.Stats.Flags,
	}, nil
}

func (m *Manifest) WriteFile(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return xerrors.Errorf("encoding manifest: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return xerrors.Errorf("writing manifest: %w", err)
	}
	return nil
}

func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, xerrors.Errorf("reading manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, xerrors.Errorf("decoding manifest: %w", err)
	}
	if _, err := uuid.Parse(m.RunID); err != nil {
		return nil, xerrors.Errorf("manifest run id: %w", err)
	}
	return &m, nil
}

// Verify checks that the referenced files still have the recorded content
func (m *Manifest) Verify() error {
	for _, ref := range []FileRef{m.Input, m.Expected} {
		want, err := cid.Decode(ref.CID)
		if err != nil {
			return xerrors.Errorf("manifest cid of %s: %w", ref.Path, err)
		}
		got, err := FileCID(ref.Path)
		if err != nil {
			return err
		}
		if !got.Equals(want) {
			return xerrors.Errorf("%s changed: have %s, manifest records %s", ref.Path, got, want)
		}
	}
	return nil
}
