// Package txfile loads transactions that are described by json fixtures.
package txfile

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/spf13/afero"
	"lukechampine.com/uint128"

	"github.com/spacemeshos/go-checkpointvm/codec"
	"github.com/spacemeshos/go-checkpointvm/common/types"
	"github.com/spacemeshos/go-checkpointvm/signing"
	"github.com/spacemeshos/go-checkpointvm/vm/core"
	"github.com/spacemeshos/go-checkpointvm/vm/ledger"
	checkpointsdk "github.com/spacemeshos/go-checkpointvm/vm/sdk/checkpoint"
	"github.com/spacemeshos/go-checkpointvm/vm/templates/checkpoint"
)

const schemaFile = "fixture.schema.json"

//go:embed schema.json
var Schema string

// ValidateSchema checks that data is a valid fixture.
func ValidateSchema(data []byte) error {
	sch, err := jsonschema.CompileString(schemaFile, Schema)
	if err != nil {
		return fmt.Errorf("compile fixture json schema: %w", err)
	}
	var v any
	if err = json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal fixture: %w", err)
	}
	if err = sch.Validate(v); err != nil {
		return fmt.Errorf("validate fixture: %w", err)
	}
	return nil
}

// Fixture is a json description of a transaction and the expected verdict.
type Fixture struct {
	Name           string          `json:"name,omitempty"`
	CodeHash       *types.Hash32   `json:"code_hash,omitempty"`
	Args           types.HexBytes  `json:"args,omitempty"`
	CheckpointArgs *CheckpointArgs `json:"checkpoint_args,omitempty"`
	TxHash         *types.Hash32   `json:"tx_hash,omitempty"`
	Inputs         []Cell          `json:"inputs"`
	Outputs        []Cell          `json:"outputs"`
	Witnesses      []Witness       `json:"witnesses,omitempty"`
	Sign           *Sign           `json:"sign,omitempty"`
	Expect         *Expect         `json:"expect,omitempty"`
}

// CheckpointArgs are encoded into checkpoint script args.
// Admin defaults to the identity of the signing key.
type CheckpointArgs struct {
	Admin  types.HexBytes `json:"admin,omitempty"`
	TypeID types.Hash32   `json:"type_id"`
}

// Cell is an input or an output. At most one of Data, Amount and Record is set.
type Cell struct {
	Capacity uint64         `json:"capacity"`
	Type     *types.Hash32  `json:"type,omitempty"`
	Group    bool           `json:"group,omitempty"`
	Data     types.HexBytes `json:"data,omitempty"`
	// Amount is a decimal token amount.
	Amount string  `json:"amount,omitempty"`
	Record *Record `json:"record,omitempty"`
}

// Record is a json form of checkpoint.Record.
type Record struct {
	Version                uint8        `json:"version"`
	State                  uint8        `json:"state"`
	Period                 uint64       `json:"period"`
	Era                    uint64       `json:"era"`
	BlockHash              types.Hash32 `json:"block_hash"`
	PeriodInterval         uint32       `json:"period_interval"`
	EraPeriod              uint32       `json:"era_period"`
	UnlockPeriod           uint32       `json:"unlock_period"`
	BaseReward             string       `json:"base_reward,omitempty"`
	HalfPeriod             uint64       `json:"half_period"`
	SudtTypeHash           types.Hash32 `json:"sudt_type_hash"`
	StakeTypeHash          types.Hash32 `json:"stake_type_hash"`
	WithdrawalLockCodeHash types.Hash32 `json:"withdrawal_lock_code_hash"`
}

// Witness is either raw hex or witness args fields.
type Witness struct {
	Raw  types.HexBytes
	Args *WitnessArgs
}

// WitnessArgs is a json form of core.WitnessArgs. Absent fields stay absent.
type WitnessArgs struct {
	Lock       *types.HexBytes `json:"lock,omitempty"`
	InputType  *types.HexBytes `json:"input_type,omitempty"`
	OutputType *types.HexBytes `json:"output_type,omitempty"`
}

// Sign requests an administrative signature with the key from the file.
// Relative path is resolved against the fixture directory.
type Sign struct {
	Key string `json:"key"`
}

// Expect is the verdict expected from the script.
type Expect struct {
	Code int8 `json:"code"`
}

// UnmarshalJSON accepts hex string or an object.
func (w *Witness) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &w.Raw)
	}
	w.Args = &WitnessArgs{}
	return json.Unmarshal(data, w.Args)
}

// MarshalJSON implements json.Marshaler.
func (w Witness) MarshalJSON() ([]byte, error) {
	if w.Args != nil {
		return json.Marshal(w.Args)
	}
	return json.Marshal(w.Raw)
}

func optional(b *types.HexBytes) fn.Option[[]byte] {
	if b == nil {
		return fn.None[[]byte]()
	}
	return fn.Some([]byte(*b))
}

// Bytes encodes the witness.
func (w *Witness) Bytes() []byte {
	if w.Args == nil {
		return w.Raw
	}
	return codec.MustEncode(&core.WitnessArgs{
		Lock:       optional(w.Args.Lock),
		InputType:  optional(w.Args.InputType),
		OutputType: optional(w.Args.OutputType),
	})
}

func parseAmount(s string) (uint128.Uint128, error) {
	if s == "" {
		return uint128.Zero, nil
	}
	amount, err := uint128.FromString(s)
	if err != nil {
		return uint128.Zero, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return amount, nil
}

// Decode converts the record into checkpoint.Record.
func (r *Record) Decode() (*checkpoint.Record, error) {
	reward, err := parseAmount(r.BaseReward)
	if err != nil {
		return nil, err
	}
	return &checkpoint.Record{
		Version:                r.Version,
		State:                  r.State,
		Period:                 r.Period,
		Era:                    r.Era,
		BlockHash:              r.BlockHash,
		PeriodInterval:         r.PeriodInterval,
		EraPeriod:              r.EraPeriod,
		UnlockPeriod:           r.UnlockPeriod,
		BaseReward:             reward,
		HalfPeriod:             r.HalfPeriod,
		SudtTypeHash:           r.SudtTypeHash,
		StakeTypeHash:          r.StakeTypeHash,
		WithdrawalLockCodeHash: r.WithdrawalLockCodeHash,
	}, nil
}

func (c *Cell) decode() (ledger.Cell, error) {
	cell := ledger.Cell{Capacity: c.Capacity, Data: c.Data}
	if c.Type != nil {
		cell.Type = fn.Some(*c.Type)
	}
	switch {
	case c.Record != nil:
		rec, err := c.Record.Decode()
		if err != nil {
			return cell, err
		}
		cell.Data = checkpointsdk.Record(rec)
	case c.Amount != "":
		amount, err := parseAmount(c.Amount)
		if err != nil {
			return cell, err
		}
		cell.Data = checkpointsdk.TokenData(amount)
	}
	return cell, nil
}

// Case is a loaded fixture.
type Case struct {
	Name     string
	CodeHash types.Hash32
	Tx       *ledger.Transaction
	// Expect is the expected exit code, none if fixture doesn't declare it.
	Expect fn.Option[int8]
}

// Load reads, validates and converts the fixture at path.
func Load(fs afero.Fs, path string) (*Case, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %v: %w", path, err)
	}
	if err := ValidateSchema(data); err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	var fixture Fixture
	if err := json.Unmarshal(data, &fixture); err != nil {
		return nil, fmt.Errorf("unmarshal fixture %v: %w", path, err)
	}
	c, err := fixture.Case(fs, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	if c.Name == "" {
		c.Name = filepath.Base(path)
	}
	return c, nil
}

// Case builds the transaction. Key files are resolved against dir.
func (f *Fixture) Case(fs afero.Fs, dir string) (*Case, error) {
	c := &Case{
		Name:     f.Name,
		CodeHash: checkpoint.CodeHash,
		Tx:       &ledger.Transaction{Args: f.Args},
		Expect:   fn.None[int8](),
	}
	if f.CodeHash != nil {
		c.CodeHash = *f.CodeHash
	}
	if f.Expect != nil {
		c.Expect = fn.Some(f.Expect.Code)
	}
	var signer *signing.Secp256k1Signer
	if f.Sign != nil {
		path := f.Sign.Key
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		var err error
		signer, err = signing.NewSecp256k1Signer(signing.WithFs(fs), signing.FromFile(path))
		if err != nil {
			return nil, fmt.Errorf("load signing key: %w", err)
		}
	}
	if args := f.CheckpointArgs; args != nil {
		var admin types.Identity
		switch {
		case len(args.Admin) > 0:
			if err := codec.DecodeExact(args.Admin, &admin); err != nil {
				return nil, fmt.Errorf("decode admin identity: %w", err)
			}
		case signer != nil:
			admin = signer.Identity()
		default:
			return nil, fmt.Errorf("checkpoint args: admin is not set and there is no signing key")
		}
		c.Tx.Args = checkpointsdk.Args(admin, args.TypeID)
	}
	for i := range f.Inputs {
		cell, err := f.Inputs[i].decode()
		if err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}
		c.Tx.AddInput(cell, f.Inputs[i].Group)
	}
	for i := range f.Outputs {
		cell, err := f.Outputs[i].decode()
		if err != nil {
			return nil, fmt.Errorf("output %d: %w", i, err)
		}
		c.Tx.AddOutput(cell, f.Outputs[i].Group)
	}
	if f.TxHash != nil {
		c.Tx.Hash = *f.TxHash
	} else if err := c.Tx.Seal(); err != nil {
		return nil, fmt.Errorf("compute tx hash: %w", err)
	}
	for i := range f.Witnesses {
		c.Tx.SetWitness(i, f.Witnesses[i].Bytes())
	}
	if signer != nil {
		if err := checkpointsdk.SignAdmin(c.Tx, signer); err != nil {
			return nil, fmt.Errorf("sign: %w", err)
		}
	}
	return c, nil
}
