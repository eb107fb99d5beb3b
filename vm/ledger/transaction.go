package ledger

import (
	"fmt"

	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/spacemeshos/go-scale"

	"github.com/spacemeshos/go-checkpointvm/common/types"
	"github.com/spacemeshos/go-checkpointvm/hash"
	"github.com/spacemeshos/go-checkpointvm/vm/core"
)

var _ core.Host = (*Transaction)(nil)

// Cell is an input or an output of the transaction.
type Cell struct {
	Capacity uint64
	Data     []byte
	// Type is a hash of the type script, none if cell has no type script.
	Type fn.Option[types.Hash32]
}

// EncodeScale implements scale codec interface.
func (c *Cell) EncodeScale(enc *scale.Encoder) (total int, err error) {
	{
		n, err := scale.EncodeUint64(enc, c.Capacity)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		typ := c.Type.UnwrapOr(types.Hash32{})
		present := byte(0)
		if c.Type.IsSome() {
			present = 1
		}
		n, err := scale.EncodeByte(enc, present)
		if err != nil {
			return total, err
		}
		total += n
		n, err = scale.EncodeByteArray(enc, typ[:])
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeUint32(enc, uint32(len(c.Data)))
		if err != nil {
			return total, err
		}
		total += n
		n, err = scale.EncodeByteArray(enc, c.Data)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// Transaction is an in-memory transaction that serves host calls of one script group.
// It is not safe for concurrent modification.
type Transaction struct {
	Hash      types.Hash32
	Args      []byte
	Inputs    []Cell
	Outputs   []Cell
	Witnesses [][]byte
	// GroupInputs and GroupOutputs are indices of cells that run the script.
	GroupInputs  []int
	GroupOutputs []int
}

// ComputeHash hashes cells of the transaction. Witnesses are not committed.
func (t *Transaction) ComputeHash() (types.Hash32, error) {
	hh := hash.GetHasher()
	defer hash.PutHasher(hh)
	enc := scale.NewEncoder(hh)
	for _, cells := range [][]Cell{t.Inputs, t.Outputs} {
		if _, err := scale.EncodeUint32(enc, uint32(len(cells))); err != nil {
			return types.Hash32{}, err
		}
		for i := range cells {
			if _, err := cells[i].EncodeScale(enc); err != nil {
				return types.Hash32{}, fmt.Errorf("encode cell %d: %w", i, err)
			}
		}
	}
	var rst types.Hash32
	hh.Sum(rst[:0])
	return rst, nil
}

// Seal computes and sets transaction hash.
func (t *Transaction) Seal() error {
	h, err := t.ComputeHash()
	if err != nil {
		return err
	}
	t.Hash = h
	return nil
}

// AddInput appends input and returns its index.
func (t *Transaction) AddInput(cell Cell, group bool) int {
	t.Inputs = append(t.Inputs, cell)
	i := len(t.Inputs) - 1
	if group {
		t.GroupInputs = append(t.GroupInputs, i)
	}
	return i
}

// AddOutput appends output and returns its index.
func (t *Transaction) AddOutput(cell Cell, group bool) int {
	t.Outputs = append(t.Outputs, cell)
	i := len(t.Outputs) - 1
	if group {
		t.GroupOutputs = append(t.GroupOutputs, i)
	}
	return i
}

// SetWitness sets witness at the index, extending witness list with empty witnesses if needed.
func (t *Transaction) SetWitness(i int, witness []byte) {
	for len(t.Witnesses) <= i {
		t.Witnesses = append(t.Witnesses, nil)
	}
	t.Witnesses[i] = witness
}

func (t *Transaction) ScriptArgs() []byte {
	return t.Args
}

func (t *Transaction) TxHash() types.Hash32 {
	return t.Hash
}

func (t *Transaction) Count(src core.Source) int {
	switch src {
	case core.SourceInput:
		return len(t.Inputs)
	case core.SourceOutput:
		return len(t.Outputs)
	case core.SourceGroupInput:
		return len(t.GroupInputs)
	case core.SourceGroupOutput:
		return len(t.GroupOutputs)
	default:
		return 0
	}
}

func (t *Transaction) cell(i int, src core.Source) (*Cell, error) {
	var (
		cells []Cell
		index = i
	)
	switch src {
	case core.SourceInput:
		cells = t.Inputs
	case core.SourceOutput:
		cells = t.Outputs
	case core.SourceGroupInput, core.SourceGroupOutput:
		group := t.GroupInputs
		cells = t.Inputs
		if src == core.SourceGroupOutput {
			group = t.GroupOutputs
			cells = t.Outputs
		}
		if i < 0 || i >= len(group) {
			return nil, fmt.Errorf("%w: %s %d", core.ErrIndexOutOfBound, src, i)
		}
		index = group[i]
	default:
		return nil, fmt.Errorf("%w: unknown source %s", core.ErrItemMissing, src)
	}
	if index < 0 || index >= len(cells) {
		return nil, fmt.Errorf("%w: %s %d", core.ErrIndexOutOfBound, src, i)
	}
	return &cells[index], nil
}

func (t *Transaction) Capacity(i int, src core.Source) (uint64, error) {
	cell, err := t.cell(i, src)
	if err != nil {
		return 0, err
	}
	return cell.Capacity, nil
}

func (t *Transaction) Data(i int, src core.Source) ([]byte, error) {
	cell, err := t.cell(i, src)
	if err != nil {
		return nil, err
	}
	return cell.Data, nil
}

func (t *Transaction) TypeHash(i int, src core.Source) (fn.Option[types.Hash32], error) {
	cell, err := t.cell(i, src)
	if err != nil {
		return fn.None[types.Hash32](), err
	}
	return cell.Type, nil
}

func (t *Transaction) Witness(i int, src core.Source) ([]byte, error) {
	index := i
	switch src {
	case core.SourceInput, core.SourceOutput:
	case core.SourceGroupInput, core.SourceGroupOutput:
		group := t.GroupInputs
		if src == core.SourceGroupOutput {
			group = t.GroupOutputs
		}
		if i < 0 || i >= len(group) {
			return nil, fmt.Errorf("%w: %s witness %d", core.ErrIndexOutOfBound, src, i)
		}
		index = group[i]
	default:
		return nil, fmt.Errorf("%w: unknown source %s", core.ErrItemMissing, src)
	}
	if index < 0 || index >= len(t.Witnesses) {
		return nil, fmt.Errorf("%w: %s witness %d", core.ErrIndexOutOfBound, src, i)
	}
	return t.Witnesses[index], nil
}

func (t *Transaction) WitnessCount() int {
	return len(t.Witnesses)
}
