package core

const (
	// LOAD is a cost of copying data from the host into the script. Charged per 8 bytes.
	LOAD uint64 = 64
	// CELL_ACCESS is a cost of every host call that reads a cell field.
	CELL_ACCESS uint64 = 500
	// WITNESS_ACCESS is a cost of every host call that reads a witness.
	WITNESS_ACCESS uint64 = 500
	// HASH is a cost of hashing data with blake2b. Charged per 8 bytes.
	HASH uint64 = 40
	// DECODE is a cost of decoding structured data. Charged per 8 bytes.
	DECODE uint64 = 16
	// SECP256K1VERIFY is a cost of recovering and checking a secp256k1 signature.
	SECP256K1VERIFY uint64 = 1_200_000
)

// DefaultMaxCycles is a budget that is enough for any valid checkpoint transition.
const DefaultMaxCycles uint64 = 10_000_000

// SizeGas computes total cost for a value of the specific size.
// Cost is charged for every 8 bytes, rounded up.
func SizeGas(gas uint64, size int) uint64 {
	quo := size / 8
	rem := size % 8
	rst := uint64(quo) * gas
	if rem != 0 {
		rst += gas
	}
	return rst
}
