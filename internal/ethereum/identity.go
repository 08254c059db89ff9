package ethereum

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// VoterHash is keccak256(abi.encodePacked(uint256 electionId, string
// registrationNumber)). Registration and voting both use it, so a voter maps
// to the same hash in a given election.
func VoterHash(electionOnchainID *big.Int, registrationNumber string) common.Hash {
	return crypto.Keccak256Hash(
		common.LeftPadBytes(electionOnchainID.Bytes(), 32),
		[]byte(registrationNumber),
	)
}
