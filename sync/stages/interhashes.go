package stages

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethdb"
	"github.com/ethereum/go-ethereum/trie"
	"github.com/ethereum/go-ethereum/trie/trienode"

	"github.com/tbcd/akula/core/rawdb"
)

// GenerateInterhashes builds the account trie from the hashed-state table,
// persists its nodes and returns the state root.
func GenerateInterhashes(db ethdb.Database) (common.Hash, error) {
	triedb := trie.NewDatabase(db, nil)
	tr := trie.NewEmpty(triedb)

	prefix := rawdb.HashedAccountPrefix()
	it := db.NewIterator(prefix, nil)
	defer it.Release()

	for it.Next() {
		if err := tr.Update(common.CopyBytes(it.Key()[len(prefix):]), common.CopyBytes(it.Value())); err != nil {
			return common.Hash{}, err
		}
	}
	if err := it.Error(); err != nil {
		return common.Hash{}, err
	}

	root, nodes, err := tr.Commit(false)
	if err != nil {
		return common.Hash{}, err
	}
	if nodes != nil {
		if err := triedb.Update(root, types.EmptyRootHash, 0, trienode.NewWithNodeSet(nodes), nil); err != nil {
			return common.Hash{}, err
		}
		if err := triedb.Commit(root, false); err != nil {
			return common.Hash{}, err
		}
	}
	return root, nil
}
