package headers

import "github.com/ethereum/go-ethereum/core/types"

// VerifySliceIsLinkedByParentHash checks that every adjacent pair of headers
// is connected by the parent hash field: hash(headers[i]) must equal
// headers[i+1].ParentHash. Short-circuits on the first broken link.
func VerifySliceIsLinkedByParentHash(headers []*types.Header) bool {
	for i := 0; i+1 < len(headers); i++ {
		if headers[i].Hash() != headers[i+1].ParentHash {
			return false
		}
	}
	return true
}
