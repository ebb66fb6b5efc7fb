package audit

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("audit: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// marshalRecord serializes a Record to canonical CBOR bytes.
func marshalRecord(r Record) ([]byte, error) {
	return cborEncMode.Marshal(r)
}

// unmarshalRecord deserializes a Record from CBOR bytes.
func unmarshalRecord(data []byte) (Record, error) {
	var r Record
	if err := cbor.Unmarshal(data, &r); err != nil {
		return Record{}, fmt.Errorf("audit: unmarshal record: %w", err)
	}
	return r, nil
}
