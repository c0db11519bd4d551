package model

import (
	"strings"

	"github.com/minio/highwayhash"
)

var key = []byte("0123456789ABCDEF0123456789ABCDEF")

func Hash(data []byte) (uint64, error) {
	hash, err := highwayhash.New64(key)
	if err != nil {
		return 0, err
	}
	_, err = hash.Write(data)
	return hash.Sum64(), err
}

// Fingerprint hashes object type and every comparable attribute, equal fingerprints mean equal snapshots
func (e *Element) Fingerprint() uint64 {
	builder := &strings.Builder{}
	builder.WriteString(string(e.ObjectType))
	for _, p := range e.Properties() {
		if p.IsGlobal() {
			continue
		}
		builder.WriteByte(0)
		builder.WriteString(p.Tag())
		builder.WriteByte('=')
		builder.WriteString(e.values[p].String())
	}
	h, _ := Hash([]byte(builder.String()))
	return h
}
