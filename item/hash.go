package item

import (
	"github.com/minio/highwayhash"
)

var key = []byte("0123456789ABCDEF0123456789ABCDEF")

// HashText returns highwayhash 64 of text
func HashText(text string) (uint64, error) {
	hash, err := highwayhash.New64(key)
	if err != nil {
		return 0, err
	}
	_, err = hash.Write([]byte(text))
	return hash.Sum64(), err
}
