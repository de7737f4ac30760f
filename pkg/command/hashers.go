package command

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"

	"github.com/framerail/framerail/pkg/value"
)

// NewHashMD5 builds the "hash md5" command.
func NewHashMD5() *Digest {
	return NewDigest("hash md5", md5.New,
		Example{
			Description: "md5 encode a string",
			Pipeline:    "echo 'abcdefghijklmnopqrstuvwxyz' | hash md5",
			Input:       []value.Value{value.String("abcdefghijklmnopqrstuvwxyz")},
			Want:        []value.Value{value.String("c3fcd3d76192e4007dfb496cca67e13b")},
		},
		Example{
			Description: "md5 encode a binary blob",
			Pipeline:    "open file.bin | hash md5",
			Input:       []value.Value{value.Binary([]byte{0xC0, 0xFF, 0xEE})},
			Want:        []value.Value{value.String("5f80e231382769b0102b1164cf722d83")},
		},
	)
}

// NewHashSHA1 builds the "hash sha1" command.
func NewHashSHA1() *Digest {
	return NewDigest("hash sha1", sha1.New,
		Example{
			Description: "sha1 encode a string",
			Pipeline:    "echo 'abcdefghijklmnopqrstuvwxyz' | hash sha1",
			Input:       []value.Value{value.String("abcdefghijklmnopqrstuvwxyz")},
			Want:        []value.Value{value.String("32d10c7b8cf96570ca04ce37f2a19d84240d3a89")},
		},
	)
}

// NewHashSHA256 builds the "hash sha256" command.
func NewHashSHA256() *Digest {
	return NewDigest("hash sha256", sha256.New,
		Example{
			Description: "sha256 encode a string",
			Pipeline:    "echo 'abcdefghijklmnopqrstuvwxyz' | hash sha256",
			Input:       []value.Value{value.String("abcdefghijklmnopqrstuvwxyz")},
			Want: []value.Value{value.String(
				"71c480df93d6ae2f1efad1447c66c9525e316218cf51fc8d9ed832f2daf18b73")},
		},
	)
}
