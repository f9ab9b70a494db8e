package uuid

import (
	// 外部依赖
	gofrs "github.com/gofrs/uuid/v5"
)

type UUID = gofrs.UUID

var Nil = gofrs.Nil

func NewV4() UUID {
	return gofrs.Must(gofrs.NewV4())
}

func FromString(s string) (UUID, error) {
	return gofrs.FromString(s)
}
