package main

import (
	"github.com/fpverif/go-fp-golden/types"
	cbg "github.com/whyrusleeping/cbor-gen"
)

func main() {
	if err := cbg.WriteTupleEncodersToFile("../types/cbor_gen.go", "types",
		types.Vector{},
		types.Expected{},
	); err != nil {
		panic(err)
	}
}
