package main

import (
	"io"
	"sort"

	"github.com/db47h/nadia/internal/nvi"
	"github.com/db47h/nadia/lang"
	"github.com/db47h/nadia/vm"
)

func dumpSlice(w io.Writer, a []lang.Value) {
	w.Write([]byte{'['})
	for n, v := range a {
		if n > 0 {
			w.Write([]byte{' '})
		}
		io.WriteString(w, v.GoString())
	}
	w.Write([]byte{']'})
}

// dumpVM dumps the stack, arrays and player position of i to w.
func dumpVM(i *vm.Instance, w io.Writer) error {
	ew := nvi.NewErrWriter(w)
	io.WriteString(ew, "stack: ")
	dumpSlice(ew, i.Stack())
	io.WriteString(ew, "\n")

	arrays := i.Arrays()
	names := make([]string, 0, len(arrays))
	for k := range arrays {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		io.WriteString(ew, "array "+k+": ")
		dumpSlice(ew, arrays[k])
		io.WriteString(ew, "\n")
	}
	io.WriteString(ew, "position: "+i.Position().String()+"\n")
	return ew.Err
}
