package lang_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/db47h/nadia/lang"
)

func ExampleParse() {
	code := `
; walk two steps east and pick up whatever is there
alloc inventory 1
bind go move
go player east
go player east
collect
set constant 1
push inventory 0
exit player
`
	prog, err := lang.Parse("example", strings.NewReader(code), nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, ins := range prog {
		fmt.Printf("%-7s %v\n", ins.Command, ins.Params)
	}

	// Output:
	// alloc   [inventory 1]
	// bind    [go move]
	// move    [player east]
	// move    [player east]
	// collect []
	// set     [constant 1]
	// push    [inventory 0]
	// exit    [player]
}

func ExampleFormat() {
	binds, _ := lang.NewBindings(map[string]string{"var": "set"})
	prog, err := lang.ParseString("var constant 10 var constant 18 add", binds)
	if err != nil {
		fmt.Println(err)
		return
	}
	lang.Format(os.Stdout, prog)

	// Output:
	// set constant 10
	// set constant 18
	// add
}
