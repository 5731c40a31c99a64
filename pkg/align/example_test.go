package align_test

import (
	"fmt"

	"github.com/robenli/textalign/pkg/align"
	"github.com/robenli/textalign/pkg/sink"
)

func ExampleRun() {
	var buf sink.Buffer
	if err := align.Run("Hi there! My name is Roben Li.\n", &buf, 10, align.Justify); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(buf.String())
	// Output:
	// Hi  there!
	// My name is
	// Roben  Li.
}

func ExampleRun_right() {
	var buf sink.Buffer
	if err := align.Run("Gracias! And this text must be right-aligned.\n", &buf, 15, align.Right); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(buf.String())
	// Output:
	//    Gracias! And
	//  this text must
	//              be
	//  right-aligned.
}

func ExampleParseMode() {
	mode, err := align.ParseMode("JUSTIFY")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(mode)
	// Output:
	// justify
}
