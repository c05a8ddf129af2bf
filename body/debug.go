package body

import "fmt"

func PrintTokens(toks []Token, msg string) {
	fmt.Printf("%s tokens:\n", msg)
	for i := range toks {
		fmt.Printf("\t%s\n", toks[i].Info())
	}
}
