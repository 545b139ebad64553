package main

import "github.com/katalvlaran/floydcycle/internal/floydcmd"

func main() {
	floydcmd.Main()
}
