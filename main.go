package main

import "github.com/theirongolddev/presupuesto/cmd"

func main() {
	cmd.Execute()
}
