package main

import (
	"github.com/luma/rollcall/cmd"
)

func main() {
	cmd.Execute()
}
